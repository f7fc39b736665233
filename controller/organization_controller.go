package controller

import (
	"context"
	"net/http"

	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/services"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type OrganizationController struct {
	Context context.Context
	service services.ApprovalServiceInterface
	orgRepo repository.OrganizationRepositoryInterface
	logger  logger.Logger
}

func NewOrganizationController(ctx context.Context, service services.ApprovalServiceInterface, orgRepo repository.OrganizationRepositoryInterface, log logger.Logger) *OrganizationController {
	return &OrganizationController{
		Context: ctx,
		service: service,
		orgRepo: orgRepo,
		logger:  log,
	}
}

// SetApproval godoc
// @Summary Set an organization's approval flag
// @Description Approve or unapprove an organization; approval notifies its admin by email
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SetApprovalRequest true "Organization and approval flag"
// @Success 200 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /organization/approval [post]
func (oc *OrganizationController) SetApproval(c *gin.Context) {
	caller, ok := callerIdentity(c, oc.logger)
	if !ok {
		return
	}

	var req models.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		oc.logger.Error("Invalid approval payload: ", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request format",
			Error: &models.APIError{
				Type:    string(models.KindInvalidArgument),
				Details: err.Error(),
			},
		})
		return
	}

	result, err := oc.service.SetApproval(c.Request.Context(), caller, req.OrganizationID, req.Approved)
	if err != nil {
		respondError(c, oc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organization approval updated",
		Data:    result,
	})
}

// GetOrganization godoc
// @Summary Get an organization
// @Description Fetch a single organization by its id
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /organization/{id} [get]
func (oc *OrganizationController) GetOrganization(c *gin.Context) {
	if _, ok := callerIdentity(c, oc.logger); !ok {
		return
	}

	id := c.Param("id")
	org, err := oc.orgRepo.GetOrganizationByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, oc.logger, models.WrapInternal("failed to fetch organization", err))
		return
	}
	if org == nil {
		respondError(c, oc.logger, models.NewWorkflowError(models.KindNotFound, "organization not found"))
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organization retrieved successfully",
		Data:    org,
	})
}
