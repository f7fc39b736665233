package controller

import (
	"context"
	"net/http"
	"strings"

	"tickl-backend/models"
	"tickl-backend/services"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdminController struct {
	Context   context.Context
	service   services.ProvisioningServiceInterface
	logger    logger.Logger
	validator *validator.Validate
}

func NewAdminController(ctx context.Context, service services.ProvisioningServiceInterface, log logger.Logger) *AdminController {
	return &AdminController{
		Context:   ctx,
		service:   service,
		logger:    log,
		validator: validator.New(),
	}
}

// formatValidationErrors formats validation errors into readable messages
func (ac *AdminController) formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "email":
				errorMessages = append(errorMessages, fieldError.Field()+" must be a valid email address")
			case "min":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param()+" characters")
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	return strings.Join(errorMessages, "; ")
}

// ProvisionOrgAdmin godoc
// @Summary Provision an organization admin
// @Description Create an admin account for an organization and email the credentials
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProvisionAdminRequest true "Admin account details"
// @Success 201 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /admin/provision [post]
func (ac *AdminController) ProvisionOrgAdmin(c *gin.Context) {
	caller, ok := callerIdentity(c, ac.logger)
	if !ok {
		return
	}

	var req models.ProvisionAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.logger.Error("Invalid provisioning payload: ", err)
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

	if err := ac.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    string(models.KindInvalidArgument),
				Details: ac.formatValidationErrors(err),
			},
		})
		return
	}

	result, err := ac.service.ProvisionOrgAdmin(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	message := "Admin provisioned successfully"
	if !result.EmailSent {
		message = "Admin provisioned, but the credentials email could not be delivered"
	}
	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		Data:    result,
	})
}
