package controller

import (
	"context"
	"net/http"

	"tickl-backend/models"
	"tickl-backend/services"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type VerificationController struct {
	Context context.Context
	service services.VerificationServiceInterface
	logger  logger.Logger
}

func NewVerificationController(ctx context.Context, service services.VerificationServiceInterface, log logger.Logger) *VerificationController {
	return &VerificationController{
		Context: ctx,
		service: service,
		logger:  log,
	}
}

// RequestVerification godoc
// @Summary Request a company-email verification code
// @Description Check the email against the organization's registered domain and send a 4-digit code
// @Tags verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RequestVerificationRequest true "Email and organization"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /verification/request [post]
func (vc *VerificationController) RequestVerification(c *gin.Context) {
	caller, ok := callerIdentity(c, vc.logger)
	if !ok {
		return
	}

	var req models.RequestVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		vc.logger.Error("Invalid verification request payload: ", err)
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

	if err := vc.service.RequestVerification(c.Request.Context(), caller, req.Email, req.OrganizationID); err != nil {
		respondError(c, vc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Verification code sent",
		Data: gin.H{
			"email": req.Email,
		},
	})
}

// ConfirmVerification godoc
// @Summary Confirm a company-email verification code
// @Description Validate the submitted code and mark the company email verified
// @Tags verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ConfirmVerificationRequest true "Verification code"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 410 {object} models.APIResponse
// @Router /verification/confirm [post]
func (vc *VerificationController) ConfirmVerification(c *gin.Context) {
	caller, ok := callerIdentity(c, vc.logger)
	if !ok {
		return
	}

	var req models.ConfirmVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		vc.logger.Error("Invalid confirmation payload: ", err)
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

	email, err := vc.service.ConfirmVerification(c.Request.Context(), caller, req.OTP)
	if err != nil {
		respondError(c, vc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Email verified successfully",
		Data: gin.H{
			"email":    email,
			"verified": true,
		},
	})
}
