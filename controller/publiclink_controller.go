package controller

import (
	"context"
	"net/http"

	"tickl-backend/models"
	"tickl-backend/services"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// PublicLinkController serves the anonymous-visitor surface. Its routes
// carry no authentication; a visitor only ever holds the link id.
type PublicLinkController struct {
	Context context.Context
	service services.PublicLinkServiceInterface
	logger  logger.Logger
}

func NewPublicLinkController(ctx context.Context, service services.PublicLinkServiceInterface, log logger.Logger) *PublicLinkController {
	return &PublicLinkController{
		Context: ctx,
		service: service,
		logger:  log,
	}
}

// ViewLink godoc
// @Summary Resolve a public link
// @Description Return the link owner's public profile and count the view
// @Tags links
// @Produce json
// @Param id path string true "Public link ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /links/{id} [get]
func (pc *PublicLinkController) ViewLink(c *gin.Context) {
	view, err := pc.service.ViewPublicLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Link resolved successfully",
		Data:    view,
	})
}

// SubmitMessage godoc
// @Summary Submit an anonymous message
// @Description Store an anonymous message for the owner of the public link
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Public link ID"
// @Param message body models.SubmitMessageRequest true "Message content"
// @Success 201 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 412 {object} models.APIResponse
// @Router /links/{id}/messages [post]
func (pc *PublicLinkController) SubmitMessage(c *gin.Context) {
	var req models.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.logger.Error("Invalid message payload: ", err)
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

	if err := pc.service.SubmitAnonymousMessage(c.Request.Context(), c.Param("id"), req.Message, req.SenderName, c.ClientIP()); err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Message submitted successfully",
	})
}
