package controller

import (
	"context"
	"net/http"

	"tickl-backend/dal"
	"tickl-backend/identity"
	"tickl-backend/mailer"
	"tickl-backend/middelware"
	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/services"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	User         *UserController
	Verification *VerificationController
	Admin        *AdminController
	Organization *OrganizationController
	PublicLink   *PublicLinkController

	jwtManager *middelware.JWTManager
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	orgRepo := repository.NewOrganizationRepository(dbclient, cfg, log)
	orgAdminRepo := repository.NewOrgAdminRepository(dbclient, cfg, log)
	verifRepo := repository.NewVerificationRepository(dbclient, cfg, log)
	userRepo := repository.NewUserRepository(dbclient, cfg, log)
	linkRepo := repository.NewPublicLinkRepository(dbclient, cfg, log)

	provider := identity.NewDynamoProvider(dbclient, cfg, log)
	smtpMailer := mailer.NewSMTPMailer(cfg, log)
	guard := middelware.NewAuthorizationGuard(cfg, orgAdminRepo, log)
	jwtManager := middelware.NewJWTManager(cfg, log)

	verificationService := services.NewVerificationService(orgRepo, verifRepo, userRepo, smtpMailer, cfg, log)
	provisioningService := services.NewProvisioningService(guard, orgRepo, orgAdminRepo, provider, smtpMailer, cfg, log)
	approvalService := services.NewApprovalService(guard, orgRepo, orgAdminRepo, smtpMailer, cfg, log)
	publicLinkService := services.NewPublicLinkService(linkRepo, userRepo, log)

	return &Controller{
		User:         NewUserController(ctx, userRepo, publicLinkService, jwtManager, log),
		Verification: NewVerificationController(ctx, verificationService, log),
		Admin:        NewAdminController(ctx, provisioningService, log),
		Organization: NewOrganizationController(ctx, approvalService, orgRepo, log),
		PublicLink:   NewPublicLinkController(ctx, publicLinkService, log),
		jwtManager:   jwtManager,
	}
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": "Tickl Backend",
		})
	})

	auth := c.jwtManager.AuthMiddleware()

	// User routes
	user := v1.Group("/user")
	user.POST("/register", c.User.Register)
	user.POST("/login", c.User.Login)
	user.PATCH("/profile", auth, c.User.UpdateProfile)
	user.GET("/messages", auth, c.User.GetMessages)

	// Email-domain verification routes
	verification := v1.Group("/verification")
	verification.POST("/request", auth, c.Verification.RequestVerification)
	verification.POST("/confirm", auth, c.Verification.ConfirmVerification)

	// Admin provisioning
	admin := v1.Group("/admin")
	admin.POST("/provision", auth, c.Admin.ProvisionOrgAdmin)

	// Organization routes
	organization := v1.Group("/organization")
	organization.POST("/approval", auth, c.Organization.SetApproval)
	organization.GET("/:id", auth, c.Organization.GetOrganization)

	// Public link routes - no auth, reached by anonymous visitors
	links := v1.Group("/links")
	links.GET("/:id", c.PublicLink.ViewLink)
	links.POST("/:id/messages", c.PublicLink.SubmitMessage)

	// Create HTTP server
	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	log := logger.NewLogger(config.LogLevel, config.LogFormat)
	log.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// respondError maps a workflow error onto the API envelope.
func respondError(c *gin.Context, log logger.Logger, err error) {
	log.Error("Request failed: ", err)
	status, resp := models.ErrorResponse(err)
	c.JSON(status, resp)
}

// callerIdentity fetches the identity set by the auth middleware, writing
// the Unauthenticated envelope when it is missing.
func callerIdentity(c *gin.Context, log logger.Logger) (models.Identity, bool) {
	id, ok := middelware.IdentityFrom(c)
	if !ok {
		log.Error("Caller identity not found in context")
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
			Error: &models.APIError{
				Type:    string(models.KindUnauthenticated),
				Details: "User not authenticated",
			},
		})
		return models.Identity{}, false
	}
	return id, true
}
