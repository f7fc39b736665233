package controller

import (
	"context"
	"net/http"
	"time"

	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/services"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Context     context.Context
	userRepo    repository.UserRepositoryInterface
	linkService services.PublicLinkServiceInterface
	jwtManager  TokenGenerator
	logger      logger.Logger
}

// TokenGenerator issues signed session tokens for a user.
type TokenGenerator interface {
	GenerateToken(user *models.User) (string, error)
}

func NewUserController(ctx context.Context, userRepo repository.UserRepositoryInterface, linkService services.PublicLinkServiceInterface, jwtManager TokenGenerator, log logger.Logger) *UserController {
	return &UserController{
		Context:     ctx,
		userRepo:    userRepo,
		linkService: linkService,
		jwtManager:  jwtManager,
		logger:      log,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with a hashed password
// @Tags user
// @Accept json
// @Produce json
// @Param user body models.RegisterUser true "User registration data"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /user/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		uc.logger.Error("Invalid registration payload: ", err)
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

	existing, err := uc.userRepo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to check existing user", err))
		return
	}
	if existing != nil {
		respondError(c, uc.logger, models.NewWorkflowError(models.KindAlreadyExists, "a user with this email already exists"))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to hash password", err))
		return
	}

	user := &models.User{
		ID:           utils.GenerateUUID(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Status:       models.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	created, err := uc.userRepo.CreateUser(c.Request.Context(), user)
	if err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to create user", err))
		return
	}

	uc.logger.Info("User registered: ", created.ID)
	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "User registered successfully",
		Data:    created,
	})
}

// Login godoc
// @Summary Authenticate a user
// @Description Verify credentials and issue a JWT session token
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body models.LoginUser true "Login credentials"
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /user/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginUser
	if err := c.ShouldBindJSON(&req); err != nil {
		uc.logger.Error("Invalid login payload: ", err)
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

	user, err := uc.userRepo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to look up user", err))
		return
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		respondError(c, uc.logger, models.NewWorkflowError(models.KindUnauthenticated, "invalid email or password"))
		return
	}
	if user.Status != models.UserStatusActive {
		respondError(c, uc.logger, models.NewWorkflowError(models.KindPermissionDenied, "user account is not active"))
		return
	}

	token, err := uc.jwtManager.GenerateToken(user)
	if err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Login successful",
		Data: gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Apply profile field updates; completing the profile mints the user's public link
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UpdateProfileRequest true "Profile updates"
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /user/profile [patch]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	caller, ok := callerIdentity(c, uc.logger)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		uc.logger.Error("Invalid profile payload: ", err)
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

	before, err := uc.userRepo.GetUserByID(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to load user", err))
		return
	}
	if before == nil {
		respondError(c, uc.logger, models.NewWorkflowError(models.KindNotFound, "user not found"))
		return
	}

	updates := map[string]interface{}{}
	after := *before
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
		after.FirstName = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
		after.LastName = req.LastName
	}
	if req.Username != "" {
		updates["username"] = req.Username
		after.Username = req.Username
	}
	if req.ProfileCompleted != nil {
		updates["profile_completed"] = *req.ProfileCompleted
		after.ProfileCompleted = *req.ProfileCompleted
	}
	if len(updates) == 0 {
		respondError(c, uc.logger, models.NewWorkflowError(models.KindInvalidArgument, "no profile fields to update"))
		return
	}
	updates["updated_at"] = time.Now()

	if err := uc.userRepo.UpdateUser(c.Request.Context(), before.ID, updates); err != nil {
		respondError(c, uc.logger, models.WrapInternal("failed to update user", err))
		return
	}

	linkID, created, err := uc.linkService.EnsurePublicLink(c.Request.Context(), before, &after)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}
	if linkID != "" {
		after.PublicLinkID = linkID
	}
	if created {
		uc.logger.Info("Public link minted for user: ", before.ID)
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Profile updated successfully",
		Data:    &after,
	})
}

// GetMessages godoc
// @Summary List the caller's anonymous messages
// @Description Return anonymous messages submitted through the caller's public link
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /user/messages [get]
func (uc *UserController) GetMessages(c *gin.Context) {
	caller, ok := callerIdentity(c, uc.logger)
	if !ok {
		return
	}

	messages, err := uc.linkService.ListMessages(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Messages retrieved successfully",
		Data: gin.H{
			"messages": messages,
			"count":    len(messages),
		},
	})
}
