package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tickl-backend/models"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// withIdentity injects a caller identity the way the auth middleware does.
func withIdentity(id models.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", id)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	var resp models.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// VerificationControllerTestSuite covers the verification endpoints
type VerificationControllerTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockService *MockVerificationService
	router      *gin.Engine
	caller      models.Identity
}

func (suite *VerificationControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctx = context.Background()
	suite.mockService = &MockVerificationService{}
	suite.caller = models.Identity{UserID: "user-1", Email: "bob@personal.com"}

	vc := NewVerificationController(suite.ctx, suite.mockService, logger.NewLogger("error", "json"))
	suite.router = gin.New()
	suite.router.POST("/verification/request", withIdentity(suite.caller), vc.RequestVerification)
	suite.router.POST("/verification/confirm", withIdentity(suite.caller), vc.ConfirmVerification)
}

func (suite *VerificationControllerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VerificationControllerTestSuite) TestRequestVerificationSuccess() {
	suite.mockService.On("RequestVerification", mock.Anything, suite.caller, "bob@acme.com", "org-1").Return(nil)

	w := performJSON(suite.router, http.MethodPost, "/verification/request", models.RequestVerificationRequest{
		Email:          "bob@acme.com",
		OrganizationID: "org-1",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.Equal(suite.T(), "success", resp.Status)
}

func (suite *VerificationControllerTestSuite) TestRequestVerificationNotFoundMapsTo404() {
	suite.mockService.On("RequestVerification", mock.Anything, suite.caller, "bob@acme.com", "org-missing").
		Return(models.NewWorkflowError(models.KindNotFound, "organization not found"))

	w := performJSON(suite.router, http.MethodPost, "/verification/request", models.RequestVerificationRequest{
		Email:          "bob@acme.com",
		OrganizationID: "org-missing",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.Equal(suite.T(), "error", resp.Status)
	assert.Equal(suite.T(), string(models.KindNotFound), resp.Error.Type)
}

func (suite *VerificationControllerTestSuite) TestRequestVerificationMissingBody() {
	w := performJSON(suite.router, http.MethodPost, "/verification/request", map[string]string{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *VerificationControllerTestSuite) TestConfirmVerificationSuccess() {
	suite.mockService.On("ConfirmVerification", mock.Anything, suite.caller, "4821").Return("bob@acme.com", nil)

	w := performJSON(suite.router, http.MethodPost, "/verification/confirm", models.ConfirmVerificationRequest{OTP: "4821"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *VerificationControllerTestSuite) TestConfirmVerificationExpiredMapsTo410() {
	suite.mockService.On("ConfirmVerification", mock.Anything, suite.caller, "4821").
		Return("", models.NewWorkflowError(models.KindDeadlineExceeded, "verification code has expired"))

	w := performJSON(suite.router, http.MethodPost, "/verification/confirm", models.ConfirmVerificationRequest{OTP: "4821"})

	assert.Equal(suite.T(), http.StatusGone, w.Code)
}

func TestVerificationControllerTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationControllerTestSuite))
}

// AdminControllerTestSuite covers admin provisioning
type AdminControllerTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockService *MockProvisioningService
	router      *gin.Engine
	caller      models.Identity
}

func (suite *AdminControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctx = context.Background()
	suite.mockService = &MockProvisioningService{}
	suite.caller = models.Identity{UserID: "super-1", Email: "admin@tickl.in"}

	ac := NewAdminController(suite.ctx, suite.mockService, logger.NewLogger("error", "json"))
	suite.router = gin.New()
	suite.router.POST("/admin/provision", withIdentity(suite.caller), ac.ProvisionOrgAdmin)
}

func (suite *AdminControllerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdminControllerTestSuite) validBody() models.ProvisionAdminRequest {
	return models.ProvisionAdminRequest{
		Email:            "new.admin@acme.com",
		Password:         "initialPassw0rd",
		OrganizationID:   "org-1",
		OrganizationName: "Acme",
	}
}

func (suite *AdminControllerTestSuite) TestProvisionSuccess() {
	suite.mockService.On("ProvisionOrgAdmin", mock.Anything, suite.caller, mock.AnythingOfType("*models.ProvisionAdminRequest")).
		Return(&models.ProvisionAdminResult{Success: true, UserID: "acct-99", EmailSent: true}, nil)

	w := performJSON(suite.router, http.MethodPost, "/admin/provision", suite.validBody())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.Equal(suite.T(), "success", resp.Status)
}

func (suite *AdminControllerTestSuite) TestProvisionPartialEmailFailure() {
	suite.mockService.On("ProvisionOrgAdmin", mock.Anything, suite.caller, mock.AnythingOfType("*models.ProvisionAdminRequest")).
		Return(&models.ProvisionAdminResult{Success: true, UserID: "acct-99", EmailSent: false, EmailError: "smtp timeout"}, nil)

	w := performJSON(suite.router, http.MethodPost, "/admin/provision", suite.validBody())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.Contains(suite.T(), resp.Message, "could not be delivered")
}

func (suite *AdminControllerTestSuite) TestProvisionPermissionDeniedMapsTo403() {
	suite.mockService.On("ProvisionOrgAdmin", mock.Anything, suite.caller, mock.AnythingOfType("*models.ProvisionAdminRequest")).
		Return(nil, models.NewWorkflowError(models.KindPermissionDenied, "super-admin access required"))

	w := performJSON(suite.router, http.MethodPost, "/admin/provision", suite.validBody())

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *AdminControllerTestSuite) TestProvisionDuplicateMapsTo409() {
	suite.mockService.On("ProvisionOrgAdmin", mock.Anything, suite.caller, mock.AnythingOfType("*models.ProvisionAdminRequest")).
		Return(nil, models.NewWorkflowError(models.KindAlreadyExists, "an account with this email already exists"))

	w := performJSON(suite.router, http.MethodPost, "/admin/provision", suite.validBody())

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func TestAdminControllerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminControllerTestSuite))
}

// PublicLinkControllerTestSuite covers the anonymous-visitor endpoints
type PublicLinkControllerTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockService *MockPublicLinkService
	router      *gin.Engine
}

func (suite *PublicLinkControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctx = context.Background()
	suite.mockService = &MockPublicLinkService{}

	pc := NewPublicLinkController(suite.ctx, suite.mockService, logger.NewLogger("error", "json"))
	suite.router = gin.New()
	suite.router.GET("/links/:id", pc.ViewLink)
	suite.router.POST("/links/:id/messages", pc.SubmitMessage)
}

func (suite *PublicLinkControllerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PublicLinkControllerTestSuite) TestViewLink() {
	view := &models.PublicLinkView{LinkID: "abcDEF1234", FirstName: "Bob", Username: "bobk"}
	suite.mockService.On("ViewPublicLink", mock.Anything, "abcDEF1234").Return(view, nil)

	w := performJSON(suite.router, http.MethodGet, "/links/abcDEF1234", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.Equal(suite.T(), "success", resp.Status)
}

func (suite *PublicLinkControllerTestSuite) TestViewLinkNotFound() {
	suite.mockService.On("ViewPublicLink", mock.Anything, "missing0000").
		Return(nil, models.NewWorkflowError(models.KindNotFound, "link not found"))

	w := performJSON(suite.router, http.MethodGet, "/links/missing0000", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PublicLinkControllerTestSuite) TestSubmitMessage() {
	suite.mockService.On("SubmitAnonymousMessage", mock.Anything, "abcDEF1234", "great talk today", "a colleague", mock.AnythingOfType("string")).Return(nil)

	w := performJSON(suite.router, http.MethodPost, "/links/abcDEF1234/messages", models.SubmitMessageRequest{
		Message:    "great talk today",
		SenderName: "a colleague",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *PublicLinkControllerTestSuite) TestSubmitMessageInactiveLinkMapsTo412() {
	suite.mockService.On("SubmitAnonymousMessage", mock.Anything, "abcDEF1234", "hello", "someone", mock.AnythingOfType("string")).
		Return(models.NewWorkflowError(models.KindFailedPrecondition, "this link is no longer accepting messages"))

	w := performJSON(suite.router, http.MethodPost, "/links/abcDEF1234/messages", models.SubmitMessageRequest{
		Message:    "hello",
		SenderName: "someone",
	})

	assert.Equal(suite.T(), http.StatusPreconditionFailed, w.Code)
}

func (suite *PublicLinkControllerTestSuite) TestSubmitMessageMissingFields() {
	w := performJSON(suite.router, http.MethodPost, "/links/abcDEF1234/messages", map[string]string{"message": "hello"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestPublicLinkControllerTestSuite(t *testing.T) {
	suite.Run(t, new(PublicLinkControllerTestSuite))
}

// UserControllerTestSuite covers login and the profile-completion trigger
type UserControllerTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockRepo        *MockUserRepository
	mockLinkService *MockPublicLinkService
	mockTokens      *MockTokenGenerator
	router          *gin.Engine
	caller          models.Identity
}

func (suite *UserControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctx = context.Background()
	suite.mockRepo = &MockUserRepository{}
	suite.mockLinkService = &MockPublicLinkService{}
	suite.mockTokens = &MockTokenGenerator{}
	suite.caller = models.Identity{UserID: "user-1", Email: "bob@personal.com"}

	uc := NewUserController(suite.ctx, suite.mockRepo, suite.mockLinkService, suite.mockTokens, logger.NewLogger("error", "json"))
	suite.router = gin.New()
	suite.router.POST("/user/login", uc.Login)
	suite.router.PATCH("/user/profile", withIdentity(suite.caller), uc.UpdateProfile)
	suite.router.GET("/user/messages", withIdentity(suite.caller), uc.GetMessages)
}

func (suite *UserControllerTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLinkService.AssertExpectations(suite.T())
	suite.mockTokens.AssertExpectations(suite.T())
}

func (suite *UserControllerTestSuite) TestLoginSuccess() {
	hash, err := utils.HashPassword("securePassword123")
	assert.NoError(suite.T(), err)
	user := &models.User{ID: "user-1", Email: "bob@personal.com", PasswordHash: hash, Status: models.UserStatusActive}
	suite.mockRepo.On("GetUserByEmail", mock.Anything, "bob@personal.com").Return(user, nil)
	suite.mockTokens.On("GenerateToken", user).Return("signed-token", nil)

	w := performJSON(suite.router, http.MethodPost, "/user/login", models.LoginUser{
		Email:    "bob@personal.com",
		Password: "securePassword123",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	resp := decodeResponse(suite.T(), w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(suite.T(), "signed-token", data["token"])
}

func (suite *UserControllerTestSuite) TestLoginWrongPassword() {
	hash, err := utils.HashPassword("securePassword123")
	assert.NoError(suite.T(), err)
	user := &models.User{ID: "user-1", Email: "bob@personal.com", PasswordHash: hash, Status: models.UserStatusActive}
	suite.mockRepo.On("GetUserByEmail", mock.Anything, "bob@personal.com").Return(user, nil)

	w := performJSON(suite.router, http.MethodPost, "/user/login", models.LoginUser{
		Email:    "bob@personal.com",
		Password: "wrongPassword",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *UserControllerTestSuite) TestLoginUnknownUser() {
	suite.mockRepo.On("GetUserByEmail", mock.Anything, "ghost@personal.com").Return(nil, nil)

	w := performJSON(suite.router, http.MethodPost, "/user/login", models.LoginUser{
		Email:    "ghost@personal.com",
		Password: "whatever12345",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *UserControllerTestSuite) TestCompletingProfileMintsLink() {
	before := &models.User{ID: "user-1", Email: "bob@personal.com", ProfileCompleted: false, Status: models.UserStatusActive}
	suite.mockRepo.On("GetUserByID", mock.Anything, "user-1").Return(before, nil)
	suite.mockRepo.On("UpdateUser", mock.Anything, "user-1", mock.MatchedBy(func(u map[string]interface{}) bool {
		return u["profile_completed"] == true
	})).Return(nil)
	suite.mockLinkService.On("EnsurePublicLink", mock.Anything, before, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == "user-1" && u.ProfileCompleted
	})).Return("abcDEF1234", true, nil)

	completed := true
	w := performJSON(suite.router, http.MethodPatch, "/user/profile", models.UpdateProfileRequest{ProfileCompleted: &completed})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	resp := decodeResponse(suite.T(), w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(suite.T(), "abcDEF1234", data["public_link_id"])
}

func (suite *UserControllerTestSuite) TestProfileUpdateWithoutCompletion() {
	before := &models.User{ID: "user-1", Email: "bob@personal.com", FirstName: "Bob", Status: models.UserStatusActive}
	suite.mockRepo.On("GetUserByID", mock.Anything, "user-1").Return(before, nil)
	suite.mockRepo.On("UpdateUser", mock.Anything, "user-1", mock.Anything).Return(nil)
	suite.mockLinkService.On("EnsurePublicLink", mock.Anything, before, mock.AnythingOfType("*models.User")).Return("", false, nil)

	w := performJSON(suite.router, http.MethodPatch, "/user/profile", models.UpdateProfileRequest{FirstName: "Robert"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *UserControllerTestSuite) TestGetMessages() {
	messages := []*models.AnonymousMessage{{ID: "m1", RecipientID: "user-1", Message: "hi"}}
	suite.mockLinkService.On("ListMessages", mock.Anything, "user-1").Return(messages, nil)

	w := performJSON(suite.router, http.MethodGet, "/user/messages", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	resp := decodeResponse(suite.T(), w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(suite.T(), float64(1), data["count"])
}

func TestUserControllerTestSuite(t *testing.T) {
	suite.Run(t, new(UserControllerTestSuite))
}
