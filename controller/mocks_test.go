package controller

import (
	"context"

	"tickl-backend/models"

	"github.com/stretchr/testify/mock"
)

// MockVerificationService implements VerificationServiceInterface
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) RequestVerification(ctx context.Context, caller models.Identity, email, organizationID string) error {
	args := m.Called(ctx, caller, email, organizationID)
	return args.Error(0)
}

func (m *MockVerificationService) ConfirmVerification(ctx context.Context, caller models.Identity, otp string) (string, error) {
	args := m.Called(ctx, caller, otp)
	return args.String(0), args.Error(1)
}

// MockProvisioningService implements ProvisioningServiceInterface
type MockProvisioningService struct {
	mock.Mock
}

func (m *MockProvisioningService) ProvisionOrgAdmin(ctx context.Context, caller models.Identity, req *models.ProvisionAdminRequest) (*models.ProvisionAdminResult, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProvisionAdminResult), args.Error(1)
}

// MockApprovalService implements ApprovalServiceInterface
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) SetApproval(ctx context.Context, caller models.Identity, organizationID string, approved interface{}) (*models.ApprovalResult, error) {
	args := m.Called(ctx, caller, organizationID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApprovalResult), args.Error(1)
}

// MockPublicLinkService implements PublicLinkServiceInterface
type MockPublicLinkService struct {
	mock.Mock
}

func (m *MockPublicLinkService) EnsurePublicLink(ctx context.Context, before, after *models.User) (string, bool, error) {
	args := m.Called(ctx, before, after)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockPublicLinkService) SubmitAnonymousMessage(ctx context.Context, linkID, message, senderName, requesterIP string) error {
	args := m.Called(ctx, linkID, message, senderName, requesterIP)
	return args.Error(0)
}

func (m *MockPublicLinkService) ViewPublicLink(ctx context.Context, linkID string) (*models.PublicLinkView, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicLinkView), args.Error(1)
}

func (m *MockPublicLinkService) ListMessages(ctx context.Context, recipientID string) ([]*models.AnonymousMessage, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AnonymousMessage), args.Error(1)
}

// MockUserRepository implements repository.UserRepositoryInterface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerifiedCompanyEmail(ctx context.Context, id, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockUserRepository) SetPublicLink(ctx context.Context, id, linkID string) error {
	args := m.Called(ctx, id, linkID)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// MockTokenGenerator implements TokenGenerator
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
