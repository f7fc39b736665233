package services

import (
	"context"

	"tickl-backend/models"

	"github.com/stretchr/testify/mock"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Fatal(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

// expectAnyLogs registers Maybe() expectations for every log level so tests
// don't have to enumerate log lines.
func expectAnyLogs(l *MockLogger) {
	l.On("Debug", mock.Anything).Return().Maybe()
	l.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	l.On("Info", mock.Anything).Return().Maybe()
	l.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	l.On("Warn", mock.Anything).Return().Maybe()
	l.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	l.On("Error", mock.Anything).Return().Maybe()
	l.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
}

// MockOrganizationRepository implements OrganizationRepositoryInterface
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SetApproved(ctx context.Context, id string, approved bool, updatedBy string) error {
	args := m.Called(ctx, id, approved, updatedBy)
	return args.Error(0)
}

func (m *MockOrganizationRepository) AddAdminUser(ctx context.Context, id, accountID string) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}

// MockOrgAdminRepository implements OrgAdminRepositoryInterface
type MockOrgAdminRepository struct {
	mock.Mock
}

func (m *MockOrgAdminRepository) CreateOrgAdmin(ctx context.Context, admin *models.OrgAdmin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockOrgAdminRepository) GetOrgAdminByEmail(ctx context.Context, email string) (*models.OrgAdmin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrgAdmin), args.Error(1)
}

func (m *MockOrgAdminRepository) FindByOrganization(ctx context.Context, organizationID string) ([]*models.OrgAdmin, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrgAdmin), args.Error(1)
}

// MockVerificationRepository implements VerificationRepositoryInterface
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) PutVerification(ctx context.Context, v *models.EmailVerification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetVerification(ctx context.Context, userID string) (*models.EmailVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailVerification), args.Error(1)
}

func (m *MockVerificationRepository) MarkVerified(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockUserRepository implements UserRepositoryInterface
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

// MockPublicLinkRepository implements PublicLinkRepositoryInterface
type MockPublicLinkRepository struct {
	mock.Mock
}

func (m *MockPublicLinkRepository) CreateLink(ctx context.Context, link *models.PublicLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockPublicLinkRepository) GetLink(ctx context.Context, id string) (*models.PublicLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicLink), args.Error(1)
}

func (m *MockPublicLinkRepository) GetLinkByUser(ctx context.Context, userID string) (*models.PublicLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicLink), args.Error(1)
}

func (m *MockPublicLinkRepository) IncrementViewCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPublicLinkRepository) IncrementMessageCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPublicLinkRepository) AddMessage(ctx context.Context, msg *models.AnonymousMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockPublicLinkRepository) ListMessagesForRecipient(ctx context.Context, recipientID string) ([]*models.AnonymousMessage, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AnonymousMessage), args.Error(1)
}

// MockIdentityProvider implements identity.Provider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (*models.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockMailer implements mailer.Sender
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(to, otp, orgName string) error {
	args := m.Called(to, otp, orgName)
	return args.Error(0)
}

func (m *MockMailer) SendCredentialsEmail(to, password, orgName, dashboardURL string) error {
	args := m.Called(to, password, orgName, dashboardURL)
	return args.Error(0)
}

func (m *MockMailer) SendApprovalEmail(to, orgName, dashboardURL string) error {
	args := m.Called(to, orgName, dashboardURL)
	return args.Error(0)
}

// MockGuard implements AuthorizationGuardInterface
type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) RequireSuperAdmin(identity models.Identity) error {
	args := m.Called(identity)
	return args.Error(0)
}

func (m *MockGuard) RequireOrgAdminOrSuperAdmin(ctx context.Context, identity models.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockGuard) RequireProvisioningAccess(ctx context.Context, identity models.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}
