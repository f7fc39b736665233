package repository

import (
	"context"
	"tickl-backend/models"
)

// OrganizationRepositoryInterface defines the contract for the organization repository
type OrganizationRepositoryInterface interface {
	GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error)
	SetApproved(ctx context.Context, id string, approved bool, updatedBy string) error
	AddAdminUser(ctx context.Context, id, accountID string) error
}

// OrgAdminRepositoryInterface defines the contract for org-admin records
type OrgAdminRepositoryInterface interface {
	CreateOrgAdmin(ctx context.Context, admin *models.OrgAdmin) error
	GetOrgAdminByEmail(ctx context.Context, email string) (*models.OrgAdmin, error)
	FindByOrganization(ctx context.Context, organizationID string) ([]*models.OrgAdmin, error)
}

// VerificationRepositoryInterface defines the contract for verification records
type VerificationRepositoryInterface interface {
	PutVerification(ctx context.Context, v *models.EmailVerification) error
	GetVerification(ctx context.Context, userID string) (*models.EmailVerification, error)
	MarkVerified(ctx context.Context, userID string) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error
	SetVerifiedCompanyEmail(ctx context.Context, id, email string) error
	SetPublicLink(ctx context.Context, id, linkID string) error
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// PublicLinkRepositoryInterface defines the contract for public links and messages
type PublicLinkRepositoryInterface interface {
	CreateLink(ctx context.Context, link *models.PublicLink) error
	GetLink(ctx context.Context, id string) (*models.PublicLink, error)
	GetLinkByUser(ctx context.Context, userID string) (*models.PublicLink, error)
	IncrementViewCount(ctx context.Context, id string) error
	IncrementMessageCount(ctx context.Context, id string) error
	AddMessage(ctx context.Context, msg *models.AnonymousMessage) error
	ListMessagesForRecipient(ctx context.Context, recipientID string) ([]*models.AnonymousMessage, error)
}
