package services

import (
	"context"
	"tickl-backend/models"
)

// AuthorizationGuardInterface is the authorization predicate the privileged
// workflows consult. Implemented by middelware.AuthorizationGuard; the
// provisioning policy behind RequireProvisioningAccess is configuration.
type AuthorizationGuardInterface interface {
	RequireSuperAdmin(identity models.Identity) error
	RequireOrgAdminOrSuperAdmin(ctx context.Context, identity models.Identity) error
	RequireProvisioningAccess(ctx context.Context, identity models.Identity) error
}

// VerificationServiceInterface defines the email-domain verification workflow
type VerificationServiceInterface interface {
	RequestVerification(ctx context.Context, caller models.Identity, email, organizationID string) error
	ConfirmVerification(ctx context.Context, caller models.Identity, otp string) (string, error)
}

// ProvisioningServiceInterface defines the admin provisioning workflow
type ProvisioningServiceInterface interface {
	ProvisionOrgAdmin(ctx context.Context, caller models.Identity, req *models.ProvisionAdminRequest) (*models.ProvisionAdminResult, error)
}

// ApprovalServiceInterface defines the organization approval workflow
type ApprovalServiceInterface interface {
	SetApproval(ctx context.Context, caller models.Identity, organizationID string, approved interface{}) (*models.ApprovalResult, error)
}

// PublicLinkServiceInterface defines public link minting and anonymous messaging
type PublicLinkServiceInterface interface {
	EnsurePublicLink(ctx context.Context, before, after *models.User) (string, bool, error)
	SubmitAnonymousMessage(ctx context.Context, linkID, message, senderName, requesterIP string) error
	ViewPublicLink(ctx context.Context, linkID string) (*models.PublicLinkView, error)
	ListMessages(ctx context.Context, recipientID string) ([]*models.AnonymousMessage, error)
}
