package middelware

import (
	"context"

	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/utils/logger"
)

// PolicySuperAdmin restricts an operation to the configured super-admin.
// PolicyOrgAdminOrSuperAdmin additionally admits organization admins.
const (
	PolicySuperAdmin           = "super_admin"
	PolicyOrgAdminOrSuperAdmin = "org_admin_or_super_admin"
)

// AuthorizationGuard decides whether a caller identity may run privileged
// workflows. The super-admin comparison is an exact, case-sensitive match
// against the configured address. That strictness is deliberate and kept:
// the configured value is the single source of truth, not a normalized form.
type AuthorizationGuard struct {
	config       *models.Config
	orgAdminRepo repository.OrgAdminRepositoryInterface
	logger       logger.Logger
}

// NewAuthorizationGuard creates a new authorization guard
func NewAuthorizationGuard(cfg *models.Config, orgAdminRepo repository.OrgAdminRepositoryInterface, log logger.Logger) *AuthorizationGuard {
	return &AuthorizationGuard{
		config:       cfg,
		orgAdminRepo: orgAdminRepo,
		logger:       log,
	}
}

// IsSuperAdmin reports whether the identity is the configured super-admin.
func (g *AuthorizationGuard) IsSuperAdmin(identity models.Identity) bool {
	return identity.Email == g.config.SuperAdminEmail
}

// RequireSuperAdmin fails with PermissionDenied unless the identity is the
// super-admin.
func (g *AuthorizationGuard) RequireSuperAdmin(identity models.Identity) error {
	if g.IsSuperAdmin(identity) {
		return nil
	}
	g.logger.Warnf("Permission denied for %s: super-admin required", identity.Email)
	return models.NewWorkflowError(models.KindPermissionDenied, "super-admin access required")
}

// RequireOrgAdminOrSuperAdmin admits the super-admin and anyone holding an
// org-admin record.
func (g *AuthorizationGuard) RequireOrgAdminOrSuperAdmin(ctx context.Context, identity models.Identity) error {
	if g.IsSuperAdmin(identity) {
		return nil
	}

	admin, err := g.orgAdminRepo.GetOrgAdminByEmail(ctx, identity.Email)
	if err != nil {
		return models.WrapInternal("failed to check org admin membership", err)
	}
	if admin != nil {
		return nil
	}

	g.logger.Warnf("Permission denied for %s: admin access required", identity.Email)
	return models.NewWorkflowError(models.KindPermissionDenied, "admin access required")
}

// RequireProvisioningAccess applies the configured provisioning policy.
func (g *AuthorizationGuard) RequireProvisioningAccess(ctx context.Context, identity models.Identity) error {
	switch g.config.AdminProvisioningPolicy {
	case PolicyOrgAdminOrSuperAdmin:
		return g.RequireOrgAdminOrSuperAdmin(ctx, identity)
	default:
		return g.RequireSuperAdmin(identity)
	}
}
