package services

import (
	"context"
	"errors"

	"tickl-backend/identity"
	"tickl-backend/mailer"
	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
)

// ProvisioningService creates identity accounts for new organization admins,
// records their membership and emails the credentials.
//
// The side effects are sequential and individually observable: account,
// org-admin record, adminUsers membership. There is no compensating rollback
// on a mid-sequence failure, so a retry after partial failure hits
// AlreadyExists on the account probe. The credentials email alone is
// best-effort.
type ProvisioningService struct {
	guard        AuthorizationGuardInterface
	orgRepo      repository.OrganizationRepositoryInterface
	orgAdminRepo repository.OrgAdminRepositoryInterface
	identity     identity.Provider
	mailer       mailer.Sender
	config       *models.Config
	logger       logger.Logger
}

func NewProvisioningService(
	guard AuthorizationGuardInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	orgAdminRepo repository.OrgAdminRepositoryInterface,
	provider identity.Provider,
	sender mailer.Sender,
	cfg *models.Config,
	log logger.Logger,
) *ProvisioningService {
	return &ProvisioningService{
		guard:        guard,
		orgRepo:      orgRepo,
		orgAdminRepo: orgAdminRepo,
		identity:     provider,
		mailer:       sender,
		config:       cfg,
		logger:       log,
	}
}

// ProvisionOrgAdmin runs the provisioning workflow for one admin.
func (s *ProvisioningService) ProvisionOrgAdmin(ctx context.Context, caller models.Identity, req *models.ProvisionAdminRequest) (*models.ProvisionAdminResult, error) {
	if err := s.guard.RequireProvisioningAccess(ctx, caller); err != nil {
		return nil, err
	}

	if req.Email == "" || req.Password == "" || req.OrganizationID == "" || req.OrganizationName == "" {
		return nil, models.NewWorkflowError(models.KindInvalidArgument, "email, password, organization_id and organization_name are required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, models.NewWorkflowError(models.KindInvalidArgument, "invalid email format")
	}

	org, err := s.orgRepo.GetOrganizationByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, models.WrapInternal("failed to load organization", err)
	}
	if org == nil {
		return nil, models.NewWorkflowError(models.KindNotFound, "organization not found")
	}

	// A lookup miss is the only acceptable negative outcome here; any other
	// failure of the probe re-raises rather than risking a duplicate account.
	existing, err := s.identity.GetAccountByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, identity.ErrAccountNotFound) {
		return nil, models.WrapInternal("failed to check existing account", err)
	}
	if existing != nil {
		return nil, models.NewWorkflowError(models.KindAlreadyExists, "an account with this email already exists")
	}

	account, err := s.identity.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		return nil, models.WrapInternal("failed to create identity account", err)
	}

	admin := &models.OrgAdmin{
		ID:               account.ID,
		Email:            req.Email,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
	}
	if err := s.orgAdminRepo.CreateOrgAdmin(ctx, admin); err != nil {
		return nil, models.WrapInternal("failed to create org admin record", err)
	}

	if err := s.orgRepo.AddAdminUser(ctx, req.OrganizationID, account.ID); err != nil {
		return nil, models.WrapInternal("failed to add admin to organization", err)
	}

	dashboardURL := req.DashboardURL
	if dashboardURL == "" {
		dashboardURL = s.config.DashboardURL
	}

	result := &models.ProvisionAdminResult{
		Success:   true,
		UserID:    account.ID,
		EmailSent: true,
	}

	if err := s.mailer.SendCredentialsEmail(req.Email, req.Password, req.OrganizationName, dashboardURL); err != nil {
		// The account and records already exist and stay; report partial
		// success instead of failing the call.
		s.logger.Warnf("Admin %s provisioned but credentials email failed: %v", account.ID, err)
		result.EmailSent = false
		result.EmailError = err.Error()
		return result, nil
	}

	s.logger.Infof("Org admin provisioned: %s for organization %s", account.ID, req.OrganizationID)
	return result, nil
}
