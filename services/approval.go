package services

import (
	"context"

	"tickl-backend/mailer"
	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/utils/logger"
)

// ApprovalService toggles an organization's approved flag and notifies its
// admin on approval.
type ApprovalService struct {
	guard        AuthorizationGuardInterface
	orgRepo      repository.OrganizationRepositoryInterface
	orgAdminRepo repository.OrgAdminRepositoryInterface
	mailer       mailer.Sender
	config       *models.Config
	logger       logger.Logger
}

func NewApprovalService(
	guard AuthorizationGuardInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	orgAdminRepo repository.OrgAdminRepositoryInterface,
	sender mailer.Sender,
	cfg *models.Config,
	log logger.Logger,
) *ApprovalService {
	return &ApprovalService{
		guard:        guard,
		orgRepo:      orgRepo,
		orgAdminRepo: orgAdminRepo,
		mailer:       sender,
		config:       cfg,
		logger:       log,
	}
}

// SetApproval writes the strict boolean approval flag. On approval it emails
// the first org-admin record found for the organization; selection among
// multiple admins is arbitrary, and having none is silently tolerated.
func (s *ApprovalService) SetApproval(ctx context.Context, caller models.Identity, organizationID string, approved interface{}) (*models.ApprovalResult, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return nil, err
	}

	if organizationID == "" {
		return nil, models.NewWorkflowError(models.KindInvalidArgument, "organization_id is required")
	}

	// Non-boolean truthy inputs coerce to false: only the JSON literal true
	// approves.
	approvedBool := approved == true

	org, err := s.orgRepo.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, models.WrapInternal("failed to load organization", err)
	}
	if org == nil {
		return nil, models.NewWorkflowError(models.KindNotFound, "organization not found")
	}

	if err := s.orgRepo.SetApproved(ctx, organizationID, approvedBool, caller.UserID); err != nil {
		return nil, models.WrapInternal("failed to update organization", err)
	}

	result := &models.ApprovalResult{
		Success:  true,
		Approved: approvedBool,
	}

	if !approvedBool {
		return result, nil
	}

	admins, err := s.orgAdminRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, models.WrapInternal("failed to look up organization admins", err)
	}
	if len(admins) == 0 {
		s.logger.Infof("Organization %s approved, no admin record to notify", organizationID)
		return result, nil
	}

	if err := s.mailer.SendApprovalEmail(admins[0].Email, org.Name, s.config.DashboardURL); err != nil {
		// The approval is already committed; report it without the email.
		s.logger.Warnf("Organization %s approved but notification failed: %v", organizationID, err)
		return result, nil
	}

	result.EmailSent = true
	s.logger.Infof("Organization %s approved, admin %s notified", organizationID, admins[0].Email)
	return result, nil
}
