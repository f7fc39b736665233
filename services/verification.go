package services

import (
	"context"
	"strings"
	"time"

	"tickl-backend/mailer"
	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
)

// VerificationService issues and checks the short-lived numeric codes used
// to prove ownership of an email on an organization's registered domain.
//
// A user has at most one active code: every request overwrites the previous
// record. Concurrent requests for the same user race last-write-wins, which
// is acceptable because only the stored code can confirm.
type VerificationService struct {
	orgRepo   repository.OrganizationRepositoryInterface
	verifRepo repository.VerificationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	mailer    mailer.Sender
	config    *models.Config
	logger    logger.Logger
	now       func() time.Time
}

func NewVerificationService(
	orgRepo repository.OrganizationRepositoryInterface,
	verifRepo repository.VerificationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	sender mailer.Sender,
	cfg *models.Config,
	log logger.Logger,
) *VerificationService {
	return &VerificationService{
		orgRepo:   orgRepo,
		verifRepo: verifRepo,
		userRepo:  userRepo,
		mailer:    sender,
		config:    cfg,
		logger:    log,
		now:       time.Now,
	}
}

// RequestVerification generates a 4-digit code for the caller, stores it
// with a 15-minute expiry and emails it. The email's domain must equal the
// organization's registered domain; both sides are lowercased before the
// comparison so case never affects the outcome.
func (s *VerificationService) RequestVerification(ctx context.Context, caller models.Identity, email, organizationID string) error {
	if email == "" || organizationID == "" {
		return models.NewWorkflowError(models.KindInvalidArgument, "email and organization_id are required")
	}

	if !utils.IsValidEmail(email) {
		return models.NewWorkflowError(models.KindInvalidArgument, "invalid email format")
	}

	org, err := s.orgRepo.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return models.WrapInternal("failed to load organization", err)
	}
	if org == nil {
		return models.NewWorkflowError(models.KindNotFound, "organization not found")
	}

	if utils.EmailDomain(email) != strings.ToLower(org.Domain) {
		return models.NewWorkflowError(models.KindInvalidArgument, "email domain does not match organization domain")
	}

	now := s.now()
	record := &models.EmailVerification{
		UserID:         caller.UserID,
		Email:          email,
		OTP:            utils.GenerateOTP(),
		OrganizationID: organizationID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.config.OTPExpiry),
		Verified:       false,
	}

	if err := s.verifRepo.PutVerification(ctx, record); err != nil {
		return models.WrapInternal("failed to store verification record", err)
	}

	if err := s.mailer.SendVerificationEmail(email, record.OTP, org.Name); err != nil {
		// The stored code is not rolled back; the user can retry the request
		// and receive a fresh one.
		return models.WrapInternal("failed to send verification email", err)
	}

	s.logger.Infof("Verification code issued for user %s (org %s)", caller.UserID, organizationID)
	return nil
}

// ConfirmVerification checks the supplied code against the caller's stored
// record and, on success, marks it verified and copies the verified email
// onto the caller's profile. Returns the verified email address.
//
// The verified flag does not consume the code: confirming again with the
// same still-valid code succeeds again.
func (s *VerificationService) ConfirmVerification(ctx context.Context, caller models.Identity, otp string) (string, error) {
	if otp == "" {
		return "", models.NewWorkflowError(models.KindInvalidArgument, "otp is required")
	}

	record, err := s.verifRepo.GetVerification(ctx, caller.UserID)
	if err != nil {
		return "", models.WrapInternal("failed to load verification record", err)
	}
	if record == nil {
		return "", models.NewWorkflowError(models.KindNotFound, "no verification request found")
	}

	if record.Expired(s.now()) {
		return "", models.NewWorkflowError(models.KindDeadlineExceeded, "verification code has expired")
	}

	// Exact string match, no normalization.
	if record.OTP != otp {
		return "", models.NewWorkflowError(models.KindInvalidArgument, "incorrect verification code")
	}

	if err := s.verifRepo.MarkVerified(ctx, caller.UserID); err != nil {
		return "", models.WrapInternal("failed to mark verification", err)
	}

	if err := s.userRepo.SetVerifiedCompanyEmail(ctx, caller.UserID, record.Email); err != nil {
		return "", models.WrapInternal("failed to update user profile", err)
	}

	s.logger.Infof("Email verified for user %s: %s", caller.UserID, record.Email)
	return record.Email, nil
}
