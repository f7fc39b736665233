package services

import (
	"context"

	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
)

// PublicLinkService mints public links on profile completion and handles
// anonymous message submission against them.
type PublicLinkService struct {
	linkRepo repository.PublicLinkRepositoryInterface
	userRepo repository.UserRepositoryInterface
	logger   logger.Logger
}

func NewPublicLinkService(
	linkRepo repository.PublicLinkRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	log logger.Logger,
) *PublicLinkService {
	return &PublicLinkService{
		linkRepo: linkRepo,
		userRepo: userRepo,
		logger:   log,
	}
}

// EnsurePublicLink mints a link on the profile-completed transition. The
// compound guard (completed now, not completed before, no link id on the
// profile, no existing link row) makes replayed or out-of-order deliveries
// of the same update a no-op, so at most one link exists per user. Returns
// the link id and whether one was created by this call.
func (s *PublicLinkService) EnsurePublicLink(ctx context.Context, before, after *models.User) (string, bool, error) {
	if after == nil || !after.ProfileCompleted {
		return "", false, nil
	}
	if before != nil && before.ProfileCompleted {
		return "", false, nil
	}
	if after.PublicLinkID != "" {
		return after.PublicLinkID, false, nil
	}

	existing, err := s.linkRepo.GetLinkByUser(ctx, after.ID)
	if err != nil {
		return "", false, models.WrapInternal("failed to check existing link", err)
	}
	if existing != nil {
		// A link row without a matching profile pointer means an earlier
		// attempt stopped between CreateLink and SetPublicLink. Repair the
		// profile instead of minting a second link.
		if err := s.userRepo.SetPublicLink(ctx, after.ID, existing.ID); err != nil {
			return "", false, models.WrapInternal("failed to update profile with link", err)
		}
		s.logger.Infof("Public link %s reattached to user %s", existing.ID, after.ID)
		return existing.ID, false, nil
	}

	link := &models.PublicLink{
		ID:       utils.GeneratePublicLinkID(),
		UserID:   after.ID,
		IsActive: true,
	}

	if err := s.linkRepo.CreateLink(ctx, link); err != nil {
		return "", false, models.WrapInternal("failed to create public link", err)
	}

	if err := s.userRepo.SetPublicLink(ctx, after.ID, link.ID); err != nil {
		return "", false, models.WrapInternal("failed to update profile with link", err)
	}

	s.logger.Infof("Public link %s minted for user %s", link.ID, after.ID)
	return link.ID, true, nil
}

// SubmitAnonymousMessage appends a message to the link owner's inbox and
// bumps the link's message counter. Anyone holding a valid link id may
// submit; there is no rate limiting or sender verification.
func (s *PublicLinkService) SubmitAnonymousMessage(ctx context.Context, linkID, message, senderName, requesterIP string) error {
	if linkID == "" || message == "" || senderName == "" {
		return models.NewWorkflowError(models.KindInvalidArgument, "link_id, message and sender_name are required")
	}

	link, err := s.linkRepo.GetLink(ctx, linkID)
	if err != nil {
		return models.WrapInternal("failed to load public link", err)
	}
	if link == nil {
		return models.NewWorkflowError(models.KindNotFound, "link not found")
	}

	owner, err := s.userRepo.GetUserByID(ctx, link.UserID)
	if err != nil {
		return models.WrapInternal("failed to load link owner", err)
	}
	if owner == nil {
		return models.NewWorkflowError(models.KindNotFound, "link owner not found")
	}

	if !link.IsActive {
		return models.NewWorkflowError(models.KindFailedPrecondition, "this link is no longer accepting messages")
	}

	msg := &models.AnonymousMessage{
		RecipientID: link.UserID,
		SenderName:  senderName,
		Message:     message,
		LinkID:      linkID,
		IPAddress:   requesterIP,
	}
	if err := s.linkRepo.AddMessage(ctx, msg); err != nil {
		return models.WrapInternal("failed to store message", err)
	}

	// Server-side increment; concurrent submissions must not lose counts.
	if err := s.linkRepo.IncrementMessageCount(ctx, linkID); err != nil {
		return models.WrapInternal("failed to update message count", err)
	}

	return nil
}

// ViewPublicLink resolves a link for an anonymous visitor and counts the view.
func (s *PublicLinkService) ViewPublicLink(ctx context.Context, linkID string) (*models.PublicLinkView, error) {
	if linkID == "" {
		return nil, models.NewWorkflowError(models.KindInvalidArgument, "link_id is required")
	}

	link, err := s.linkRepo.GetLink(ctx, linkID)
	if err != nil {
		return nil, models.WrapInternal("failed to load public link", err)
	}
	if link == nil {
		return nil, models.NewWorkflowError(models.KindNotFound, "link not found")
	}

	if !link.IsActive {
		return nil, models.NewWorkflowError(models.KindFailedPrecondition, "this link is not active")
	}

	owner, err := s.userRepo.GetUserByID(ctx, link.UserID)
	if err != nil {
		return nil, models.WrapInternal("failed to load link owner", err)
	}
	if owner == nil {
		return nil, models.NewWorkflowError(models.KindNotFound, "link owner not found")
	}

	if err := s.linkRepo.IncrementViewCount(ctx, linkID); err != nil {
		return nil, models.WrapInternal("failed to update view count", err)
	}

	return &models.PublicLinkView{
		LinkID:    linkID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Username:  owner.Username,
	}, nil
}

// ListMessages returns the messages submitted to a user's inbox.
func (s *PublicLinkService) ListMessages(ctx context.Context, recipientID string) ([]*models.AnonymousMessage, error) {
	messages, err := s.linkRepo.ListMessagesForRecipient(ctx, recipientID)
	if err != nil {
		return nil, models.WrapInternal("failed to list messages", err)
	}
	return messages, nil
}
