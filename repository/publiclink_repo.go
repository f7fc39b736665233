package repository

import (
	"context"
	"time"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
)

// PublicLinkRepository implements PublicLinkRepositoryInterface
type PublicLinkRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewPublicLinkRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *PublicLinkRepository {
	return &PublicLinkRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *PublicLinkRepository) linksTable() string {
	return r.config.DynamoDBTablePrefix + "_public_links"
}

func (r *PublicLinkRepository) messagesTable() string {
	return r.config.DynamoDBTablePrefix + "_anonymous_messages"
}

func (r *PublicLinkRepository) CreateLink(ctx context.Context, link *models.PublicLink) error {
	link.CreatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.linksTable(), link); err != nil {
		r.logger.Errorf("Failed to create public link: %v", err)
		return err
	}

	r.logger.Infof("Public link created: %s for user %s", link.ID, link.UserID)
	return nil
}

// GetLink fetches a link. Returns (nil, nil) when absent.
func (r *PublicLinkRepository) GetLink(ctx context.Context, id string) (*models.PublicLink, error) {
	link := models.PublicLink{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.linksTable(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, &link)
	if err != nil {
		r.logger.Errorf("Failed to get public link %s: %v", id, err)
		return nil, err
	}

	if link.ID == "" {
		return nil, nil
	}

	return &link, nil
}

// GetLinkByUser looks a link up by its owner. Returns (nil, nil) when the
// user has no link yet.
func (r *PublicLinkRepository) GetLinkByUser(ctx context.Context, userID string) (*models.PublicLink, error) {
	link := models.PublicLink{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.linksTable(),
		IndexName: "user-index",
		KeyName:   "user_id",
		KeyValue:  userID,
		KeyType:   models.StringType,
	}, &link)
	if err != nil {
		r.logger.Errorf("Failed to get public link for user %s: %v", userID, err)
		return nil, err
	}

	if link.ID == "" {
		return nil, nil
	}

	return &link, nil
}

func (r *PublicLinkRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.AtomicIncrement(ctx, r.linksTable(), "id", id, "view_count", 1)
}

func (r *PublicLinkRepository) IncrementMessageCount(ctx context.Context, id string) error {
	return r.db.AtomicIncrement(ctx, r.linksTable(), "id", id, "message_count", 1)
}

// AddMessage appends an anonymous message. Messages are append-only; nothing
// in this backend deletes them.
func (r *PublicLinkRepository) AddMessage(ctx context.Context, msg *models.AnonymousMessage) error {
	msg.ID = utils.GenerateUUID()
	msg.CreatedAt = time.Now()
	msg.Read = false

	if err := r.db.PutItem(ctx, r.messagesTable(), msg); err != nil {
		r.logger.Errorf("Failed to store anonymous message: %v", err)
		return err
	}

	return nil
}

func (r *PublicLinkRepository) ListMessagesForRecipient(ctx context.Context, recipientID string) ([]*models.AnonymousMessage, error) {
	var messages []*models.AnonymousMessage
	err := r.db.QueryByIndex(ctx, r.messagesTable(), "recipient-index", "recipient_id", recipientID, &messages)
	if err != nil {
		r.logger.Errorf("Failed to list messages for %s: %v", recipientID, err)
		return nil, err
	}
	return messages, nil
}
