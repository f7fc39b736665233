package repository

import (
	"context"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils/logger"
)

// VerificationRepository implements VerificationRepositoryInterface
type VerificationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewVerificationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *VerificationRepository {
	return &VerificationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *VerificationRepository) table() string {
	return r.config.DynamoDBTablePrefix + "_email_verifications"
}

// PutVerification stores the record keyed by user id. A put fully replaces
// any prior record for that user: one active code per user, no history.
func (r *VerificationRepository) PutVerification(ctx context.Context, v *models.EmailVerification) error {
	if err := r.db.PutItem(ctx, r.table(), v); err != nil {
		r.logger.Errorf("Failed to store verification for %s: %v", v.UserID, err)
		return err
	}
	return nil
}

// GetVerification fetches the user's record. Returns (nil, nil) when absent.
func (r *VerificationRepository) GetVerification(ctx context.Context, userID string) (*models.EmailVerification, error) {
	v := models.EmailVerification{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "user_id",
		KeyValue:  userID,
		KeyType:   models.StringType,
	}, &v)
	if err != nil {
		r.logger.Errorf("Failed to get verification for %s: %v", userID, err)
		return nil, err
	}

	if v.UserID == "" {
		return nil, nil
	}

	return &v, nil
}

// MarkVerified flips the verified flag. The record is never deleted.
func (r *VerificationRepository) MarkVerified(ctx context.Context, userID string) error {
	return r.db.UpdateItem(ctx, r.table(), "user_id", userID, map[string]interface{}{
		"verified": true,
	})
}
