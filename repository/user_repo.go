package repository

import (
	"context"
	"errors"
	"time"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
)

// UserRepository implements UserRepositoryInterface
type UserRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *UserRepository) table() string {
	return r.config.DynamoDBTablePrefix + "_users"
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, errors.New("user with this email already exists")
	}

	now := time.Now()
	user.ID = utils.GenerateUUID()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Status = models.UserStatusActive

	if err := r.db.PutItem(ctx, r.table(), user); err != nil {
		r.logger.Errorf("Failed to create user: %v", err)
		return nil, err
	}

	r.logger.Infof("User created successfully: %s", user.ID)
	return user, nil
}

// GetUserByID fetches a user profile. Returns (nil, nil) when absent.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := models.User{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, &user)
	if err != nil {
		r.logger.Errorf("Failed to get user %s: %v", id, err)
		return nil, err
	}

	if user.ID == "" {
		return nil, nil
	}

	return &user, nil
}

// GetUserByEmail looks a user up through the email GSI. Returns (nil, nil)
// when absent.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
		KeyType:   models.StringType,
	}, &user)
	if err != nil {
		r.logger.Errorf("Failed to get user by email: %v", err)
		return nil, err
	}

	if user.ID == "" {
		return nil, nil
	}

	return &user, nil
}

// UpdateUser applies the given partial field updates.
func (r *UserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.table(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update user %s: %v", id, err)
		return err
	}
	return nil
}

// SetVerifiedCompanyEmail copies the verified email onto the profile.
func (r *UserRepository) SetVerifiedCompanyEmail(ctx context.Context, id, email string) error {
	return r.UpdateUser(ctx, id, map[string]interface{}{
		"company_email":          email,
		"company_email_verified": true,
	})
}

// SetPublicLink records the minted link id on the profile and enables the
// public profile.
func (r *UserRepository) SetPublicLink(ctx context.Context, id, linkID string) error {
	return r.UpdateUser(ctx, id, map[string]interface{}{
		"public_link_id":         linkID,
		"public_profile_enabled": true,
	})
}

// ListUsers scans the whole users table. Used by the reconciler only.
func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.Scan(ctx, r.table(), &users); err != nil {
		r.logger.Errorf("Failed to scan users: %v", err)
		return nil, err
	}
	return users, nil
}
