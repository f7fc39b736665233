package repository

import (
	"context"
	"fmt"
	"time"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils/logger"
)

// OrganizationRepository implements OrganizationRepositoryInterface
type OrganizationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewOrganizationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *OrganizationRepository) table() string {
	return r.config.DynamoDBTablePrefix + "_organizations"
}

// GetOrganizationByID fetches an organization. Returns (nil, nil) when the
// organization does not exist; a non-nil error is a store failure.
func (r *OrganizationRepository) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	organization := models.Organization{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, &organization)
	if err != nil {
		r.logger.Errorf("Failed to get organization %s: %v", id, err)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if organization.ID == "" {
		return nil, nil
	}

	return &organization, nil
}

// SetApproved writes the approved flag and audit fields.
func (r *OrganizationRepository) SetApproved(ctx context.Context, id string, approved bool, updatedBy string) error {
	err := r.db.UpdateItem(ctx, r.table(), "id", id, map[string]interface{}{
		"approved":   approved,
		"updated_at": time.Now(),
		"updated_by": updatedBy,
	})
	if err != nil {
		r.logger.Errorf("Failed to set approval on organization %s: %v", id, err)
		return err
	}

	r.logger.Infof("Organization %s approved=%t", id, approved)
	return nil
}

// AddAdminUser adds the account id to the organization's adminUsers set.
// Set semantics: re-adding an existing member changes nothing.
func (r *OrganizationRepository) AddAdminUser(ctx context.Context, id, accountID string) error {
	return r.db.AddToStringSet(ctx, r.table(), "id", id, "admin_users", accountID)
}
