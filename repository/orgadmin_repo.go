package repository

import (
	"context"
	"time"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils/logger"
)

// OrgAdminRepository implements OrgAdminRepositoryInterface
type OrgAdminRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewOrgAdminRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OrgAdminRepository {
	return &OrgAdminRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *OrgAdminRepository) table() string {
	return r.config.DynamoDBTablePrefix + "_org_admins"
}

// CreateOrgAdmin stores the membership record, keyed by the account id.
func (r *OrgAdminRepository) CreateOrgAdmin(ctx context.Context, admin *models.OrgAdmin) error {
	admin.CreatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.table(), admin); err != nil {
		r.logger.Errorf("Failed to create org admin record: %v", err)
		return err
	}

	r.logger.Infof("Org admin record created: %s -> %s", admin.ID, admin.OrganizationID)
	return nil
}

// GetOrgAdminByEmail looks a membership record up through the email GSI.
// Returns (nil, nil) when none exists.
func (r *OrgAdminRepository) GetOrgAdminByEmail(ctx context.Context, email string) (*models.OrgAdmin, error) {
	admin := models.OrgAdmin{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
		KeyType:   models.StringType,
	}, &admin)
	if err != nil {
		r.logger.Errorf("Failed to get org admin by email: %v", err)
		return nil, err
	}

	if admin.ID == "" {
		return nil, nil
	}

	return &admin, nil
}

// FindByOrganization lists admin records for an organization. Order is
// whatever the index returns; callers that pick "the" admin pick the first.
func (r *OrgAdminRepository) FindByOrganization(ctx context.Context, organizationID string) ([]*models.OrgAdmin, error) {
	var admins []*models.OrgAdmin
	err := r.db.QueryByIndex(ctx, r.table(), "organization-index", "organization_id", organizationID, &admins)
	if err != nil {
		r.logger.Errorf("Failed to list org admins for %s: %v", organizationID, err)
		return nil, err
	}
	return admins, nil
}
