package identity

import (
	"context"
	"time"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
)

// DynamoProvider is the identity Provider backed by the accounts table.
type DynamoProvider struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewDynamoProvider creates a new DynamoDB-backed identity provider
func NewDynamoProvider(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *DynamoProvider {
	return &DynamoProvider{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (p *DynamoProvider) table() string {
	return p.config.DynamoDBTablePrefix + "_accounts"
}

// GetAccountByEmail looks an account up through the email GSI.
func (p *DynamoProvider) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := models.Account{}
	err := p.db.GetItem(ctx, models.QueryConfig{
		TableName: p.table(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
		KeyType:   models.StringType,
	}, &account)
	if err != nil {
		p.logger.Errorf("Failed to look up account by email: %v", err)
		return nil, err
	}

	if account.ID == "" {
		return nil, ErrAccountNotFound
	}

	return &account, nil
}

// CreateAccount stores a new enabled account with an unverified email.
func (p *DynamoProvider) CreateAccount(ctx context.Context, email, password string) (*models.Account, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:            utils.GenerateUUID(),
		Email:         email,
		PasswordHash:  hash,
		EmailVerified: false,
		Disabled:      false,
		CreatedAt:     time.Now(),
	}

	if err := p.db.PutItem(ctx, p.table(), account); err != nil {
		p.logger.Errorf("Failed to create account: %v", err)
		return nil, err
	}

	p.logger.Infof("Account created successfully: %s", account.ID)
	return account, nil
}
