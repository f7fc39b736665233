package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tickl-backend/dal"
	"tickl-backend/models"
	"tickl-backend/utils/logger"

	"github.com/aws/smithy-go"
)

// Setup ensures the DynamoDB tables the service relies on exist.
type Setup struct {
	DBClient dal.DatabaseClientInterface
	Config   *models.Config
	Logger   logger.Logger
}

func NewSetup(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Setup {
	return &Setup{
		DBClient: db,
		Config:   cfg,
		Logger:   log,
	}
}

// EnsureTables creates every configured table that does not exist yet.
// Concurrent bootstraps racing on the same table are tolerated.
func (s *Setup) EnsureTables(ctx context.Context) error {
	for _, tableName := range s.Config.Tables {
		fullName := s.Config.DynamoDBTablePrefix + "_" + tableName
		exists, err := s.tableExists(ctx, fullName)
		if err != nil {
			return fmt.Errorf("failed to check table %s: %w", fullName, err)
		}
		if exists {
			s.Logger.Debugf("Table %s already exists", fullName)
			continue
		}

		input, err := GetTables(fullName)
		if err != nil {
			return fmt.Errorf("failed to resolve schema for %s: %w", fullName, err)
		}
		if err := s.DBClient.CreateTable(ctx, input); err != nil {
			if isTableInUseError(err) {
				s.Logger.Infof("Table %s is being created by another instance", fullName)
				continue
			}
			return fmt.Errorf("failed to create table %s: %w", fullName, err)
		}
		s.Logger.Infof("Created table %s", fullName)
	}
	return nil
}

func (s *Setup) tableExists(ctx context.Context, tableName string) (bool, error) {
	_, err := s.DBClient.DescribeTable(ctx, tableName)
	if err != nil {
		if isTableNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// isTableNotFoundError checks if error indicates table not found
func isTableNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceNotFoundException"
	}

	// Fallback to string matching for wrapped error types
	errorStr := err.Error()
	return strings.Contains(errorStr, "ResourceNotFoundException") ||
		strings.Contains(errorStr, "Requested resource not found")
}

// isTableInUseError checks if error indicates the table is already being created
func isTableInUseError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceInUseException"
	}
	return strings.Contains(err.Error(), "ResourceInUseException")
}
