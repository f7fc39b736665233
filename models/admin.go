package models

import "time"

// OrgAdmin links an identity account to the organization it administers.
// Keyed by the account id; created exactly once per provisioned admin and
// never deleted by this backend.
type OrgAdmin struct {
	ID               string    `json:"id" dynamodbav:"id"` // account id
	Email            string    `json:"email" dynamodbav:"email"`
	OrganizationID   string    `json:"organization_id" dynamodbav:"organization_id"`
	OrganizationName string    `json:"organization_name" dynamodbav:"organization_name"`
	CreatedAt        time.Time `json:"created_at" dynamodbav:"created_at"`
}

// ProvisionAdminRequest is the request body for admin provisioning.
// @Description Create an identity account for a new organization admin and email the credentials
type ProvisionAdminRequest struct {
	Email            string `json:"email" binding:"required" validate:"required,email" example:"admin@acme.com"`
	Password         string `json:"password" binding:"required,min=8" validate:"required,min=8" example:"initialPassw0rd"`
	OrganizationID   string `json:"organization_id" binding:"required" validate:"required"`
	OrganizationName string `json:"organization_name" binding:"required" validate:"required"`
	DashboardURL     string `json:"dashboard_url,omitempty" validate:"omitempty,url"`
}

// ProvisionAdminResult reports the outcome of provisioning. EmailSent is
// false when every database side effect landed but the credentials email
// could not be delivered; nothing is rolled back in that case.
type ProvisionAdminResult struct {
	Success    bool   `json:"success"`
	UserID     string `json:"user_id"`
	EmailSent  bool   `json:"email_sent"`
	EmailError string `json:"email_error,omitempty"`
}
