package models

import "time"

// Organization represents an organization in the system. Organizations are
// created out of band (an onboarding flow owns that); this backend mutates
// the approved flag and the adminUsers membership set.
type Organization struct {
	ID         string    `json:"id" dynamodbav:"id" validate:"omitempty,uuid4"`
	Name       string    `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Domain     string    `json:"domain" dynamodbav:"domain" validate:"required,fqdn"` // authoritative email suffix
	Approved   bool      `json:"approved" dynamodbav:"approved"`
	AdminUsers []string  `json:"admin_users,omitempty" dynamodbav:"admin_users,stringset,omitempty"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at" validate:"omitempty"`
	UpdatedAt  time.Time `json:"updated_at" dynamodbav:"updated_at" validate:"omitempty"`
	CreatedBy  string    `json:"created_by,omitempty" dynamodbav:"created_by,omitempty" validate:"omitempty"`
	UpdatedBy  string    `json:"updated_by,omitempty" dynamodbav:"updated_by,omitempty" validate:"omitempty"`
}

// SetApprovalRequest is the request body for the approval endpoint. Approved
// is interface{} on purpose: the stored value is always the strict boolean
// (approved == true), truthy junk coerces to false.
type SetApprovalRequest struct {
	OrganizationID string      `json:"organization_id" binding:"required"`
	Approved       interface{} `json:"approved"`
}

// ApprovalResult reports the outcome of the approval workflow. EmailSent is
// false both when no admin record exists for the organization and when the
// notification could not be delivered; neither case fails the call.
type ApprovalResult struct {
	Success   bool `json:"success"`
	Approved  bool `json:"approved"`
	EmailSent bool `json:"email_sent"`
}
