package models

import "time"

// EmailVerification holds the one active domain-verification code for a
// user. Keyed by the requesting user's id: a new request fully replaces any
// prior record, so there is no multi-code history. A stale unverified record
// is never deleted, only superseded.
type EmailVerification struct {
	UserID         string    `json:"user_id" dynamodbav:"user_id"`
	Email          string    `json:"email" dynamodbav:"email"`
	OTP            string    `json:"-" dynamodbav:"otp"` // 4-digit numeric string
	OrganizationID string    `json:"organization_id" dynamodbav:"organization_id"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt      time.Time `json:"expires_at" dynamodbav:"expires_at"`
	Verified       bool      `json:"verified" dynamodbav:"verified"`
}

// Expired reports whether the code is past its validity window.
func (v *EmailVerification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// RequestVerificationRequest is the request body for issuing a code.
type RequestVerificationRequest struct {
	Email          string `json:"email" binding:"required" example:"bob@acme.com"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

// ConfirmVerificationRequest is the request body for checking a code.
type ConfirmVerificationRequest struct {
	OTP string `json:"otp" binding:"required" example:"4821"`
}
