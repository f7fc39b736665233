package models

import "time"

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents a user profile in the system
type User struct {
	ID                   string     `json:"id" dynamodbav:"id"`
	Email                string     `json:"email" dynamodbav:"email"`
	Username             string     `json:"username" dynamodbav:"username"`
	PasswordHash         string     `json:"-" dynamodbav:"password_hash"`
	FirstName            string     `json:"first_name" dynamodbav:"first_name"`
	LastName             string     `json:"last_name" dynamodbav:"last_name"`
	Status               UserStatus `json:"status" dynamodbav:"status"`
	ProfileCompleted     bool       `json:"profile_completed" dynamodbav:"profile_completed"`
	PublicLinkID         string     `json:"public_link_id,omitempty" dynamodbav:"public_link_id,omitempty"`
	PublicProfileEnabled bool       `json:"public_profile_enabled" dynamodbav:"public_profile_enabled"`
	CompanyEmail         string     `json:"company_email,omitempty" dynamodbav:"company_email,omitempty"`
	CompanyEmailVerified bool       `json:"company_email_verified" dynamodbav:"company_email_verified"`
	CreatedAt            time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// RegisterUser represents the request structure for user registration
// @Description User registration request with account details
type RegisterUser struct {
	Email     string `json:"email" binding:"required,email" example:"user@example.com"`
	Username  string `json:"username" binding:"required" example:"john_doe"`
	Password  string `json:"password" binding:"required,min=8" example:"securePassword123"`
	FirstName string `json:"first_name" binding:"required" example:"John"`
	LastName  string `json:"last_name" binding:"required" example:"Doe"`
}

// LoginUser represents the request structure for user login
type LoginUser struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"securePassword123"`
}

// UpdateProfileRequest is the request body for profile updates. Only the
// fields a user may set themselves; public link fields are trigger-owned.
type UpdateProfileRequest struct {
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Username         string `json:"username,omitempty"`
	ProfileCompleted *bool  `json:"profile_completed,omitempty"`
}
