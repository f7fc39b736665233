package models

import "time"

// Account is a record in the identity service. Admin provisioning creates
// accounts with the email unverified and the account enabled.
type Account struct {
	ID            string    `json:"id" dynamodbav:"id"`
	Email         string    `json:"email" dynamodbav:"email"`
	PasswordHash  string    `json:"-" dynamodbav:"password_hash"`
	EmailVerified bool      `json:"email_verified" dynamodbav:"email_verified"`
	Disabled      bool      `json:"disabled" dynamodbav:"disabled"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
}
