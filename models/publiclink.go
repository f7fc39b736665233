package models

import "time"

// PublicLink is the anonymous-messaging entry point for one user. Minted
// exactly once, on the profile-completed transition; the id is a 10-character
// alphanumeric string, unguessable by brute enumeration.
type PublicLink struct {
	ID           string    `json:"id" dynamodbav:"id"`
	UserID       string    `json:"user_id" dynamodbav:"user_id"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
	IsActive     bool      `json:"is_active" dynamodbav:"is_active"`
	ViewCount    int64     `json:"view_count" dynamodbav:"view_count"`
	MessageCount int64     `json:"message_count" dynamodbav:"message_count"`
}

// AnonymousMessage is an append-only message submitted through a public link.
type AnonymousMessage struct {
	ID          string    `json:"id" dynamodbav:"id"`
	RecipientID string    `json:"recipient_id" dynamodbav:"recipient_id"`
	SenderName  string    `json:"sender_name" dynamodbav:"sender_name"`
	Message     string    `json:"message" dynamodbav:"message"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
	Read        bool      `json:"read" dynamodbav:"read"`
	LinkID      string    `json:"link_id" dynamodbav:"link_id"`
	IPAddress   string    `json:"ip_address,omitempty" dynamodbav:"ip_address,omitempty"`
}

// SubmitMessageRequest is the request body for anonymous submissions.
type SubmitMessageRequest struct {
	Message    string `json:"message" binding:"required" example:"great talk today"`
	SenderName string `json:"sender_name" binding:"required" example:"a colleague"`
}

// PublicLinkView is what an anonymous visitor sees when resolving a link.
type PublicLinkView struct {
	LinkID    string `json:"link_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}
