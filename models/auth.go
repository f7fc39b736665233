package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller identity attached to a request by the auth
// middleware. Workflows never look at the token themselves.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID   string     `json:"user_id"`
	Email    string     `json:"email"`
	Username string     `json:"username"`
	Status   UserStatus `json:"status"`

	jwt.RegisteredClaims
}

// Identity converts token claims into the caller identity.
func (c *JWTClaims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email}
}
