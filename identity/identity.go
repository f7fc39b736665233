package identity

import (
	"context"
	"errors"
	"tickl-backend/models"
)

// ErrAccountNotFound is the one acceptable negative outcome of an account
// lookup. Anything else a lookup returns is a transport or service failure
// and must be re-raised by callers, not treated as "no account".
var ErrAccountNotFound = errors.New("account not found")

// Provider is the minimal identity-service contract the workflows consume.
type Provider interface {
	// GetAccountByEmail returns the account for the email, or
	// ErrAccountNotFound when no such account exists.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)

	// CreateAccount creates a new account with the email unverified and the
	// account enabled, returning the stored account with its generated id.
	CreateAccount(ctx context.Context, email, password string) (*models.Account, error)
}
