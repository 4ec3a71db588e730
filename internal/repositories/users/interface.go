package users

import (
	"context"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// Repository stores registered accounts in the local database.
type Repository interface {
	// Create inserts a new, unconfirmed user. Returns common.ErrUserExists
	// when the email is already registered.
	Create(ctx context.Context, u *models.User) error

	// GetByEmail returns common.ErrUserNotFound when no such account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns common.ErrUserNotFound when no such account exists.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Confirm marks the account as confirmed.
	Confirm(ctx context.Context, id string) error

	// UpdateCredentials replaces the salt and verifier after a password reset.
	UpdateCredentials(ctx context.Context, id string, salt, verifier []byte) error
}
