package collections

import (
	"context"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// Repository persists one assignment collection per scope. A scope is a
// per-user namespace ("assignments_<userID>", or the anonymous scope when
// nobody is logged in).
type Repository interface {
	// Load returns the stored collection for scope. A missing or undecodable
	// collection loads as empty, never as an error: persistence problems must
	// not take the tracker down.
	Load(ctx context.Context, scope string) ([]models.Assignment, error)

	// Save replaces the stored collection for scope with list. now feeds the
	// snapshot fields written for external readers.
	Save(ctx context.Context, scope string, list []models.Assignment, now time.Time) error

	// Clear removes the stored collection for scope.
	Clear(ctx context.Context, scope string) error
}
