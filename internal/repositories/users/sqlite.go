package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Hari20032005/assignment-nudge/internal/common"
	"github.com/Hari20032005/assignment-nudge/internal/dbx"
	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, salt, verifier, confirmed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, NormalizeEmail(u.Email), u.Name, u.Salt, u.Verifier, boolToInt(u.Confirmed))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	var confirmed int
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, salt, verifier, confirmed FROM users WHERE email = ?
	`, NormalizeEmail(email)).Scan(&u.ID, &u.Email, &u.Name, &u.Salt, &u.Verifier, &confirmed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	u.Confirmed = confirmed != 0
	return u, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u := &models.User{}
	var confirmed int
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, salt, verifier, confirmed FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.Name, &u.Salt, &u.Verifier, &confirmed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	u.Confirmed = confirmed != 0
	return u, nil
}

func (r *SQLiteRepository) Confirm(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET confirmed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to confirm user: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (r *SQLiteRepository) UpdateCredentials(ctx context.Context, id string, salt, verifier []byte) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET salt = ?, verifier = ? WHERE id = ?`, salt, verifier, id)
	if err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

// NormalizeEmail is the canonical form emails are stored and looked up
// under. Callers keying external state by email must use the same form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
