package collections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/dbx"
	"github.com/Hari20032005/assignment-nudge/internal/logging"
	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

func NewSQLiteRepository(db dbx.DBTX, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

func (r *SQLiteRepository) Load(ctx context.Context, scope string) ([]models.Assignment, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE scope = ?`, scope).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Assignment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", scope, err)
	}

	list, err := decode(data)
	if err != nil {
		// Corrupt rows load as an empty collection so the app still starts.
		r.log.Warn(ctx, "stored collection is undecodable, starting empty", "scope", scope, "err", err)
		return []models.Assignment{}, nil
	}
	return list, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, scope string, list []models.Assignment, now time.Time) error {
	data, err := encode(list, now)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", scope, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO collections (scope, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, scope, data, now.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", scope, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, scope string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE scope = ?`, scope)
	if err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", scope, err)
	}
	return nil
}
