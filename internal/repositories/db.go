// Package repositories wires the local SQLite database: it runs migrations
// and hands out the per-table repository implementations.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/Hari20032005/assignment-nudge/internal/logging"
	"github.com/Hari20032005/assignment-nudge/internal/migrations"
	"github.com/Hari20032005/assignment-nudge/internal/repositories/collections"
	"github.com/Hari20032005/assignment-nudge/internal/repositories/metadata"
	"github.com/Hari20032005/assignment-nudge/internal/repositories/users"
)

// Repositories bundles every repository backed by the shared database handle.
type Repositories struct {
	Collections collections.Repository
	Users       users.Repository
	Metadata    metadata.Repository
	DB          *sql.DB
}

// RunMigrations applies all embedded migrations. Safe to call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (and if needed creates) the database at dsn, migrates
// it, and returns the repository set.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Collections: collections.NewSQLiteRepository(db, log),
		Users:       users.NewSQLiteRepository(db),
		Metadata:    metadata.NewSQLiteRepository(db),
		DB:          db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
