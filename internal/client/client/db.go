package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/crystalpad/internal/client/migrations"
	"github.com/dmitrijs2005/crystalpad/internal/client/repositories/notes"
	"github.com/dmitrijs2005/crystalpad/internal/client/repositories/settings"
	"github.com/dmitrijs2005/crystalpad/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

type Repositories struct {
	Notes    notes.Repository
	Settings settings.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Notes:    notes.NewSQLiteRepository(db),
		Settings: settings.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (or creates) the SQLite database at dsn and migrates it.
// Missing parent directories are created. The pool is pinned to one
// connection so ":memory:" databases stay visible to every query.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
