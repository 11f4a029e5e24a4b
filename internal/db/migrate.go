package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/rkravchenko/bulletin-board/internal/db/migrations"
)

// RunMigrations brings the schema up to date from the migrations embedded in
// the binary. Goose tracks applied versions, so running it on every startup
// is idempotent.
func RunMigrations(ctx context.Context, pool *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, pool, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
