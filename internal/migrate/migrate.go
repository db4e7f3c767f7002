// Package migrate wraps the goose provider so the API server and the CLI
// share one way of applying the embedded schema migrations.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/farmart-ke/farmart-backend/migrations"
)

type Runner struct {
	db       *sql.DB
	provider *goose.Provider
}

func NewRunner(db *sql.DB) (*Runner, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return &Runner{db: db, provider: provider}, nil
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context) error {
	results, err := r.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		log.Printf("applied migration %s", res.Source.Path)
	}
	if len(results) == 0 {
		log.Println("database schema is up to date")
	}
	return nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down(ctx context.Context) error {
	res, err := r.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}
	log.Printf("rolled back migration %s", res.Source.Path)
	return nil
}

// DownTo rolls the schema back to the given version. Version 0 removes
// everything.
func (r *Runner) DownTo(ctx context.Context, version int64) error {
	results, err := r.provider.DownTo(ctx, version)
	if err != nil {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	for _, res := range results {
		log.Printf("rolled back migration %s", res.Source.Path)
	}
	return nil
}

// Status prints one line per known migration with its applied time.
func (r *Runner) Status(ctx context.Context) error {
	statuses, err := r.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}

	fmt.Println("    Applied At                  Migration")
	fmt.Println("    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if !s.AppliedAt.IsZero() {
			appliedAt = s.AppliedAt.Format(time.ANSIC)
		}
		fmt.Printf("    %-24s -- %s\n", appliedAt, s.Source.Path)
	}
	return nil
}

// Version returns the current schema version.
func (r *Runner) Version(ctx context.Context) (int64, error) {
	return r.provider.GetDBVersion(ctx)
}

// Reset drops the public schema outright and rebuilds it from the
// migrations. Everything goes, including the goose bookkeeping table, so
// the rebuild always starts from zero.
func (r *Runner) Reset(ctx context.Context) error {
	fmt.Println("💥 Dropping all tables...")
	if _, err := r.db.ExecContext(ctx, "DROP SCHEMA public CASCADE"); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, "CREATE SCHEMA public"); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}
	fmt.Println("✅ All tables dropped.")

	fmt.Println("🔨 Recreating tables from migrations...")
	if err := r.Up(ctx); err != nil {
		return err
	}
	fmt.Println("✅ All tables created.")
	return nil
}
