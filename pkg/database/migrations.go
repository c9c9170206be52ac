package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// migrations/0001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// One live (non-terminated) agent per account.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agents_account_id_live
		ON agents (account_id)
		WHERE terminated_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create live-agent unique index: %w", err)
	}

	return nil
}
