package db

import (
	"context"
	"fmt"
)

const kvMigration = `
CREATE TABLE IF NOT EXISTS kv_entries (
    entry_key text PRIMARY KEY,
    entry_value text NOT NULL,
    updated_at timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func RunMigrations(ctx context.Context, d *DB) error {
	if _, err := d.ExecContext(ctx, kvMigration); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}
