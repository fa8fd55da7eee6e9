package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"onesat-market/internal/db"
)

// SQLStore persists entries in the kv_entries table. Both supported
// dialects understand ON CONFLICT upserts.
type SQLStore struct {
	db *db.DB

	getQuery string
	setQuery string
}

func NewSQLStore(d *db.DB) *SQLStore {
	return &SQLStore{
		db: d,
		getQuery: d.Rebind(`
			SELECT entry_value FROM kv_entries
			WHERE entry_key = ?
		`),
		setQuery: d.Rebind(`
			INSERT INTO kv_entries (entry_key, entry_value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (entry_key) DO UPDATE
			SET entry_value = excluded.entry_value,
			    updated_at = excluded.updated_at
		`),
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv: sql get: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.setQuery, key, string(value)); err != nil {
		return fmt.Errorf("kv: sql set: %w", err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
