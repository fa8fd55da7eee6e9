package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	pg := &DB{Dialect: Postgres}
	require.Equal(t,
		"INSERT INTO kv_entries (entry_key, entry_value) VALUES ($1, $2)",
		pg.Rebind("INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?)"),
	)

	lite := &DB{Dialect: SQLite}
	require.Equal(t, "SELECT entry_value FROM kv_entries WHERE entry_key = ?",
		lite.Rebind("SELECT entry_value FROM kv_entries WHERE entry_key = ?"))
}

func TestOpenSQLiteMigrates(t *testing.T) {
	ctx := context.Background()

	d, err := Open(ctx, SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	var n int
	err = d.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_entries`).Scan(&n)
	require.NoError(t, err)
	require.Zero(t, n)

	// migrations are idempotent
	require.NoError(t, RunMigrations(ctx, d))
}

func TestOpenRejectsUnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), Dialect("mysql"), "dsn")
	require.Error(t, err)
}
