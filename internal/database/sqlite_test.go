package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "binder.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'binder_documents'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "binder_documents", name)
}

func TestOpenSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "binder.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO binder_documents (id, version, document, updated_at) VALUES ('default', 1, '{}', 'now')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM binder_documents`).Scan(&count))
	assert.Equal(t, 1, count)
}
