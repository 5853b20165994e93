package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_Memory(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM UnlimitedInventories`).Scan(&count))
	assert.Zero(t, count)
}

func TestOpenSQLite_FilePragmas(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, SQLiteBusyTimeoutMillis, timeout)
}

func TestMigrate_SQLiteIdempotent(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	require.NoError(t, Migrate(ctx, db, DialectSQLite))
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToMigrate)
}
