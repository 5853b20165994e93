package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/osse101/unlimited-inventories/internal/database"
)

// NewTestDB opens a migrated in-memory database that is closed when the test ends
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(context.Background(), db, database.DialectSQLite); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// NewTestRepository returns a SnapshotRepository over NewTestDB
func NewTestRepository(t testing.TB) *SnapshotRepository {
	t.Helper()
	return NewSnapshotRepository(NewTestDB(t))
}
