package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/unlimited-inventories/internal/database"
	"github.com/osse101/unlimited-inventories/internal/database/sqlite"
	"github.com/osse101/unlimited-inventories/internal/domain"
)

func TestSnapshotRepository_InsertLoad(t *testing.T) {
	repo := sqlite.NewTestRepository(t)
	ctx := context.Background()

	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "pvp", Inventory: "1,1,0"}))
	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "build", Inventory: "0,0,0"}))
	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 9, Name: "pvp", Inventory: "98,1,17"}))

	rows, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SnapshotRow{
		{UserID: 7, Name: "pvp", Inventory: "1,1,0"},
		{UserID: 7, Name: "build", Inventory: "0,0,0"},
		{UserID: 9, Name: "pvp", Inventory: "98,1,17"},
	}, rows)
}

func TestSnapshotRepository_Update(t *testing.T) {
	repo := sqlite.NewTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "pvp", Inventory: "1,1,0"}))
	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 9, Name: "pvp", Inventory: "1,1,0"}))

	require.NoError(t, repo.UpdateSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "pvp", Inventory: "188,30,0"}))

	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SnapshotRow{
		{UserID: 7, Name: "pvp", Inventory: "188,30,0"},
		{UserID: 9, Name: "pvp", Inventory: "1,1,0"},
	}, rows)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	repo := sqlite.NewTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "pvp", Inventory: "1,1,0"}))
	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "PvP", Inventory: "2,1,0"}))

	// unknown names are a no-op
	require.NoError(t, repo.DeleteSnapshot(ctx, 7, "missing"))
	require.NoError(t, repo.DeleteSnapshot(ctx, 7, "pvp"))

	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SnapshotRow{{UserID: 7, Name: "PvP", Inventory: "2,1,0"}}, rows)
}

func TestSnapshotRepository_DuplicateRowsSurvive(t *testing.T) {
	repo := sqlite.NewTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "pvp", Inventory: "1,1,0"}))
	require.NoError(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 7, Name: "pvp", Inventory: "2,1,0"}))

	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2,1,0", rows[1].Inventory)

	require.NoError(t, repo.DeleteSnapshot(ctx, 7, "pvp"))
	rows, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSnapshotRepository_FilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventories.db")
	ctx := context.Background()

	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db, database.DialectSQLite))
	require.NoError(t, sqlite.NewSnapshotRepository(db).InsertSnapshot(ctx, domain.SnapshotRow{UserID: 3, Name: "boss", Inventory: "4956,1,81"}))
	require.NoError(t, db.Close())

	db, err = database.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(ctx, db, database.DialectSQLite))

	repo := sqlite.NewSnapshotRepository(db)
	require.NoError(t, repo.Ping(ctx))
	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SnapshotRow{{UserID: 3, Name: "boss", Inventory: "4956,1,81"}}, rows)
}

func TestSnapshotRepository_ClosedDatabase(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db, database.DialectSQLite))
	require.NoError(t, db.Close())

	repo := sqlite.NewSnapshotRepository(db)
	ctx := context.Background()

	_, err = repo.LoadAll(ctx)
	assert.Error(t, err)
	assert.Error(t, repo.InsertSnapshot(ctx, domain.SnapshotRow{UserID: 1, Name: "x", Inventory: "0,0,0"}))
	assert.Error(t, repo.UpdateSnapshot(ctx, domain.SnapshotRow{UserID: 1, Name: "x", Inventory: "0,0,0"}))
	assert.Error(t, repo.DeleteSnapshot(ctx, 1, "x"))
	assert.Error(t, repo.Ping(ctx))
}
