package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/unlimited-inventories/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", terminate
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requirePostgres(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func testPoolConfig(maxConns int) PoolConfig {
	return PoolConfig{
		ConnString:      testDBConnString,
		MaxConns:        maxConns,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: 5 * time.Minute,
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), PoolConfig{ConnString: "postgres://%zz", MaxConns: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestPool_MinConnsClampedToMax(t *testing.T) {
	requirePostgres(t)

	pool, err := NewPool(context.Background(), testPoolConfig(1))
	require.NoError(t, err)
	defer pool.Close()

	assert.Equal(t, int32(1), pool.Config().MaxConns)
	assert.Equal(t, int32(1), pool.Config().MinConns)
}

func TestMigrate_Postgres(t *testing.T) {
	requirePostgres(t)

	pool, err := NewPool(context.Background(), testPoolConfig(5))
	require.NoError(t, err)
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DialectPostgres))
	require.NoError(t, Migrate(ctx, db, DialectPostgres), "second run must be a no-op")

	_, err = pool.Exec(ctx, `INSERT INTO UnlimitedInventories (UserID, Name, Inventory) VALUES (1, 'a', '0,0,0')`)
	assert.NoError(t, err)
}

// TestPool_ConcurrentAccess checks connections and goroutines are released
func TestPool_ConcurrentAccess(t *testing.T) {
	requirePostgres(t)

	pool, err := NewPool(context.Background(), testPoolConfig(10))
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			queryOnce(t, pool, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
	checker.Check(2)
}

func queryOnce(t *testing.T, pool *pgxpool.Pool, id int) {
	ctx := context.Background()
	conn, err := pool.Acquire(ctx)
	if err != nil {
		t.Errorf("Worker %d failed to acquire connection: %v", id, err)
		return
	}
	defer conn.Release()

	var result int
	if err := conn.QueryRow(ctx, "SELECT $1::int", id).Scan(&result); err != nil {
		t.Errorf("Worker %d query failed: %v", id, err)
	}
}
