package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "ENVIRONMENT", "VERSION",
	"STORAGE_TYPE", "SQLITE_PATH", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "SETTINGS_PATH", "TRUSTED_PROXIES",
}

// clearEnvVars unsets every variable Load reads; t.Setenv restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, StorageTypePostgres, cfg.StorageType)
		assert.Equal(t, DefaultSettingsPath, cfg.SettingsPath)
		assert.Equal(t, DefaultSQLitePath, cfg.SQLitePath)
		assert.Equal(t, 10, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("STORAGE_TYPE", "sqlite")
		t.Setenv("SQLITE_PATH", "/var/lib/tshock.sqlite")
		t.Setenv("DB_MAX_CONN_LIFETIME", "30m")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, StorageTypeSQLite, cfg.StorageType)
		assert.Equal(t, "/var/lib/tshock.sqlite", cfg.SQLitePath)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("requires API key", func(t *testing.T) {
		clearEnvVars(t)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "APIKey")
	})

	t.Run("rejects unknown storage type", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORAGE_TYPE", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "StorageType")
	})

	t.Run("rejects non-numeric port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("PORT", "eighty")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "pass",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "inv",
	}
	assert.Equal(t, "postgres://user:pass@db:5432/inv?sslmode=disable", cfg.GetDBConnString())
}
