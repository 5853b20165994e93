package config

// Storage backends
const (
	StorageTypePostgres = "postgres"
	StorageTypeSQLite   = "sqlite"
)

// File paths
const (
	// DefaultSettingsPath matches the file name the game server plugin used
	DefaultSettingsPath = "unlimitedinventoriesconfig.json"
	DefaultSQLitePath   = "unlimited_inventories.sqlite"
)

// File permissions
const (
	SettingsFileMode = 0644
)
