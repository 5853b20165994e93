package domain

// Settings defaults
const (
	DefaultInventoryLimit   = 5
	DefaultBypassPermission = "ui.bypass"
)

// Permissions
const (
	// PermissionRoot gates the inventory command itself
	PermissionRoot = "ui.root"
)

// Persistent table layout
const (
	TableUnlimitedInventories = "UnlimitedInventories"
	ColumnUserID              = "UserID"
	ColumnName                = "Name"
	ColumnInventory           = "Inventory"
)
