package inventory

// Log messages
const (
	LogMsgCreatingInventory = "Creating new inventory"
	LogMsgUpdatingInventory = "Updating existing inventory"
	LogMsgDeletingInventory = "Deleting inventory"
	LogMsgLoadedInventory   = "Loaded inventory"
	LogMsgCacheLoaded       = "Snapshot cache loaded"
	LogMsgDuplicateRow      = "Duplicate snapshot row, keeping the later one"
)

// Error message prefixes
const (
	ErrMsgFailedToLoadRows   = "failed to load snapshot rows"
	ErrMsgFailedToDecodeRow  = "failed to decode snapshot"
	ErrMsgFailedToBuild      = "failed to build snapshot"
	ErrMsgFailedToApply      = "failed to apply snapshot"
	ErrMsgFailedToPersist    = "failed to persist snapshot"
	ErrMsgFailedToDeleteRows = "failed to delete snapshot"
)
