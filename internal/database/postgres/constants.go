package postgres

// Snapshot table statements. Identifiers are left unquoted so Postgres folds
// them to lower case consistently. The select has no insertion order to sort
// by, so duplicate (UserID, Name) rows come back in scan order.
const (
	querySelectSnapshots = `SELECT UserID, Name, Inventory FROM UnlimitedInventories`
	queryInsertSnapshot  = `INSERT INTO UnlimitedInventories (UserID, Name, Inventory) VALUES ($1, $2, $3)`
	queryUpdateSnapshot  = `UPDATE UnlimitedInventories SET Inventory = $3 WHERE UserID = $1 AND Name = $2`
	queryDeleteSnapshot  = `DELETE FROM UnlimitedInventories WHERE UserID = $1 AND Name = $2`
)

// Error Messages - Snapshot Operations
const (
	ErrMsgFailedToLoadSnapshots  = "failed to load snapshots"
	ErrMsgFailedToScanSnapshot   = "failed to scan snapshot row"
	ErrMsgFailedToInsertSnapshot = "failed to insert snapshot"
	ErrMsgFailedToUpdateSnapshot = "failed to update snapshot"
	ErrMsgFailedToDeleteSnapshot = "failed to delete snapshot"
)
