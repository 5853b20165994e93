package inventory

// Allowed reports whether a player holding current snapshots may add a new
// name under limit. Overwrites and deletes never consult it.
func Allowed(current, limit int, bypass bool) bool {
	return current < limit || bypass
}
