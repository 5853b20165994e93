package command

// Name is the chat command the handler answers to
const Name = "inventory"

// DefaultSpecifier prefixes commands in help text
const DefaultSpecifier = "/"

// Subcommands
const (
	SubcommandSave   = "save"
	SubcommandLoad   = "load"
	SubcommandDelete = "delete"
	SubcommandList   = "list"
)

// deleteAliases maps every accepted spelling to the delete subcommand
var deleteAliases = map[string]bool{
	"del":    true,
	"rem":    true,
	"delete": true,
	"remove": true,
}

// Pagination
const (
	MaxCharsPerLine = 80
	LinesPerPage    = 4
	TermSeparator   = ", "
)

// Player-facing messages
const (
	MsgNotLoggedIn      = "You must be logged in to do that."
	MsgNoPermission     = "You do not have access to this command."
	MsgInvalidSyntax    = "Invalid syntax! Proper syntax:"
	MsgLimitReached     = "You have reached the max amount of inventories."
	MsgNoInventories    = "You do not have any inventories saved."
	MsgNothingToDisplay = "You have no inventories to display."
	MsgInternalError    = "Something went wrong, please try again later."

	// format strings
	fmtUsageSave    = "%sinventory save <name> - saves/updates your current inventory"
	fmtUsageLoad    = "%sinventory load <name> - loads an inventory"
	fmtUsageDelete  = "%sinventory delete <name> - deletes an inventory"
	fmtUsageList    = "%sinventory list - lists all your inventories"
	fmtSyntaxSave   = "Invalid syntax! Proper syntax: %sinventory save <inventory name>"
	fmtSyntaxLoad   = "Invalid syntax! Proper syntax: %sinventory load <inventory name>"
	fmtSyntaxDelete = "Invalid syntax! Proper syntax: %sinventory delete <inventory name>"
	fmtSyntaxList   = "Invalid syntax! Proper syntax: %sinventory list [page]"
	fmtSaved        = "Inventory '%s' has been saved."
	fmtLoaded       = "Loaded inventory '%s'."
	fmtDeleted      = "Deleted inventory '%s'."
	fmtNotFound     = "No inventories under the name '%s' were found."
	fmtInvalidPage  = "\"%s\" is not a valid page number."
	fmtListHeader   = "Inventories (%d/%d)"
	fmtListFooter   = "Type %sinventory list %d for more."
)
