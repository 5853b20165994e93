// Package command implements the in-game "inventory" chat command on top of
// the snapshot store.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/inventory"
	"github.com/osse101/unlimited-inventories/internal/loadout"
	"github.com/osse101/unlimited-inventories/internal/logger"
	"github.com/osse101/unlimited-inventories/internal/metrics"
)

// Player is the command caller as the host sees it
type Player interface {
	inventory.Player
	IsLoggedIn() bool
	SendInfoMessage(msg string)
	SendSuccessMessage(msg string)
	SendErrorMessage(msg string)
}

// Handler dispatches inventory subcommands
type Handler struct {
	store     inventory.Service
	host      loadout.Host
	specifier string
}

// NewHandler creates a new Handler. An empty specifier uses DefaultSpecifier.
func NewHandler(store inventory.Service, host loadout.Host, specifier string) *Handler {
	if specifier == "" {
		specifier = DefaultSpecifier
	}
	return &Handler{
		store:     store,
		host:      host,
		specifier: specifier,
	}
}

// Execute runs one invocation of the command. args excludes the command name.
// Domain failures are reported to the player and return nil; the returned
// error is reserved for failures the player cannot fix, which are also
// reported to them in generic terms.
func (h *Handler) Execute(ctx context.Context, player Player, args []string) error {
	if !player.HasPermission(domain.PermissionRoot) {
		player.SendErrorMessage(MsgNoPermission)
		return nil
	}
	if !player.IsLoggedIn() {
		player.SendErrorMessage(MsgNotLoggedIn)
		return nil
	}
	if len(args) < 1 {
		h.sendUsage(player)
		return nil
	}

	// a Caser keeps state, so each call gets its own
	sub := cases.Fold().String(args[0])
	if deleteAliases[sub] {
		sub = SubcommandDelete
	}

	switch sub {
	case SubcommandSave:
		return h.save(ctx, player, args)
	case SubcommandLoad:
		return h.load(ctx, player, args)
	case SubcommandDelete:
		return h.delete(ctx, player, args)
	case SubcommandList:
		h.list(player, args)
		return nil
	default:
		h.sendUsage(player)
		return nil
	}
}

func (h *Handler) save(ctx context.Context, player Player, args []string) error {
	metrics.CommandsExecuted.WithLabelValues(SubcommandSave).Inc()
	if len(args) < 2 {
		player.SendErrorMessage(fmt.Sprintf(fmtSyntaxSave, h.specifier))
		return nil
	}

	name := snapshotName(args)
	if _, err := h.store.Save(ctx, player, name); err != nil {
		if errors.Is(err, domain.ErrLimitExceeded) {
			player.SendErrorMessage(MsgLimitReached)
			return nil
		}
		return h.fail(ctx, player, SubcommandSave, err)
	}

	player.SendSuccessMessage(fmt.Sprintf(fmtSaved, name))
	return nil
}

func (h *Handler) load(ctx context.Context, player Player, args []string) error {
	metrics.CommandsExecuted.WithLabelValues(SubcommandLoad).Inc()
	if len(args) < 2 {
		player.SendErrorMessage(fmt.Sprintf(fmtSyntaxLoad, h.specifier))
		return nil
	}

	name := snapshotName(args)
	if err := h.store.Load(ctx, h.host, player, name); err != nil {
		if h.reportMissing(player, name, err) {
			return nil
		}
		return h.fail(ctx, player, SubcommandLoad, err)
	}

	player.SendSuccessMessage(fmt.Sprintf(fmtLoaded, name))
	return nil
}

func (h *Handler) delete(ctx context.Context, player Player, args []string) error {
	metrics.CommandsExecuted.WithLabelValues(SubcommandDelete).Inc()
	if len(args) < 2 {
		player.SendErrorMessage(fmt.Sprintf(fmtSyntaxDelete, h.specifier))
		return nil
	}

	name := snapshotName(args)
	if err := h.store.Delete(ctx, player.UserID(), name); err != nil {
		if h.reportMissing(player, name, err) {
			return nil
		}
		return h.fail(ctx, player, SubcommandDelete, err)
	}

	player.SendSuccessMessage(fmt.Sprintf(fmtDeleted, name))
	return nil
}

func (h *Handler) list(player Player, args []string) {
	metrics.CommandsExecuted.WithLabelValues(SubcommandList).Inc()

	names, err := h.store.List(player.UserID())
	if err != nil {
		player.SendErrorMessage(MsgNoInventories)
		return
	}
	if len(args) > 2 {
		player.SendErrorMessage(fmt.Sprintf(fmtSyntaxList, h.specifier))
		return
	}

	number, ok := parsePageNumber(args, 1)
	if !ok {
		player.SendErrorMessage(fmt.Sprintf(fmtInvalidPage, args[1]))
		return
	}

	page, ok := Paginate(BuildLines(names, MaxCharsPerLine), number, LinesPerPage)
	if !ok {
		player.SendSuccessMessage(MsgNothingToDisplay)
		return
	}

	player.SendSuccessMessage(fmt.Sprintf(fmtListHeader, page.Number, page.Count))
	for _, line := range page.Lines {
		player.SendInfoMessage(line)
	}
	if page.HasNext() {
		player.SendInfoMessage(fmt.Sprintf(fmtListFooter, h.specifier, page.Number+1))
	}
}

// reportMissing tells the player about a missing record or name and reports
// whether err was one of those.
func (h *Handler) reportMissing(player Player, name string, err error) bool {
	switch {
	case errors.Is(err, domain.ErrNoSnapshots):
		player.SendErrorMessage(MsgNoInventories)
	case errors.Is(err, domain.ErrUnknownSnapshot):
		player.SendErrorMessage(fmt.Sprintf(fmtNotFound, name))
	default:
		return false
	}
	return true
}

func (h *Handler) fail(ctx context.Context, player Player, sub string, err error) error {
	logger.FromContext(ctx).Error("Inventory command failed",
		"subcommand", sub,
		"user_id", player.UserID(),
		"error", err)
	player.SendErrorMessage(MsgInternalError)
	return fmt.Errorf("inventory %s: %w", sub, err)
}

func (h *Handler) sendUsage(player Player) {
	player.SendErrorMessage(MsgInvalidSyntax)
	for _, format := range []string{fmtUsageSave, fmtUsageLoad, fmtUsageDelete, fmtUsageList} {
		player.SendErrorMessage(fmt.Sprintf(format, h.specifier))
	}
}

// snapshotName joins everything after the subcommand with single spaces
func snapshotName(args []string) string {
	return strings.Join(args[1:], " ")
}
