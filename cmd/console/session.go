package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/unlimited-inventories/internal/command"
	"github.com/osse101/unlimited-inventories/internal/host/sim"
	"github.com/osse101/unlimited-inventories/internal/inventory"
	"github.com/osse101/unlimited-inventories/internal/loadout"
)

const prompt = "> "

// session is one simulated player typing at the console
type session struct {
	handler *command.Handler
	player  *sim.Player
	out     io.Writer
}

func newSession(store inventory.Service, world *sim.World, player *sim.Player, out io.Writer) *session {
	return &session{
		handler: command.NewHandler(store, world, command.DefaultSpecifier),
		player:  player,
		out:     out,
	}
}

// Run reads lines until EOF, "quit" or ctx is cancelled
func (s *session) Run(ctx context.Context, in io.Reader) error {
	printHeader(s.out, "Unlimited Inventories console")
	s.help()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if done := s.dispatch(ctx, fields); done {
			return nil
		}
	}
}

func (s *session) dispatch(ctx context.Context, fields []string) bool {
	name := strings.TrimPrefix(fields[0], command.DefaultSpecifier)
	switch strings.ToLower(name) {
	case "quit", "exit":
		return true
	case "help":
		s.help()
	case command.Name:
		if err := s.handler.Execute(ctx, s.player, fields[1:]); err != nil {
			printError(s.out, "command failed: %v", err)
		}
		printMessages(s.out, s.player)
	case "give":
		if err := s.give(fields[1:]); err != nil {
			printError(s.out, "%v", err)
		}
	case "clear":
		s.clear()
		printSuccess(s.out, "All slots cleared.")
	case "show":
		s.show()
	case "login":
		s.player.SetLoggedIn(true)
		printSuccess(s.out, "Logged in as user %d.", s.player.UserID())
	case "logout":
		s.player.SetLoggedIn(false)
		printSuccess(s.out, "Logged out.")
	default:
		printError(s.out, "Unknown command %q. Type help for a list.", fields[0])
	}
	return false
}

func (s *session) help() {
	printInfo(s.out, "/inventory <save|load|delete|list> [args]  run the chat command")
	printInfo(s.out, "give <region> <slot> <item id> [stack] [prefix]  put an item in a slot")
	printInfo(s.out, "show  list non-empty slots")
	printInfo(s.out, "clear  empty every slot")
	printInfo(s.out, "login | logout  toggle the login state")
	printInfo(s.out, "quit  leave the console")
}

func (s *session) give(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: give <region> <slot> <item id> [stack] [prefix]")
	}

	span, ok := findRegion(args[0])
	if !ok {
		return fmt.Errorf("unknown region %q", args[0])
	}

	nums := make([]int, 5)
	nums[3] = 1
	for i, arg := range args[1:] {
		if i >= 4 {
			break
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not a number", arg)
		}
		nums[i+1] = n
	}
	slot, netID, stack, prefix := nums[1], nums[2], nums[3], nums[4]

	if slot < 0 || slot >= span.Length {
		return fmt.Errorf("slot must be between 0 and %d", span.Length-1)
	}
	if err := s.player.Item(span.Region, slot).Set(netID, stack, prefix); err != nil {
		return err
	}
	printSuccess(s.out, "%s slot %d now holds %s.", span.Region, slot, describe(s.player.Item(span.Region, slot)))
	return nil
}

func (s *session) clear() {
	for _, span := range loadout.Layout {
		for i := 0; i < span.Length; i++ {
			_ = s.player.Item(span.Region, i).SetDefaults(0)
		}
	}
}

func (s *session) show() {
	shown := 0
	for _, span := range loadout.Layout {
		for i := 0; i < span.Length; i++ {
			it := s.player.Item(span.Region, i)
			if it.NetID() == 0 {
				continue
			}
			printInfo(s.out, "%-10s %3d  %s", span.Region, i, describe(it))
			shown++
		}
	}
	if shown == 0 {
		printInfo(s.out, "All slots are empty.")
	}
}

func findRegion(name string) (loadout.Span, bool) {
	for _, span := range loadout.Layout {
		if strings.EqualFold(span.Region.String(), name) {
			return span, true
		}
	}
	return loadout.Span{}, false
}

func describe(it *sim.Item) string {
	if it.NetID() == 0 {
		return "nothing"
	}
	desc := fmt.Sprintf("%d x %s", it.Stack(), it.Name())
	if it.Prefix() != 0 {
		desc += fmt.Sprintf(" (prefix %d)", it.Prefix())
	}
	return desc
}
