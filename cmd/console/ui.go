package main

import (
	"fmt"
	"io"

	"github.com/osse101/unlimited-inventories/internal/host/sim"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func printInfo(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, colorBlue+format+colorReset+"\n", a...)
}

func printSuccess(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, colorGreen+format+colorReset+"\n", a...)
}

func printError(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, colorRed+format+colorReset+"\n", a...)
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// printMessages echoes chat lines the player received and clears them
func printMessages(w io.Writer, p *sim.Player) {
	for _, m := range p.Messages() {
		switch m.Kind {
		case sim.MessageSuccess:
			printSuccess(w, "%s", m.Text)
		case sim.MessageError:
			printError(w, "%s", m.Text)
		default:
			printInfo(w, "%s", m.Text)
		}
	}
	p.ClearMessages()
}
