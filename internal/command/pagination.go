package command

import (
	"strconv"
	"strings"
)

// BuildLines packs terms into lines joined by TermSeparator, starting a new
// line whenever the next term would push the current one past maxChars.
// A term longer than maxChars gets a line of its own. Empty terms are skipped.
func BuildLines(terms []string, maxChars int) []string {
	var lines []string
	var b strings.Builder

	for _, term := range terms {
		if term == "" {
			continue
		}
		if b.Len() > 0 && b.Len()+len(TermSeparator)+len(term) > maxChars {
			lines = append(lines, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteString(TermSeparator)
		}
		b.WriteString(term)
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// Page is one page of lines, numbered from 1
type Page struct {
	Number int
	Count  int
	Lines  []string
}

// HasNext reports whether a later page exists
func (p Page) HasNext() bool {
	return p.Number < p.Count
}

// Paginate returns page number of lines, clamping number into the valid
// range. ok is false when there are no lines at all.
func Paginate(lines []string, number, perPage int) (page Page, ok bool) {
	if len(lines) == 0 {
		return Page{}, false
	}

	count := (len(lines) + perPage - 1) / perPage
	number = max(1, min(number, count))

	start := (number - 1) * perPage
	end := min(start+perPage, len(lines))
	return Page{Number: number, Count: count, Lines: lines[start:end]}, true
}

// parsePageNumber reads an optional 1-based page number. A missing argument
// means page 1.
func parsePageNumber(args []string, index int) (int, bool) {
	if len(args) <= index {
		return 1, true
	}
	n, err := strconv.Atoi(args[index])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
