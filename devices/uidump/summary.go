package uidump

import (
	"fmt"
	"strings"
)

// maxSummaryItems bounds how many interactive elements the digest lists.
const maxSummaryItems = 8

// Summarize produces a compact human-readable digest of an element list:
// total count, interactive count and the first few interactive elements with
// their input flags.
func Summarize(elements []Element) string {
	if len(elements) == 0 {
		return "No UI elements found."
	}

	var interactive []Element
	for _, e := range elements {
		if e.Interactive() {
			interactive = append(interactive, e)
		}
	}

	header := fmt.Sprintf("Found %d UI elements (%d interactive)", len(elements), len(interactive))
	if len(interactive) == 0 {
		return header + "."
	}

	items := make([]string, 0, maxSummaryItems)
	for i, e := range interactive {
		if i == maxSummaryItems {
			break
		}
		item := fmt.Sprintf("%d. %s", i+1, e.Label())
		if flags := flagList(e); flags != "" {
			item += " (" + flags + ")"
		}
		items = append(items, item)
	}

	return header + ": " + strings.Join(items, "; ")
}

func flagList(e Element) string {
	var flags []string
	if e.Clickable {
		flags = append(flags, "clickable")
	}
	if e.Checkable {
		flags = append(flags, "checkable")
	}
	if e.Scrollable {
		flags = append(flags, "scrollable")
	}
	return strings.Join(flags, ",")
}
