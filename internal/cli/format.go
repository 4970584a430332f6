// Package cli provides the CLI presentation layer for rfext.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xolan/rfext/internal/folder"
	"github.com/xolan/rfext/internal/keyword"
)

// PrintError writes the Error/Details/Hint block used by every command.
// Empty details or hint lines are left out.
func PrintError(w io.Writer, msg string, details error, hint string) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", msg)
	if details != nil {
		_, _ = fmt.Fprintf(w, "Details: %v\n", details)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// FormatElapsed formats a run duration for display
// Examples: "850ms", "2.4s", "1m 5s"
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// ShortID returns the first eight characters of a handle ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatClaim formats a registry claim as "path (owner abcd1234, held 3.0s)".
func FormatClaim(c folder.Claim, now time.Time) string {
	return fmt.Sprintf("%s (owner %s, held %s)", c.Path, ShortID(c.Owner), FormatElapsed(now.Sub(c.ClaimedAt)))
}

// FormatKeyword formats a keyword for the keyword listing: the signature,
// then the doc and argument docs indented below it.
func FormatKeyword(k keyword.Keyword) []string {
	lines := []string{k.Signature()}
	if k.Doc != "" {
		for _, l := range strings.Split(k.Doc, "\n") {
			lines = append(lines, "    "+l)
		}
	}
	for _, a := range k.Args {
		if a.Doc == "" {
			continue
		}
		name := a.Name
		if a.Required {
			name += " (required)"
		}
		lines = append(lines, fmt.Sprintf("      %-28s %s", name, a.Doc))
	}
	return lines
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
