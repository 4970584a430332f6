// Package views holds the tab models of the TUI. Each model follows the
// bubbletea Init/Update/View cycle and exposes SetSize for the root model.
package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/rfext/internal/tui/ui"
)

// dataSeparator splits a pretty-printed line into its prefix and value.
const dataSeparator = "  :  "

var (
	dataTagPattern = regexp.MustCompile(`\[[A-Z]+\]`)
	dataKeyPattern = regexp.MustCompile(`\{[^{}]*\}`)
)

// highlightDataLine colors the type tags, dictionary keys and value of one
// pretty-printed line. Lines that do not carry a value are returned as is.
func highlightDataLine(styles ui.Styles, line string) string {
	i := strings.Index(line, "]"+dataSeparator)
	if i < 0 {
		return line
	}
	prefix, value := line[:i+1], line[i+1+len(dataSeparator):]

	prefix = dataKeyPattern.ReplaceAllStringFunc(prefix, func(k string) string { return styles.DataKey.Render(k) })
	prefix = dataTagPattern.ReplaceAllStringFunc(prefix, func(t string) string { return styles.DataTag.Render(t) })
	return prefix + dataSeparator + styles.DataValue.Render(value)
}

// renderField renders one "label value" row.
func renderField(styles ui.Styles, label, value string) string {
	return styles.Label.Render(label+":") + " " + styles.Value.Render(value) + "\n"
}

func newPathInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 1024
	ti.Width = 60
	return ti
}

// renderInput draws ti inside the focused or unfocused input border.
func renderInput(styles ui.Styles, ti textinput.Model) string {
	if ti.Focused() {
		return styles.InputFocused.Render(ti.View())
	}
	return styles.Input.Render(ti.View())
}

// scrollOffset returns the first visible row so that cursor stays within a
// window of visible rows starting at offset.
func scrollOffset(cursor, offset, visible int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+visible {
		return cursor - visible + 1
	}
	return offset
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return ui.StatusMsg{Text: text, Error: isErr}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
