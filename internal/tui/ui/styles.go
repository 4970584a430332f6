package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TabSeparator lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Lists (claims, themes)
	ItemSelected lipgloss.Style
	ItemNormal   lipgloss.Style
	ItemPath     lipgloss.Style
	ItemMeta     lipgloss.Style

	// Label/value rows
	Label lipgloss.Style
	Value lipgloss.Style

	// Pretty-printed data lines
	DataTag   lipgloss.Style
	DataKey   lipgloss.Style
	DataValue lipgloss.Style

	// Boolean option toggles
	OptionOn  lipgloss.Style
	OptionOff lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors.
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	err       lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	selection lipgloss.TerminalColor
}

// DefaultStyles returns styles built from a fixed 256-color palette
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),
		secondary: lipgloss.Color("39"),
		accent:    lipgloss.Color("212"),
		muted:     lipgloss.Color("240"),
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		err:       lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		selection: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates styles from the current bubbletint theme.
// Purple is the primary color, cyan the secondary, bright purple the accent
// and bright black is used for muted text and selection.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		err:       r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		selection: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),
		TabSeparator: lipgloss.NewStyle().
			Foreground(p.muted).
			SetString("|"),

		Content: lipgloss.NewStyle().Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().Foreground(p.fg),
		StatusHelp:  lipgloss.NewStyle().Foreground(p.muted),

		ItemSelected: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true),
		ItemNormal: lipgloss.NewStyle(),
		ItemPath:   lipgloss.NewStyle().Foreground(p.fg),
		ItemMeta:   lipgloss.NewStyle().Foreground(p.muted),

		Label: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(18),
		Value: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		DataTag:   lipgloss.NewStyle().Foreground(p.primary),
		DataKey:   lipgloss.NewStyle().Foreground(p.secondary),
		DataValue: lipgloss.NewStyle().Foreground(p.accent),

		OptionOn: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		OptionOff: lipgloss.NewStyle().Foreground(p.muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.muted),

		Input:        input.BorderForeground(p.muted),
		InputFocused: input.BorderForeground(p.primary),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		Error:   lipgloss.NewStyle().Foreground(p.err),
		Warning: lipgloss.NewStyle().Foreground(p.warning),
		Success: lipgloss.NewStyle().Foreground(p.success),
	}
}

// Option renders a labelled on/off toggle, e.g. "[x] mask".
func (s Styles) Option(label string, on bool) string {
	if on {
		return s.OptionOn.Render("[x] " + label)
	}
	return s.OptionOff.Render("[ ] " + label)
}
