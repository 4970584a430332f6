package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding

	// Actions
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
	Edit   key.Binding

	// Inspect
	Open key.Binding

	// Paths
	Reference     key.Binding
	ToggleWindows key.Binding
	ToggleBlanks  key.Binding
	ToggleEnvVars key.Binding
	ToggleMask    key.Binding

	// Folders
	Create          key.Binding
	Delete          key.Binding
	Hold            key.Binding
	ToggleOverwrite key.Binding
	ToggleRecursive key.Binding
	ToggleConfirm   key.Binding

	// Config
	Theme     key.Binding
	NextTheme key.Binding
	PrevTheme key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation (vim + arrows)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),

		// Tab navigation
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "inspect"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "paths"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "folders"),
		),
		Tab4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "config"),
		),

		// Actions
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit path"),
		),

		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open file"),
		),

		Reference: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "reference path"),
		),
		ToggleWindows: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "windows"),
		),
		ToggleBlanks: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blanks"),
		),
		ToggleEnvVars: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "env vars"),
		),
		ToggleMask: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mask"),
		),

		Create: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "create"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Hold: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hold/release"),
		),
		ToggleOverwrite: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overwrite"),
		),
		ToggleRecursive: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recursive"),
		),
		ToggleConfirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),

		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "themes"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev theme"),
		),
	}
}
