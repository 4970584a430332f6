// Package tui provides the Terminal User Interface for rfext.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/rfext/internal/logging"
	"github.com/xolan/rfext/internal/service"
	"github.com/xolan/rfext/internal/tui/ui"
	"github.com/xolan/rfext/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabInspect Tab = iota
	TabPaths
	TabFolders
	TabConfig
)

var tabNames = []string{"Inspect", "Paths", "Folders", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool
	notice    ui.StatusMsg

	inspectView views.InspectModel
	pathsView   views.PathsModel
	foldersView views.FoldersModel
	configView  views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabInspect,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		inspectView:   views.NewInspectModel(services, styles, keys),
		pathsView:     views.NewPathsModel(services, styles, keys),
		foldersView:   views.NewFoldersModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

func (m Model) Init() tea.Cmd {
	return m.inspectView.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		inputMode := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !inputMode:
			m.foldersView.Release()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !inputMode:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !inputMode:
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab) && !inputMode:
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.Tab1) && !inputMode:
			return m.switchTab(TabInspect)
		case key.Matches(msg, m.keys.Tab2) && !inputMode:
			return m.switchTab(TabPaths)
		case key.Matches(msg, m.keys.Tab3) && !inputMode:
			return m.switchTab(TabFolders)
		case key.Matches(msg, m.keys.Tab4) && !inputMode:
			return m.switchTab(TabConfig)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4
		m.inspectView.SetSize(m.width, contentHeight)
		m.pathsView.SetSize(m.width, contentHeight)
		m.foldersView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.StatusMsg:
		m.notice = msg
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{ThemeName: newTheme, Styles: m.styles}
		m.inspectView, _ = m.inspectView.Update(themeMsg)
		m.pathsView, _ = m.pathsView.Update(themeMsg)
		m.foldersView, _ = m.foldersView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Results of background commands go to their view whatever tab is shown
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmds []tea.Cmd
		m.inspectView, cmd = m.inspectView.Update(msg)
		cmds = append(cmds, cmd)
		m.pathsView, cmd = m.pathsView.Update(msg)
		cmds = append(cmds, cmd)
		m.foldersView, cmd = m.foldersView.Update(msg)
		cmds = append(cmds, cmd)
		m.configView, cmd = m.configView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	switch m.activeTab {
	case TabInspect:
		m.inspectView, cmd = m.inspectView.Update(msg)
	case TabPaths:
		m.pathsView, cmd = m.pathsView.Update(msg)
	case TabFolders:
		m.foldersView, cmd = m.foldersView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	switch tab {
	case TabInspect:
		return m, m.inspectView.Init()
	case TabPaths:
		return m, m.pathsView.Init()
	case TabFolders:
		return m, m.foldersView.Init()
	case TabConfig:
		return m, m.configView.Init()
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabInspect:
		b.WriteString(m.inspectView.View())
	case TabPaths:
		b.WriteString(m.pathsView.View())
	case TabFolders:
		b.WriteString(m.foldersView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	if m.notice.Text != "" {
		if m.notice.Error {
			b.WriteString(m.styles.Error.Render(m.notice.Text))
		} else {
			b.WriteString(m.styles.Success.Render(m.notice.Text))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.styles.App.Render(m.renderHelp())
	}
	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs[i] = m.styles.TabActive.Render(name)
		} else {
			tabs[i] = m.styles.TabInactive.Render(name)
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// viewHints are the status bar hints per tab, shown before the global ones
var viewHints = map[Tab][][2]string{
	TabInspect: {{"o", "open"}, {"↑/↓", "scroll"}},
	TabPaths:   {{"e", "path"}, {"f", "reference"}, {"w/b/x/m", "options"}, {"esc", "reset"}},
	TabFolders: {{"e", "path"}, {"c", "create"}, {"d", "delete"}, {"h", "hold"}, {"o/r/y", "options"}},
	TabConfig:  {{"t", "themes"}, {"[/]", "cycle"}},
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("Enter", "done"), m.renderKeyHelp("Esc", "cancel"))
		if m.activeTab == TabPaths {
			parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		}
	} else {
		for _, h := range viewHints[m.activeTab] {
			parts = append(parts, m.renderKeyHelp(h[0], h[1]))
		}
		parts = append(parts,
			m.renderKeyHelp("1-4", "views"),
			m.renderKeyHelp("?", "help"),
			m.renderKeyHelp("q", "quit"),
		)
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s", m.styles.StatusKey.Render(key), m.styles.StatusHelp.Render(desc))
}

// isInputMode reports whether the active view is capturing keystrokes
func (m Model) isInputMode() bool {
	switch m.activeTab {
	case TabInspect:
		return m.inspectView.IsInputMode()
	case TabPaths:
		return m.pathsView.IsInputMode()
	case TabFolders:
		return m.foldersView.IsInputMode()
	case TabConfig:
		return m.configView.IsSelectingTheme()
	}
	return false
}

// saveThemeConfig persists the theme and reports the outcome as a status notice.
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		if err := m.services.Config.Update(cfg); err != nil {
			logger := logging.GetLogger("tui")
			logger.Warn().Err(err).Str("theme", themeName).Msg("failed to save theme")
			return ui.StatusMsg{Text: "Theme not saved: " + err.Error(), Error: true}
		}
		return ui.StatusMsg{Text: "Theme set to " + themeName}
	}
}

var helpSections = map[Tab][][2]string{
	TabInspect: {
		{"o/Enter", "Open a data file"},
		{"j/k", "Scroll"},
		{"pgup/pgdn", "Page up/down"},
	},
	TabPaths: {
		{"e/Enter", "Edit the path"},
		{"f", "Edit the reference path"},
		{"w", "Toggle Windows separators"},
		{"b", "Toggle quoting of blanks"},
		{"x", "Toggle environment expansion"},
		{"m", "Toggle backslash masking"},
		{"Esc", "Reset options to config"},
	},
	TabFolders: {
		{"e/Enter", "Edit the folder path"},
		{"c", "Create folder"},
		{"d", "Delete folder"},
		{"h", "Hold or release the path"},
		{"o", "Toggle overwrite"},
		{"r", "Toggle recursive"},
		{"y", "Toggle confirm delete"},
	},
	TabConfig: {
		{"t/Enter", "Open theme selector"},
		{"[ ]", "Previous/next theme"},
		{"Esc", "Close selector"},
	},
}

func (m Model) renderHelp() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	help.WriteString(m.styles.Label.Render("Global:"))
	help.WriteString("\n")
	for _, h := range [][2]string{{"Tab/1-4", "Switch views"}, {"?", "Toggle help"}, {"q", "Quit"}} {
		help.WriteString(fmt.Sprintf("  %-10s %s\n", h[0], h[1]))
	}
	help.WriteString("\n")

	help.WriteString(m.styles.Label.Render(tabNames[m.activeTab] + ":"))
	help.WriteString("\n")
	for _, h := range helpSections[m.activeTab] {
		help.WriteString(fmt.Sprintf("  %-10s %s\n", h[0], h[1]))
	}

	help.WriteString("\n")
	help.WriteString(m.styles.HelpDesc.Render("Press ? to close"))

	return m.styles.Dialog.Render(help.String())
}

// Run starts the TUI application. Log output is discarded while the alt
// screen is active. A folder handle still held when the program exits is
// released.
func Run(services *service.Services) error {
	restore := logging.SetOutput(io.Discard)
	defer restore()

	p := tea.NewProgram(New(services), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.foldersView.Release()
	}
	return err
}
