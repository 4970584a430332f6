package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/rfext/internal/config"
	"github.com/xolan/rfext/internal/service"
	"github.com/xolan/rfext/internal/tui/ui"
)

// ConfigModel shows the loaded configuration and lets the user pick a theme
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	themeName string

	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
		themeName:     themeProvider.CurrentName(),
		config:        services.Config.Get(),
		path:          services.Config.GetPath(),
		exists:        services.Config.Exists(),
	}
	m.syncCursor()
	return m
}

func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

const maxVisibleThemes = 10

func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Theme):
			m.selectingTheme = true
			m.themeOffset = scrollOffset(m.themeCursor, m.themeOffset, maxVisibleThemes)
			return m, nil
		case key.Matches(msg, m.keys.NextTheme):
			return m, m.cycleTheme(1)
		case key.Matches(msg, m.keys.PrevTheme):
			return m, m.cycleTheme(-1)
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.config.Theme = msg.ThemeName
		m.exists = m.services.Config.Exists()
		m.syncCursor()
		return m, nil
	}

	return m, nil
}

func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, m.keys.PageUp):
		m.themeCursor = max(m.themeCursor-maxVisibleThemes, 0)
	case key.Matches(msg, m.keys.PageDown):
		m.themeCursor = min(m.themeCursor+maxVisibleThemes, len(m.themes)-1)
	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		return m, requestThemeChange(m.themes[m.themeCursor])
	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.syncCursor()
		return m, nil
	default:
		return m, nil
	}
	m.themeOffset = scrollOffset(m.themeCursor, m.themeOffset, maxVisibleThemes)
	return m, nil
}

// cycleTheme requests the theme step positions away from the current one
func (m ConfigModel) cycleTheme(step int) tea.Cmd {
	if len(m.themes) == 0 {
		return nil
	}
	i := m.themeProvider.IndexOf(m.themeName)
	if i < 0 {
		i = 0
	}
	n := len(m.themes)
	return requestThemeChange(m.themes[((i+step)%n+n)%n])
}

func (m *ConfigModel) syncCursor() {
	if i := m.themeProvider.IndexOf(m.themeName); i >= 0 {
		m.themeCursor = i
	}
	m.themeOffset = scrollOffset(m.themeCursor, m.themeOffset, maxVisibleThemes)
}

func requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n")

	b.WriteString(renderField(m.styles, "Config file", m.path))
	b.WriteString(m.styles.Label.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 10))))
	b.WriteString("\n\n")

	b.WriteString(renderField(m.styles, "log_level", m.config.LogLevel))
	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}
	b.WriteString(renderField(m.styles, "theme", m.themeName+" ("+m.themeProvider.CurrentDisplayName()+")"))
	b.WriteString("\n")

	f := m.config.Folder
	b.WriteString(m.styles.DialogTitle.Render("[folder]"))
	b.WriteString("\n")
	b.WriteString(renderField(m.styles, "delete_attempts", fmt.Sprint(f.DeleteAttempts)))
	b.WriteString(renderField(m.styles, "create_attempts", fmt.Sprint(f.CreateAttempts)))
	b.WriteString(renderField(m.styles, "retry_delay", f.RetryDelay.String()))
	b.WriteString("\n")

	p := m.config.Path
	ref := p.ReferencePath
	if ref == "" {
		ref = "(none)"
	}
	b.WriteString(m.styles.DialogTitle.Render("[path]"))
	b.WriteString("\n")
	b.WriteString(renderField(m.styles, "windows", fmt.Sprint(p.Windows)))
	b.WriteString(renderField(m.styles, "reference_path", ref))
	b.WriteString(renderField(m.styles, "consider_blanks", fmt.Sprint(p.ConsiderBlanks)))
	b.WriteString(renderField(m.styles, "expand_env_vars", fmt.Sprint(p.ExpandEnvVars)))
	b.WriteString(renderField(m.styles, "mask", fmt.Sprint(p.Mask)))
	b.WriteString("\n")

	b.WriteString(m.styles.HelpDesc.Render("Press Enter or t to pick a theme, [ and ] to cycle"))
	return b.String()
}

func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.Value.Render("Select a theme"))
	b.WriteString("\n\n")

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))
	if m.themeOffset > 0 {
		b.WriteString(m.styles.HelpDesc.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < end; i++ {
		theme := m.themes[i]
		current := ""
		if theme == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.ItemSelected.Render("▸ " + theme))
		} else {
			b.WriteString("  " + m.styles.ItemPath.Render(theme))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if end < len(m.themes) {
		b.WriteString(m.styles.HelpDesc.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpDesc.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// IsSelectingTheme reports whether the theme list is open
func (m ConfigModel) IsSelectingTheme() bool {
	return m.selectingTheme
}

func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
	}
}
