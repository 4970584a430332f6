package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/service"
	"github.com/xolan/rfext/internal/tui/ui"
)

// InspectModel loads a JSON, YAML or TOML file and shows its pretty-printed
// lines in a scrollable viewport.
type InspectModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	inputMode bool
	input     textinput.Model
	viewport  viewport.Model

	source string
	lines  []string
	err    error
}

// NewInspectModel creates a new inspect view model
func NewInspectModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) InspectModel {
	return InspectModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    newPathInput("path/to/data.json"),
		viewport: viewport.New(80, 10),
	}
}

// inspectLoadedMsg carries the result of loading a data file
type inspectLoadedMsg struct {
	source string
	lines  []string
	err    error
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (InspectModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}
		if key.Matches(msg, m.keys.Open) || key.Matches(msg, m.keys.Select) {
			m.inputMode = true
			m.input.SetValue(m.source)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case inspectLoadedMsg:
		m.source = msg.source
		m.err = msg.err
		if msg.err != nil {
			m.lines = nil
			m.viewport.SetContent("")
			return m, statusCmd("Failed to load "+msg.source, true)
		}
		m.lines = msg.lines
		m.viewport.SetContent(m.renderLines())
		m.viewport.GotoTop()
		return m, statusCmd(fmt.Sprintf("Loaded %d %s", len(msg.lines), cli.Pluralize("line", len(msg.lines))), false)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.viewport.SetContent(m.renderLines())
		return m, nil
	}

	if m.inputMode {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m InspectModel) handleInputMode(msg tea.KeyMsg) (InspectModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		m.inputMode = false
		m.input.Blur()
		return m, m.load(path)
	case key.Matches(msg, m.keys.Back):
		m.inputMode = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// load decodes the file without logging so log output cannot tear the screen
func (m InspectModel) load(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := m.services.Print.LoadFile(path, service.FormatAuto)
		if err != nil {
			return inspectLoadedMsg{source: path, err: err}
		}
		return inspectLoadedMsg{source: path, lines: m.services.Print.Render(data)}
	}
}

func (m InspectModel) renderLines() string {
	out := make([]string, len(m.lines))
	for i, line := range m.lines {
		out[i] = highlightDataLine(m.styles, line)
	}
	return strings.Join(out, "\n")
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Inspect Data"))
	b.WriteString("\n")

	if m.inputMode {
		b.WriteString(m.styles.Label.Render("File:"))
		b.WriteString("\n")
		b.WriteString(renderInput(m.styles, m.input))
		b.WriteString("\n")
		b.WriteString(m.styles.HelpDesc.Render("Enter load  Esc cancel"))
		return b.String()
	}

	switch {
	case m.err != nil:
		b.WriteString(renderField(m.styles, "Source", m.source))
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.source == "":
		b.WriteString(m.styles.HelpDesc.Render("Press o to open a JSON, YAML or TOML file"))
		b.WriteString("\n")
	case len(m.lines) == 0:
		b.WriteString(renderField(m.styles, "Source", m.source))
		b.WriteString(m.styles.Warning.Render("No data"))
		b.WriteString("\n")
	default:
		b.WriteString(renderField(m.styles, "Source", m.source))
		b.WriteString(renderField(m.styles, "Lines", fmt.Sprintf("%d (%3.f%%)", len(m.lines), m.viewport.ScrollPercent()*100)))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
	}

	return b.String()
}

// IsInputMode reports whether the file input has focus
func (m InspectModel) IsInputMode() bool {
	return m.inputMode
}

// Lines returns the raw lines of the loaded file
func (m InspectModel) Lines() []string {
	return m.lines
}

func (m *InspectModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-6, 3)
}
