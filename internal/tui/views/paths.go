package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/rfext/internal/pathnorm"
	"github.com/xolan/rfext/internal/service"
	"github.com/xolan/rfext/internal/tui/ui"
)

// pathField identifies the text input being edited in the paths view
type pathField int

const (
	fieldNone pathField = iota
	fieldPath
	fieldReference
)

// PathsModel normalizes a path live while the user edits it and toggles
// the normalization options.
type PathsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	editing   pathField
	pathInput textinput.Model
	refInput  textinput.Model

	opts   pathnorm.Options
	result string
}

// NewPathsModel creates a paths view with options taken from the config
func NewPathsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) PathsModel {
	m := PathsModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		pathInput: newPathInput(`C:\folder\..\other or /tmp/../var`),
		refInput:  newPathInput("absolute base for relative paths"),
	}
	m.resetOptions()
	return m
}

func (m *PathsModel) resetOptions() {
	m.opts = m.services.Config.Get().PathOptions()
	m.refInput.SetValue(m.opts.ReferencePath)
	m.normalize()
}

func (m PathsModel) Init() tea.Cmd {
	return nil
}

func (m PathsModel) Update(msg tea.Msg) (PathsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.handleInputMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
			return m.startEditing(fieldPath)
		case key.Matches(msg, m.keys.Reference):
			return m.startEditing(fieldReference)
		case key.Matches(msg, m.keys.ToggleWindows):
			m.opts.Windows = !m.opts.Windows
		case key.Matches(msg, m.keys.ToggleBlanks):
			m.opts.ConsiderBlanks = !m.opts.ConsiderBlanks
		case key.Matches(msg, m.keys.ToggleEnvVars):
			m.opts.ExpandEnvVars = !m.opts.ExpandEnvVars
		case key.Matches(msg, m.keys.ToggleMask):
			m.opts.Mask = !m.opts.Mask
		case key.Matches(msg, m.keys.Back):
			m.resetOptions()
			return m, statusCmd("Options reset to config defaults", false)
		default:
			return m, nil
		}
		m.normalize()
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	var cmd tea.Cmd
	switch m.editing {
	case fieldPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case fieldReference:
		m.refInput, cmd = m.refInput.Update(msg)
	}
	return m, cmd
}

func (m PathsModel) startEditing(field pathField) (PathsModel, tea.Cmd) {
	m.editing = field
	m.pathInput.Blur()
	m.refInput.Blur()
	if field == fieldPath {
		m.pathInput.Focus()
	} else {
		m.refInput.Focus()
	}
	return m, textinput.Blink
}

func (m PathsModel) handleInputMode(msg tea.KeyMsg) (PathsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
		m.editing = fieldNone
		m.pathInput.Blur()
		m.refInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		if m.editing == fieldPath {
			return m.startEditing(fieldReference)
		}
		return m.startEditing(fieldPath)
	}

	var cmd tea.Cmd
	if m.editing == fieldPath {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.refInput, cmd = m.refInput.Update(msg)
	}
	m.normalize()
	return m, cmd
}

// normalize recomputes the result with every option set explicitly
func (m *PathsModel) normalize() {
	m.opts.ReferencePath = strings.TrimSpace(m.refInput.Value())
	if strings.TrimSpace(m.pathInput.Value()) == "" {
		m.result = ""
		return
	}
	o := m.opts
	m.result = m.services.Path.Normalize(m.pathInput.Value(), service.PathOverrides{
		Windows:        &o.Windows,
		ReferencePath:  &o.ReferencePath,
		ConsiderBlanks: &o.ConsiderBlanks,
		ExpandEnvVars:  &o.ExpandEnvVars,
		Mask:           &o.Mask,
	})
}

func (m PathsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Normalize Path"))
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Path:"))
	b.WriteString("\n")
	b.WriteString(renderInput(m.styles, m.pathInput))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Reference path:"))
	b.WriteString("\n")
	b.WriteString(renderInput(m.styles, m.refInput))
	b.WriteString("\n\n")

	options := []string{
		m.styles.Option("windows (w)", m.opts.Windows),
		m.styles.Option("blanks (b)", m.opts.ConsiderBlanks),
		m.styles.Option("env vars (x)", m.opts.ExpandEnvVars),
		m.styles.Option("mask (m)", m.opts.Mask),
	}
	b.WriteString(strings.Join(options, "  "))
	b.WriteString("\n\n")

	if m.result == "" {
		b.WriteString(m.styles.HelpDesc.Render("Press e to enter a path"))
		return b.String()
	}
	b.WriteString(renderField(m.styles, "Result", m.result))
	b.WriteString(renderField(m.styles, "Absolute", yesNo(pathnorm.IsAbs(m.result))))

	return b.String()
}

// Result returns the current normalized path
func (m PathsModel) Result() string {
	return m.result
}

// Options returns the options currently applied
func (m PathsModel) Options() pathnorm.Options {
	return m.opts
}

// IsInputMode reports whether one of the inputs has focus
func (m PathsModel) IsInputMode() bool {
	return m.editing != fieldNone
}

func (m *PathsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.pathInput.Width = min(max(width-10, 20), 120)
	m.refInput.Width = m.pathInput.Width
}
