package views

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/folder"
	"github.com/xolan/rfext/internal/service"
	"github.com/xolan/rfext/internal/tui/ui"
)

// FoldersModel runs folder create/delete and shows the ownership registry.
// A handle can be held open to demonstrate that a claimed path rejects
// other handles.
type FoldersModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	inputMode bool
	input     textinput.Model

	overwrite bool
	recursive bool
	confirm   bool

	busy     bool
	last     *folderDoneMsg
	held     *folder.Folder
	holdGen  int
	claims   []folder.Claim
	now      func() time.Time
	maxClaim int
}

// NewFoldersModel creates a new folders view model
func NewFoldersModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) FoldersModel {
	return FoldersModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    newPathInput("folder to create or delete"),
		confirm:  true,
		now:      time.Now,
		maxClaim: 10,
	}
}

// folderDoneMsg is sent when a create or delete finishes
type folderDoneMsg struct {
	op       string
	path     string
	result   service.Result
	err      error
	progress []string
}

// holdTickMsg refreshes the claim ages while a handle is held
type holdTickMsg struct {
	gen int
}

func (m FoldersModel) Init() tea.Cmd {
	return nil
}

func (m FoldersModel) Update(msg tea.Msg) (FoldersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}
		return m.handleKey(msg)

	case folderDoneMsg:
		m.busy = false
		m.last = &msg
		m.claims = m.services.Folder.Claims()
		if msg.err != nil {
			return m, statusCmd("Failed to open folder: "+msg.err.Error(), true)
		}
		return m, statusCmd(msg.result.Message, !msg.result.Success)

	case holdTickMsg:
		if m.held == nil || msg.gen != m.holdGen {
			return m, nil
		}
		m.claims = m.services.Folder.Claims()
		return m, m.tick()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.inputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m FoldersModel) handleKey(msg tea.KeyMsg) (FoldersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		m.inputMode = true
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.ToggleOverwrite):
		m.overwrite = !m.overwrite
	case key.Matches(msg, m.keys.ToggleRecursive):
		m.recursive = !m.recursive
	case key.Matches(msg, m.keys.ToggleConfirm):
		m.confirm = !m.confirm
	case key.Matches(msg, m.keys.Create):
		return m.run("create")
	case key.Matches(msg, m.keys.Delete):
		return m.run("delete")
	case key.Matches(msg, m.keys.Hold):
		return m.toggleHold()
	}
	return m, nil
}

func (m FoldersModel) handleInputMode(msg tea.KeyMsg) (FoldersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
		m.inputMode = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m FoldersModel) path() string {
	return strings.TrimSpace(m.input.Value())
}

// run starts a create or delete in the background. Only one operation runs
// at a time since progress goes through the shared folder service.
func (m FoldersModel) run(op string) (FoldersModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	path := m.path()
	if path == "" {
		return m, statusCmd("Enter a folder path first (e)", true)
	}
	m.busy = true

	svc := m.services.Folder
	overwrite, recursive, confirm := m.overwrite, m.recursive, m.confirm
	return m, func() tea.Msg {
		var buf bytes.Buffer
		svc.SetProgress(&buf)
		defer svc.SetProgress(nil)

		var res service.Result
		var err error
		if op == "create" {
			res, err = svc.Create(path, overwrite, recursive)
		} else {
			res, err = svc.Delete(path, confirm)
		}
		return folderDoneMsg{
			op:       op,
			path:     path,
			result:   res,
			err:      err,
			progress: splitLines(buf.String()),
		}
	}
}

// toggleHold claims the current path with a long-lived handle, or closes
// the held handle.
func (m FoldersModel) toggleHold() (FoldersModel, tea.Cmd) {
	if m.held != nil {
		path := m.held.Path()
		m.Release()
		m.claims = m.services.Folder.Claims()
		return m, statusCmd("Released '"+path+"'", false)
	}

	path := m.path()
	if path == "" {
		return m, statusCmd("Enter a folder path first (e)", true)
	}
	f, err := m.services.Folder.Open(path)
	if err != nil {
		if errors.Is(err, folder.ErrDuplicateOwnership) {
			return m, statusCmd("'"+path+"' is already held", true)
		}
		return m, statusCmd("Failed to open folder: "+err.Error(), true)
	}
	m.held = f
	m.holdGen++
	m.claims = m.services.Folder.Claims()
	return m, tea.Batch(statusCmd("Holding '"+f.Path()+"'", false), m.tick())
}

func (m FoldersModel) tick() tea.Cmd {
	gen := m.holdGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return holdTickMsg{gen: gen}
	})
}

// Release closes the held handle, if any
func (m *FoldersModel) Release() {
	if m.held == nil {
		return
	}
	_ = m.held.Close()
	m.held = nil
}

func (m FoldersModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Folders"))
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Folder:"))
	b.WriteString("\n")
	b.WriteString(renderInput(m.styles, m.input))
	b.WriteString("\n\n")

	options := []string{
		m.styles.Option("overwrite (o)", m.overwrite),
		m.styles.Option("recursive (r)", m.recursive),
		m.styles.Option("confirm delete (y)", m.confirm),
	}
	b.WriteString(strings.Join(options, "  "))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.styles.Warning.Render("Working..."))
		b.WriteString("\n\n")
	} else if m.last != nil {
		b.WriteString(m.renderLast())
		b.WriteString("\n")
	}

	b.WriteString(m.renderClaims())
	return b.String()
}

func (m FoldersModel) renderLast() string {
	var b strings.Builder
	for _, line := range m.last.progress {
		b.WriteString(m.styles.ItemMeta.Render(line))
		b.WriteString("\n")
	}
	switch {
	case m.last.err != nil:
		b.WriteString(m.styles.Error.Render("Error: " + m.last.err.Error()))
	case m.last.result.Success:
		b.WriteString(m.styles.Success.Render(m.last.result.Message))
	default:
		b.WriteString(m.styles.Error.Render(m.last.result.Message))
	}
	b.WriteString("\n")
	return b.String()
}

func (m FoldersModel) renderClaims() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render(fmt.Sprintf("Claims (%d):", len(m.claims))))
	b.WriteString("\n")
	if len(m.claims) == 0 {
		b.WriteString(m.styles.HelpDesc.Render("  No folder is held. Press h to hold the current path."))
		b.WriteString("\n")
		return b.String()
	}

	now := m.now()
	for i, c := range m.claims {
		if i == m.maxClaim {
			b.WriteString(m.styles.ItemMeta.Render(fmt.Sprintf("  ... %d more", len(m.claims)-i)))
			b.WriteString("\n")
			break
		}
		style := m.styles.ItemNormal
		if m.held != nil && c.Owner == m.held.ID() {
			style = m.styles.ItemSelected
		}
		b.WriteString("  ")
		b.WriteString(style.Render(cli.FormatClaim(c, now)))
		b.WriteString("\n")
	}
	return b.String()
}

// Held returns the path of the held handle, or "" when none is held
func (m FoldersModel) Held() string {
	if m.held == nil {
		return ""
	}
	return m.held.Path()
}

// IsInputMode reports whether the path input has focus
func (m FoldersModel) IsInputMode() bool {
	return m.inputMode
}

// IsBusy reports whether a folder operation is running
func (m FoldersModel) IsBusy() bool {
	return m.busy
}

func (m *FoldersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = min(max(width-10, 20), 120)
	m.maxClaim = max(height-16, 3)
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
