package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wsltune/internal/settings"
	"github.com/five82/wsltune/internal/state"
	"github.com/five82/wsltune/internal/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeExport
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Facade     *state.Facade
	Resolver   *theme.Resolver // nil applies theme changes without persisting
	Appearance *Appearance     // must be the Display the Resolver drives
}

// Model is the root application state for Bubble Tea.
type Model struct {
	facade     *state.Facade
	resolver   *theme.Resolver
	appearance *Appearance
	keys       keyMap

	width  int
	height int
	ready  bool
	mode   mode

	rows     []row
	selected int

	input   textinput.Model
	preview viewport.Model

	showHelp  bool
	status    string
	statusErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	appearance := opts.Appearance
	if appearance == nil {
		appearance = NewAppearance()
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256

	return Model{
		facade:     opts.Facade,
		resolver:   opts.Resolver,
		appearance: appearance,
		keys:       DefaultKeyMap(),
		rows:       buildRows(),
		input:      input,
		preview:    viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = maxInt(msg.Width-4, 0)
		m.preview.Height = maxInt(msg.Height-4, 0)
		m.input.Width = maxInt(msg.Width-40, 10)
		m.ready = true
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Save failed: %v", msg.err))
		} else {
			m.setStatus("Saved " + m.facade.Path())
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.mode == modeExport {
		b.WriteString(m.renderExport())
	} else {
		b.WriteString(m.renderSettings(m.bodyHeight()))
	}
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeEdit:
		return m.handleEditKey(msg)
	case modeExport:
		return m.handleExportKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.rows) - 1
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Reset):
		m.facade.ResetToDefault()
		m.setStatus("Reset to defaults (unsaved)")
	case key.Matches(msg, m.keys.Export):
		m.preview.SetContent(m.facade.ExportConfig())
		m.preview.GotoTop()
		m.mode = modeExport
	case key.Matches(msg, m.keys.Save):
		return m, saveCmd(m.facade)
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.input.Blur()
		m.mode = modeBrowse
		m.setStatus("Edit cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		r := m.rows[m.selected]
		if err := m.facade.Set(r.field.Name, m.input.Value()); err != nil {
			m.setError(describeSetError(err))
			return m, nil
		}
		m.input.Blur()
		m.mode = modeBrowse
		m.setStatus(fmt.Sprintf("%s = %s", r.key, r.display(m.facade.GetConfig())))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Export):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.mode = modeBrowse
		return m, saveCmd(m.facade)
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	r := m.rows[m.selected]
	if r.field.Kind == settings.KindBool {
		m.toggleSelected()
		return m, nil
	}
	m.input.SetValue(r.field.Value(m.facade.GetConfig()))
	m.input.CursorEnd()
	cmd := m.input.Focus()
	m.mode = modeEdit
	m.status = ""
	return m, cmd
}

func (m *Model) toggleSelected() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.selected]
	if r.field.Kind != settings.KindBool {
		m.setError(r.key + " is not an on/off setting; press enter to edit")
		return
	}
	on, err := m.facade.Toggle(r.field.Name)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("%s = %t", r.key, on))
}

func (m *Model) toggleTheme() {
	next := m.appearance.Current().Toggle()
	if m.resolver == nil {
		m.appearance.Apply(next)
		return
	}
	if err := m.resolver.SetTheme(next); err != nil {
		m.setError(fmt.Sprintf("Theme not saved: %v", err))
		return
	}
	m.setStatus("Theme: " + string(next))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m Model) currentTheme() Theme {
	return m.appearance.Theme()
}

func (m Model) bodyHeight() int {
	return maxInt(m.height-2, 1)
}

func describeSetError(err error) string {
	var fe *settings.FieldError
	if errors.As(err, &fe) && errors.Is(err, settings.ErrInvalidValue) {
		return fmt.Sprintf("Invalid value %q for %s", fe.Value, fe.Field)
	}
	return err.Error()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Messages

type savedMsg struct{ err error }

// Commands

func saveCmd(f *state.Facade) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: f.Save()}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Facade == nil {
		return errors.New("ui: facade is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
