// Package tui provides the full-screen checklist used by --tui mode.
package tui

import (
	"strconv"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/tui/components"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Outcome is how the operator left the checklist.
type Outcome int

const (
	// OutcomePending means the checklist is still running.
	OutcomePending Outcome = iota
	// OutcomeConfirmed means the operator accepted the selection.
	OutcomeConfirmed
	// OutcomeCancelled means the operator quit without a selection.
	OutcomeCancelled
)

// Model is the top-level bubbletea model wrapping a checklist.
type Model struct {
	help      help.Model
	keymap    KeyMap
	checklist components.ChecklistModel
	config    Config
	outcome   Outcome
	width     int
	height    int
	showHelp  bool
}

// NewModel creates the checklist model for items.
func NewModel(items []components.ChecklistItem, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	checklist := components.NewChecklistModel(cfg.Title, items, cfg.AllSelected, cfg.Theme).
		WithPresets(cfg.Presets)
	checklist.Resize(cfg.Width, cfg.Height-2)

	h := help.New()
	h.Styles.ShortKey = cfg.Theme.Help
	h.Styles.ShortDesc = cfg.Theme.Help
	h.Styles.FullKey = cfg.Theme.Help
	h.Styles.FullDesc = cfg.Theme.Help

	return Model{
		help:      h,
		keymap:    DefaultKeyMap(),
		checklist: checklist,
		config:    cfg,
		width:     cfg.Width,
		height:    cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.checklist.Resize(msg.Width, msg.Height-m.helpHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.checklist, cmd = m.checklist.Update(msg)
	return m, cmd
}

// handleGlobalKeys handles keys that finish the checklist or change the
// selection wholesale.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.outcome = OutcomeCancelled
		return tea.Quit, true
	case key.Matches(msg, m.keymap.Confirm):
		m.outcome = OutcomeConfirmed
		return tea.Quit, true
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.checklist.Resize(m.width, m.height-m.helpHeight())
		return nil, true
	case key.Matches(msg, m.keymap.SelectAll):
		m.checklist.SelectAll()
		return nil, true
	case key.Matches(msg, m.keymap.DeselectAll):
		m.checklist.SelectNone()
		return nil, true
	case key.Matches(msg, m.keymap.Preset):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			m.checklist.ApplyPreset(n - 1)
		}
		return nil, true
	}
	return nil, false
}

func (m Model) helpHeight() int {
	if m.showHelp {
		return len(m.keymap.FullHelp()[0]) + 1
	}
	return 2
}

// View renders the checklist and help line.
func (m Model) View() string {
	if m.outcome != OutcomePending {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.checklist.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return m.config.Theme.RoundedBox.Render(b.String())
}

// Outcome reports how the checklist ended.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Selected returns the checked item names.
func (m Model) Selected() []string {
	return m.checklist.Selected()
}
