// Package components contains the bubbletea building blocks of the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/selection"
	"github.com/Veraticus/kurmi-workspace/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

// ChecklistItem is one row of the checklist.
type ChecklistItem struct {
	Name   string
	Detail string
}

// ChecklistModel is a scrollable multi-select list backed by a selection.Set.
type ChecklistModel struct {
	theme   themes.Theme
	set     *selection.Set
	title   string
	message string
	items   []ChecklistItem
	presets []model.VendorPreset
	cursor  int
	offset  int
	width   int
	height  int
}

// NewChecklistModel creates a checklist. allSelected chooses whether every
// item starts checked.
func NewChecklistModel(title string, items []ChecklistItem, allSelected bool, theme themes.Theme) ChecklistModel {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	set := selection.New(names)
	if allSelected {
		set = selection.NewAllSelected(names)
	}

	return ChecklistModel{
		theme:  theme,
		set:    set,
		title:  title,
		items:  items,
		width:  80,
		height: 20,
	}
}

// WithPresets returns a copy of the checklist offering presets by number key.
func (m ChecklistModel) WithPresets(presets []model.VendorPreset) ChecklistModel {
	m.presets = presets
	return m
}

// Update handles navigation and toggling keys.
func (m ChecklistModel) Update(msg tea.Msg) (ChecklistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if len(m.items) == 0 {
			return m, nil
		}
		switch msg.String() {
		case "j", "down":
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case "k", "up":
			m.cursor = max(m.cursor-1, 0)
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = max(len(m.items)-1, 0)
		case "pgdown":
			m.cursor = min(m.cursor+m.visibleRows(), len(m.items)-1)
		case "pgup":
			m.cursor = max(m.cursor-m.visibleRows(), 0)
		case " ", "x":
			m.set.Toggle(m.cursor)
		}
		m.clampScroll()

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// SelectAll checks every item.
func (m *ChecklistModel) SelectAll() {
	m.set.SelectAll()
	m.message = "Selected all"
}

// SelectNone clears every item.
func (m *ChecklistModel) SelectNone() {
	m.set.SelectNone()
	m.message = "Cleared selection"
}

// ApplyPreset adds the vendors of the preset at zero-based index i.
// It reports false when there is no such preset.
func (m *ChecklistModel) ApplyPreset(i int) bool {
	if i < 0 || i >= len(m.presets) {
		return false
	}
	preset := m.presets[i]
	matched := m.set.Add(preset.Vendors...)
	m.message = fmt.Sprintf("Applied preset %s: added %d, %d selected", preset.Name, matched, m.set.Count())
	return true
}

// Resize sets the available area.
func (m *ChecklistModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// Selected returns the checked item names in list order.
func (m ChecklistModel) Selected() []string {
	return m.set.Selected()
}

// Cursor returns the highlighted row.
func (m ChecklistModel) Cursor() int {
	return m.cursor
}

// View renders the checklist.
func (m ChecklistModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%d of %d selected", m.set.Count(), len(m.items))))
	b.WriteString("\n\n")

	end := min(m.offset+m.visibleRows(), len(m.items))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(m.theme.Detail.Render(fmt.Sprintf("  … %d more", len(m.items)-end)))
		b.WriteString("\n")
	}

	if len(m.presets) > 0 {
		b.WriteString("\n")
		for i, p := range m.presets {
			if i >= 9 {
				break
			}
			b.WriteString(m.theme.Help.Render(fmt.Sprintf("  %d: %s preset (%s)", i+1, p.Name, p.Description)))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Message.Render(m.message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m ChecklistModel) renderRow(i int) string {
	item := m.items[i]

	box := m.theme.Unchecked.Render("[ ]")
	if m.set.IsSelected(i) {
		box = m.theme.Checked.Render("[x]")
	}

	line := fmt.Sprintf("%3d. %s %-30s", i+1, box, item.Name)
	if item.Detail != "" {
		line += " " + m.theme.Detail.Render(item.Detail)
	}

	if i == m.cursor {
		return m.theme.Cursor.Render("> " + line)
	}
	return "  " + line
}

// visibleRows is the number of item rows that fit below the header and
// above the preset and message lines.
func (m ChecklistModel) visibleRows() int {
	reserved := 6
	if len(m.presets) > 0 {
		reserved += min(len(m.presets), 9) + 1
	}
	return max(m.height-reserved, 1)
}

func (m *ChecklistModel) clampScroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}
