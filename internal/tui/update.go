package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesserakit/tessera/pkg/dategrid"
)

const (
	minWidth  = 60
	minHeight = 20
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < minWidth || m.height < minHeight
		m.help.Width = m.width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.NextSection):
		m.section = (m.section + 1) % sectionCount
		return m.enterSection()

	case key.Matches(msg, m.keymap.PrevSection):
		m.section = (m.section + sectionCount - 1) % sectionCount
		return m.enterSection()
	}

	return m.routeToSection(msg)
}

// enterSection runs per-section setup when a tab becomes active.
func (m Model) enterSection() (tea.Model, tea.Cmd) {
	m.log.WithFields(map[string]any{"section": m.section.Title()}).Debug("section changed")
	if m.section == SectionForms && !m.field.Focused() {
		var cmd tea.Cmd
		m.field, cmd = m.field.Focus()
		return m, cmd
	}
	return m, nil
}

// routeToSection forwards a key press to the active section's component.
func (m Model) routeToSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.section {
	case SectionCalendar:
		if key.Matches(msg, m.keymap.ToggleMode) {
			m.rangeMode = !m.rangeMode
			mode := dategrid.ModeSingle
			if m.rangeMode {
				mode = dategrid.ModeRange
			}
			m.calendar = m.calendar.WithMode(mode)
			return m, nil
		}
		m.calendar, cmd = m.calendar.Update(msg)

	case SectionPaginator:
		m.paginator, cmd = m.paginator.Update(msg)

	case SectionForms:
		switch msg.String() {
		case "ctrl+d":
			m.dialog.FocusNext()
		default:
			m.field, cmd = m.field.Update(msg)
		}

	case SectionFeedback:
		switch msg.String() {
		case "up", "k":
			m.accordion.CursorUp()
		case "down", "j":
			m.accordion.CursorDown()
		case "enter", " ":
			m.accordion.ToggleCursor()
		}
	}

	return m, cmd
}
