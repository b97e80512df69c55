package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tesserakit/tessera/pkg/dategrid"
)

// CalendarKeyMap holds the key bindings of a Calendar.
type CalendarKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Select    key.Binding
}

// DefaultCalendarKeyMap returns the stock calendar bindings.
func DefaultCalendarKeyMap() CalendarKeyMap {
	return CalendarKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("pgup/[", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("pgdn/]", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "go to today"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick date"),
		),
	}
}

// Calendar is an interactive month-view date picker. Grid construction,
// cell classification, and selection transitions are delegated to
// pkg/dategrid; the component owns only cursor movement, key handling,
// and rendering.
type Calendar struct {
	view      dategrid.ViewMonth
	cursor    dategrid.Date
	selection dategrid.Selection
	rules     dategrid.Rules
	today     dategrid.Date
	keymap    CalendarKeyMap
}

// NewCalendar creates a single-select calendar opened on the month
// containing today.
func NewCalendar(today dategrid.Date) Calendar {
	return Calendar{
		view:      dategrid.ViewMonthOf(today),
		cursor:    today,
		selection: dategrid.NewSelection(dategrid.ModeSingle),
		today:     today,
		keymap:    DefaultCalendarKeyMap(),
	}
}

// WithMode switches the selection mode, clearing any prior selection.
func (c Calendar) WithMode(mode dategrid.Mode) Calendar {
	c.selection = dategrid.NewSelection(mode)
	return c
}

// WithRules installs the disabled-date rules.
func (c Calendar) WithRules(rules dategrid.Rules) Calendar {
	c.rules = rules
	return c
}

// WithKeyMap overrides the key bindings.
func (c Calendar) WithKeyMap(keymap CalendarKeyMap) Calendar {
	c.keymap = keymap
	return c
}

// Selection returns the current selection state.
func (c Calendar) Selection() dategrid.Selection {
	return c.selection
}

// Cursor returns the highlighted date.
func (c Calendar) Cursor() dategrid.Date {
	return c.cursor
}

// Month returns the displayed view month.
func (c Calendar) Month() dategrid.ViewMonth {
	return c.view
}

// KeyMap exposes the bindings for help footers.
func (c Calendar) KeyMap() CalendarKeyMap {
	return c.keymap
}

// Init implements tea.Model.
func (c Calendar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Calendar) Update(msg tea.Msg) (Calendar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keymap.Left):
		c = c.moveCursor(-1)
	case key.Matches(keyMsg, c.keymap.Right):
		c = c.moveCursor(1)
	case key.Matches(keyMsg, c.keymap.Up):
		c = c.moveCursor(-7)
	case key.Matches(keyMsg, c.keymap.Down):
		c = c.moveCursor(7)
	case key.Matches(keyMsg, c.keymap.PrevMonth):
		c = c.shiftMonth(c.view.Prev())
	case key.Matches(keyMsg, c.keymap.NextMonth):
		c = c.shiftMonth(c.view.Next())
	case key.Matches(keyMsg, c.keymap.Today):
		c.cursor = c.today
		c.view = dategrid.ViewMonthOf(c.today)
		c = c.syncHover()
	case key.Matches(keyMsg, c.keymap.Select):
		c = c.pick()
	}
	return c, nil
}

func (c Calendar) moveCursor(days int) Calendar {
	c.cursor = c.cursor.AddDays(days)
	if !c.view.Contains(c.cursor) {
		c.view = dategrid.ViewMonthOf(c.cursor)
	}
	return c.syncHover()
}

// shiftMonth navigates the view, clamping the cursor's day to the new
// month's length.
func (c Calendar) shiftMonth(view dategrid.ViewMonth) Calendar {
	c.view = view
	day := c.cursor.Day
	if limit := dategrid.DaysInMonth(view.Year, view.Month); day > limit {
		day = limit
	}
	c.cursor = dategrid.NewDate(view.Year, view.Month, day)
	return c.syncHover()
}

// pick applies the cursor as a click. Disabled dates are rejected here;
// the engine assumes validated input.
func (c Calendar) pick() Calendar {
	if c.rules.Disabled(c.cursor) {
		return c
	}
	c.selection = dategrid.Select(c.selection, c.cursor)
	return c.syncHover()
}

// syncHover mirrors the cursor into the selection's hover mark so a
// pending range previews as the cursor moves.
func (c Calendar) syncHover() Calendar {
	if c.selection.Mode == dategrid.ModeRange && c.selection.Phase == dategrid.PhasePickingEnd {
		c.selection = c.selection.WithHover(c.cursor)
	} else {
		c.selection = c.selection.ClearHover()
	}
	return c
}

const calendarCellWidth = 4

// View implements tea.Model.
func (c Calendar) View() string {
	return c.ViewWith(GetTheme())
}

// ViewWith renders the calendar against an explicit theme.
func (c Calendar) ViewWith(theme Theme) string {
	width := calendarCellWidth * 7

	header := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyTitle)).
		Render(fmt.Sprintf("%s %d", c.view.Month, c.view.Year))
	weekdays := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyCaption)).
		Render(" Su  Mo  Tu  We  Th  Fr  Sa")

	var rows []string
	rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
	rows = append(rows, weekdays)

	grid := c.view.Grid()
	for week := 0; week < len(grid); week += 7 {
		end := week + 7
		if end > len(grid) {
			end = len(grid)
		}
		var cells []string
		for _, cell := range grid[week:end] {
			cells = append(cells, c.renderCell(theme, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

func (c Calendar) renderCell(theme Theme, cell *dategrid.Date) string {
	if cell == nil {
		return strings.Repeat(" ", calendarCellWidth)
	}

	state := dategrid.Classify(*cell, c.selection, c.rules, c.today)
	style := cellStyle(theme, state).Width(calendarCellWidth).Align(lipgloss.Center)
	if cell.Equal(c.cursor) {
		style = style.Reverse(true)
	}
	return style.Render(fmt.Sprintf("%d", cell.Day))
}

func cellStyle(theme Theme, state dategrid.CellState) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch state {
	case dategrid.CellDisabled:
		return StyleWith(theme, base, Foreground(SlotNeutral)).Faint(true)
	case dategrid.CellSelected, dategrid.CellRangeStart, dategrid.CellRangeEnd:
		return StyleWith(theme, base, Background(SlotPrimary), Typography(TypographyEmphasis))
	case dategrid.CellInRange:
		return base.Background(theme.Palette.Surface.Muted).Foreground(theme.Palette.Surface.OnBase)
	case dategrid.CellToday:
		return StyleWith(theme, base, Foreground(SlotAccent), Typography(TypographyEmphasis))
	default:
		return StyleWith(theme, base, Typography(TypographyBody))
	}
}
