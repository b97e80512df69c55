package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserakit/tessera/internal/logger"
)

func testModel(t *testing.T) Model {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return NewModel(log)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSectionCycling(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	assert.Equal(t, SectionCalendar, m.Section())

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, SectionPaginator, m.Section())

	prev, _ := m.Update(keyMsg("shift+tab"))
	m = prev.(Model)
	assert.Equal(t, SectionCalendar, m.Section())

	// Cycling backwards from the first section wraps to the last.
	prev, _ = m.Update(keyMsg("shift+tab"))
	m = prev.(Model)
	assert.Equal(t, SectionMarketing, m.Section())
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestCalendarSectionRoutesKeys(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	start := m.calendar.Cursor()

	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)
	assert.True(t, m.calendar.Cursor().Equal(start.AddDays(1)))
}

func TestCalendarModeToggle(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	next, _ := m.Update(keyMsg("m"))
	m = next.(Model)
	assert.True(t, m.rangeMode)

	next, _ = m.Update(keyMsg("m"))
	m = next.(Model)
	assert.False(t, m.rangeMode)
}

func TestPaginatorSectionRoutesKeys(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	require.Equal(t, SectionPaginator, m.Section())

	next, _ = m.Update(keyMsg("right"))
	m = next.(Model)
	assert.Equal(t, 2, m.paginator.Page())
}

func TestWindowSizeGuard(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(Model)
	assert.True(t, m.tooSmall)
	assert.Contains(t, m.View(), "Terminal too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.False(t, m.tooSmall)
}

func TestViewRendersEachSection(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	for s := Section(0); s < sectionCount; s++ {
		m.section = s
		out := m.View()
		assert.Contains(t, out, s.Title())
		assert.NotEmpty(t, out)
	}
}
