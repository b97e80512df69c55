package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AccordionSection is one collapsible entry of an accordion.
type AccordionSection struct {
	Title string
	Body  string
}

// Accordion is a vertical list of collapsible sections. By default a
// single section may be open at a time; multi-open mode lifts that.
type Accordion struct {
	sections  []AccordionSection
	open      map[int]bool
	multiOpen bool
	cursor    int
	width     int
}

// NewAccordion creates an accordion from the given sections.
func NewAccordion(sections ...AccordionSection) *Accordion {
	return &Accordion{
		sections: sections,
		open:     make(map[int]bool),
		width:    48,
	}
}

// WithMultiOpen allows several sections to stay open at once.
func (a *Accordion) WithMultiOpen(multi bool) *Accordion {
	a.multiOpen = multi
	return a
}

// WithWidth sets the accordion width in cells.
func (a *Accordion) WithWidth(width int) *Accordion {
	a.width = width
	return a
}

// Toggle opens or closes the section at index. In single-open mode,
// opening a section closes every other one. Out-of-range indexes are
// ignored.
func (a *Accordion) Toggle(index int) {
	if index < 0 || index >= len(a.sections) {
		return
	}
	if a.open[index] {
		a.open[index] = false
		return
	}
	if !a.multiOpen {
		for i := range a.open {
			a.open[i] = false
		}
	}
	a.open[index] = true
}

// IsOpen reports whether the section at index is open.
func (a *Accordion) IsOpen(index int) bool {
	return a.open[index]
}

// CursorUp moves the highlight up one section.
func (a *Accordion) CursorUp() {
	if a.cursor > 0 {
		a.cursor--
	}
}

// CursorDown moves the highlight down one section.
func (a *Accordion) CursorDown() {
	if a.cursor < len(a.sections)-1 {
		a.cursor++
	}
}

// Cursor returns the highlighted section index.
func (a *Accordion) Cursor() int {
	return a.cursor
}

// ToggleCursor toggles the highlighted section.
func (a *Accordion) ToggleCursor() {
	a.Toggle(a.cursor)
}

// View renders the accordion against the active theme.
func (a *Accordion) View() string {
	return a.ViewWith(GetTheme())
}

// ViewWith renders the accordion against an explicit theme.
func (a *Accordion) ViewWith(theme Theme) string {
	header := StyleWith(theme, lipgloss.NewStyle(),
		Typography(TypographyEmphasis),
		PaddingX(SpacingXs),
	).Width(a.width)
	focused := StyleWith(theme, header, Background(SlotPrimary))
	body := StyleWith(theme, lipgloss.NewStyle(),
		Typography(TypographyBody),
		PaddingX(SpacingMd),
	).Width(a.width)

	var rows []string
	for i, section := range a.sections {
		marker := "▸"
		if a.open[i] {
			marker = "▾"
		}
		line := marker + " " + section.Title

		if i == a.cursor {
			rows = append(rows, focused.Render(line))
		} else {
			rows = append(rows, header.Render(line))
		}
		if a.open[i] {
			rows = append(rows, body.Render(wrapText(section.Body, a.width-4)))
		}
	}
	return strings.Join(rows, "\n")
}
