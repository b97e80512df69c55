package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered container with an optional title and footer.
type Card struct {
	title  string
	body   string
	footer string
	width  int
}

// NewCard creates a card with the given body text.
func NewCard(body string) *Card {
	return &Card{body: body, width: 48}
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets the card footer.
func (c *Card) WithFooter(footer string) *Card {
	c.footer = footer
	return c
}

// WithWidth sets the card width in cells.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// View renders the card against the active theme.
func (c *Card) View() string {
	return c.ViewWith(GetTheme())
}

// ViewWith renders the card against an explicit theme.
func (c *Card) ViewWith(theme Theme) string {
	box := StyleWith(theme, lipgloss.NewStyle(),
		Border(BorderRounded),
		BorderTint(SlotNeutral),
		Padding(SpacingXs),
	).Width(c.width)

	var sections []string
	if c.title != "" {
		title := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyTitle))
		sections = append(sections, title.Render(c.title))
	}
	if c.body != "" {
		body := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyBody))
		sections = append(sections, body.Render(wrapText(c.body, c.innerWidth())))
	}
	if c.footer != "" {
		footer := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyCaption))
		sections = append(sections, footer.Render(c.footer))
	}

	return box.Render(strings.Join(sections, "\n"))
}

func (c *Card) innerWidth() int {
	// Border plus padding on each side.
	inner := c.width - 4
	if inner < 1 {
		return 1
	}
	return inner
}

// wrapText wraps words to the given width, breaking words longer than a
// full line.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	for _, word := range words {
		if utf8.RuneCountInString(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			for len(runes) > width {
				lines = append(lines, string(runes[:width]))
				runes = runes[width:]
			}
			current = string(runes)
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= width {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}
