package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is a full-width hero section: a headline, a tagline, and a row
// of call-to-action buttons.
type Banner struct {
	headline string
	tagline  string
	actions  []*Button
	width    int
}

// NewBanner creates a banner with the given headline.
func NewBanner(headline string) *Banner {
	return &Banner{headline: headline, width: 64}
}

// WithTagline sets the tagline under the headline.
func (b *Banner) WithTagline(tagline string) *Banner {
	b.tagline = tagline
	return b
}

// WithActions sets the call-to-action buttons.
func (b *Banner) WithActions(actions ...*Button) *Banner {
	b.actions = actions
	return b
}

// WithWidth sets the banner width in cells.
func (b *Banner) WithWidth(width int) *Banner {
	b.width = width
	return b
}

// View renders the banner against the active theme.
func (b *Banner) View() string {
	return b.ViewWith(GetTheme())
}

// ViewWith renders the banner against an explicit theme.
func (b *Banner) ViewWith(theme Theme) string {
	inner := b.width - 2
	if inner < 1 {
		inner = 1
	}

	headline := StyleWith(theme, lipgloss.NewStyle(),
		Typography(TypographyTitle),
	).Render(b.headline)

	var rows []string
	rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, headline))

	if b.tagline != "" {
		tagline := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographySubtitle)).
			Render(wrapText(b.tagline, inner))
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, tagline))
	}

	if len(b.actions) > 0 {
		group := NewButtonGroup(b.actions...).WithSpacing(2).View()
		rows = append(rows, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, group))
	}

	box := StyleWith(theme, lipgloss.NewStyle(),
		Border(BorderThick),
		BorderTint(SlotAccent),
		PaddingY(SpacingXs),
	).Width(b.width)

	return box.Render(strings.Join(rows, "\n"))
}
