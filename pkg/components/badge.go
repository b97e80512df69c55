package components

import "github.com/charmbracelet/lipgloss"

// Badge is a compact inline status indicator.
type Badge struct {
	text    string
	variant Variant
}

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{text: text, variant: VariantNeutral}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant Variant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// View renders the badge against the active theme.
func (b *Badge) View() string {
	return b.ViewWith(GetTheme())
}

// ViewWith renders the badge against an explicit theme.
func (b *Badge) ViewWith(theme Theme) string {
	style := StyleWith(theme, lipgloss.NewStyle(),
		Background(b.variant.Slot()),
		PaddingX(SpacingXs),
		Typography(TypographyEmphasis),
	)
	return style.Render(b.text)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantSuccess)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantDanger)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantInfo)
}
