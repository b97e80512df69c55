package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Size represents the available component sizes.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  Variant
	Size     Size
	Disabled bool
	Focused  bool
}

// Button is a clickable button component. Interaction is owned by the
// surrounding program; the button only renders its state.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// SimpleButton creates a medium primary button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{Variant: VariantPrimary, Size: SizeMedium})
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size Size) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the focus state.
func (b *Button) WithFocus(focused bool) *Button {
	b.options.Focused = focused
	return b
}

// View renders the button against the active theme.
func (b *Button) View() string {
	return b.ViewWith(GetTheme())
}

// ViewWith renders the button against an explicit theme.
func (b *Button) ViewWith(theme Theme) string {
	appliers := []StyleApplier{
		Border(BorderRounded),
		PaddingX(buttonPadding(b.options.Size)),
		Typography(TypographyEmphasis),
	}

	if b.options.Variant == VariantGhost {
		appliers = append(appliers, Foreground(SlotPrimary), BorderTint(SlotNeutral))
	} else {
		appliers = append(appliers, Background(b.options.Variant.Slot()))
	}

	style := StyleWith(theme, lipgloss.NewStyle(), appliers...)

	switch {
	case b.options.Disabled:
		style = StyleWith(theme, style, Foreground(SlotNeutral), BorderTint(SlotNeutral)).
			Faint(true).
			UnsetBackground()
	case b.options.Focused:
		style = StyleWith(theme, style, Border(BorderThick), BorderTint(SlotPrimary))
	}

	return style.Render(b.label)
}

func buttonPadding(size Size) SpacingSize {
	switch size {
	case SizeSmall:
		return SpacingXs
	case SizeLarge:
		return SpacingLg
	default:
		return SpacingMd
	}
}

// ButtonGroup lays out buttons horizontally with uniform spacing.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a group from the given buttons.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 1}
}

// WithSpacing sets the gap between buttons in cells.
func (g *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	g.spacing = spacing
	return g
}

// Add appends a button to the group.
func (g *ButtonGroup) Add(button *Button) *ButtonGroup {
	g.buttons = append(g.buttons, button)
	return g
}

// View renders the group.
func (g *ButtonGroup) View() string {
	if len(g.buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(g.buttons)*2-1)
	gap := strings.Repeat(" ", g.spacing)
	for i, button := range g.buttons {
		if i > 0 {
			rendered = append(rendered, gap)
		}
		rendered = append(rendered, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}
