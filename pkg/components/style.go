package components

import "github.com/charmbracelet/lipgloss"

// StyleApplier transforms a style using data from a theme. Components
// compose their appearance from chains of appliers so every visual
// decision stays theme-driven.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc adapts a plain function to the StyleApplier interface.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style runs the appliers over a base style against the active theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	return StyleWith(GetTheme(), base, appliers...)
}

// StyleWith runs the appliers over a base style against an explicit theme.
func StyleWith(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// Background fills the component with a slot colour and sets the matching
// on-colour for its content.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours content with a slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// MutedForeground colours content with a slot's muted colour.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Border draws the variant's border around the component.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.BorderFor(variant))
	}
}

// BorderTint colours an already-applied border with a slot colour.
func BorderTint(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Padding applies uniform padding from the spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(theme.SpacingFor(size))
	}
}

// PaddingX applies horizontal padding from the spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.SpacingFor(size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// PaddingY applies vertical padding from the spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.SpacingFor(size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

// MarginX applies horizontal margin from the spacing scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.SpacingFor(size)
		return base.MarginLeft(v).MarginRight(v)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.TypographyFor(variant))
	}
}
