// Package components is a theme-aware terminal UI component kit: buttons,
// badges, alerts, cards, accordions, dialogs, loaders, form fields,
// banners, plus interactive Calendar and Paginator components whose
// computational cores live in pkg/dategrid and pkg/pagewindow.
package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colours of one semantic slot: the slot colour
// itself, the colour of content drawn on top of it, and a muted variant.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette holds the semantic colour slots components style themselves
// with.
type Palette struct {
	Primary Colour
	Accent  Colour
	Surface Colour
	Success Colour
	Warning Colour
	Danger  Colour
	Info    Colour
	Neutral Colour
}

// Colour is an alias kept narrow so palettes read as a flat table.
type Colour = ColourSet

// PaletteSlot selects one colour slot from a palette.
type PaletteSlot func(Palette) ColourSet

var (
	SlotPrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	SlotAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	SlotSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	SlotSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	SlotWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	SlotDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	SlotInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	SlotNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant names the border shapes available to components.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

// BorderSet maps border variants to lipgloss borders.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize is a token on the theme's spacing scale.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXs
	SpacingSm
	SpacingMd
	SpacingLg
	SpacingXl
)

const spacingCount = int(SpacingXl) + 1

// SpacingScale maps spacing tokens to cell counts.
type SpacingScale [spacingCount]int

// TypographyVariant names the typography presets of a theme.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyCaption
	TypographyCode
	TypographyEmphasis
)

// TypographyScale contains the semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// FieldState is the visual state of a form field.
type FieldState int

const (
	FieldStateDefault FieldState = iota
	FieldStateFocus
	FieldStateInvalid
)

// FieldStyles describes the form field styles per state.
type FieldStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// Theme is the complete styling contract shared by every component.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingScale
	Typography TypographyScale
	Field      FieldStyles
}

// ThemeManager guards concurrent access to the active theme.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a manager seeded with the given theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if theme.Spacing == (SpacingScale{}) {
		theme.Spacing = defaultSpacingScale()
	}
	return theme
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{
		SpacingNone: 0,
		SpacingXs:   1,
		SpacingSm:   1,
		SpacingMd:   2,
		SpacingLg:   3,
		SpacingXl:   4,
	}
}

var activeTheme = NewThemeManager(DefaultTheme())

// SetTheme replaces the kit-wide active theme.
func SetTheme(theme Theme) {
	activeTheme.SetTheme(theme)
}

// GetTheme returns the kit-wide active theme.
func GetTheme() Theme {
	return activeTheme.Theme()
}

// DefaultTheme returns the stock light-first adaptive theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#2563eb", "#60a5fa"),
			OnBase: ac("#eff6ff", "#0c1222"),
			Muted:  ac("#1d4ed8", "#3b82f6"),
		},
		Accent: ColourSet{
			Base:   ac("#9333ea", "#c084fc"),
			OnBase: ac("#faf5ff", "#1c1027"),
			Muted:  ac("#7c3aed", "#a855f7"),
		},
		Surface: ColourSet{
			Base:   ac("#f8fafc", "#0f172a"),
			OnBase: ac("#0f172a", "#e2e8f0"),
			Muted:  ac("#e2e8f0", "#1e293b"),
		},
		Success: ColourSet{
			Base:   ac("#16a34a", "#4ade80"),
			OnBase: ac("#f0fdf4", "#052e16"),
			Muted:  ac("#15803d", "#22c55e"),
		},
		Warning: ColourSet{
			Base:   ac("#d97706", "#fbbf24"),
			OnBase: ac("#fffbeb", "#451a03"),
			Muted:  ac("#b45309", "#f59e0b"),
		},
		Danger: ColourSet{
			Base:   ac("#dc2626", "#f87171"),
			OnBase: ac("#fef2f2", "#450a0a"),
			Muted:  ac("#b91c1c", "#ef4444"),
		},
		Info: ColourSet{
			Base:   ac("#0891b2", "#22d3ee"),
			OnBase: ac("#ecfeff", "#083344"),
			Muted:  ac("#0e7490", "#06b6d4"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := defaultTypography(palette)

	field := FieldStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Invalid: lipgloss.NewStyle().
			BorderStyle(borders.Normal).
			BorderForeground(palette.Danger.Base).
			Padding(0, 1).
			Foreground(palette.Danger.Base),
	}

	return normalizeTheme(Theme{
		Name:       "default",
		Palette:    palette,
		Borders:    borders,
		Spacing:    defaultSpacingScale(),
		Typography: typography,
		Field:      field,
	})
}

// DarkTheme returns the stock dark variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#020617"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#cbd5e1"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1e293b", Dark: "#0f172a"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#334155", Dark: "#1e293b"},
		OnBase: lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#94a3b8"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1e293b", Dark: "#0f172a"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	return normalizeTheme(theme)
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Caption:  body.Faint(true),
		Code:     body.Foreground(p.Accent.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

// TypographyFor returns the preset for the given variant from a theme.
func (t Theme) TypographyFor(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyTitle:
		return t.Typography.Title
	case TypographySubtitle:
		return t.Typography.Subtitle
	case TypographyCaption:
		return t.Typography.Caption
	case TypographyCode:
		return t.Typography.Code
	case TypographyEmphasis:
		return t.Typography.Emphasis
	default:
		return t.Typography.Body
	}
}

// BorderFor returns the border for the given variant from a theme.
func (t Theme) BorderFor(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderNormal:
		return t.Borders.Normal
	case BorderRounded:
		return t.Borders.Rounded
	case BorderThick:
		return t.Borders.Thick
	case BorderDouble:
		return t.Borders.Double
	default:
		return t.Borders.None
	}
}

// SpacingFor returns the cell count for a spacing token, clamping unknown
// tokens to the medium step.
func (t Theme) SpacingFor(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingCount {
		index = int(SpacingMd)
	}
	return t.Spacing[index]
}

// FieldFor returns the form-field style for the given state.
func (t Theme) FieldFor(state FieldState) lipgloss.Style {
	switch state {
	case FieldStateFocus:
		return t.Field.Focus
	case FieldStateInvalid:
		return t.Field.Invalid
	default:
		return t.Field.Default
	}
}
