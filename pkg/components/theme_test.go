package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, "#2563eb", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#0f172a", theme.Palette.Surface.OnBase.Light)

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, lipgloss.DoubleBorder(), theme.Borders.Double)

	assert.Equal(t, 2, theme.SpacingFor(SpacingMd))
	assert.Equal(t, 0, theme.SpacingFor(SpacingNone))

	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
}

func TestDarkThemeDiffersFromDefault(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, "dark", dark.Name)
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light)
	assert.NotEqual(t, light.Typography.Body.GetForeground(), dark.Typography.Body.GetForeground())
}

func TestSetGetTheme(t *testing.T) {
	original := GetTheme()

	custom := DefaultTheme()
	custom.Name = "custom"
	custom.Palette.Primary.Base = lipgloss.AdaptiveColor{Light: "#112233", Dark: "#445566"}
	SetTheme(custom)

	active := GetTheme()
	assert.Equal(t, "custom", active.Name)
	assert.Equal(t, "#112233", active.Palette.Primary.Base.Light)

	SetTheme(original)
}

func TestNormalizeThemeFillsSpacing(t *testing.T) {
	theme := normalizeTheme(Theme{})
	assert.Equal(t, defaultSpacingScale(), theme.Spacing)
}

func TestSpacingForClampsUnknownTokens(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme.SpacingFor(SpacingMd), theme.SpacingFor(SpacingSize(99)))
	assert.Equal(t, theme.SpacingFor(SpacingMd), theme.SpacingFor(SpacingSize(-1)))
}

func TestFieldForStates(t *testing.T) {
	theme := DefaultTheme()

	focus := theme.FieldFor(FieldStateFocus)
	invalid := theme.FieldFor(FieldStateInvalid)

	assert.NotEqual(t, theme.FieldFor(FieldStateDefault).GetBorderStyle(), focus.GetBorderStyle())
	assert.Equal(t, theme.Palette.Danger.Base, invalid.GetBorderTopForeground())
}

func TestVariantSlots(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme.Palette.Success, VariantSuccess.Slot()(theme.Palette))
	assert.Equal(t, theme.Palette.Surface, VariantGhost.Slot()(theme.Palette))
	assert.Equal(t, "danger", VariantDanger.String())
	assert.Equal(t, "primary", VariantPrimary.String())
}
