package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserakit/tessera/pkg/kiterrors"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemeOverridesPalette(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
name: ocean
base: dark
palette:
  primary:
    base: {light: "#0e7490", dark: "#67e8f9"}
    on_base: {light: "#ecfeff"}
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "ocean", theme.Name)
	assert.Equal(t, "#0e7490", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#67e8f9", theme.Palette.Primary.Base.Dark)
	// Single-valued colours reuse the light value for dark backgrounds.
	assert.Equal(t, "#ecfeff", theme.Palette.Primary.OnBase.Dark)
	// Untouched slots keep the base theme's colours.
	assert.NotEmpty(t, theme.Palette.Danger.Base.Light)
}

func TestLoadThemeAppliesSpacing(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
name: airy
spacing: [0, 1, 2, 3, 4, 6]
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, 6, theme.Spacing[len(theme.Spacing)-1])
}

func TestLoadThemeRejectsBadHexColour(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
name: broken
palette:
  primary:
    base: {light: "not-a-colour"}
`)

	_, err := LoadTheme(path)
	require.Error(t, err)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "Light")
}

func TestLoadThemeRejectsUnknownSlot(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
name: odd
palette:
  sparkle:
    base: {light: "#ffffff"}
`)

	_, err := LoadTheme(path)
	require.Error(t, err)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadThemeRejectsBadName(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "name: \"Has Spaces\"\n")
	_, err := LoadTheme(path)
	require.Error(t, err)
}

func TestLoadThemeReportsParseLine(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "name: x\npalette: [broken\n")
	_, err := LoadTheme(path)
	require.Error(t, err)

	var parseErr *kiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *kiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestBaseThemeResolution(t *testing.T) {
	t.Parallel()

	def, err := BaseTheme("")
	require.NoError(t, err)
	assert.Equal(t, "default", def.Name)

	dark, err := BaseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", dark.Name)

	_, err = BaseTheme("neon")
	var themeErr *kiterrors.ThemeError
	require.ErrorAs(t, err, &themeErr)
	assert.Equal(t, "neon", themeErr.Theme)
}
