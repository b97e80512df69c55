// Package config loads user theme files and turns them into component
// themes. A theme file names a stock base theme and overrides palette
// slots and the spacing scale.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tesserakit/tessera/pkg/components"
	"github.com/tesserakit/tessera/pkg/kiterrors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadTheme reads a theme file from disk, validates it, and resolves it
// into a component theme.
func LoadTheme(path string) (components.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return components.Theme{}, kiterrors.NewParseError(path, 0, err)
	}

	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return components.Theme{}, kiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return components.Theme{}, err
	}

	return ResolveTheme(file)
}

// ValidateThemeFile runs struct validation over a parsed theme file.
func ValidateThemeFile(file *ThemeFile) error {
	if err := validatorInstance().Struct(file); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return kiterrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q rule", fe.Tag()), err)
		}
		return kiterrors.NewValidationError("", err.Error(), err)
	}
	return nil
}

// ResolveTheme builds a component theme from a validated file.
func ResolveTheme(file ThemeFile) (components.Theme, error) {
	theme, err := BaseTheme(file.Base)
	if err != nil {
		return components.Theme{}, err
	}
	theme.Name = file.Name

	for slot, spec := range file.Palette {
		target := slotTarget(&theme.Palette, slot)
		if target == nil {
			return components.Theme{}, kiterrors.NewThemeError(file.Name, fmt.Errorf("unknown palette slot %q", slot))
		}
		applySlotSpec(target, spec)
	}

	if len(file.Spacing) == len(theme.Spacing) {
		copy(theme.Spacing[:], file.Spacing)
	}
	return theme, nil
}

// BaseTheme resolves a stock theme by name; empty means default.
func BaseTheme(name string) (components.Theme, error) {
	switch name {
	case "", "default":
		return components.DefaultTheme(), nil
	case "dark":
		return components.DarkTheme(), nil
	default:
		return components.Theme{}, kiterrors.NewThemeError(name, fmt.Errorf("unknown base theme"))
	}
}

func slotTarget(p *components.Palette, slot string) *components.ColourSet {
	switch slot {
	case "primary":
		return &p.Primary
	case "accent":
		return &p.Accent
	case "surface":
		return &p.Surface
	case "success":
		return &p.Success
	case "warning":
		return &p.Warning
	case "danger":
		return &p.Danger
	case "info":
		return &p.Info
	case "neutral":
		return &p.Neutral
	default:
		return nil
	}
}

func applySlotSpec(target *components.ColourSet, spec SlotSpec) {
	if !spec.Base.IsZero() {
		target.Base = adaptive(spec.Base)
	}
	if !spec.OnBase.IsZero() {
		target.OnBase = adaptive(spec.OnBase)
	}
	if !spec.Muted.IsZero() {
		target.Muted = adaptive(spec.Muted)
	}
}

func adaptive(spec ColourSpec) lipgloss.AdaptiveColor {
	dark := spec.Dark
	if dark == "" {
		dark = spec.Light
	}
	return lipgloss.AdaptiveColor{Light: spec.Light, Dark: dark}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
