package config

// ThemeFile is the on-disk YAML shape of a user theme. Missing palette
// slots fall back to the base theme the file extends.
type ThemeFile struct {
	Name    string              `yaml:"name" validate:"required,theme_name"`
	Base    string              `yaml:"base" validate:"omitempty,oneof=default dark"`
	Palette map[string]SlotSpec `yaml:"palette" validate:"dive,keys,theme_slot,endkeys"`
	Spacing []int               `yaml:"spacing" validate:"omitempty,len=6,dive,min=0,max=8"`
}

// SlotSpec overrides one semantic palette slot.
type SlotSpec struct {
	Base   ColourSpec `yaml:"base" validate:"required"`
	OnBase ColourSpec `yaml:"on_base"`
	Muted  ColourSpec `yaml:"muted"`
}

// ColourSpec is an adaptive colour: a light-background hex value and an
// optional dark-background one. An empty Dark reuses Light.
type ColourSpec struct {
	Light string `yaml:"light" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark" validate:"omitempty,hexcolor"`
}

// IsZero reports whether no colour was provided for either mode.
func (c ColourSpec) IsZero() bool {
	return c.Light == "" && c.Dark == ""
}
