package components

// Variant is the shared semantic-intent token used by buttons, badges,
// alerts, and loaders.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantAccent
	VariantSuccess
	VariantWarning
	VariantDanger
	VariantInfo
	VariantNeutral
	VariantGhost
)

// Slot returns the palette slot backing a variant. Ghost renders on the
// surface slot so it carries no fill of its own.
func (v Variant) Slot() PaletteSlot {
	switch v {
	case VariantAccent:
		return SlotAccent
	case VariantSuccess:
		return SlotSuccess
	case VariantWarning:
		return SlotWarning
	case VariantDanger:
		return SlotDanger
	case VariantInfo:
		return SlotInfo
	case VariantNeutral:
		return SlotNeutral
	case VariantGhost:
		return SlotSurface
	default:
		return SlotPrimary
	}
}

// String returns the lowercase variant name, used in config files and the
// gallery.
func (v Variant) String() string {
	switch v {
	case VariantAccent:
		return "accent"
	case VariantSuccess:
		return "success"
	case VariantWarning:
		return "warning"
	case VariantDanger:
		return "danger"
	case VariantInfo:
		return "info"
	case VariantNeutral:
		return "neutral"
	case VariantGhost:
		return "ghost"
	default:
		return "primary"
	}
}
