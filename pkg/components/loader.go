package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loader is a spinner-based loading indicator with a label.
type Loader struct {
	spinner spinner.Model
	label   string
	variant Variant
}

// NewLoader creates a loader with the given label.
func NewLoader(label string) Loader {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Style(lipgloss.NewStyle(), Foreground(SlotPrimary))
	return Loader{spinner: s, label: label, variant: VariantPrimary}
}

// WithVariant tints the spinner with the variant's slot colour.
func (l Loader) WithVariant(variant Variant) Loader {
	l.variant = variant
	l.spinner.Style = Style(lipgloss.NewStyle(), Foreground(variant.Slot()))
	return l
}

// WithGlyphs swaps the spinner frame set.
func (l Loader) WithGlyphs(glyphs spinner.Spinner) Loader {
	l.spinner.Spinner = glyphs
	return l
}

// SetLabel updates the loader label.
func (l Loader) SetLabel(label string) Loader {
	l.label = label
	return l
}

// Tick returns the command that starts or continues the spin animation.
func (l Loader) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l Loader) Update(msg tea.Msg) (Loader, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the spinner frame followed by the label.
func (l Loader) View() string {
	label := Style(lipgloss.NewStyle(), Typography(TypographyBody)).Render(l.label)
	return l.spinner.View() + " " + label
}
