package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertOptions defines the configuration options for an alert.
type AlertOptions struct {
	Variant     Variant
	Title       string
	Dismissible bool
}

// Alert is a prominent message box.
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates an alert with the given message and options.
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{message: message, options: opts}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant Variant) *Alert {
	a.options.Variant = variant
	return a
}

// WithTitle sets the alert title.
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// WithDismissible marks the alert as dismissible.
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.options.Dismissible = dismissible
	return a
}

// View renders the alert against the active theme.
func (a *Alert) View() string {
	return a.ViewWith(GetTheme())
}

// ViewWith renders the alert against an explicit theme.
func (a *Alert) ViewWith(theme Theme) string {
	box := StyleWith(theme, lipgloss.NewStyle(),
		Background(a.options.Variant.Slot()),
		Border(BorderNormal),
		Padding(SpacingXs),
	)

	var lines []string
	if a.options.Title != "" {
		title := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyEmphasis))
		lines = append(lines, title.Render(a.options.Title))
	}
	if a.message != "" {
		lines = append(lines, a.message)
	}
	if a.options.Dismissible {
		lines = append(lines, StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyCaption)).Render("[esc to dismiss]"))
	}

	return box.Render(strings.Join(lines, "\n"))
}

// SuccessAlert creates a dismissible success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: VariantSuccess, Title: "Success", Dismissible: true})
}

// ErrorAlert creates a dismissible danger alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: VariantDanger, Title: "Error", Dismissible: true})
}

// WarningAlert creates a dismissible warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: VariantWarning, Title: "Warning", Dismissible: true})
}

// InfoAlert creates a plain info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: VariantInfo, Title: "Info"})
}
