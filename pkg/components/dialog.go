package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DialogChoice identifies which dialog button currently holds focus.
type DialogChoice int

const (
	DialogConfirm DialogChoice = iota
	DialogCancel
)

// Dialog is a modal confirmation box with two buttons and focus cycling.
type Dialog struct {
	title        string
	body         string
	confirmLabel string
	cancelLabel  string
	focus        DialogChoice
	width        int
}

// NewDialog creates a dialog with the given title and body.
func NewDialog(title, body string) *Dialog {
	return &Dialog{
		title:        title,
		body:         body,
		confirmLabel: "Confirm",
		cancelLabel:  "Cancel",
		focus:        DialogCancel,
		width:        44,
	}
}

// WithLabels overrides the button labels.
func (d *Dialog) WithLabels(confirm, cancel string) *Dialog {
	d.confirmLabel = confirm
	d.cancelLabel = cancel
	return d
}

// WithWidth sets the dialog width in cells.
func (d *Dialog) WithWidth(width int) *Dialog {
	d.width = width
	return d
}

// FocusNext moves focus to the other button.
func (d *Dialog) FocusNext() {
	if d.focus == DialogConfirm {
		d.focus = DialogCancel
	} else {
		d.focus = DialogConfirm
	}
}

// Focus returns the button currently holding focus.
func (d *Dialog) Focus() DialogChoice {
	return d.focus
}

// View renders the dialog against the active theme.
func (d *Dialog) View() string {
	return d.ViewWith(GetTheme())
}

// ViewWith renders the dialog against an explicit theme.
func (d *Dialog) ViewWith(theme Theme) string {
	box := StyleWith(theme, lipgloss.NewStyle(),
		Border(BorderDouble),
		BorderTint(SlotPrimary),
		Padding(SpacingXs),
	).Width(d.width)

	title := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyTitle)).
		Render(d.title)
	body := wrapText(d.body, d.width-4)

	confirm := NewButton(d.confirmLabel, ButtonOptions{
		Variant: VariantPrimary,
		Size:    SizeSmall,
		Focused: d.focus == DialogConfirm,
	}).ViewWith(theme)
	cancel := NewButton(d.cancelLabel, ButtonOptions{
		Variant: VariantGhost,
		Size:    SizeSmall,
		Focused: d.focus == DialogCancel,
	}).ViewWith(theme)

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirm, " ", cancel)
	buttons = lipgloss.PlaceHorizontal(d.width-4, lipgloss.Center, buttons)

	return box.Render(strings.Join([]string{title, body, "", buttons}, "\n"))
}
