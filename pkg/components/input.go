package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ValidateFunc checks a field value and returns a human-readable problem,
// or nil when the value is acceptable.
type ValidateFunc func(value string) error

// Field is a labelled, themed text input with an optional validation
// hook. Validation runs on every edit; the last problem is rendered under
// the input.
type Field struct {
	label    string
	input    textinput.Model
	validate ValidateFunc
	err      error
}

// NewField creates a field with the given label and placeholder.
func NewField(label, placeholder string) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	return Field{label: label, input: ti}
}

// WithValidate sets the validation hook.
func (f Field) WithValidate(fn ValidateFunc) Field {
	f.validate = fn
	return f
}

// Focus gives the field keyboard focus.
func (f Field) Focus() (Field, tea.Cmd) {
	cmd := f.input.Focus()
	return f, cmd
}

// Blur removes keyboard focus.
func (f Field) Blur() Field {
	f.input.Blur()
	return f
}

// Focused reports whether the field holds focus.
func (f Field) Focused() bool {
	return f.input.Focused()
}

// Value returns the current text.
func (f Field) Value() string {
	return f.input.Value()
}

// Err returns the last validation problem, if any.
func (f Field) Err() error {
	return f.err
}

// Update forwards messages to the inner input and re-validates.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.validate != nil {
		f.err = f.validate(f.input.Value())
	}
	return f, cmd
}

// View renders the label, the themed input box, and any validation
// problem.
func (f Field) View() string {
	return f.ViewWith(GetTheme())
}

// ViewWith renders the field against an explicit theme.
func (f Field) ViewWith(theme Theme) string {
	state := FieldStateDefault
	switch {
	case f.err != nil:
		state = FieldStateInvalid
	case f.input.Focused():
		state = FieldStateFocus
	}

	label := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyEmphasis)).
		Render(f.label)
	box := theme.FieldFor(state).Render(f.input.View())

	out := label + "\n" + box
	if f.err != nil {
		problem := StyleWith(theme, lipgloss.NewStyle(), Foreground(SlotDanger)).
			Render(f.err.Error())
		out += "\n" + problem
	}
	return out
}
