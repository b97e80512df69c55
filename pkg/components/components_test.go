package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonDisabledDiffersFromEnabled(t *testing.T) {
	enabled := SimpleButton("Save").View()
	disabled := SimpleButton("Save").WithDisabled(true).View()

	assert.Contains(t, enabled, "Save")
	assert.Contains(t, disabled, "Save")
}

func TestButtonGroupJoinsLabels(t *testing.T) {
	group := NewButtonGroup(
		SimpleButton("OK"),
		NewButton("Skip", ButtonOptions{Variant: VariantGhost}),
	)
	out := group.View()

	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "Skip")
	assert.Empty(t, NewButtonGroup().View())
}

func TestBadgeRendersText(t *testing.T) {
	badge := SuccessBadge("active")
	assert.Equal(t, "active", badge.Text())
	assert.Contains(t, badge.View(), "active")
}

func TestAlertRendersTitleAndMessage(t *testing.T) {
	out := ErrorAlert("something broke").View()

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "something broke")
	assert.Contains(t, out, "esc to dismiss")
}

func TestCardWrapsLongBody(t *testing.T) {
	body := strings.Repeat("word ", 30)
	out := NewCard(body).WithTitle("About").WithWidth(24).View()

	assert.Contains(t, out, "About")
	for _, line := range strings.Split(out, "\n") {
		// Border chars count toward total width.
		assert.LessOrEqual(t, len([]rune(line)), 26)
	}
}

func TestDialogFocusCycling(t *testing.T) {
	dlg := NewDialog("Delete item", "This cannot be undone.")
	assert.Equal(t, DialogCancel, dlg.Focus(), "cancel holds initial focus")

	dlg.FocusNext()
	assert.Equal(t, DialogConfirm, dlg.Focus())
	dlg.FocusNext()
	assert.Equal(t, DialogCancel, dlg.Focus())

	out := dlg.WithLabels("Delete", "Keep").View()
	assert.Contains(t, out, "Delete item")
	assert.Contains(t, out, "Keep")
}

func TestFieldValidation(t *testing.T) {
	field := NewField("Email", "you@example.com").WithValidate(func(v string) error {
		if !strings.Contains(v, "@") {
			return errors.New("must contain @")
		}
		return nil
	})

	field, _ = field.Focus()
	require.True(t, field.Focused())

	field, _ = field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nope")})
	require.Error(t, field.Err())
	assert.Contains(t, field.View(), "must contain @")

	field, _ = field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("@x")})
	assert.NoError(t, field.Err())
	assert.Equal(t, "nope@x", field.Value())
}

func TestBannerRendersActions(t *testing.T) {
	out := NewBanner("Tessera").
		WithTagline("Design-system components for the terminal").
		WithActions(SimpleButton("Get started"), NewButton("Docs", ButtonOptions{Variant: VariantGhost})).
		View()

	assert.Contains(t, out, "Tessera")
	assert.Contains(t, out, "Get started")
	assert.Contains(t, out, "Docs")
}

func TestLoaderViewIncludesLabel(t *testing.T) {
	loader := NewLoader("Loading gallery").WithVariant(VariantInfo)
	assert.Contains(t, loader.View(), "Loading gallery")
}
