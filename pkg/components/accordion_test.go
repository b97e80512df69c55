package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func demoSections() []AccordionSection {
	return []AccordionSection{
		{Title: "Shipping", Body: "Orders ship within two business days."},
		{Title: "Returns", Body: "Thirty day return window."},
		{Title: "Support", Body: "Reach us any time."},
	}
}

func TestAccordionSingleOpen(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(demoSections()...)

	acc.Toggle(0)
	assert.True(t, acc.IsOpen(0))

	// Opening another section closes the first in single-open mode.
	acc.Toggle(2)
	assert.False(t, acc.IsOpen(0))
	assert.True(t, acc.IsOpen(2))

	acc.Toggle(2)
	assert.False(t, acc.IsOpen(2))
}

func TestAccordionMultiOpen(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(demoSections()...).WithMultiOpen(true)

	acc.Toggle(0)
	acc.Toggle(1)
	assert.True(t, acc.IsOpen(0))
	assert.True(t, acc.IsOpen(1))
}

func TestAccordionIgnoresOutOfRangeToggle(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(demoSections()...)
	acc.Toggle(-1)
	acc.Toggle(99)

	for i := range demoSections() {
		assert.False(t, acc.IsOpen(i))
	}
}

func TestAccordionCursor(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(demoSections()...)
	assert.Equal(t, 0, acc.Cursor())

	acc.CursorUp()
	assert.Equal(t, 0, acc.Cursor(), "cursor must not move above the first section")

	acc.CursorDown()
	acc.CursorDown()
	acc.CursorDown()
	assert.Equal(t, 2, acc.Cursor(), "cursor must not move past the last section")

	acc.ToggleCursor()
	assert.True(t, acc.IsOpen(2))
}

func TestAccordionViewShowsOpenBody(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(demoSections()...)
	assert.NotContains(t, acc.View(), "return window")

	acc.Toggle(1)
	out := acc.View()
	assert.Contains(t, out, "Returns")
	assert.Contains(t, out, "return window")
}
