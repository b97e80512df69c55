package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPaginatorNavigationClamps(t *testing.T) {
	t.Parallel()

	p := NewPaginator(10)
	assert.Equal(t, 1, p.Page())

	// Prev from the first page stays put.
	p, _ = p.Update(keyPress(tea.KeyLeft))
	assert.Equal(t, 1, p.Page())

	p, _ = p.Update(keyPress(tea.KeyRight))
	assert.Equal(t, 2, p.Page())

	p, _ = p.Update(keyPress(tea.KeyEnd))
	assert.Equal(t, 10, p.Page())

	p, _ = p.Update(keyPress(tea.KeyRight))
	assert.Equal(t, 10, p.Page())

	p, _ = p.Update(keyPress(tea.KeyHome))
	assert.Equal(t, 1, p.Page())
}

func TestPaginatorSetTotalReclamps(t *testing.T) {
	t.Parallel()

	p := NewPaginator(10).SetPage(9)
	p = p.SetTotal(5)
	assert.Equal(t, 5, p.Page())

	p = p.SetTotal(0)
	assert.Equal(t, 1, p.Page())
}

func TestPaginatorViewCompressesLongSpans(t *testing.T) {
	t.Parallel()

	p := NewPaginator(100).SetPage(50)
	out := p.View()

	assert.Contains(t, out, "…")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "100")
}

func TestPaginatorViewEmptyWhenNoPages(t *testing.T) {
	t.Parallel()

	p := NewPaginator(0)
	assert.Empty(t, p.View())
}

func TestPaginatorViewSmallTotalHasNoEllipsis(t *testing.T) {
	t.Parallel()

	p := NewPaginator(5).SetPage(3)
	assert.NotContains(t, p.View(), "…")
}
