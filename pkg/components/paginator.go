package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tesserakit/tessera/pkg/pagewindow"
)

// PaginatorKeyMap holds the key bindings of a Paginator.
type PaginatorKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultPaginatorKeyMap returns the stock paginator bindings.
func DefaultPaginatorKeyMap() PaginatorKeyMap {
	return PaginatorKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last page"),
		),
	}
}

// Paginator renders bounded page-number controls. The marker sequence is
// computed fresh from pkg/pagewindow on every render; the component owns
// only the current page and clamped navigation.
type Paginator struct {
	page     int
	total    int
	siblings int
	keymap   PaginatorKeyMap
}

// NewPaginator creates a paginator over total pages with one sibling on
// each side of the current page.
func NewPaginator(total int) Paginator {
	return Paginator{
		page:     pagewindow.ClampPage(1, total),
		total:    total,
		siblings: 1,
		keymap:   DefaultPaginatorKeyMap(),
	}
}

// WithSiblings sets how many pages flank the current page before
// ellipsis compression.
func (p Paginator) WithSiblings(siblings int) Paginator {
	if siblings < 0 {
		siblings = 0
	}
	p.siblings = siblings
	return p
}

// WithKeyMap overrides the key bindings.
func (p Paginator) WithKeyMap(keymap PaginatorKeyMap) Paginator {
	p.keymap = keymap
	return p
}

// SetPage jumps to a page, clamped to the valid span.
func (p Paginator) SetPage(page int) Paginator {
	p.page = pagewindow.ClampPage(page, p.total)
	return p
}

// SetTotal changes the page count and re-clamps the current page.
func (p Paginator) SetTotal(total int) Paginator {
	p.total = total
	p.page = pagewindow.ClampPage(p.page, total)
	return p
}

// Page returns the current page.
func (p Paginator) Page() int {
	return p.page
}

// Total returns the page count.
func (p Paginator) Total() int {
	return p.total
}

// KeyMap exposes the bindings for help footers.
func (p Paginator) KeyMap() PaginatorKeyMap {
	return p.keymap
}

// Init implements tea.Model.
func (p Paginator) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Paginator) Update(msg tea.Msg) (Paginator, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keymap.Prev):
		p = p.SetPage(p.page - 1)
	case key.Matches(keyMsg, p.keymap.Next):
		p = p.SetPage(p.page + 1)
	case key.Matches(keyMsg, p.keymap.First):
		p = p.SetPage(1)
	case key.Matches(keyMsg, p.keymap.Last):
		p = p.SetPage(p.total)
	}
	return p, nil
}

// View implements tea.Model.
func (p Paginator) View() string {
	return p.ViewWith(GetTheme())
}

// ViewWith renders the paginator against an explicit theme.
func (p Paginator) ViewWith(theme Theme) string {
	markers := pagewindow.Compute(p.page, p.total, p.siblings)
	if len(markers) == 0 {
		return ""
	}

	current := StyleWith(theme, lipgloss.NewStyle(),
		Background(SlotPrimary),
		PaddingX(SpacingXs),
		Typography(TypographyEmphasis),
	)
	plain := StyleWith(theme, lipgloss.NewStyle(),
		Typography(TypographyBody),
		PaddingX(SpacingXs),
	)
	gap := StyleWith(theme, lipgloss.NewStyle(), Typography(TypographyCaption))

	var cells []string
	for _, m := range markers {
		n, isPage := m.PageNumber()
		switch {
		case !isPage:
			cells = append(cells, gap.Render("…"))
		case n == p.page:
			cells = append(cells, current.Render(fmt.Sprintf("%d", n)))
		default:
			cells = append(cells, plain.Render(fmt.Sprintf("%d", n)))
		}
	}
	return strings.Join(cells, " ")
}
