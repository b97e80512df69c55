// Package pagewindow computes the compressed page-marker sequence used to
// render bounded pagination controls: page 1 and the last page are always
// shown, a sibling window surrounds the current page, and skipped spans
// collapse into ellipsis markers. The output length is bounded by
// 2*siblings + 5 regardless of the page count.
package pagewindow

// Kind discriminates the two marker variants.
type Kind int

const (
	KindPage Kind = iota
	KindEllipsis
)

// Marker is a single entry of a page window: a concrete page number or an
// ellipsis standing in for a skipped span.
type Marker struct {
	kind Kind
	page int
}

// Page returns a page-number marker.
func Page(n int) Marker {
	return Marker{kind: KindPage, page: n}
}

// Ellipsis returns an ellipsis marker.
func Ellipsis() Marker {
	return Marker{kind: KindEllipsis}
}

// Kind reports the marker variant.
func (m Marker) Kind() Kind {
	return m.kind
}

// PageNumber returns the page a page marker names, and false for an
// ellipsis.
func (m Marker) PageNumber() (int, bool) {
	if m.kind != KindPage {
		return 0, false
	}
	return m.page, true
}

// Compute returns the marker sequence for the given current page, total
// page count, and sibling count. The result is empty when total <= 0.
// When every page fits inside the bounded window the full sequence
// 1..total is returned; otherwise the window always starts at page 1,
// ends at the last page, and carries at most one ellipsis on each side
// of the sibling span. An ellipsis only ever stands in for two or more
// skipped pages.
//
// An out-of-bounds current page is not rejected; it only shifts the
// sibling window. Callers clamp navigation with ClampPage.
func Compute(current, total, siblings int) []Marker {
	if total <= 0 {
		return []Marker{}
	}

	if total <= 2*siblings+5 {
		markers := make([]Marker, 0, total)
		for i := 1; i <= total; i++ {
			markers = append(markers, Page(i))
		}
		return markers
	}

	markers := make([]Marker, 0, 2*siblings+5)
	markers = append(markers, Page(1))

	left := max(2, current-siblings)
	right := min(total-1, current+siblings)

	// An ellipsis standing in for a single page wastes its slot; show
	// the page itself instead.
	switch {
	case left == 3:
		markers = append(markers, Page(2))
	case left > 3:
		markers = append(markers, Ellipsis())
	}
	for i := left; i <= right; i++ {
		if i == 1 || i == total {
			continue
		}
		markers = append(markers, Page(i))
	}
	switch {
	case right == total-2:
		markers = append(markers, Page(total-1))
	case right < total-2:
		markers = append(markers, Ellipsis())
	}

	markers = append(markers, Page(total))
	return markers
}

// ClampPage confines a navigation target to [1, total]. With no pages at
// all the only sensible cursor is 1.
func ClampPage(page, total int) int {
	if total < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
