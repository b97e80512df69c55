package dategrid

// CellState is the rendering classification of a single populated grid
// cell.
type CellState int

const (
	CellNormal CellState = iota
	CellToday
	CellSelected
	CellRangeStart
	CellRangeEnd
	CellInRange
	CellDisabled
)

// String returns the lowercase name of the state.
func (s CellState) String() string {
	switch s {
	case CellToday:
		return "today"
	case CellSelected:
		return "selected"
	case CellRangeStart:
		return "range-start"
	case CellRangeEnd:
		return "range-end"
	case CellInRange:
		return "in-range"
	case CellDisabled:
		return "disabled"
	default:
		return "normal"
	}
}

// Classify determines how a cell should render, first match wins:
// disabled, selected (single mode), range start, range end, in range,
// today, normal. Disabled takes precedence even over a previously selected
// date, so a selection invalidated by new rules still renders disabled.
func Classify(d Date, sel Selection, rules Rules, today Date) CellState {
	if rules.Disabled(d) {
		return CellDisabled
	}

	switch sel.Mode {
	case ModeSingle:
		if sel.Picked != nil && d.Equal(*sel.Picked) {
			return CellSelected
		}
	case ModeRange:
		if sel.RangeStart != nil && d.Equal(*sel.RangeStart) {
			return CellRangeStart
		}
		if sel.RangeEnd != nil && d.Equal(*sel.RangeEnd) {
			return CellRangeEnd
		}
		if lo, hi, ok := sel.previewBounds(); ok && d.After(lo) && d.Before(hi) {
			return CellInRange
		}
	}

	if d.Equal(today) {
		return CellToday
	}
	return CellNormal
}

// previewBounds returns the normalized range to highlight: the committed
// range when complete, otherwise the start paired with the hovered date
// while an end pick is pending.
func (s Selection) previewBounds() (lo, hi Date, ok bool) {
	if s.RangeStart == nil {
		return Date{}, Date{}, false
	}

	far := s.RangeEnd
	if far == nil && s.Phase == PhasePickingEnd {
		far = s.Hover
	}
	if far == nil {
		return Date{}, Date{}, false
	}

	lo, hi = *s.RangeStart, *far
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
