package dategrid

// Mode distinguishes single-date selection from range selection.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRange
)

// Phase tracks where a range selection is in its two-click protocol.
type Phase int

const (
	PhasePickingStart Phase = iota
	PhasePickingEnd
)

// Selection holds the current selection for either mode. In range mode,
// once both bounds are set, RangeStart never sorts after RangeEnd.
type Selection struct {
	Mode       Mode
	Picked     *Date
	RangeStart *Date
	RangeEnd   *Date
	Hover      *Date
	Phase      Phase
}

// NewSelection returns an empty selection for the given mode.
func NewSelection(mode Mode) Selection {
	return Selection{Mode: mode}
}

// IsComplete reports whether the selection is fully formed: a picked date
// in single mode, both bounds in range mode.
func (s Selection) IsComplete() bool {
	if s.Mode == ModeSingle {
		return s.Picked != nil
	}
	return s.RangeStart != nil && s.RangeEnd != nil
}

// Select applies a click on a non-disabled date and returns the resulting
// selection. Callers must reject clicks on disabled dates before calling.
//
// Single mode replaces the selection unconditionally. Range mode follows a
// two-phase protocol: the first click sets the start and clears any prior
// end; the second click completes the range, swapping bounds if the second
// click falls before the first, and resets to the picking-start phase.
func Select(sel Selection, clicked Date) Selection {
	if sel.Mode == ModeSingle {
		sel.Picked = &clicked
		return sel
	}

	if sel.RangeStart == nil || sel.Phase == PhasePickingStart {
		sel.RangeStart = &clicked
		sel.RangeEnd = nil
		sel.Hover = nil
		sel.Phase = PhasePickingEnd
		return sel
	}

	start, end := *sel.RangeStart, clicked
	if end.Before(start) {
		start, end = end, start
	}
	sel.RangeStart = &start
	sel.RangeEnd = &end
	sel.Hover = nil
	sel.Phase = PhasePickingStart
	return sel
}

// WithHover returns the selection with the given date marked as hovered.
// Hover only influences in-range preview while an end pick is pending.
func (s Selection) WithHover(d Date) Selection {
	s.Hover = &d
	return s
}

// ClearHover removes any hover mark.
func (s Selection) ClearHover() Selection {
	s.Hover = nil
	return s
}
