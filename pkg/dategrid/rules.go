package dategrid

// Rules describes which dates may not be selected. A date is disabled when
// any sub-rule flags it: before MinDate, after MaxDate, a member of
// DisabledDates, or rejected by DisabledFunc.
type Rules struct {
	MinDate       *Date
	MaxDate       *Date
	DisabledDates []Date
	DisabledFunc  func(Date) bool
}

// Disabled reports whether d is disabled under the rules.
func (r Rules) Disabled(d Date) bool {
	if r.MinDate != nil && d.Before(*r.MinDate) {
		return true
	}
	if r.MaxDate != nil && d.After(*r.MaxDate) {
		return true
	}
	for _, dd := range r.DisabledDates {
		if d.Equal(dd) {
			return true
		}
	}
	return r.DisabledFunc != nil && r.DisabledFunc(d)
}
