package service

import "securite2ie_backend/internals/helpers/dbtime"

// Window is a time-of-day interval with inclusive bounds.
type Window struct {
	Start dbtime.Tod
	End   dbtime.Tod
}

// Overlaps treats touching endpoints as overlapping.
func (w Window) Overlaps(o Window) bool {
	return !w.Start.After(o.End) && !o.Start.After(w.End)
}

// Within reports whether w fits inside outer.
func (w Window) Within(outer Window) bool {
	return !w.Start.Before(outer.Start) && !w.End.After(outer.End)
}
