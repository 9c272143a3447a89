package schedule

import "fmt"

// ConflictError reports that a candidate booking overlaps an existing
// session at the same venue on the same date. Conflicting is nil when the
// store's exclusion constraint caught a race the in-process check missed.
type ConflictError struct {
	Conflicting *Session
}

func (e *ConflictError) Error() string {
	if e.Conflicting == nil {
		return "booking conflicts with an existing session"
	}
	return fmt.Sprintf("booking conflicts with %q at %s, %s",
		e.Conflicting.Title, e.Conflicting.Venue, e.Conflicting.Interval())
}

// CheckConflict decides whether candidate may be accepted alongside
// existing sessions. Sessions matching excludeID are skipped so an edit
// never conflicts with its own prior state; excludeID 0 means no
// exclusion. Only sessions at the same venue on the same date are
// considered. The first overlap in iteration order is reported; callers
// must not rely on which one when several exist.
func CheckConflict(candidate Session, existing []Session, excludeID int) error {
	for i := range existing {
		other := &existing[i]
		if excludeID != 0 && other.ID == excludeID {
			continue
		}
		if other.Venue != candidate.Venue || !sameDate(other.Date, candidate.Date) {
			continue
		}
		if candidate.Interval().Overlaps(other.Interval()) {
			return &ConflictError{Conflicting: other}
		}
	}
	return nil
}
