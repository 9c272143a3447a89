package schedule

import "errors"

// ErrInvalidInterval is returned when an interval's end does not come
// strictly after its start. Zero-length and overnight ranges are both
// rejected; sessions never cross midnight.
var ErrInvalidInterval = errors.New("end time must be after start time")

// TimeInterval is a half-open [Start, End) range of wall-clock time on a
// single calendar date.
type TimeInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	if start >= end {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether two intervals on the same date share any
// instant. The ranges are half-open, so an interval ending at T does not
// overlap one starting at T.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start < other.End && other.Start < i.End
}

func (i TimeInterval) String() string {
	return i.Start.String() + "–" + i.End.String()
}
