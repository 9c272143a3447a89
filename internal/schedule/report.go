package schedule

import (
	"fmt"
	"time"

	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

// Month is a calendar month ("2006-01") used to scope session reports.
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ReportQuery filters a session collection for export. Nil fields mean
// "no filter"; with both absent the input passes through unchanged.
type ReportQuery struct {
	Month *Month
	Venue *venue.Venue
}

// FilterSessions keeps sessions matching every present filter, preserving
// input order.
func FilterSessions(sessions []Session, q ReportQuery) []Session {
	if q.Month == nil && q.Venue == nil {
		return sessions
	}

	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if q.Month != nil && !q.Month.Contains(s.Date) {
			continue
		}
		if q.Venue != nil && s.Venue != *q.Venue {
			continue
		}
		out = append(out, s)
	}
	return out
}
