package schedule

import (
	"time"

	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

// Session is a venue booking for a training session. ID, OwnerID and
// CreatedAt are assigned at creation and never change; everything else is
// replaced wholesale on update.
type Session struct {
	ID        int         `db:"id" json:"id"`
	OwnerID   int         `db:"owner_id" json:"owner_id"`
	Title     string      `db:"title" json:"title"`
	Venue     venue.Venue `db:"venue" json:"venue"`
	Date      time.Time   `db:"session_date" json:"date"`
	StartTime TimeOfDay   `db:"start_time" json:"start_time"`
	EndTime   TimeOfDay   `db:"end_time" json:"end_time"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// Interval returns the session's time range. Persisted sessions always
// hold a valid interval, so this never fails for stored records.
func (s Session) Interval() TimeInterval {
	return TimeInterval{Start: s.StartTime, End: s.EndTime}
}

// SessionRequest is the client payload for creating or updating a
// session. Dates use "2006-01-02", times "15:04"; the service parses and
// validates before anything touches the store.
type SessionRequest struct {
	Title     string `json:"title" binding:"required" example:"Morning Drill"`
	Venue     string `json:"venue" binding:"required,venue" example:"Pool"`
	Date      string `json:"date" binding:"required" example:"2026-09-05"`
	StartTime string `json:"start_time" binding:"required" example:"06:00"`
	EndTime   string `json:"end_time" binding:"required" example:"07:00"`
}

// Event is a calendar entry derived from a session: the date and
// wall-clock times collapsed into orderable instants.
type Event struct {
	ID    int         `json:"id"`
	Title string      `json:"title"`
	Venue venue.Venue `json:"venue"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
}
