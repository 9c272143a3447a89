package schedule

// Project derives display-ready calendar events from sessions, one event
// per session with input order preserved. Pure transform; no validation.
func Project(sessions []Session) []Event {
	events := make([]Event, 0, len(sessions))
	for _, s := range sessions {
		events = append(events, Event{
			ID:    s.ID,
			Title: s.Title,
			Venue: s.Venue,
			Start: s.StartTime.On(s.Date),
			End:   s.EndTime.On(s.Date),
		})
	}
	return events
}
