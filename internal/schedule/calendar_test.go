package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

func TestProject(t *testing.T) {
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)

	sessions := []Session{
		testSession(t, 1, venue.Pool, day, "06:00", "07:00"),
		testSession(t, 2, venue.Ground, day, "10:00", "11:30"),
	}

	events := Project(sessions)
	require.Len(t, events, len(sessions))

	for i, e := range events {
		assert.Equal(t, sessions[i].ID, e.ID)
		assert.Equal(t, sessions[i].Title, e.Title)
		assert.Equal(t, sessions[i].Venue, e.Venue)
	}

	assert.Equal(t, time.Date(2026, 9, 5, 6, 0, 0, 0, time.Local), events[0].Start)
	assert.Equal(t, time.Date(2026, 9, 5, 7, 0, 0, 0, time.Local), events[0].End)
	assert.Equal(t, time.Date(2026, 9, 5, 11, 30, 0, 0, time.Local), events[1].End)
	assert.True(t, events[0].Start.Before(events[0].End))
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil))
	assert.Empty(t, Project([]Session{}))
}
