package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

func testSession(t *testing.T, id int, v venue.Venue, date time.Time, start, end string) Session {
	t.Helper()
	return Session{
		ID:        id,
		OwnerID:   1,
		Title:     "Drill",
		Venue:     v,
		Date:      date,
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
	}
}

func TestCheckConflict(t *testing.T) {
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)
	otherDay := day.AddDate(0, 0, 1)

	existing := []Session{
		testSession(t, 1, venue.Pool, day, "06:00", "07:00"),
		testSession(t, 2, venue.Ground, day, "10:00", "11:00"),
		testSession(t, 3, venue.Pool, otherDay, "06:00", "07:00"),
	}

	t.Run("exact duplicate rejected", func(t *testing.T) {
		candidate := testSession(t, 0, venue.Pool, day, "06:00", "07:00")
		err := CheckConflict(candidate, existing, 0)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, 1, conflict.Conflicting.ID)
	})

	t.Run("partial overlap rejected", func(t *testing.T) {
		candidate := testSession(t, 0, venue.Pool, day, "06:30", "07:30")
		var conflict *ConflictError
		require.ErrorAs(t, CheckConflict(candidate, existing, 0), &conflict)
		assert.Equal(t, 1, conflict.Conflicting.ID)
	})

	t.Run("same interval different venue accepted", func(t *testing.T) {
		candidate := testSession(t, 0, venue.IndoorCourt, day, "06:00", "07:00")
		assert.NoError(t, CheckConflict(candidate, existing, 0))
	})

	t.Run("same venue different date accepted", func(t *testing.T) {
		candidate := testSession(t, 0, venue.Pool, day.AddDate(0, 0, 2), "06:00", "07:00")
		assert.NoError(t, CheckConflict(candidate, existing, 0))
	})

	t.Run("back to back accepted", func(t *testing.T) {
		candidate := testSession(t, 0, venue.Pool, day, "07:00", "08:00")
		assert.NoError(t, CheckConflict(candidate, existing, 0))
	})

	t.Run("edit excludes itself", func(t *testing.T) {
		candidate := testSession(t, 1, venue.Pool, day, "06:00", "07:00")
		assert.NoError(t, CheckConflict(candidate, existing, 1))
	})

	t.Run("edit still conflicts with others", func(t *testing.T) {
		candidate := testSession(t, 2, venue.Pool, day, "06:30", "07:30")
		var conflict *ConflictError
		require.ErrorAs(t, CheckConflict(candidate, existing, 2), &conflict)
		assert.Equal(t, 1, conflict.Conflicting.ID)
	})

	t.Run("first match in iteration order reported", func(t *testing.T) {
		crowded := []Session{
			testSession(t, 10, venue.Pool, day, "06:00", "08:00"),
			testSession(t, 11, venue.Pool, day, "08:00", "10:00"),
		}
		candidate := testSession(t, 0, venue.Pool, day, "07:00", "09:00")
		var conflict *ConflictError
		require.ErrorAs(t, CheckConflict(candidate, crowded, 0), &conflict)
		assert.Equal(t, 10, conflict.Conflicting.ID)
	})
}

func TestConflictErrorMessage(t *testing.T) {
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)
	s := testSession(t, 1, venue.Ground, day, "14:00", "15:00")

	err := &ConflictError{Conflicting: &s}
	assert.Contains(t, err.Error(), "Drill")
	assert.Contains(t, err.Error(), "Ground")
	assert.Contains(t, err.Error(), "14:00")

	// store-constraint path has no conflicting session to show
	assert.NotEmpty(t, (&ConflictError{}).Error())
}
