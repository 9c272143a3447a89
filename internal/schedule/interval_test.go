package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()
	iv, err := NewTimeInterval(mustTime(t, start), mustTime(t, end))
	require.NoError(t, err)
	return iv
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("06:30")
	require.NoError(t, err)
	assert.Equal(t, 6, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
	assert.Equal(t, "06:30", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

	_, err = ParseTimeOfDay("0630")
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan("14:30:00"))
	assert.Equal(t, "14:30", tod.String())

	require.NoError(t, tod.Scan([]byte("09:15:00")))
	assert.Equal(t, "09:15", tod.String())

	// lib/pq hands TIME columns back as time.Time on the zero date
	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, "18:45", tod.String())

	assert.Error(t, tod.Scan(1830))
}

func TestTimeOfDayOn(t *testing.T) {
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)
	instant := mustTime(t, "06:00").On(date)

	assert.Equal(t, time.Date(2026, 9, 5, 6, 0, 0, 0, time.Local), instant)
}

func TestNewTimeInterval(t *testing.T) {
	_, err := NewTimeInterval(mustTime(t, "10:00"), mustTime(t, "11:00"))
	assert.NoError(t, err)

	// zero-length rejected
	_, err = NewTimeInterval(mustTime(t, "10:00"), mustTime(t, "10:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// overnight rejected
	_, err = NewTimeInterval(mustTime(t, "23:00"), mustTime(t, "01:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    TimeInterval
		overlap bool
	}{
		{"identical", mustInterval(t, "10:00", "11:00"), mustInterval(t, "10:00", "11:00"), true},
		{"partial", mustInterval(t, "10:00", "11:00"), mustInterval(t, "10:30", "11:30"), true},
		{"contained", mustInterval(t, "10:00", "12:00"), mustInterval(t, "10:30", "11:00"), true},
		{"back to back", mustInterval(t, "10:00", "11:00"), mustInterval(t, "11:00", "12:00"), false},
		{"disjoint", mustInterval(t, "06:00", "07:00"), mustInterval(t, "19:00", "20:00"), false},
		{"day start back to back", mustInterval(t, "00:00", "01:00"), mustInterval(t, "01:00", "02:00"), false},
		{"day end touch", mustInterval(t, "22:00", "23:00"), mustInterval(t, "23:00", "23:59"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}
