package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	// mid-afternoon, so "today" still has hours left in it
	return time.Date(2026, 8, 30, 15, 30, 0, 0, time.Local)
}

func testPolicy(horizonDays int) BookingWindowPolicy {
	return BookingWindowPolicy{HorizonDays: horizonDays, Now: fixedNow}
}

func TestValidate_WindowBoundaries(t *testing.T) {
	policy := testPolicy(21)
	today := dateOnly(fixedNow())

	tests := []struct {
		name string
		date time.Time
		want error
	}{
		{"today accepted", today, nil},
		{"yesterday rejected", today.AddDate(0, 0, -1), ErrPastDate},
		{"tomorrow accepted", today.AddDate(0, 0, 1), nil},
		{"horizon edge accepted", today.AddDate(0, 0, 21), nil},
		{"one past horizon rejected", today.AddDate(0, 0, 22), ErrBeyondHorizon},
		{"far future rejected", today.AddDate(1, 0, 0), ErrBeyondHorizon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.date)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidate_IgnoresTimeComponent(t *testing.T) {
	policy := testPolicy(21)

	// a timestamp earlier today is still "today", not the past
	earlier := fixedNow().Add(-6 * time.Hour)
	assert.NoError(t, policy.Validate(earlier))
}

func TestValidate_PerRoleHorizons(t *testing.T) {
	coach := testPolicy(21)
	admin := testPolicy(90)

	date := dateOnly(fixedNow()).AddDate(0, 0, 45)

	assert.ErrorIs(t, coach.Validate(date), ErrBeyondHorizon)
	assert.NoError(t, admin.Validate(date))
}
