package schedule

import (
	"errors"
	"time"
)

var (
	ErrPastDate      = errors.New("date is in the past")
	ErrBeyondHorizon = errors.New("date is beyond the booking horizon")
)

// BookingWindowPolicy decides whether a candidate date is schedulable now.
// The window runs from the start of the current local day to HorizonDays
// ahead, both ends inclusive. Policies differ per caller role, so the
// horizon is a parameter rather than a package constant.
type BookingWindowPolicy struct {
	HorizonDays int

	// Now is swapped out in tests; defaults to time.Now.
	Now func() time.Time
}

func NewBookingWindowPolicy(horizonDays int) BookingWindowPolicy {
	return BookingWindowPolicy{HorizonDays: horizonDays, Now: time.Now}
}

func (p BookingWindowPolicy) Validate(date time.Time) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	minDate := dateOnly(now())
	maxDate := minDate.AddDate(0, 0, p.HorizonDays)

	d := dateOnly(date)
	if d.Before(minDate) {
		return ErrPastDate
	}
	if d.After(maxDate) {
		return ErrBeyondHorizon
	}
	return nil
}
