package venue

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Venue is one of the club's fixed physical locations. Free-form venue
// strings are rejected at parse time so a misspelled venue can never
// slip past conflict checking as a silent no-match.
type Venue string

const (
	Ground       Venue = "Ground"
	Pool         Venue = "Pool"
	NetballCourt Venue = "Netball Court"
	IndoorCourt  Venue = "Indoor Court"
	TennisCourt  Venue = "Tennis Court"
)

var ErrUnknownVenue = fmt.Errorf("unknown venue")

// All returns the complete venue catalog in display order.
func All() []Venue {
	return []Venue{Ground, Pool, NetballCourt, IndoorCourt, TennisCourt}
}

func Parse(s string) (Venue, error) {
	v := Venue(s)
	switch v {
	case Ground, Pool, NetballCourt, IndoorCourt, TennisCourt:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVenue, s)
}

func (v Venue) String() string {
	return string(v)
}

func (v Venue) Valid() bool {
	_, err := Parse(string(v))
	return err == nil
}

func (v Venue) Value() (driver.Value, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVenue, string(v))
	}
	return string(v), nil
}

func (v *Venue) Scan(src interface{}) error {
	var s string
	switch t := src.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return fmt.Errorf("cannot scan venue from %T", src)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *Venue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
