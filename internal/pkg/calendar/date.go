package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire and display format of a Date.
const Layout = "2006-01-02"

// Date is a calendar day. Time of day and zone are not part of its value.
// The zero Date means "unset".
type Date struct {
	t time.Time
}

// New returns the Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime keeps the calendar day of t as seen in t's own location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// Parse accepts "YYYY-MM-DD" as well as RFC 3339 timestamps such as
// "2024-01-15T00:00:00.000Z". For timestamps the day written in the string is kept.
func Parse(s string) (Date, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return FromTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return FromTime(t), nil
	}
	return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}

// MustParse is Parse for literals in tests and fixtures.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(u Date) bool {
	return d.t.Before(u.t)
}

func (d Date) Equal(u Date) bool {
	return d.t.Equal(u.t)
}

// String formats the date as YYYY-MM-DD, or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON is lenient: null, "" and unparseable values decode to the zero
// Date so that one malformed record does not fail a whole collection.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}
