package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 day format used everywhere a date is
// rendered or stored.
const DateFormat = "2006-01-02"

// Date is a calendar date with day granularity, the ledger's ordering
// key. The zero value means "no date" and sorts before everything.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day (midnight UTC).
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date at day granularity.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses an ISO-8601 date string (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DateFormat, err)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.Time.Before(x.Time) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.Time.After(x.Time) }

// InRange reports whether d lies in [from, to], bounds inclusive. A
// zero bound means that side is unbounded.
func (d Date) InRange(from, to Date) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

// MonthLabel renders the calendar month as e.g. "March 2025".
func (d Date) MonthLabel() string {
	return d.Format("January 2006")
}

// String formats the date in its standard format.
func (d Date) String() string { return d.Format(DateFormat) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
