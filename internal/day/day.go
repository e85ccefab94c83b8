package day

import (
	"fmt"
	"strings"
	"time"
)

// ISOFormat is the layout used by String.
const ISOFormat = "2006-01-02"

// layouts accepted by Parse, tried in order. Bank exports use US ordering.
var layouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"2006-01-02",
	"2006-1-2",
}

// Day is a calendar date with day granularity. It is comparable and
// safe to use as a map key.
type Day struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Day, so New(2025, 1, 32) is 2025-02-01.
func New(year int, month time.Month, dayOfMonth int) Day {
	y, m, d := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC).Date()
	return Day{y, m, d}
}

// Of returns the calendar day of t in t's location.
func Of(t time.Time) Day { return New(t.Date()) }

// Parse reads a date in one of the accepted layouts.
func Parse(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, fmt.Errorf("empty date")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Of(t), nil
		}
	}
	return Day{}, fmt.Errorf("invalid date %q want MM/DD/YYYY or YYYY-MM-DD", s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d == Day{} }

// Year returns the year of the day.
func (d Day) Year() int { return d.y }

// Month returns the month of the day.
func (d Day) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Day) Day() int { return d.d }

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday { return d.Time().Weekday() }

// Before reports whether d is before x.
func (d Day) Before(x Day) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d Day) After(x Day) bool { return d.Time().After(x.Time()) }

// Add returns the day n days after d (n may be negative).
func (d Day) Add(n int) Day { return New(d.y, d.m, d.d+n) }

// Sub returns the number of days from x to d.
func (d Day) Sub(x Day) int { return int(d.Time().Sub(x.Time()) / (24 * time.Hour)) }

// Compare returns -1, 0 or +1 as a is before, equal to or after b.
func Compare(a, b Day) int { return a.Time().Compare(b.Time()) }

// Monday returns the Monday on or before d.
func (d Day) Monday() Day {
	offset := (int(d.Weekday()) + 6) % 7
	return d.Add(-offset)
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string { return d.Time().Format(ISOFormat) }

// Format formats the day with a time layout.
func (d Day) Format(layout string) string { return d.Time().Format(layout) }

// Range is an inclusive span of days.
type Range struct{ From, To Day }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether d falls within the range, boundaries included.
func (r Range) Contains(d Day) bool { return !d.Before(r.From) && !d.After(r.To) }
