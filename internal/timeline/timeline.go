// Package timeline tracks the span of days covered by a set of accounts.
package timeline

import (
	"iter"

	"github.com/cleared-dev/balances/internal/day"
)

// Timeline is the inclusive span of days covering every account seen so
// far. The zero value is empty and widens on the first span.
type Timeline struct {
	r day.Range
}

// New returns a timeline covering from..to.
func New(from, to day.Day) Timeline {
	var t Timeline
	t.Widen(day.Range{From: from, To: to})
	return t
}

// Widen extends the timeline to cover span. Zero spans are ignored.
func (t *Timeline) Widen(span day.Range) {
	if span.IsZero() {
		return
	}
	from, to := span.From, span.To
	if to.Before(from) {
		from, to = to, from
	}
	if t.r.IsZero() {
		t.r = day.Range{From: from, To: to}
		return
	}
	if from.Before(t.r.From) {
		t.r.From = from
	}
	if to.After(t.r.To) {
		t.r.To = to
	}
}

// IsZero reports whether no span has been seen.
func (t Timeline) IsZero() bool { return t.r.IsZero() }

// Min returns the first day of the timeline.
func (t Timeline) Min() day.Day { return t.r.From }

// Max returns the last day of the timeline.
func (t Timeline) Max() day.Day { return t.r.To }

// Contains reports whether d falls within the timeline.
func (t Timeline) Contains(d day.Day) bool { return !t.IsZero() && t.r.Contains(d) }

// Len returns the number of days in the timeline.
func (t Timeline) Len() int {
	if t.IsZero() {
		return 0
	}
	return t.r.To.Sub(t.r.From) + 1
}

// Days iterates over every day from Min to Max inclusive.
func (t Timeline) Days() iter.Seq[day.Day] {
	return func(yield func(day.Day) bool) {
		if t.IsZero() {
			return
		}
		for d := t.r.From; !d.After(t.r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}
