package timeutil

import (
	"fmt"
	"time"
)

// HourSpan is a daily interval of wall-clock time, inclusive at both ends.
// When End is before Start the span wraps past midnight.
type HourSpan struct {
	Start Clock
	End   Clock
}

// NewHourSpan parses both ends with [ParseClock]. It fails with
// [ErrEmptySpan] when they are the same minute.
func NewHourSpan(from, to string, allowSpaces bool) (HourSpan, error) {
	start, err := ParseClock(from, allowSpaces)
	if err != nil {
		return HourSpan{}, err
	}
	end, err := ParseClock(to, allowSpaces)
	if err != nil {
		return HourSpan{}, err
	}
	if start == end {
		return HourSpan{}, fmt.Errorf("%w: %s", ErrEmptySpan, start)
	}
	return HourSpan{Start: start, End: end}, nil
}

// Wraps reports whether the span crosses midnight.
func (s HourSpan) Wraps() bool { return s.End.Compare(s.Start) < 0 }

// ContainsClock reports whether c lies inside the span.
func (s HourSpan) ContainsClock(c Clock) bool {
	afterStart := c.Compare(s.Start) >= 0
	beforeEnd := c.Compare(s.End) <= 0
	if s.Wraps() {
		return afterStart || beforeEnd
	}
	return afterStart && beforeEnd
}

// Contains reports whether the time of day of t lies inside the span.
func (s HourSpan) Contains(t time.Time) bool { return s.ContainsClock(ClockOf(t)) }

// minuteRange is a closed interval of minutes since midnight.
type minuteRange struct{ from, to int }

const lastMinute = 24*60 - 1

func (s HourSpan) ranges() []minuteRange {
	if s.Wraps() {
		return []minuteRange{
			{s.Start.Minutes(), lastMinute},
			{0, s.End.Minutes()},
		}
	}
	return []minuteRange{{s.Start.Minutes(), s.End.Minutes()}}
}

// Overlaps reports whether s and o share at least one minute. Touching ends
// count as overlapping.
func (s HourSpan) Overlaps(o HourSpan) bool {
	for _, a := range s.ranges() {
		for _, b := range o.ranges() {
			if a.from <= b.to && b.from <= a.to {
				return true
			}
		}
	}
	return false
}

// String formats the span as "22:00 - 06:00".
func (s HourSpan) String() string { return s.Start.String() + " - " + s.End.String() }

// AreSpansOverlapping reports whether any two of spans overlap.
func AreSpansOverlapping(spans ...HourSpan) bool {
	for i, a := range spans {
		for _, b := range spans[i+1:] {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}
