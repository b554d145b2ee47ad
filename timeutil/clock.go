package timeutil

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hasbyte1/go-mass-utils/strutil"
)

var (
	clock12 = regexp.MustCompile(`^([1-9]|1[0-2]|0[1-9]):[0-5][0-9][aApP][mM]$`)
	clock24 = regexp.MustCompile(`^([0-9]|[01][0-9]|2[0-3]):[0-5][0-9]$`)

	clock12Spaced = regexp.MustCompile(`^([1-9]|1[0-2]|0[1-9]) ?: ?[0-5][0-9] ?[aApP][mM]$`)
	clock24Spaced = regexp.MustCompile(`^([0-9]|[01][0-9]|2[0-3]) ?: ?[0-5][0-9]$`)
)

// Clock is a time of day with minute precision, on a 24-hour dial.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 12-hour or 24-hour time. Surrounding white space is
// ignored. 12am is midnight and 12pm is noon.
func ParseClock(s string, allowSpaces bool) (Clock, error) {
	s = strings.TrimSpace(s)
	p12, p24 := clock12, clock24
	if allowSpaces {
		p12, p24 = clock12Spaced, clock24Spaced
	}
	is24 := p24.MatchString(s)
	if !is24 && !p12.MatchString(s) {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	tokens := strutil.BreakAndTrimLines(s, ":", false)
	hour, _ := strconv.Atoi(tokens[0])
	if is24 {
		minute, _ := strconv.Atoi(tokens[1])
		return Clock{Hour: hour, Minute: minute}, nil
	}

	minute, _ := strconv.Atoi(tokens[1][:2])
	pm := strings.EqualFold(strings.TrimSpace(tokens[1][2:]), "pm")
	switch {
	case hour == 12 && !pm:
		hour = 0
	case hour < 12 && pm:
		hour += 12
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// MustParseClock is [ParseClock] without spaces that panics on error. It is
// meant for constants.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s, false)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// Compare returns -1, 0 or +1 as c is before, equal to or after o.
func (c Clock) Compare(o Clock) int { return cmp.Compare(c.Minutes(), o.Minutes()) }

// String formats c as "15:04".
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }
