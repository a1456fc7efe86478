// Package xtime extends the time package with durations expressed in days,
// weeks, months and years.
package xtime

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Calendar-like units. Months and years have a fixed length.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

var (
	durationRx = regexp.MustCompile(`^(\d*\.\d+|\d+)(ns|us|µs|ms|s|m|h|d|D|w|W|M|y|Y)`)

	units = map[string]time.Duration{
		"ns": time.Nanosecond,
		"us": time.Microsecond,
		"µs": time.Microsecond,
		"ms": time.Millisecond,
		"s":  time.Second,
		"m":  time.Minute,
		"h":  time.Hour,
		"d":  Day,
		"D":  Day,
		"w":  Week,
		"W":  Week,
		"M":  Month,
		"y":  Year,
		"Y":  Year,
	}
)

// ParseDuration parses a duration string such as "10s", "1h30m", "-1.5w" or
// "3Y4M5d". In addition to the units supported by time.ParseDuration, it
// accepts "d"/"D" (days), "w"/"W" (weeks), "M" (30-day months) and "y"/"Y"
// (365-day years).
func ParseDuration(s string) (time.Duration, error) {
	orig := s
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("invalid duration '%s'", orig)
	}
	if s == "0" {
		return 0, nil
	}

	var total float64
	for s != "" {
		match := durationRx.FindStringSubmatch(s)
		if match == nil {
			return 0, fmt.Errorf("invalid duration '%s'", orig)
		}
		n, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration '%s': %w", orig, err)
		}
		total += n * float64(units[match[2]])
		s = s[len(match[0]):]
	}

	// float64(math.MaxInt64) is exactly 2^63, which doesn't fit in an int64.
	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("invalid duration '%s': out of range", orig)
	}

	dur := time.Duration(total)
	if neg {
		dur = -dur
	}

	return dur, nil
}

var formatUnits = []struct {
	sym string
	dur time.Duration
}{
	{"Y", Year}, {"M", Month}, {"w", Week}, {"d", Day},
	{"h", time.Hour}, {"m", time.Minute}, {"s", time.Second},
	{"ms", time.Millisecond}, {"µs", time.Microsecond}, {"ns", time.Nanosecond},
}

// FormatDuration formats a duration into a string with the units accepted by
// ParseDuration, e.g. "10s", "-1w2d" or "3Y4M5d". The duration is rounded to
// round. The smallest unit in the output is the largest unit that divides
// round evenly, so 90s rounding is written as "1m30s".
func FormatDuration(d, round time.Duration) string {
	if round > 0 {
		d = d.Round(round)
	}
	if d == 0 {
		return "0s"
	}

	var sb strings.Builder
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}

	smallest := time.Nanosecond
	if round > 0 {
		for _, u := range formatUnits {
			if round%u.dur == 0 {
				smallest = u.dur
				break
			}
		}
	}

	for _, u := range formatUnits {
		if u.dur < smallest {
			break
		}
		if n := d / u.dur; n > 0 {
			fmt.Fprintf(&sb, "%d%s", n, u.sym)
			d -= n * u.dur
		}
	}

	return sb.String()
}
