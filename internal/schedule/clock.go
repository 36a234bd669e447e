// Package schedule holds the daily template builder and the weighted
// activity selector. Everything here is pure computation over settings and
// catalog snapshots; persistence stays behind the interfaces in generator.go.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatError reports a clock string that is not "HH:MM".
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid clock time %q", e.Input)
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &FormatError{Input: s}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &FormatError{Input: s}
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &FormatError{Input: s}
	}
	return hours*60 + mins, nil
}

// FormatClock converts minutes since midnight back to a zero-padded "HH:MM",
// wrapping modulo 24 hours so offset arithmetic past midnight stays printable.
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Format12h renders an "HH:MM" clock string as "H:MM AM/PM".
func Format12h(s string) (string, error) {
	total, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	hours, mins := total/60, total%60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, period), nil
}

// FormatDurationMinutes renders a minute count as "1h 30m" or "45 min".
func FormatDurationMinutes(minutes int) string {
	hrs := minutes / 60
	mins := minutes % 60
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}
	return fmt.Sprintf("%d min", mins)
}

// NowMinutes returns the current minute-of-day in loc, with fractional
// seconds so countdown displays tick smoothly. Defaults to local time.
func NowMinutes(loc *time.Location) float64 {
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	return float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60
}
