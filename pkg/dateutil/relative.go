package dateutil

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
	secondsPerDay    = 24 * 60 * 60
	secondsPerYear   = 365 * secondsPerDay

	// Average Gregorian month length in days.
	daysPerMonth = 30.4375
)

// RelativeAge summarizes the elapsed time between createdAt and now as a
// single largest unit, e.g. "3 minutes ago" or "1 year ago". Elapsed times
// under one second (and future timestamps) produce "just now".
//
// Unit selection is lossy on purpose: only the first nonzero unit in the
// order years, months, days, hours, minutes, seconds is reported. A year is
// counted only after strictly more than 365 days have elapsed.
func RelativeAge(createdAt, now time.Time) string {
	totalSeconds := int64(now.Sub(createdAt) / time.Second)
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	seconds := totalSeconds % secondsPerMinute
	minutes := (totalSeconds / secondsPerMinute) % 60
	hours := (totalSeconds / secondsPerHour) % 24
	days := totalSeconds / secondsPerDay

	months := int64(float64(days) / daysPerMonth)
	var years int64
	if totalSeconds > secondsPerYear {
		years = totalSeconds / secondsPerYear
	}

	var unit string
	var value int64
	switch {
	case years > 0:
		unit, value = "year", years
	case months > 0:
		unit, value = "month", months
	case days > 0:
		unit, value = "day", days
	case hours > 0:
		unit, value = "hour", hours
	case minutes > 0:
		unit, value = "minute", minutes
	case seconds > 0:
		unit, value = "second", seconds
	default:
		return "just now"
	}

	if value > 1 {
		unit += "s"
	}

	return fmt.Sprintf("%d %s ago", value, unit)
}
