// Package date formats signing timestamps from raw epoch seconds. The
// calendar conversion is implemented here rather than through the time
// package, so the rendered value depends on nothing but the input and never
// on a timezone database or locale.
package date

import "fmt"

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400

	epochYear = 1970
)

// daysPerMonth is the month-length table for a non-leap year; February is
// adjusted inline for leap years.
var daysPerMonth = [12]uint64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// FormatAmzDate renders unixSeconds as the compact ISO-8601 UTC form carried
// in X-Amz-Date headers and credential scopes (yyyymmddThhmmssZ). It is
// exact for any representable input, not just near-present dates.
func FormatAmzDate(unixSeconds uint64) string {
	days := unixSeconds / secondsPerDay
	secondsOfDay := unixSeconds % secondsPerDay

	year, month, day := daysToDate(days)

	hour := secondsOfDay / secondsPerHour
	minute := (secondsOfDay % secondsPerHour) / secondsPerMinute
	second := secondsOfDay % secondsPerMinute

	return fmt.Sprintf("%04d%02d%02dT%02d%02d%02dZ", year, month, day, hour, minute, second)
}

// isLeapYear implements the proleptic Gregorian leap rule: divisible by 4
// and not by 100, or divisible by 400.
func isLeapYear(year uint64) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// daysToDate converts a day count since the epoch to a calendar date by
// walking whole years from 1970, then whole months within the final year.
func daysToDate(days uint64) (year, month, day uint64) {
	year = epochYear
	for {
		yearDays := uint64(365)
		if isLeapYear(year) {
			yearDays = 366
		}
		if days < yearDays {
			break
		}
		days -= yearDays
		year++
	}

	month = 1
	for i, monthDays := range daysPerMonth {
		if i == 1 && isLeapYear(year) {
			monthDays = 29
		}
		if days < monthDays {
			break
		}
		days -= monthDays
		month++
	}

	return year, month, days + 1
}
