// Package timeutil centralizes the calendar-day arithmetic shared by the
// clock-event sequencer, the day grouper and the report builder, so all three
// agree on what "today" means for a given instant.
package timeutil

import "time"

// DayWindow returns the half-open interval [start, end) covering the local
// calendar day that contains ref in loc.
func DayWindow(ref time.Time, loc *time.Location) (start, end time.Time) {
	local := ref.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// DateKey formats the local calendar date of ref as YYYY-MM-DD.
func DateKey(ref time.Time, loc *time.Location) string {
	return ref.In(loc).Format("2006-01-02")
}

// MinutesOfDay returns minutes elapsed since local midnight for ref.
func MinutesOfDay(ref time.Time, loc *time.Location) int {
	local := ref.In(loc)
	return local.Hour()*60 + local.Minute()
}

// IsWeekend reports whether ref falls on Saturday or Sunday in loc.
func IsWeekend(ref time.Time, loc *time.Location) bool {
	wd := ref.In(loc).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
