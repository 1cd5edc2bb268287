// Package calendar enumerates the schedulable days of a target month.
package calendar

import "time"

// Day describes one calendar date of the target month. Working is false
// exactly on the weekly rest day.
type Day struct {
	Date    time.Time `json:"date"`
	Working bool      `json:"working"`
}

// Month returns the ordered day descriptors covering every date from the
// first to the last day of the given month. It is a pure function of a valid
// year and month.
func Month(year int, month time.Month, restDay time.Weekday) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]Day, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, Working: d.Weekday() != restDay})
	}
	return days
}
