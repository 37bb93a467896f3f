// utils/dates.go
package utils

import (
	"time"
)

// ISODate is the calendar-day layout used for measurement and delivery dates.
const ISODate = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from start to end in end's location.
func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start.In(end.Location()))
	end = BeginningOfDay(end)
	return int(end.Sub(start).Round(time.Hour).Hours() / 24)
}

func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(ISODate, s, loc)
}

// ValidISODate accepts an empty string or a YYYY-MM-DD calendar date.
func ValidISODate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(ISODate, s)
	return err == nil
}
