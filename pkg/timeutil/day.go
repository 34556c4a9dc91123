package timeutil

import "time"

const layoutDay = "2006-01-02"

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// PreviousDay returns local midnight of the day before t's day.
func PreviousDay(t time.Time) time.Time {
	return StartOfDay(StartOfDay(t).AddDate(0, 0, -1))
}

// DayKey identifies the local calendar day of t.
func DayKey(t time.Time) string {
	return t.Local().Format(layoutDay)
}
