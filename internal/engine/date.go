package engine

import "time"

// All day and week comparisons use local calendar boundaries
// (midnight-to-midnight in the timestamp's location), never rolling
// 24-hour windows.

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func IsSameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// IsNextDay reports whether cur falls on the calendar day immediately
// after prev. AddDate keeps this correct across DST transitions.
func IsNextDay(prev, cur time.Time) bool {
	return StartOfDay(prev).AddDate(0, 0, 1).Equal(StartOfDay(cur))
}

// StartOfWeek returns the start-of-day of the first weekStart day at or
// before t. With weekStart = Monday this is the ISO week bucket.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

func IsSameWeek(a, b time.Time, weekStart time.Weekday) bool {
	return StartOfWeek(a, weekStart).Equal(StartOfWeek(b, weekStart))
}
