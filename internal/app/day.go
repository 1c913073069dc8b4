package app

import "time"

// dayRange bounds a calendar day in server-local time:
// [00:00:00.000, 23:59:59.999].
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
