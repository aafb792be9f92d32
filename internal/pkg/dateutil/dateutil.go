package dateutil

import "time"

const layout = "2006-01-02"

// ParseDate parses a calendar date in "YYYY-MM-DD" form, normalized to
// UTC midnight so date-only comparisons are exact.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layout, s, time.UTC)
}

// Format renders a date back into "YYYY-MM-DD" form.
func Format(t time.Time) string {
	return t.Format(layout)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RangesOverlap reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one day. Boundaries count as overlap.
// This is the single overlap predicate used for conflict and blocked-day
// checks.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DatesInRange returns the ordered, inclusive sequence of calendar dates
// from start to end. Returns nil when end is before start.
func DatesInRange(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// InclusiveDays returns the number of whole calendar days in [start, end],
// counting both endpoints.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
