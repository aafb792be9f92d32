package leave

import (
	"time"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/dateutil"
)

// CalculateDays derives the stored days_requested quantity from a date
// range and its boundary half-day flags, in units of 0.5 days. Callers
// must reject ranges where end is before start first.
//
// Single-day requests count 1.0, or 0.5 when either flag marks a half
// day (am and pm are equivalent there: either means half the day).
//
// Multi-day requests count the inclusive day span, minus 0.5 for a
// "pm" start (the morning of the first day is worked) and minus 0.5
// for an "am" end (the afternoon of the last day is worked). An "am"
// start or "pm" end has no numeric effect on a multi-day range; that
// asymmetry is long-standing billing behavior and is kept as is rather
// than extended.
func CalculateDays(start, end time.Time, startHalf, endHalf leave.HalfDay) float64 {
	if start.Equal(end) {
		if startHalf != leave.HalfDayFull || endHalf != leave.HalfDayFull {
			return 0.5
		}
		return 1
	}

	days := float64(dateutil.InclusiveDays(start, end))
	if startHalf == leave.HalfDayAfternoon {
		days -= 0.5
	}
	if endHalf == leave.HalfDayMorning {
		days -= 0.5
	}
	return days
}
