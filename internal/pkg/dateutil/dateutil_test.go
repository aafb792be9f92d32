package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical ranges", "2026-03-10", "2026-03-12", "2026-03-10", "2026-03-12", true},
		{"contained range", "2026-03-01", "2026-03-31", "2026-03-10", "2026-03-12", true},
		{"partial overlap", "2026-03-10", "2026-03-15", "2026-03-14", "2026-03-20", true},
		{"touching boundary", "2026-03-10", "2026-03-12", "2026-03-12", "2026-03-14", true},
		{"adjacent days", "2026-03-10", "2026-03-12", "2026-03-13", "2026-03-14", false},
		{"disjoint", "2026-03-01", "2026-03-05", "2026-04-01", "2026-04-05", false},
		{"single day inside", "2026-03-09", "2026-03-11", "2026-03-10", "2026-03-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aStart := mustDate(t, tt.aStart)
			aEnd := mustDate(t, tt.aEnd)
			bStart := mustDate(t, tt.bStart)
			bEnd := mustDate(t, tt.bEnd)

			assert.Equal(t, tt.want, RangesOverlap(aStart, aEnd, bStart, bEnd))
			// Overlap is symmetric in its two ranges.
			assert.Equal(t, tt.want, RangesOverlap(bStart, bEnd, aStart, aEnd))
		})
	}
}

func TestDatesInRange(t *testing.T) {
	start := mustDate(t, "2026-02-27")
	end := mustDate(t, "2026-03-02")

	dates := DatesInRange(start, end)
	require.Len(t, dates, 4)
	assert.Equal(t, "2026-02-27", Format(dates[0]))
	assert.Equal(t, "2026-02-28", Format(dates[1]))
	assert.Equal(t, "2026-03-01", Format(dates[2]))
	assert.Equal(t, "2026-03-02", Format(dates[3]))

	// Pure function: a second call yields the same sequence.
	assert.Equal(t, dates, DatesInRange(start, end))
}

func TestDatesInRange_SingleDay(t *testing.T) {
	d := mustDate(t, "2026-03-10")
	dates := DatesInRange(d, d)
	require.Len(t, dates, 1)
	assert.Equal(t, d, dates[0])
}

func TestDatesInRange_Inverted(t *testing.T) {
	assert.Nil(t, DatesInRange(mustDate(t, "2026-03-12"), mustDate(t, "2026-03-10")))
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, InclusiveDays(mustDate(t, "2026-03-10"), mustDate(t, "2026-03-10")))
	assert.Equal(t, 3, InclusiveDays(mustDate(t, "2026-03-10"), mustDate(t, "2026-03-12")))
	// Across a month boundary.
	assert.Equal(t, 5, InclusiveDays(mustDate(t, "2026-02-27"), mustDate(t, "2026-03-03")))
}
