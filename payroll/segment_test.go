package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/calendar"
	"github.com/warp/payroll-engine/payroll"
)

// neutral calculates against a calendar with no holidays so classification
// depends only on the entry itself.
var neutral = payroll.NewCalculator(calendar.Noop{})

func entry(date, start, end string, breakMinutes int) payroll.WorkEntry {
	e := payroll.NewWorkEntry(date, start, end, breakMinutes)
	return e
}

func totalHours(segments []payroll.Segment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Hours
	}
	return total
}

// =============================================================================
// SPLITTING
// =============================================================================

func TestSplitEntry_AllDaytime(t *testing.T) {
	// GIVEN a shift fully inside the day window, with an unpaid break
	segments := neutral.SplitEntry(entry("2025-01-20", "08:00", "17:00", 60), "21:00", "06:00")

	// THEN it stays a single daytime segment, break already deducted
	require.Len(t, segments, 1)
	assert.Equal(t, 8.0, segments[0].Hours)
	assert.Equal(t, "08:00", segments[0].StartTime)
	assert.Equal(t, "17:00", segments[0].EndTime)
	assert.True(t, segments[0].IsDaytime)
	assert.False(t, segments[0].IsNighttime)
	assert.False(t, segments[0].IsSunday)
	assert.False(t, segments[0].IsHoliday)
}

func TestSplitEntry_DayIntoNight(t *testing.T) {
	segments := neutral.SplitEntry(entry("2025-01-20", "14:00", "23:00", 0), "21:00", "06:00")

	require.Len(t, segments, 2)
	assert.Equal(t, 7.0, segments[0].Hours)
	assert.True(t, segments[0].IsDaytime)
	assert.Equal(t, "21:00", segments[1].StartTime)
	assert.Equal(t, 2.0, segments[1].Hours)
	assert.True(t, segments[1].IsNighttime)
}

func TestSplitEntry_CrossesMidnight(t *testing.T) {
	// GIVEN a 22:00-06:00 shift; end before start means it crosses midnight
	segments := neutral.SplitEntry(entry("2025-01-20", "22:00", "06:00", 0), "21:00", "06:00")

	// THEN the midnight rollover cuts the night span in two, and the
	// post-midnight part is dated the following day
	require.Len(t, segments, 2)

	assert.Equal(t, "2025-01-20", segments[0].Date)
	assert.Equal(t, "22:00", segments[0].StartTime)
	assert.Equal(t, "00:00", segments[0].EndTime)
	assert.Equal(t, 2.0, segments[0].Hours)
	assert.True(t, segments[0].IsNighttime)

	assert.Equal(t, "2025-01-21", segments[1].Date)
	assert.Equal(t, "00:00", segments[1].StartTime)
	assert.Equal(t, "06:00", segments[1].EndTime)
	assert.Equal(t, 6.0, segments[1].Hours)
	assert.True(t, segments[1].IsNighttime)

	assert.Equal(t, 8.0, totalHours(segments))
}

func TestSplitEntry_BreakConsumedEarliestFirst(t *testing.T) {
	// GIVEN the same midnight-crossing shift with a 30 minute break
	segments := neutral.SplitEntry(entry("2025-01-20", "22:00", "06:00", 30), "21:00", "06:00")

	// THEN only the first segment shrinks
	require.Len(t, segments, 2)
	assert.Equal(t, 1.5, segments[0].Hours)
	assert.Equal(t, 6.0, segments[1].Hours)
}

func TestSplitEntry_BreakSwallowsWholeSegment(t *testing.T) {
	// 08:00-10:00 day then 10:00 onward still day; break of 150 min wipes
	// out more than the first hour. Use a shift straddling the night start
	// so there are two segments to begin with.
	segments := neutral.SplitEntry(entry("2025-01-20", "20:00", "23:00", 150), "21:00", "06:00")

	// 20:00-21:00 day (60 min) fully consumed, 21:00-23:00 night loses the
	// remaining 90 min.
	require.Len(t, segments, 1)
	assert.True(t, segments[0].IsNighttime)
	assert.Equal(t, 0.5, segments[0].Hours)
}

func TestSplitEntry_NonWrappingNightWindow(t *testing.T) {
	// GIVEN a night window that does not wrap midnight
	segments := neutral.SplitEntry(entry("2025-01-20", "05:00", "07:00", 0), "00:00", "06:00")

	require.Len(t, segments, 2)
	assert.True(t, segments[0].IsNighttime)
	assert.Equal(t, 1.0, segments[0].Hours)
	assert.True(t, segments[1].IsDaytime)
	assert.Equal(t, 1.0, segments[1].Hours)
}

func TestSplitEntry_DayNightPartition(t *testing.T) {
	// Every segment is exactly one of daytime or nighttime.
	segments := neutral.SplitEntry(entry("2025-01-20", "18:00", "03:00", 45), "21:00", "06:00")

	require.NotEmpty(t, segments)
	for _, s := range segments {
		assert.NotEqual(t, s.IsDaytime, s.IsNighttime)
	}
}

func TestSplitEntry_HoursAreConserved(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		breakMin   int
		want       float64
	}{
		{"plain day shift", "09:00", "17:00", 0, 8},
		{"day shift with break", "08:00", "18:30", 60, 9.5},
		{"night crossing", "22:00", "06:00", 30, 7.5},
		{"evening into night", "18:00", "02:00", 0, 8},
		{"odd minutes", "08:17", "16:43", 26, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments := neutral.SplitEntry(entry("2025-01-20", tc.start, tc.end, tc.breakMin), "21:00", "06:00")
			assert.InDelta(t, tc.want, totalHours(segments), 0.011)
		})
	}
}

// =============================================================================
// DEGRADATION
// =============================================================================

func TestSplitEntry_MalformedInputYieldsNothing(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		breakMin   int
	}{
		{"bad start", "8:00", "17:00", 0},
		{"bad end", "08:00", "25h", 0},
		{"empty times", "", "", 0},
		{"break equals span", "08:00", "12:00", 240},
		{"break exceeds span", "08:00", "12:00", 600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments := neutral.SplitEntry(entry("2025-01-20", tc.start, tc.end, tc.breakMin), "21:00", "06:00")
			assert.Empty(t, segments)
		})
	}
}

func TestSplitEntry_MalformedNightWindowYieldsNothing(t *testing.T) {
	segments := neutral.SplitEntry(entry("2025-01-20", "08:00", "17:00", 0), "9pm", "06:00")
	assert.Empty(t, segments)
}

// =============================================================================
// CLASSIFICATION FLAGS
// =============================================================================

func TestSplitEntry_SundayFlag(t *testing.T) {
	segments := neutral.SplitEntry(entry("2025-01-26", "08:00", "13:00", 0), "21:00", "06:00")

	require.Len(t, segments, 1)
	assert.True(t, segments[0].IsSunday)
}

func TestSplitEntry_SundayFlagFollowsEffectiveDate(t *testing.T) {
	// Saturday night into Sunday morning: only the post-midnight segment
	// is Sunday work.
	segments := neutral.SplitEntry(entry("2025-01-25", "22:00", "06:00", 0), "21:00", "06:00")

	require.Len(t, segments, 2)
	assert.False(t, segments[0].IsSunday)
	assert.True(t, segments[1].IsSunday)
}

func TestSplitEntry_ExplicitHolidayFlagPropagates(t *testing.T) {
	e := entry("2025-01-20", "08:00", "12:00", 0)
	e.IsHoliday = true

	segments := neutral.SplitEntry(e, "21:00", "06:00")

	require.Len(t, segments, 1)
	assert.True(t, segments[0].IsHoliday)
}

func TestSplitEntry_CalendarHolidayDetected(t *testing.T) {
	// The statutory calendar marks Jan 1 even when the entry does not.
	withCalendar := payroll.NewCalculator(calendar.NewColombia())
	segments := withCalendar.SplitEntry(entry("2025-01-01", "08:00", "12:00", 0), "21:00", "06:00")

	require.Len(t, segments, 1)
	assert.True(t, segments[0].IsHoliday)
}

func TestSplitEntry_EntryIDCarriedOnSegments(t *testing.T) {
	e := entry("2025-01-20", "08:00", "17:00", 30)
	for _, s := range neutral.SplitEntry(e, "21:00", "06:00") {
		assert.Equal(t, e.ID, s.EntryID)
	}
}
