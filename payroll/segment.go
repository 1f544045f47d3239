package payroll

import "github.com/warp/payroll-engine/calendar"

// =============================================================================
// SEGMENT SPLITTER
// =============================================================================
// Converts one raw entry into an ordered sequence of homogeneous segments.
// Boundaries are the day/night transitions of the configured night window
// and the midnight rollover, whichever comes first. Unpaid break minutes
// are consumed from the earliest segments.

// Calculator bundles the engines with their calendar collaborator.
type Calculator struct {
	Calendar calendar.Oracle
}

func NewCalculator(cal calendar.Oracle) *Calculator {
	if cal == nil {
		cal = calendar.Noop{}
	}
	return &Calculator{Calendar: cal}
}

// std backs the package-level convenience functions with the Colombian
// statutory calendar.
var std = NewCalculator(calendar.NewColombia())

// SplitEntry splits one entry into segments against a night window.
// Malformed clock strings or a non-positive net duration (break >= span)
// yield no segments; the entry simply contributes nothing.
func (c *Calculator) SplitEntry(entry WorkEntry, nightStart, nightEnd string) []Segment {
	var segments []Segment

	start, okStart := parseClock(entry.StartTime)
	end, okEnd := parseClock(entry.EndTime)
	nightFrom, okNF := parseClock(nightStart)
	nightTo, okNT := parseClock(nightEnd)
	if !okStart || !okEnd || !okNF || !okNT {
		return segments
	}

	// end <= start signals a shift crossing midnight.
	if end <= start {
		end += minutesPerDay
	}
	if end-start-entry.BreakMinutes <= 0 {
		return segments
	}

	// The night window itself wraps midnight when its start is after its end
	// (the usual case, e.g. 21:00-06:00).
	nightWraps := nightFrom > nightTo
	isNightAt := func(minute int) bool {
		m := minute % minutesPerDay
		if nightWraps {
			return m >= nightFrom || m < nightTo
		}
		return m >= nightFrom && m < nightTo
	}

	current := start
	remainingBreak := entry.BreakMinutes

	for current < end {
		normalized := current % minutesPerDay
		night := isNightAt(current)

		// Next day/night transition after the current instant.
		next := end
		if night {
			switch {
			case nightWraps && normalized >= nightFrom:
				next = min(next, current-normalized+minutesPerDay+nightTo)
			default:
				next = min(next, current-normalized+nightTo)
			}
		} else {
			// The coming night start; a day instant past a non-wrapping
			// window reaches it on the following day.
			boundary := current - normalized + nightFrom
			if boundary <= current {
				boundary += minutesPerDay
			}
			next = min(next, boundary)
		}

		// Never let a segment straddle midnight; its effective date changes.
		midnight := minutesPerDay
		if current >= minutesPerDay {
			midnight = 2 * minutesPerDay
		}
		if current < midnight && next > midnight {
			next = midnight
		}

		segmentMinutes := next - current
		if remainingBreak > 0 {
			consumed := min(remainingBreak, segmentMinutes)
			segmentMinutes -= consumed
			remainingBreak -= consumed
		}

		if segmentMinutes > 0 {
			date := entry.Date
			if current >= minutesPerDay {
				date = nextDay(entry.Date)
			}
			segments = append(segments, Segment{
				EntryID:     entry.ID,
				Date:        date,
				StartTime:   formatClock(current),
				EndTime:     formatClock(next),
				Hours:       roundTo(float64(segmentMinutes)/60, 2),
				IsDaytime:   !night,
				IsNighttime: night,
				IsSunday:    c.Calendar.IsSunday(date),
				IsHoliday:   entry.IsHoliday || c.Calendar.IsHoliday(date),
			})
		}

		current = next
	}

	return segments
}

// SplitEntry splits against the default statutory calendar and night window.
func SplitEntry(entry WorkEntry, nightStart, nightEnd string) []Segment {
	return std.SplitEntry(entry, nightStart, nightEnd)
}
