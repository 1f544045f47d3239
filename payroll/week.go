package payroll

// =============================================================================
// WEEKLY ACCUMULATOR
// =============================================================================
// Both engines classify hours against a weekly threshold with a running
// total that resets at each Monday boundary. The state is explicit: a week
// key plus accumulated hours, carried through the ordered segment sequence.
// Entries MUST be processed in ascending date order for the totals to be
// meaningful; the engines sort defensively before walking segments.

// weekTracker carries the (weekKey, accumulatedHours) fold state.
type weekTracker struct {
	key   string
	hours float64
}

// roll resets the accumulated total when date falls in a new week.
func (w *weekTracker) roll(date string) {
	key := weekStart(date)
	if w.key != key {
		w.key = key
		w.hours = 0
	}
}

func (w *weekTracker) add(hours float64) {
	w.hours += hours
}

// splitAtLimit divides hours into the part fitting under limit given the
// accumulated total, and the part above it. The above part is clipped to
// the segment's own hours, never negative.
func splitAtLimit(accumulated, hours, limit float64) (within, above float64) {
	remaining := limit - accumulated
	if remaining < 0 {
		remaining = 0
	}
	within = hours
	if within > remaining {
		within = remaining
	}
	return within, hours - within
}
