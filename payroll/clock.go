package payroll

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// =============================================================================
// CLOCK AND DATE ARITHMETIC
// =============================================================================
// Entries carry ISO date strings and HH:MM clock strings. All interval math
// happens on minutes-since-midnight; a shift crossing midnight extends past
// 1440 rather than wrapping.

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// parseClock converts "HH:MM" to minutes since midnight.
// Malformed strings report ok=false; callers degrade to zero segments.
func parseClock(s string) (int, bool) {
	if !clockPattern.MatchString(s) {
		return 0, false
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m, true
}

// formatClock renders minutes since midnight back to "HH:MM", wrapping at 24h.
func formatClock(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// parseDate parses an ISO date at noon UTC so day arithmetic never slips
// across DST or day boundaries.
func parseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(12 * time.Hour), true
}

// nextDay returns the ISO date one calendar day after date.
func nextDay(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}

// weekStart returns the Monday of the ISO week containing date. It is the
// weekly accumulator's reset key.
func weekStart(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -sinceMonday).Format("2006-01-02")
}

var spanishDayNames = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// dayName returns the Spanish weekday name for an ISO date.
func dayName(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	return spanishDayNames[int(t.Weekday())]
}

// roundTo rounds to the given number of decimal places, half away from zero.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
