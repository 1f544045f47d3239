/*
Package factory synthesizes work entries from aggregate hour counts.

PURPOSE:
  "Simple mode" input is four numbers: total hours worked, and how many of
  them fell on holidays, Sundays and nights. The engines only understand
  concrete shifts, so this adapter maps the aggregate struct to a list of
  synthetic WorkEntry values on fixed anchor dates and hands those to the
  real engines. It is UI convenience, wholly separate from the engines.

STRATEGY:
  Specific hour types get dedicated entries first (a known holiday, a
  Sunday, a weekday night shift starting 22:00); whatever remains becomes
  ordinary daytime entries spread over weekdays in chunks of at most 8
  hours.

SEE ALSO:
  - payroll: the engines consuming the synthetic entries
*/
package factory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/warp/payroll-engine/payroll"
)

// SimpleData is the aggregate-input shape of simple mode. Holiday, Sunday
// and night hours are subsets of the total.
type SimpleData struct {
	TotalHours   float64
	HolidayHours float64
	SundayHours  float64
	NightHours   float64
}

// Anchor dates for synthetic entries. The week of 2025-01-20 starts on a
// Monday, January 1 is a statutory holiday, and January 26 is a Sunday.
const (
	anchorHoliday = "2025-01-01"
	anchorSunday  = "2025-01-26"
	anchorNight   = "2025-01-20"
)

var anchorWorkdays = []string{
	"2025-01-21", "2025-01-22", "2025-01-23", "2025-01-24", "2025-01-25",
}

// Synthesize maps aggregate hours to concrete entries for the engines.
func Synthesize(data SimpleData) []payroll.WorkEntry {
	var entries []payroll.WorkEntry

	remainingTotal := data.TotalHours

	if data.HolidayHours > 0 {
		entries = append(entries, synthetic(anchorHoliday, "08:00", data.HolidayHours, "Generado: Festivo", true))
		remainingTotal -= data.HolidayHours
	}

	if data.SundayHours > 0 {
		entries = append(entries, synthetic(anchorSunday, "08:00", data.SundayHours, "Generado: Domingo", false))
		remainingTotal -= data.SundayHours
	}

	if data.NightHours > 0 {
		entries = append(entries, synthetic(anchorNight, "22:00", data.NightHours, "Generado: Nocturno", false))
		remainingTotal -= data.NightHours
	}

	// Remaining ordinary hours spread over weekdays, at most 8h per entry.
	for day := 0; remainingTotal > 0; day++ {
		hours := remainingTotal
		if hours > 8 {
			hours = 8
		}
		date := anchorWorkdays[day%len(anchorWorkdays)]
		entries = append(entries, synthetic(date, "08:00", hours, "Generado: Normal", false))
		remainingTotal -= hours
	}

	return entries
}

func synthetic(date, start string, hours float64, note string, holiday bool) payroll.WorkEntry {
	return payroll.WorkEntry{
		ID:        uuid.NewString(),
		Date:      date,
		StartTime: start,
		EndTime:   endTime(start, hours),
		IsHoliday: holiday,
		Notes:     note,
	}
}

// endTime advances a clock time by a fractional hour count, wrapping at
// midnight so the splitter sees the crossing.
func endTime(start string, hours float64) string {
	var h, m int
	fmt.Sscanf(start, "%d:%d", &h, &m)
	total := h*60 + m + int(hours*60)
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
