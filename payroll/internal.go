package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INTERNAL POLICY ENGINE
// =============================================================================
// The company policy ladder: hours below the base weekly threshold are
// normal, hours between the base and the buffer limit are "colchón" (same
// 1.0x rate, separate reporting bucket), hours above the buffer limit pay
// the extra multiplier. Holiday hours bypass the ladder entirely at the
// holiday multiplier and do not feed the weekly accumulator. The policy
// pays NO night differential; night hours are detected and flagged only.

// Default night window used by the internal engine for night detection.
const (
	DefaultNightStart = "21:00"
	DefaultNightEnd   = "06:00"
)

// CalcInternal prices all entries under the internal policy.
func (c *Calculator) CalcInternal(entries []WorkEntry, config InternalConfig, payment PaymentConfig) CalcResult {
	rate := HourlyRate(payment)

	var normalHours, bufferHours, extraHours, holidayHours float64
	var week weekTracker
	var dayBreakdowns []DayBreakdown
	var alerts []Alert
	var nightShiftDays []string
	warnedSundays := make(map[string]bool)

	for _, entry := range sortedByDate(entries) {
		segments := c.SplitEntry(entry, DefaultNightStart, DefaultNightEnd)

		entryHours := 0.0
		for _, s := range segments {
			entryHours += s.Hours
		}

		tags := newTagSet()
		dayAmount := decimal.Zero

		hasNightHours := false
		for _, s := range segments {
			if s.IsNighttime {
				hasNightHours = true
			}
		}
		if hasNightHours {
			nightShiftDays = append(nightShiftDays, entry.Date)
			tags.add(TagNocturno)
		}

		for i := range segments {
			segment := &segments[i]
			week.roll(segment.Date)

			// Holiday hours pay the holiday multiplier regardless of weekly
			// load and stay out of the accumulator.
			if segment.IsHoliday {
				holidayHours += segment.Hours
				dayAmount = dayAmount.Add(rate.Mul(hoursDec(segment.Hours)).Mul(multDec(config.HolidayMultiplier)))
				tags.add(TagFestivo)
				continue
			}

			if segment.IsSunday {
				tags.add(TagDomingo)
				if !warnedSundays[segment.Date] {
					warnedSundays[segment.Date] = true
					alerts = append(alerts, Alert{
						Type:         AlertWarning,
						Title:        "Trabajo en domingo detectado",
						Message:      fmt.Sprintf("Se registró trabajo en domingo (%s). La política interna indica no trabajar domingos.", segment.Date),
						AffectedDays: []string{segment.Date},
					})
				}
			}

			if segment.IsDaytime {
				tags.add(TagDiurno)
			}

			// Ladder: a single segment can straddle normal, buffer and extra.
			normal, rest := splitAtLimit(week.hours, segment.Hours, config.BaseWeeklyHours)
			buffer, extra := splitAtLimit(week.hours+normal, rest, config.BufferLimit)

			normalHours += normal
			bufferHours += buffer
			extraHours += extra
			dayAmount = dayAmount.Add(rate.Mul(hoursDec(normal + buffer)))
			dayAmount = dayAmount.Add(rate.Mul(hoursDec(extra)).Mul(multDec(config.ExtraMultiplier)))

			if buffer > 0 {
				tags.add(TagColchon)
			}
			if extra > 0 {
				tags.add(TagExtra)
				segment.IsExtra = true
			}

			week.add(segment.Hours)
		}

		if hasNightHours {
			tags.add(TagNoNightPay)
		}

		dayBreakdowns = append(dayBreakdowns, DayBreakdown{
			Date:         entry.Date,
			DayName:      dayName(entry.Date),
			StartTime:    entry.StartTime,
			EndTime:      entry.EndTime,
			BreakMinutes: entry.BreakMinutes,
			TotalHours:   roundTo(entryHours, 2),
			Amount:       dayAmount.Round(0),
			Tags:         tags.list(),
			Segments:     segments,
		})
	}

	if len(nightShiftDays) > 0 {
		alerts = append(alerts, Alert{
			Type:         AlertWarning,
			Title:        "Horas nocturnas detectadas",
			Message:      "La política interna no contempla pago de recargo nocturno. Sin embargo, la ley colombiana exige un recargo del 35% para trabajo entre las 21:00 y 06:00.",
			AffectedDays: nightShiftDays,
		})
	}

	totalHours := normalHours + bufferHours + extraHours + holidayHours
	totalAmount := rate.Mul(hoursDec(normalHours + bufferHours)).
		Add(rate.Mul(hoursDec(extraHours)).Mul(multDec(config.ExtraMultiplier))).
		Add(rate.Mul(hoursDec(holidayHours)).Mul(multDec(config.HolidayMultiplier))).
		Round(0)

	categories := []CategoryBreakdown{
		newCategory("Horas normales", normalHours, rate, 1.0, totalHours),
		newCategory("Horas colchón", bufferHours, rate, 1.0, totalHours),
		newCategory("Horas extra", extraHours, rate, config.ExtraMultiplier, totalHours),
		newCategory("Festivos", holidayHours, rate, config.HolidayMultiplier, totalHours),
	}

	return CalcResult{
		TotalHours:         roundTo(totalHours, 2),
		NormalHours:        roundTo(normalHours, 2),
		BufferHours:        roundTo(bufferHours, 2),
		ExtraHours:         roundTo(extraHours, 2),
		NightHours:         0, // the policy does not pay a night differential
		SundayHolidayHours: roundTo(holidayHours, 2),
		TotalAmount:        totalAmount,
		HourlyRate:         rate.Round(0),
		Categories:         categories,
		DayBreakdowns:      dayBreakdowns,
		Alerts:             alerts,
	}
}

// CalcInternal prices entries with the default statutory calendar.
func CalcInternal(entries []WorkEntry, config InternalConfig, payment PaymentConfig) CalcResult {
	return std.CalcInternal(entries, config, payment)
}

// newCategory builds one breakdown line. Percentages use total classified
// hours as denominator and are 0, not NaN, when that total is 0.
func newCategory(name string, hours float64, rate decimal.Decimal, multiplier, totalHours float64) CategoryBreakdown {
	percentage := 0.0
	if totalHours > 0 {
		percentage = roundTo(hours/totalHours*100, 1)
	}
	return CategoryBreakdown{
		Category:   name,
		Hours:      roundTo(hours, 2),
		Rate:       rate.Mul(multDec(multiplier)).Round(0),
		Multiplier: multiplier,
		Subtotal:   rate.Mul(hoursDec(hours)).Mul(multDec(multiplier)).Round(0),
		Percentage: percentage,
	}
}

// sortedByDate returns a date-ascending copy; the weekly accumulator is
// order-dependent so caller order is never trusted.
func sortedByDate(entries []WorkEntry) []WorkEntry {
	sorted := make([]WorkEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
