package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// LEGAL (COLOMBIAN LAW) ENGINE
// =============================================================================
// Statutory classification is a cross-product per segment: {ordinary,
// overtime} x {day, night} x {weekday, Sunday/holiday}, eight rate buckets
// in total. Surcharges combine additively (night AND holiday stack as
// 1 + night% + holiday%). The overtime split uses a single weekly
// threshold with the same accumulator mechanism as the internal engine,
// but with its own independent running total.

// legalBucket indexes the eight statutory hour categories.
type legalBucket int

const (
	bucketOrdinaryDay legalBucket = iota
	bucketOrdinaryNight
	bucketExtraDay
	bucketExtraNight
	bucketSunHolDay
	bucketSunHolNight
	bucketExtraSunHolDay
	bucketExtraSunHolNight
	bucketCount
)

// CalcColombia prices all entries under Colombian labor law.
func (c *Calculator) CalcColombia(entries []WorkEntry, config LegalConfig, payment PaymentConfig) CalcResult {
	rate := HourlyRate(payment)

	var hours [bucketCount]float64
	var week weekTracker
	var dayBreakdowns []DayBreakdown

	// Statutory surcharge multipliers, additively combined.
	mult := [bucketCount]float64{
		bucketOrdinaryDay:      1,
		bucketOrdinaryNight:    1 + config.NightSurcharge/100,
		bucketExtraDay:         1 + config.ExtraDaySurcharge/100,
		bucketExtraNight:       1 + config.ExtraNightSurcharge/100,
		bucketSunHolDay:        1 + config.SundayHolidaySurcharge/100,
		bucketSunHolNight:      1 + config.NightSurcharge/100 + config.SundayHolidaySurcharge/100,
		bucketExtraSunHolDay:   1 + config.ExtraDaySurcharge/100 + config.SundayHolidaySurcharge/100,
		bucketExtraSunHolNight: 1 + config.ExtraNightSurcharge/100 + config.SundayHolidaySurcharge/100,
	}

	for _, entry := range sortedByDate(entries) {
		segments := c.SplitEntry(entry, config.NightStart, config.NightEnd)

		entryHours := 0.0
		for _, s := range segments {
			entryHours += s.Hours
		}

		tags := newTagSet()
		dayAmount := decimal.Zero

		for i := range segments {
			segment := &segments[i]
			week.roll(segment.Date)

			sunHol := segment.IsSunday || segment.IsHoliday
			ordinary, extra := splitAtLimit(week.hours, segment.Hours, config.WeeklyLimit)

			if sunHol {
				tags.add(TagDomFestivo)
			}

			if ordinary > 0 {
				b := bucketOrdinaryDay
				switch {
				case sunHol && segment.IsNighttime:
					b = bucketSunHolNight
				case sunHol:
					b = bucketSunHolDay
				case segment.IsNighttime:
					b = bucketOrdinaryNight
					tags.add(TagNocturno)
				default:
					tags.add(TagDiurno)
				}
				hours[b] += ordinary
				dayAmount = dayAmount.Add(rate.Mul(hoursDec(ordinary)).Mul(multDec(mult[b])))
			}

			if extra > 0 {
				segment.IsExtra = true
				b := bucketExtraDay
				switch {
				case sunHol && segment.IsNighttime:
					b = bucketExtraSunHolNight
				case sunHol:
					b = bucketExtraSunHolDay
				case segment.IsNighttime:
					b = bucketExtraNight
					tags.add(TagExtraNocturna)
				default:
					tags.add(TagExtra)
				}
				hours[b] += extra
				dayAmount = dayAmount.Add(rate.Mul(hoursDec(extra)).Mul(multDec(mult[b])))
			}

			week.add(segment.Hours)
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

	totalHours := 0.0
	totalAmount := decimal.Zero
	for b := bucketOrdinaryDay; b < bucketCount; b++ {
		totalHours += hours[b]
		totalAmount = totalAmount.Add(rate.Mul(hoursDec(hours[b])).Mul(multDec(mult[b])))
	}

	names := [bucketCount]string{
		bucketOrdinaryDay:      "Horas normales",
		bucketOrdinaryNight:    "Recargo nocturno",
		bucketExtraDay:         "Extra diurna",
		bucketExtraNight:       "Extra nocturna",
		bucketSunHolDay:        "Dominical/Festivo diurno",
		bucketSunHolNight:      "Dominical/Festivo nocturno",
		bucketExtraSunHolDay:   "Extra dominical/festivo diurna",
		bucketExtraSunHolNight: "Extra dominical/festivo nocturna",
	}

	// Zero-hour categories are omitted from the report; they still
	// contribute (as zero) to the totals above.
	var categories []CategoryBreakdown
	for b := bucketOrdinaryDay; b < bucketCount; b++ {
		if hours[b] > 0 {
			categories = append(categories, newCategory(names[b], hours[b], rate, mult[b], totalHours))
		}
	}

	return CalcResult{
		TotalHours:  roundTo(totalHours, 2),
		NormalHours: roundTo(hours[bucketOrdinaryDay], 2),
		BufferHours: 0,
		ExtraHours: roundTo(hours[bucketExtraDay]+hours[bucketExtraNight]+
			hours[bucketExtraSunHolDay]+hours[bucketExtraSunHolNight], 2),
		NightHours: roundTo(hours[bucketOrdinaryNight]+hours[bucketSunHolNight]+
			hours[bucketExtraNight]+hours[bucketExtraSunHolNight], 2),
		SundayHolidayHours: roundTo(hours[bucketSunHolDay]+hours[bucketSunHolNight]+
			hours[bucketExtraSunHolDay]+hours[bucketExtraSunHolNight], 2),
		TotalAmount:   totalAmount.Round(0),
		HourlyRate:    rate.Round(0),
		Categories:    categories,
		DayBreakdowns: dayBreakdowns,
		Alerts:        nil, // cross-engine alerts belong to the comparator
	}
}

// CalcColombia prices entries with the default statutory calendar.
func CalcColombia(entries []WorkEntry, config LegalConfig, payment PaymentConfig) CalcResult {
	return std.CalcColombia(entries, config, payment)
}
