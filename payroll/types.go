/*
Package payroll computes amounts owed for worked time under two competing
rule sets and compares them.

PURPOSE:
  Given raw work shifts (start/end clock times, unpaid breaks, holiday
  flags), the engines split each shift into homogeneous segments
  (day/night, Sunday/holiday), classify hours against weekly thresholds,
  and price every category:

  - Internal engine: the company policy. A normal/buffer/extra hour
    ladder, a flat holiday multiplier, and NO night differential.
  - Legal engine: Colombian labor law. A single statutory weekly
    threshold and the additive cross-product of night, overtime and
    Sunday/holiday surcharges (up to 8 rate categories).
  - Comparator: monetary delta between both results plus cross-engine
    alerts (unpaid night differential, above-statutory holiday pay).

KEY CONCEPTS IN THIS FILE (types.go):
  - WorkEntry: one recorded shift; end <= start means it crosses midnight
  - Segment: maximal sub-interval with constant classification
  - InternalConfig / LegalConfig / PaymentConfig: caller-owned knobs
  - CalcResult / ComparisonResult: wholesale-recomputed outputs

DESIGN PRINCIPLES:
  1. Purity: every calculation is a function of (entries, config,
     payment); nothing is cached or mutated across invocations.
  2. Precision: money uses decimal.Decimal; hours are float64 rounded
     to 2 decimals, matching the reporting granularity.
  3. Silent degradation: malformed input contributes zero hours instead
     of failing; divisions by zero are defined as 0.

SEE ALSO:
  - segment.go: the shift splitter
  - internal.go, colombia.go: the two engines
  - compare.go: the comparator
*/
package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// WORK ENTRY - one raw recorded shift
// =============================================================================

// WorkEntry is one recorded shift. EndTime numerically at or before
// StartTime means the shift crosses midnight; that is data, not an error.
type WorkEntry struct {
	ID           string
	Date         string // YYYY-MM-DD
	StartTime    string // HH:MM, 24h
	EndTime      string // HH:MM, 24h
	BreakMinutes int
	IsHoliday    bool // explicit override, ORed with the calendar lookup
	Notes        string
}

// NewWorkEntry builds an entry with a generated identifier.
func NewWorkEntry(date, start, end string, breakMinutes int) WorkEntry {
	return WorkEntry{
		ID:           uuid.NewString(),
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: breakMinutes,
	}
}

// Segment is a maximal sub-interval of one entry during which the
// day/night and Sunday/holiday classification is constant. Segments are
// derived and ephemeral; only IsExtra is assigned after creation, by the
// weekly threshold classification.
type Segment struct {
	EntryID     string
	Date        string // effective date; day after the entry's date past midnight
	StartTime   string
	EndTime     string
	Hours       float64 // rounded to 2 decimals
	IsDaytime   bool
	IsNighttime bool
	IsSunday    bool
	IsHoliday   bool
	IsExtra     bool
}

// =============================================================================
// CONFIGURATION - caller-owned value structs
// =============================================================================

// InternalConfig holds the internal policy's thresholds and multipliers.
type InternalConfig struct {
	BaseWeeklyHours   float64 // ordinary hours per week
	BufferLimit       float64 // buffer zone upper bound, still paid 1.0x
	ExtraMultiplier   float64
	HolidayMultiplier float64
}

// LegalConfig holds the statutory thresholds and surcharge percentages.
type LegalConfig struct {
	WeeklyLimit            float64
	NightStart             string // HH:MM
	NightEnd               string // HH:MM
	NightSurcharge         float64 // percent
	ExtraDaySurcharge      float64 // percent
	ExtraNightSurcharge    float64 // percent
	SundayHolidaySurcharge float64 // percent
}

type SalaryType string

const (
	SalaryMonthly SalaryType = "monthly"
	SalaryHourly  SalaryType = "hourly"
)

// PaymentConfig describes how the salary converts to an hourly rate.
type PaymentConfig struct {
	SalaryType      SalaryType
	SalaryAmount    decimal.Decimal
	WorkDaysPerWeek int  // 5 or 6; drives the monthly-to-hourly conversion
	ShowTotalValue  bool // display preference, not used by the engines
}

// PayrollConfig describes the payment cycle. It is caller/UI state carried
// alongside the other configs; the engines do not consume it.
type PayrollConfig struct {
	PaymentFrequency string // weekly, biweekly, monthly
	CutoffDate       string // YYYY-MM-DD
	PaymentDate      string // YYYY-MM-DD
	PaymentDelay     int    // days
}

// Defaults mirror the values the product ships with.

func DefaultInternalConfig() InternalConfig {
	return InternalConfig{
		BaseWeeklyHours:   37.5,
		BufferLimit:       40,
		ExtraMultiplier:   1.5,
		HolidayMultiplier: 2.0,
	}
}

func DefaultLegalConfig() LegalConfig {
	return LegalConfig{
		WeeklyLimit:            44,
		NightStart:             "21:00",
		NightEnd:               "06:00",
		NightSurcharge:         35,
		ExtraDaySurcharge:      25,
		ExtraNightSurcharge:    75,
		SundayHolidaySurcharge: 75,
	}
}

func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		SalaryType:      SalaryMonthly,
		SalaryAmount:    decimal.NewFromInt(2500000),
		WorkDaysPerWeek: 5,
		ShowTotalValue:  true,
	}
}

func DefaultPayrollConfig() PayrollConfig {
	return PayrollConfig{
		PaymentFrequency: "monthly",
		PaymentDelay:     15,
	}
}

// =============================================================================
// RESULTS - recomputed wholesale on every calculation
// =============================================================================

type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertError   AlertType = "error"
)

// Alert is an advisory data-quality or rule-gap notice. Alerts never halt
// a calculation.
type Alert struct {
	Type         AlertType
	Title        string
	Message      string
	AffectedDays []string
	Difference   decimal.Decimal // monetary gap, when the alert quantifies one
}

// CategoryBreakdown is one billed hour category in a result.
type CategoryBreakdown struct {
	Category   string
	Hours      float64
	Rate       decimal.Decimal
	Multiplier float64
	Subtotal   decimal.Decimal
	Percentage float64 // share of total classified hours; 0 when total is 0
}

// DayBreakdown is the per-entry view of a result.
type DayBreakdown struct {
	Date         string
	DayName      string
	StartTime    string
	EndTime      string
	BreakMinutes int
	TotalHours   float64
	Amount       decimal.Decimal
	Tags         []string
	Segments     []Segment
}

// CalcResult is one engine's full output.
type CalcResult struct {
	TotalHours         float64
	NormalHours        float64
	BufferHours        float64
	ExtraHours         float64
	NightHours         float64
	SundayHolidayHours float64
	TotalAmount        decimal.Decimal
	HourlyRate         decimal.Decimal
	Categories         []CategoryBreakdown
	DayBreakdowns      []DayBreakdown
	Alerts             []Alert
}

// ComparisonResult couples both engines' results.
type ComparisonResult struct {
	Internal             CalcResult
	Legal                CalcResult
	Difference           decimal.Decimal // legal minus internal
	DifferencePercentage float64         // vs internal total; 0 when internal is 0
	Alerts               []Alert
	FavorEmployee        bool
}
