package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
)

// referenceWeek is the product's seeded demo: a day shift, a long day
// shift and a midnight-crossing night shift, 25 worked hours in total.
func referenceWeek() []payroll.WorkEntry {
	return []payroll.WorkEntry{
		entry("2025-01-20", "08:00", "17:00", 60),
		entry("2025-01-21", "08:00", "18:30", 60),
		entry("2025-01-22", "22:00", "06:00", 30),
	}
}

// =============================================================================
// END TO END - both engines plus comparison over the reference week
// =============================================================================

func TestReferenceWeek_Internal(t *testing.T) {
	res := payroll.CalcInternal(referenceWeek(), payroll.DefaultInternalConfig(), payroll.DefaultPaymentConfig())

	// 2,500,000 / (40 * 4.33), rounded for display
	assert.Equal(t, "14434", res.HourlyRate.String())

	assert.Equal(t, 25.0, res.TotalHours)
	assert.Equal(t, 25.0, res.NormalHours, "25h never reach the 37.5h base")
	assert.Equal(t, 0.0, res.BufferHours)
	assert.Equal(t, 0.0, res.ExtraHours)
	assert.Equal(t, "360855", res.TotalAmount.String())

	// The night shift is flagged, not paid differently.
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, "Horas nocturnas detectadas", res.Alerts[0].Title)
	assert.Equal(t, []string{"2025-01-22"}, res.Alerts[0].AffectedDays)

	require.Len(t, res.DayBreakdowns, 3)
	night := res.DayBreakdowns[2]
	assert.Equal(t, 7.5, night.TotalHours)
	assert.Contains(t, night.Tags, payroll.TagNocturno)
	assert.Contains(t, night.Tags, payroll.TagNoNightPay)
}

func TestReferenceWeek_Legal(t *testing.T) {
	res := payroll.CalcColombia(referenceWeek(), payroll.DefaultLegalConfig(), payroll.DefaultPaymentConfig())

	assert.Equal(t, 25.0, res.TotalHours)
	assert.Equal(t, 17.5, res.NormalHours)
	assert.Equal(t, 7.5, res.NightHours)
	assert.Equal(t, 0.0, res.ExtraHours, "25h stay under the 44h weekly limit")

	// 17.5h at 1.0x + 7.5h at 1.35x
	assert.Equal(t, "398744", res.TotalAmount.String())

	require.Len(t, res.Categories, 2)
	night := res.Categories[1]
	assert.Equal(t, "Recargo nocturno", night.Category)
	assert.Equal(t, 7.5, night.Hours)
	assert.Equal(t, 30.0, night.Percentage)
}

func TestReferenceWeek_Comparison(t *testing.T) {
	internal := payroll.CalcInternal(referenceWeek(), payroll.DefaultInternalConfig(), payroll.DefaultPaymentConfig())
	legal := payroll.CalcColombia(referenceWeek(), payroll.DefaultLegalConfig(), payroll.DefaultPaymentConfig())

	cmp := payroll.CompareResults(internal, legal)

	assert.Equal(t, "37889", cmp.Difference.String())
	assert.Equal(t, 10.5, cmp.DifferencePercentage)
	assert.True(t, cmp.FavorEmployee)

	// The internal engine's night alert plus the comparator's quantified gap.
	require.Len(t, cmp.Alerts, 2)
	assert.Equal(t, "Horas nocturnas detectadas", cmp.Alerts[0].Title)
	assert.Equal(t, "Diferencia en recargos nocturnos", cmp.Alerts[1].Title)
	assert.Equal(t, "37891", cmp.Alerts[1].Difference.String())
}

func TestCalculationsAreIdempotent(t *testing.T) {
	entries := referenceWeek()

	first := payroll.CompareResults(
		payroll.CalcInternal(entries, payroll.DefaultInternalConfig(), payroll.DefaultPaymentConfig()),
		payroll.CalcColombia(entries, payroll.DefaultLegalConfig(), payroll.DefaultPaymentConfig()))
	second := payroll.CompareResults(
		payroll.CalcInternal(entries, payroll.DefaultInternalConfig(), payroll.DefaultPaymentConfig()),
		payroll.CalcColombia(entries, payroll.DefaultLegalConfig(), payroll.DefaultPaymentConfig()))

	assert.Equal(t, first, second)
}

func TestEnginesDoNotMutateEntries(t *testing.T) {
	entries := referenceWeek()
	snapshot := make([]payroll.WorkEntry, len(entries))
	copy(snapshot, entries)

	payroll.CalcInternal(entries, payroll.DefaultInternalConfig(), payroll.DefaultPaymentConfig())
	payroll.CalcColombia(entries, payroll.DefaultLegalConfig(), payroll.DefaultPaymentConfig())

	assert.Equal(t, snapshot, entries)
}

// =============================================================================
// HOURLY RATE
// =============================================================================

func TestHourlyRate_MonthlyFiveDayWeek(t *testing.T) {
	rate := payroll.HourlyRate(payroll.DefaultPaymentConfig())
	assert.InDelta(t, 14434.18, rate.InexactFloat64(), 0.01)
}

func TestHourlyRate_MonthlySixDayWeek(t *testing.T) {
	payment := payroll.DefaultPaymentConfig()
	payment.WorkDaysPerWeek = 6

	rate := payroll.HourlyRate(payment)
	assert.InDelta(t, 12028.48, rate.InexactFloat64(), 0.01, "2,500,000 / (48 * 4.33)")
}

func TestHourlyRate_HourlyIsTheRate(t *testing.T) {
	payment := payroll.PaymentConfig{
		SalaryType:   payroll.SalaryHourly,
		SalaryAmount: decimal.NewFromInt(15000),
	}

	assert.True(t, payroll.HourlyRate(payment).Equal(decimal.NewFromInt(15000)))
}
