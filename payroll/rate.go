package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// HOURLY RATE DERIVATION
// =============================================================================

// weeksPerMonth is the conversion constant for monthly salaries. Together
// with the 40/48 weekly-hours assumption it is a policy decision baked into
// the conversion, independent of the engines' own thresholds.
var weeksPerMonth = decimal.NewFromFloat(4.33)

// HourlyRate derives the effective hourly rate from the payment config.
// Hourly salaries are the rate itself; monthly salaries divide by
// hoursPerWeek * 4.33, with hoursPerWeek 40 for a 5-day week and 48
// otherwise.
func HourlyRate(payment PaymentConfig) decimal.Decimal {
	if payment.SalaryType == SalaryHourly {
		return payment.SalaryAmount
	}

	hoursPerWeek := int64(48)
	if payment.WorkDaysPerWeek == 5 {
		hoursPerWeek = 40
	}
	monthlyHours := decimal.NewFromInt(hoursPerWeek).Mul(weeksPerMonth)
	return payment.SalaryAmount.Div(monthlyHours)
}

// hoursDec and multDec lift float hour counts and multipliers into decimal
// for pricing arithmetic.
func hoursDec(h float64) decimal.Decimal { return decimal.NewFromFloat(h) }
func multDec(m float64) decimal.Decimal  { return decimal.NewFromFloat(m) }
