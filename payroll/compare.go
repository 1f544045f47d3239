package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COMPARATOR
// =============================================================================

// CompareResults reconciles both engines' results into one report: the
// signed monetary delta (legal minus internal), its percentage relative to
// the internal total, and cross-engine alerts on top of the internal
// engine's own.
func CompareResults(internal, legal CalcResult) ComparisonResult {
	difference := legal.TotalAmount.Sub(internal.TotalAmount)

	differencePercentage := 0.0
	if internal.TotalAmount.IsPositive() {
		pct, _ := difference.Div(internal.TotalAmount).Mul(decimal.NewFromInt(100)).Float64()
		differencePercentage = roundTo(pct, 1)
	}

	alerts := make([]Alert, len(internal.Alerts))
	copy(alerts, internal.Alerts)

	// The law pays night hours; the internal policy may not. Quantify the
	// gap as the legal night subtotals minus those same hours at the
	// unsurcharged rate.
	if legal.NightHours > 0 && internal.NightHours == 0 {
		nightDiff := decimal.Zero
		for _, cat := range legal.Categories {
			if strings.Contains(strings.ToLower(cat.Category), "noct") {
				base := legal.HourlyRate.Mul(hoursDec(cat.Hours))
				nightDiff = nightDiff.Add(cat.Subtotal.Sub(base))
			}
		}
		alerts = append(alerts, Alert{
			Type:       AlertWarning,
			Title:      "Diferencia en recargos nocturnos",
			Message:    "La política interna no paga recargo nocturno. La ley colombiana exige +35% para estas horas.",
			Difference: nightDiff,
		})
	}

	// The company may pay holidays above the statutory minimum.
	internalHoliday := findCategory(internal.Categories, func(name string) bool {
		return name == "Festivos"
	})
	legalHoliday := findCategory(legal.Categories, func(name string) bool {
		return strings.Contains(name, "Dominical/Festivo")
	})
	if internalHoliday != nil && legalHoliday != nil && internalHoliday.Multiplier > legalHoliday.Multiplier {
		alerts = append(alerts, Alert{
			Type:  AlertInfo,
			Title: "Pago de festivos por encima de ley",
			Message: fmt.Sprintf("La política interna paga festivos a %gx vs %gx de la ley. Estás pagando por encima del mínimo legal.",
				internalHoliday.Multiplier, legalHoliday.Multiplier),
		})
	}

	return ComparisonResult{
		Internal:             internal,
		Legal:                legal,
		Difference:           difference,
		DifferencePercentage: differencePercentage,
		Alerts:               alerts,
		FavorEmployee:        difference.IsPositive(),
	}
}

func findCategory(categories []CategoryBreakdown, match func(string) bool) *CategoryBreakdown {
	for i := range categories {
		if match(categories[i].Category) {
			return &categories[i]
		}
	}
	return nil
}
