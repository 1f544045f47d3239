package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/payroll-engine/payroll"
)

var (
	calcFile     string
	calcSalary   float64
	calcType     string
	calcWorkdays int
	calcFormat   string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run both engines over a JSON entries file and compare",
	Args:  cobra.NoArgs,
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcFile, "file", "f", "", "JSON file with work entries (required)")
	calcCmd.Flags().Float64Var(&calcSalary, "salary", 2500000, "Salary amount")
	calcCmd.Flags().StringVar(&calcType, "salary-type", "monthly", "Salary type: monthly or hourly")
	calcCmd.Flags().IntVar(&calcWorkdays, "workdays", 5, "Contractual work days per week (5 or 6)")
	calcCmd.Flags().StringVar(&calcFormat, "format", "text", "Output format: text or json")
	calcCmd.MarkFlagRequired("file")
}

// entryFile mirrors the API's entry JSON so the same files work for both.
type entryFile struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakMinutes int    `json:"breakMinutes"`
	IsHoliday    bool   `json:"isHoliday"`
	Notes        string `json:"notes"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(calcFile)
	if err != nil {
		return err
	}

	var fileEntries []entryFile
	if err := json.Unmarshal(raw, &fileEntries); err != nil {
		return fmt.Errorf("parsing %s: %w", calcFile, err)
	}

	entries := make([]payroll.WorkEntry, len(fileEntries))
	for i, fe := range fileEntries {
		entries[i] = payroll.WorkEntry{
			ID:           fe.ID,
			Date:         fe.Date,
			StartTime:    fe.StartTime,
			EndTime:      fe.EndTime,
			BreakMinutes: fe.BreakMinutes,
			IsHoliday:    fe.IsHoliday,
			Notes:        fe.Notes,
		}
	}

	payment := payroll.PaymentConfig{
		SalaryType:      payroll.SalaryType(calcType),
		SalaryAmount:    decimal.NewFromFloat(calcSalary),
		WorkDaysPerWeek: calcWorkdays,
	}

	internal := payroll.CalcInternal(entries, payroll.DefaultInternalConfig(), payment)
	legal := payroll.CalcColombia(entries, payroll.DefaultLegalConfig(), payment)
	comparison := payroll.CompareResults(internal, legal)

	if calcFormat == "json" {
		return printJSON(comparison)
	}
	printText(comparison)
	return nil
}

func printText(c payroll.ComparisonResult) {
	fmt.Printf("Tarifa por hora:      %s\n", c.Internal.HourlyRate.StringFixed(0))
	fmt.Println()
	fmt.Printf("Política interna:     %s (%.2f h)\n", c.Internal.TotalAmount.StringFixed(0), c.Internal.TotalHours)
	for _, cat := range c.Internal.Categories {
		if cat.Hours > 0 {
			fmt.Printf("  %-34s %8.2f h  x%.2f  %12s\n", cat.Category, cat.Hours, cat.Multiplier, cat.Subtotal.StringFixed(0))
		}
	}
	fmt.Println()
	fmt.Printf("Ley colombiana:       %s (%.2f h)\n", c.Legal.TotalAmount.StringFixed(0), c.Legal.TotalHours)
	for _, cat := range c.Legal.Categories {
		fmt.Printf("  %-34s %8.2f h  x%.2f  %12s\n", cat.Category, cat.Hours, cat.Multiplier, cat.Subtotal.StringFixed(0))
	}
	fmt.Println()
	fmt.Printf("Diferencia:           %s (%.1f%%)\n", c.Difference.StringFixed(0), c.DifferencePercentage)
	if c.FavorEmployee {
		fmt.Println("La ley paga más que la política interna.")
	}
	for _, a := range c.Alerts {
		fmt.Printf("[%s] %s: %s\n", a.Type, a.Title, a.Message)
	}
}

type calcOutput struct {
	InternalTotal        float64         `json:"internalTotal"`
	LegalTotal           float64         `json:"legalTotal"`
	Difference           float64         `json:"difference"`
	DifferencePercentage float64         `json:"differencePercentage"`
	FavorEmployee        bool            `json:"favorEmployee"`
	Alerts               []payroll.Alert `json:"alerts"`
}

func printJSON(c payroll.ComparisonResult) error {
	out := calcOutput{
		InternalTotal:        c.Internal.TotalAmount.InexactFloat64(),
		LegalTotal:           c.Legal.TotalAmount.InexactFloat64(),
		Difference:           c.Difference.InexactFloat64(),
		DifferencePercentage: c.DifferencePercentage,
		FavorEmployee:        c.FavorEmployee,
		Alerts:               c.Alerts,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
