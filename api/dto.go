/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Field names are
  camelCase to match the web client's expectations, and all decimal
  amounts are converted to plain JSON numbers at this boundary so the
  client never deals with string-encoded decimals.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  The engines accept out-of-range configuration as-is (they degrade,
  never crash), so DTOs carry data without validation beyond JSON shape.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/calendar"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// ENTRY AND CONFIG TYPES
// =============================================================================

type WorkEntryDTO struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakMinutes int    `json:"breakMinutes"`
	IsHoliday    bool   `json:"isHoliday"`
	Notes        string `json:"notes"`
}

type InternalConfigDTO struct {
	BaseWeeklyHours   float64 `json:"baseWeeklyHours"`
	BufferLimit       float64 `json:"bufferLimit"`
	ExtraMultiplier   float64 `json:"extraMultiplier"`
	HolidayMultiplier float64 `json:"holidayMultiplier"`
}

type LegalConfigDTO struct {
	WeeklyLimit            float64 `json:"weeklyLimit"`
	NightStart             string  `json:"nightStart"`
	NightEnd               string  `json:"nightEnd"`
	NightSurcharge         float64 `json:"nightSurcharge"`
	ExtraDaySurcharge      float64 `json:"extraDaySurcharge"`
	ExtraNightSurcharge    float64 `json:"extraNightSurcharge"`
	SundayHolidaySurcharge float64 `json:"sundayHolidaySurcharge"`
}

type PaymentConfigDTO struct {
	SalaryType      string  `json:"salaryType"`
	SalaryAmount    float64 `json:"salaryAmount"`
	WorkDaysPerWeek int     `json:"workDaysPerWeek"`
	ShowTotalValue  bool    `json:"showTotalValue"`
}

type PayrollConfigDTO struct {
	PaymentFrequency string `json:"paymentFrequency"`
	CutoffDate       string `json:"cutoffDate"`
	PaymentDate      string `json:"paymentDate"`
	PaymentDelay     int    `json:"paymentDelay"`
}

// =============================================================================
// RESULT TYPES
// =============================================================================

type SegmentDTO struct {
	EntryID     string  `json:"entryId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Hours       float64 `json:"hours"`
	IsDaytime   bool    `json:"isDaytime"`
	IsNighttime bool    `json:"isNighttime"`
	IsSunday    bool    `json:"isSunday"`
	IsHoliday   bool    `json:"isHoliday"`
	IsExtra     bool    `json:"isExtra"`
}

type AlertDTO struct {
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	AffectedDays []string `json:"affectedDays,omitempty"`
	Difference   *float64 `json:"difference,omitempty"`
}

type CategoryBreakdownDTO struct {
	Category   string  `json:"category"`
	Hours      float64 `json:"hours"`
	Rate       float64 `json:"rate"`
	Multiplier float64 `json:"multiplier"`
	Subtotal   float64 `json:"subtotal"`
	Percentage float64 `json:"percentage"`
}

type DayBreakdownDTO struct {
	Date         string       `json:"date"`
	DayName      string       `json:"dayName"`
	StartTime    string       `json:"startTime"`
	EndTime      string       `json:"endTime"`
	BreakMinutes int          `json:"breakMinutes"`
	TotalHours   float64      `json:"totalHours"`
	Amount       float64      `json:"amount"`
	Tags         []string     `json:"tags"`
	Segments     []SegmentDTO `json:"segments"`
}

type CalcResultDTO struct {
	TotalHours         float64                `json:"totalHours"`
	NormalHours        float64                `json:"normalHours"`
	BufferHours        float64                `json:"bufferHours"`
	ExtraHours         float64                `json:"extraHours"`
	NightHours         float64                `json:"nightHours"`
	SundayHolidayHours float64                `json:"sundayHolidayHours"`
	TotalAmount        float64                `json:"totalAmount"`
	HourlyRate         float64                `json:"hourlyRate"`
	Categories         []CategoryBreakdownDTO `json:"categories"`
	DayBreakdowns      []DayBreakdownDTO      `json:"dayBreakdowns"`
	Alerts             []AlertDTO             `json:"alerts"`
}

type ComparisonResultDTO struct {
	InternalResult       CalcResultDTO `json:"internalResult"`
	LegalResult          CalcResultDTO `json:"legalResult"`
	Difference           float64       `json:"difference"`
	DifferencePercentage float64       `json:"differencePercentage"`
	Alerts               []AlertDTO    `json:"alerts"`
	FavorEmployee        bool          `json:"favorEmployee"`
}

type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculateRequest selects the entry source for a calculation run.
// Detailed mode (the default) uses the session's entry list; simple mode
// synthesizes entries from aggregate hours.
type CalculateRequest struct {
	Mode   string         `json:"mode,omitempty"` // "detailed" or "simple"
	Simple *SimpleDataDTO `json:"simple,omitempty"`
}

type SimpleDataDTO struct {
	TotalHours   float64 `json:"totalHours"`
	HolidayHours float64 `json:"holidayHours"`
	SundayHours  float64 `json:"sundayHours"`
	NightHours   float64 `json:"nightHours"`
}

type LoadScenarioRequest struct {
	ScenarioID string `json:"scenarioId"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEntryDTO(e payroll.WorkEntry) WorkEntryDTO {
	return WorkEntryDTO{
		ID:           e.ID,
		Date:         e.Date,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		BreakMinutes: e.BreakMinutes,
		IsHoliday:    e.IsHoliday,
		Notes:        e.Notes,
	}
}

func fromEntryDTO(d WorkEntryDTO) payroll.WorkEntry {
	return payroll.WorkEntry{
		ID:           d.ID,
		Date:         d.Date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		BreakMinutes: d.BreakMinutes,
		IsHoliday:    d.IsHoliday,
		Notes:        d.Notes,
	}
}

func toInternalConfigDTO(c payroll.InternalConfig) InternalConfigDTO {
	return InternalConfigDTO(c)
}

func fromInternalConfigDTO(d InternalConfigDTO) payroll.InternalConfig {
	return payroll.InternalConfig(d)
}

func toLegalConfigDTO(c payroll.LegalConfig) LegalConfigDTO {
	return LegalConfigDTO(c)
}

func fromLegalConfigDTO(d LegalConfigDTO) payroll.LegalConfig {
	return payroll.LegalConfig(d)
}

func toPaymentConfigDTO(c payroll.PaymentConfig) PaymentConfigDTO {
	return PaymentConfigDTO{
		SalaryType:      string(c.SalaryType),
		SalaryAmount:    c.SalaryAmount.InexactFloat64(),
		WorkDaysPerWeek: c.WorkDaysPerWeek,
		ShowTotalValue:  c.ShowTotalValue,
	}
}

func fromPaymentConfigDTO(d PaymentConfigDTO) payroll.PaymentConfig {
	return payroll.PaymentConfig{
		SalaryType:      payroll.SalaryType(d.SalaryType),
		SalaryAmount:    decimal.NewFromFloat(d.SalaryAmount),
		WorkDaysPerWeek: d.WorkDaysPerWeek,
		ShowTotalValue:  d.ShowTotalValue,
	}
}

func toPayrollConfigDTO(c payroll.PayrollConfig) PayrollConfigDTO {
	return PayrollConfigDTO(c)
}

func fromPayrollConfigDTO(d PayrollConfigDTO) payroll.PayrollConfig {
	return payroll.PayrollConfig(d)
}

func toSegmentDTO(s payroll.Segment) SegmentDTO {
	return SegmentDTO(s)
}

func toAlertDTO(a payroll.Alert) AlertDTO {
	dto := AlertDTO{
		Type:         string(a.Type),
		Title:        a.Title,
		Message:      a.Message,
		AffectedDays: a.AffectedDays,
	}
	if !a.Difference.IsZero() {
		diff := a.Difference.InexactFloat64()
		dto.Difference = &diff
	}
	return dto
}

func toCalcResultDTO(r payroll.CalcResult) CalcResultDTO {
	categories := make([]CategoryBreakdownDTO, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = CategoryBreakdownDTO{
			Category:   c.Category,
			Hours:      c.Hours,
			Rate:       c.Rate.InexactFloat64(),
			Multiplier: c.Multiplier,
			Subtotal:   c.Subtotal.InexactFloat64(),
			Percentage: c.Percentage,
		}
	}

	days := make([]DayBreakdownDTO, len(r.DayBreakdowns))
	for i, d := range r.DayBreakdowns {
		segments := make([]SegmentDTO, len(d.Segments))
		for j, s := range d.Segments {
			segments[j] = toSegmentDTO(s)
		}
		days[i] = DayBreakdownDTO{
			Date:         d.Date,
			DayName:      d.DayName,
			StartTime:    d.StartTime,
			EndTime:      d.EndTime,
			BreakMinutes: d.BreakMinutes,
			TotalHours:   d.TotalHours,
			Amount:       d.Amount.InexactFloat64(),
			Tags:         d.Tags,
			Segments:     segments,
		}
	}

	alerts := make([]AlertDTO, len(r.Alerts))
	for i, a := range r.Alerts {
		alerts[i] = toAlertDTO(a)
	}

	return CalcResultDTO{
		TotalHours:         r.TotalHours,
		NormalHours:        r.NormalHours,
		BufferHours:        r.BufferHours,
		ExtraHours:         r.ExtraHours,
		NightHours:         r.NightHours,
		SundayHolidayHours: r.SundayHolidayHours,
		TotalAmount:        r.TotalAmount.InexactFloat64(),
		HourlyRate:         r.HourlyRate.InexactFloat64(),
		Categories:         categories,
		DayBreakdowns:      days,
		Alerts:             alerts,
	}
}

func toComparisonDTO(c payroll.ComparisonResult) ComparisonResultDTO {
	alerts := make([]AlertDTO, len(c.Alerts))
	for i, a := range c.Alerts {
		alerts[i] = toAlertDTO(a)
	}
	return ComparisonResultDTO{
		InternalResult:       toCalcResultDTO(c.Internal),
		LegalResult:          toCalcResultDTO(c.Legal),
		Difference:           c.Difference.InexactFloat64(),
		DifferencePercentage: c.DifferencePercentage,
		Alerts:               alerts,
		FavorEmployee:        c.FavorEmployee,
	}
}

func toHolidayDTOs(hs []calendar.Holiday) []HolidayDTO {
	dtos := make([]HolidayDTO, len(hs))
	for i, h := range hs {
		dtos[i] = HolidayDTO{Date: h.Date, Name: h.Name, Type: string(h.Type)}
	}
	return dtos
}

func fromSimpleDataDTO(d SimpleDataDTO) factory.SimpleData {
	return factory.SimpleData(d)
}
