package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/calendar"
)

// =============================================================================
// HOLIDAY GENERATION
// =============================================================================

func TestGenerate_FixedHolidays(t *testing.T) {
	hs := calendar.Generate(2025)

	dates := make(map[string]string)
	for _, h := range hs {
		dates[h.Date] = h.Name
	}

	assert.Equal(t, "Año Nuevo", dates["2025-01-01"])
	assert.Equal(t, "Día del Trabajo", dates["2025-05-01"])
	assert.Equal(t, "Día de la Independencia", dates["2025-07-20"])
	assert.Equal(t, "Batalla de Boyacá", dates["2025-08-07"])
	assert.Equal(t, "Inmaculada Concepción", dates["2025-12-08"])
	assert.Equal(t, "Navidad", dates["2025-12-25"])
}

func TestGenerate_EmilianiShifts(t *testing.T) {
	hs := calendar.Generate(2025)

	dates := make(map[string]string)
	for _, h := range hs {
		dates[h.Name] = h.Date
	}

	// 2025-01-06 is already a Monday: no shift.
	assert.Equal(t, "2025-01-06", dates["Reyes Magos"])
	// March 19 2025 is a Wednesday: observed the following Monday.
	assert.Equal(t, "2025-03-24", dates["San José"])
	// June 29 2025 is a Sunday: shifted exactly one day.
	assert.Equal(t, "2025-06-30", dates["San Pedro y San Pablo"])
	assert.Equal(t, "2025-08-18", dates["Asunción de la Virgen"])
	assert.Equal(t, "2025-10-13", dates["Día de la Raza"])
	assert.Equal(t, "2025-11-03", dates["Todos los Santos"])
	assert.Equal(t, "2025-11-17", dates["Independencia de Cartagena"])
}

func TestGenerate_EasterRelative(t *testing.T) {
	// Easter 2025 falls on April 20.
	hs := calendar.Generate(2025)

	dates := make(map[string]string)
	types := make(map[string]calendar.HolidayType)
	for _, h := range hs {
		dates[h.Name] = h.Date
		types[h.Name] = h.Type
	}

	assert.Equal(t, "2025-04-17", dates["Jueves Santo"])
	assert.Equal(t, "2025-04-18", dates["Viernes Santo"])
	assert.Equal(t, calendar.TypeFixed, types["Jueves Santo"], "Holy Thursday is never Monday-shifted")

	// Easter+43/+64/+71, all landing on Mondays in 2025.
	assert.Equal(t, "2025-06-02", dates["Ascensión del Señor"])
	assert.Equal(t, "2025-06-23", dates["Corpus Christi"])
	assert.Equal(t, "2025-06-30", dates["Sagrado Corazón de Jesús"])
}

func TestGenerate_EasterOtherYears(t *testing.T) {
	find := func(year int, name string) string {
		for _, h := range calendar.Generate(year) {
			if h.Name == name {
				return h.Date
			}
		}
		return ""
	}

	// Easter 2024 = March 31; Easter 2026 = April 5.
	assert.Equal(t, "2024-03-29", find(2024, "Viernes Santo"))
	assert.Equal(t, "2026-04-03", find(2026, "Viernes Santo"))
}

func TestGenerate_EighteenHolidays(t *testing.T) {
	assert.Len(t, calendar.Generate(2025), 18)
}

// =============================================================================
// ORACLE LOOKUPS
// =============================================================================

func TestColombia_IsHoliday(t *testing.T) {
	cal := calendar.NewColombia()

	assert.True(t, cal.IsHoliday("2025-01-01"))
	assert.True(t, cal.IsHoliday("2025-12-25"))
	assert.False(t, cal.IsHoliday("2025-01-02"))
	assert.False(t, cal.IsHoliday("not-a-date"))
	assert.False(t, cal.IsHoliday(""))
}

func TestColombia_HolidayName(t *testing.T) {
	cal := calendar.NewColombia()

	assert.Equal(t, "Navidad", cal.HolidayName("2025-12-25"))
	assert.Equal(t, "", cal.HolidayName("2025-03-03"))
}

func TestColombia_IsSunday(t *testing.T) {
	cal := calendar.NewColombia()

	assert.True(t, cal.IsSunday("2025-01-26"))
	assert.False(t, cal.IsSunday("2025-01-20"), "a Monday")
	assert.False(t, cal.IsSunday("garbage"))
}

func TestColombia_CacheIsStable(t *testing.T) {
	cal := calendar.NewColombia()

	first := cal.Holidays(2025)
	second := cal.Holidays(2025)
	require.Equal(t, first, second, "same year must yield identical sets")
}

func TestNoop_KnowsSundaysOnly(t *testing.T) {
	cal := calendar.Noop{}

	assert.False(t, cal.IsHoliday("2025-01-01"))
	assert.Equal(t, "", cal.HolidayName("2025-01-01"))
	assert.True(t, cal.IsSunday("2025-01-26"))
}
