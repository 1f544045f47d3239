package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/calendar"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

func TestSynthesize_Empty(t *testing.T) {
	assert.Empty(t, factory.Synthesize(factory.SimpleData{}))
}

func TestSynthesize_DedicatedEntriesPerHourType(t *testing.T) {
	entries := factory.Synthesize(factory.SimpleData{
		TotalHours:   28,
		HolidayHours: 8,
		SundayHours:  5,
		NightHours:   7,
	})

	// holiday + Sunday + night + one 8h remainder
	require.Len(t, entries, 4)

	holiday := entries[0]
	assert.Equal(t, "2025-01-01", holiday.Date)
	assert.True(t, holiday.IsHoliday)
	assert.Equal(t, "Generado: Festivo", holiday.Notes)

	sunday := entries[1]
	assert.Equal(t, "2025-01-26", sunday.Date)
	assert.False(t, sunday.IsHoliday)

	night := entries[2]
	assert.Equal(t, "22:00", night.StartTime)
	assert.Equal(t, "05:00", night.EndTime, "crosses midnight")

	normal := entries[3]
	assert.Equal(t, "08:00", normal.StartTime)
	assert.Equal(t, "16:00", normal.EndTime)
	assert.Equal(t, "Generado: Normal", normal.Notes)
}

func TestSynthesize_OrdinaryHoursChunkedByEight(t *testing.T) {
	entries := factory.Synthesize(factory.SimpleData{TotalHours: 20})

	require.Len(t, entries, 3)
	assert.Equal(t, "16:00", entries[0].EndTime)
	assert.Equal(t, "16:00", entries[1].EndTime)
	assert.Equal(t, "12:00", entries[2].EndTime, "the 4h remainder")
	assert.Equal(t, "2025-01-21", entries[0].Date)
	assert.Equal(t, "2025-01-22", entries[1].Date)
}

func TestSynthesize_HoursSurviveTheSplitter(t *testing.T) {
	// GIVEN synthetic entries for a mixed aggregate
	data := factory.SimpleData{
		TotalHours:   48,
		HolidayHours: 8,
		SundayHours:  5,
		NightHours:   7,
	}
	entries := factory.Synthesize(data)

	// WHEN the engines split them with a neutral calendar
	calc := payroll.NewCalculator(calendar.Noop{})
	total := 0.0
	for _, e := range entries {
		for _, s := range calc.SplitEntry(e, "21:00", "06:00") {
			total += s.Hours
		}
	}

	// THEN no hours are lost in the mapping
	assert.InDelta(t, data.TotalHours, total, 0.011)
}

func TestSynthesize_FractionalHours(t *testing.T) {
	entries := factory.Synthesize(factory.SimpleData{TotalHours: 2.5})

	require.Len(t, entries, 1)
	assert.Equal(t, "10:30", entries[0].EndTime)
}

func TestSynthesize_UniqueIDs(t *testing.T) {
	entries := factory.Synthesize(factory.SimpleData{TotalHours: 24})

	seen := make(map[string]bool)
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}
