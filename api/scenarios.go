/*
scenarios.go - Demo entry sets for testing and demonstrations

PURPOSE:
  Provides pre-built entry lists that replace the session's entries so a
  fresh client immediately has something interesting to calculate. Each
  scenario exercises a specific corner of the engines.

AVAILABLE SCENARIOS:
  default-week:    Two day shifts and one midnight-crossing night shift
  night-week:      A full week of night shifts
  holiday-sunday:  Work on a statutory holiday and on a Sunday
  overtime-week:   Six long days blowing past both weekly thresholds

USAGE VIA API:
  POST /api/scenarios/load
  {"scenarioId": "overtime-week"}

SEE ALSO:
  - handlers.go: shared helpers
  - store/memory: the session the entries load into
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/payroll-engine/metrics"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "default-week",
		Name:        "Semana típica",
		Description: "Dos turnos diurnos y un turno nocturno que cruza medianoche",
	},
	{
		ID:          "night-week",
		Name:        "Semana nocturna",
		Description: "Cinco turnos nocturnos consecutivos 22:00-06:00",
	},
	{
		ID:          "holiday-sunday",
		Name:        "Festivo y domingo",
		Description: "Trabajo en Reyes Magos y en domingo",
	},
	{
		ID:          "overtime-week",
		Name:        "Semana con horas extra",
		Description: "Seis jornadas largas que superan ambos umbrales semanales",
	},
}

func scenarioEntries(id string) ([]payroll.WorkEntry, bool) {
	day := func(date, start, end string, breakMinutes int) payroll.WorkEntry {
		return payroll.NewWorkEntry(date, start, end, breakMinutes)
	}

	switch id {
	case "default-week":
		night := day("2025-01-22", "22:00", "06:00", 30)
		night.Notes = "Turno nocturno"
		return []payroll.WorkEntry{
			day("2025-01-20", "08:00", "17:00", 60),
			day("2025-01-21", "08:00", "18:30", 60),
			night,
		}, true

	case "night-week":
		return []payroll.WorkEntry{
			day("2025-02-03", "22:00", "06:00", 0),
			day("2025-02-04", "22:00", "06:00", 0),
			day("2025-02-05", "22:00", "06:00", 0),
			day("2025-02-06", "22:00", "06:00", 0),
			day("2025-02-07", "22:00", "06:00", 0),
		}, true

	case "holiday-sunday":
		// 2025-01-06 is Reyes Magos (anchor already a Monday).
		return []payroll.WorkEntry{
			day("2025-01-06", "08:00", "16:00", 0),
			day("2025-01-12", "09:00", "14:00", 0),
			day("2025-01-13", "08:00", "17:00", 60),
		}, true

	case "overtime-week":
		return []payroll.WorkEntry{
			day("2025-03-10", "07:00", "17:00", 60),
			day("2025-03-11", "07:00", "17:00", 60),
			day("2025-03-12", "07:00", "17:00", 60),
			day("2025-03-13", "07:00", "17:00", 60),
			day("2025-03-14", "07:00", "17:00", 60),
			day("2025-03-15", "07:00", "15:00", 30),
		}, true
	}
	return nil, false
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entries, ok := scenarioEntries(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	h.Session.ReplaceEntries(entries)
	metrics.EntriesStored.Set(float64(h.Session.EntryCount()))
	metrics.ScenariosLoaded.WithLabelValues(req.ScenarioID).Inc()

	dtos := make([]WorkEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}
