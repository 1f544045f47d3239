/*
handlers.go - HTTP API handlers for the payroll comparison service

PURPOSE:
  Exposes the payroll engines via REST. Handles HTTP request/response,
  JSON serialization, and delegates to the pure calculation functions.

ENDPOINTS:
  Entries:
    GET    /api/entries           List session work entries
    POST   /api/entries           Add a work entry
    PUT    /api/entries/{id}      Update a work entry
    DELETE /api/entries/{id}      Delete a work entry

  Configuration:
    GET/PUT /api/config/internal  Internal policy thresholds
    GET/PUT /api/config/legal     Statutory thresholds and surcharges
    GET/PUT /api/config/payment   Salary and conversion settings
    GET/PUT /api/config/payroll   Payment cycle settings

  Calculation:
    POST   /api/calculate         Run both engines + comparison
    GET    /api/holidays?year=    Statutory holiday list

  Scenarios:
    GET    /api/scenarios         List demo scenarios
    POST   /api/scenarios/load    Replace session entries with a scenario

ARCHITECTURE:
  Handler holds the session store and the calculator. The engines are
  pure; every calculate call recomputes both results wholesale from the
  session's current entries and configs.

ERROR HANDLING:
  - 400: malformed JSON, unknown scenario
  - 404: unknown entry id
  Engine-level data problems never produce errors; they surface as
  alerts inside the result.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo entry sets
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warp/payroll-engine/calendar"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/metrics"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/memory"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Session  *memory.Session
	Calc     *payroll.Calculator
	Calendar *calendar.Colombia
}

// NewHandler wires a handler around a session store and the Colombian
// statutory calendar.
func NewHandler(session *memory.Session) *Handler {
	cal := calendar.NewColombia()
	return &Handler{
		Session:  session,
		Calc:     payroll.NewCalculator(cal),
		Calendar: cal,
	}
}

// =============================================================================
// ENTRY HANDLERS
// =============================================================================

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries := h.Session.ListEntries()
	dtos := make([]WorkEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req WorkEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry := fromEntryDTO(req)
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	h.Session.AddEntry(entry)
	metrics.EntriesStored.Set(float64(h.Session.EntryCount()))

	writeJSON(w, http.StatusCreated, toEntryDTO(entry))
}

func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req WorkEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry := fromEntryDTO(req)
	if !h.Session.UpdateEntry(id, entry) {
		writeError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}
	entry.ID = id
	writeJSON(w, http.StatusOK, toEntryDTO(entry))
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.Session.DeleteEntry(id) {
		writeError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}
	metrics.EntriesStored.Set(float64(h.Session.EntryCount()))
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// CONFIG HANDLERS
// =============================================================================

func (h *Handler) GetInternalConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toInternalConfigDTO(h.Session.InternalConfig()))
}

func (h *Handler) PutInternalConfig(w http.ResponseWriter, r *http.Request) {
	var req InternalConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.Session.SetInternalConfig(fromInternalConfigDTO(req))
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) GetLegalConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toLegalConfigDTO(h.Session.LegalConfig()))
}

func (h *Handler) PutLegalConfig(w http.ResponseWriter, r *http.Request) {
	var req LegalConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.Session.SetLegalConfig(fromLegalConfigDTO(req))
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) GetPaymentConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPaymentConfigDTO(h.Session.PaymentConfig()))
}

func (h *Handler) PutPaymentConfig(w http.ResponseWriter, r *http.Request) {
	var req PaymentConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.Session.SetPaymentConfig(fromPaymentConfigDTO(req))
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) GetPayrollConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPayrollConfigDTO(h.Session.PayrollConfig()))
}

func (h *Handler) PutPayrollConfig(w http.ResponseWriter, r *http.Request) {
	var req PayrollConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.Session.SetPayrollConfig(fromPayrollConfigDTO(req))
	writeJSON(w, http.StatusOK, req)
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// Calculate runs the internal engine, the legal engine and the comparator
// over the selected entry source. The request body is optional; an empty
// body means detailed mode over the session's entries.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if r.Body != nil {
		// Decode errors on an empty body are fine; ignore and use defaults.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	mode := req.Mode
	if mode == "" {
		mode = "detailed"
	}

	var entries []payroll.WorkEntry
	if mode == "simple" && req.Simple != nil {
		entries = factory.Synthesize(fromSimpleDataDTO(*req.Simple))
	} else {
		entries = h.Session.ListEntries()
	}

	internalResult := h.Calc.CalcInternal(entries, h.Session.InternalConfig(), h.Session.PaymentConfig())
	legalResult := h.Calc.CalcColombia(entries, h.Session.LegalConfig(), h.Session.PaymentConfig())
	comparison := payroll.CompareResults(internalResult, legalResult)

	metrics.CalculationsTotal.WithLabelValues(mode).Inc()
	writeJSON(w, http.StatusOK, toComparisonDTO(comparison))
}

// ListHolidays returns the statutory holiday set for a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}
	writeJSON(w, http.StatusOK, toHolidayDTOs(h.Calendar.Holidays(year)))
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
