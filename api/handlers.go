/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the shift calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Shifts:
    POST   /api/shifts/calculate  Compute breakdowns, nothing persisted
    POST   /api/shifts/preview    Replay existing + new through one week
    POST   /api/shifts            Merge against stored entries and save
    GET    /api/shifts            List stored entries (from/to query)
    DELETE /api/shifts/{id}       Remove one stored entry

  Months:
    POST   /api/months/summary    Aggregate a month (inline or stored)

  Calendar:
    GET    /api/holidays/{year}   Colombian public holidays

  Settings:
    GET    /api/settings          Persisted payroll configuration
    PUT    /api/settings          Replace configuration

REQUEST FLOW:
  1. Decode JSON body / URL params
  2. Call domain logic (calculator, summarizer, store)
  3. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Body or parameter could not be decoded
  - 500: Store failures

  Domain inputs are trusted: an unknown novelty or a malformed clock
  string degrades inside the engine exactly as documented there, it is
  not rejected here.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - payroll/calculator.go: Calculation semantics
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nomina/payroll-engine/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    payroll.Store
	Calendar *payroll.Calendar
	Logger   *zap.Logger

	// WeeklyLimit is the configured fallback ordinary-week limit, used
	// when a request omits it and the settings cannot be loaded.
	WeeklyLimit int
}

// NewHandler creates a new handler with the given store.
func NewHandler(store payroll.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:    store,
		Calendar: payroll.NewCalendar(),
		Logger:   logger,
	}
}

// calculator builds a calculator for one request. A non-positive limit
// falls back to the persisted settings, then to the statutory default.
func (h *Handler) calculator(ctx context.Context, hourlyRate float64, limit int) *payroll.Calculator {
	if limit <= 0 {
		if s, err := h.Store.GetSettings(ctx); err == nil {
			limit = s.WeeklyOrdinaryLimit
		} else {
			limit = h.WeeklyLimit
		}
	}
	return payroll.NewCalculator(h.Calendar, decimal.NewFromFloat(hourlyRate), limit)
}

// =============================================================================
// SHIFT ENDPOINTS
// =============================================================================

// CalculateShifts computes breakdowns for a batch of dates without
// touching the store.
// POST /api/shifts/calculate
func (h *Handler) CalculateShifts(w http.ResponseWriter, r *http.Request) {
	var req CalculateShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	calc := h.calculator(r.Context(), req.HourlyRate, req.WeeklyOrdinaryLimit)
	results := calc.Calculate(dates, req.Shift, req.Novelty, req.AdditionalTimeRange)
	writeJSON(w, http.StatusOK, toCalculationDTOs(results))
}

// PreviewShifts replays the supplied existing records plus the proposed
// new ones through one shared weekly tracker and returns the new
// records' breakdowns only.
// POST /api/shifts/preview
func (h *Handler) PreviewShifts(w http.ResponseWriter, r *http.Request) {
	var req PreviewShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	inputs, err := toMergeInputs(req.Existing, req.New)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	calc := h.calculator(r.Context(), req.HourlyRate, req.WeeklyOrdinaryLimit)
	merged := calc.CalculateMerged(inputs)
	writeJSON(w, http.StatusOK, toCalculationDTOs(merged[len(req.Existing):]))
}

// SaveShifts merges the new records against the entries already stored
// in the affected weeks, persists the new breakdowns and returns the
// saved entries.
// POST /api/shifts
func (h *Handler) SaveShifts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PreviewShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.New) == 0 {
		writeJSON(w, http.StatusOK, []ShiftCalculationDTO{})
		return
	}

	newInputs, err := toMergeInputs(nil, req.New)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	// Stored entries in the weeks the new records touch participate in
	// the weekly accounting; anything outside those weeks cannot affect
	// overtime attribution. The span opens one day early because a night
	// shift dated the previous Sunday spills hours into Monday.
	from, to := weekSpan(newInputs)
	from = from.AddDate(0, 0, -1)
	stored, err := h.Store.ListEntries(ctx, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load existing entries", err)
		return
	}

	inputs := make([]payroll.MergeInput, 0, len(stored)+len(newInputs))
	for _, e := range stored {
		inputs = append(inputs, payroll.MergeInput{
			Date:     e.Date,
			Shift:    e.Shift,
			Novelty:  e.Novelty,
			Existing: true,
		})
	}
	inputs = append(inputs, newInputs...)

	calc := h.calculator(ctx, req.HourlyRate, req.WeeklyOrdinaryLimit)
	merged := calc.CalculateMerged(inputs)

	entries := make([]payroll.Entry, 0, len(newInputs))
	for _, sc := range merged[len(stored):] {
		entries = append(entries, payroll.Entry{
			Date:      sc.Date,
			Shift:     sc.Shift,
			Novelty:   sc.Novelty,
			Breakdown: sc.Breakdown,
		})
	}

	saved, err := h.Store.SaveEntries(ctx, entries)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entries", err)
		return
	}

	h.Logger.Info("shifts saved",
		zap.Int("count", len(saved)),
		zap.String("from", payroll.FormatDate(saved[0].Date)))

	dtos := make([]ShiftCalculationDTO, len(saved))
	for i, e := range saved {
		dtos[i] = toEntryDTO(e)
	}
	writeJSON(w, http.StatusCreated, dtos)
}

// ListShifts returns stored entries. Optional from/to query parameters
// bound the range; omitting either side leaves it open.
// GET /api/shifts?from=2025-01-01&to=2025-01-31
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	from := payroll.NewDate(1, time.January, 1)
	to := payroll.NewDate(9999, time.December, 31)

	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = payroll.ParseDate(v); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid from date", err)
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = payroll.ParseDate(v); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid to date", err)
			return
		}
	}

	entries, err := h.Store.ListEntries(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}

	dtos := make([]ShiftCalculationDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, toEntryDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// DeleteShift removes one stored entry. Deleting a missing ID succeeds.
// DELETE /api/shifts/{id}
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// MONTH ENDPOINTS
// =============================================================================

// SummarizeMonth aggregates a month. Entries may arrive inline; when
// omitted the stored entries for the month are used. A missing config
// falls back to the persisted settings.
// POST /api/months/summary
func (h *Handler) SummarizeMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MonthSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var entries []payroll.MonthEntry
	if req.Entries != nil {
		for _, e := range req.Entries {
			date, err := payroll.ParseDate(e.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid entry date", err)
				return
			}
			entries = append(entries, payroll.MonthEntry{
				Date:      date,
				Novelty:   e.Novelty,
				TotalPay:  e.TotalPay,
				Breakdown: e.Breakdown,
			})
		}
	} else {
		first, err := time.Parse("2006-01", req.Month)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid month", err)
			return
		}
		stored, err := h.Store.ListEntries(ctx, first, first.AddDate(0, 1, -1))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load entries", err)
			return
		}
		for _, e := range stored {
			entries = append(entries, payroll.MonthEntry{
				Date:      e.Date,
				Novelty:   e.Novelty,
				TotalPay:  e.Breakdown.TotalPay,
				Breakdown: e.Breakdown,
			})
		}
	}

	var cfg payroll.MonthConfig
	if req.Config != nil {
		cfg = *req.Config
		cfg.Month = req.Month
	} else {
		settings, err := h.Store.GetSettings(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
			return
		}
		cfg = settings.MonthConfig(req.Month, nil, nil)
	}

	writeJSON(w, http.StatusOK, payroll.SummarizeMonth(entries, cfg))
}

// =============================================================================
// CALENDAR ENDPOINTS
// =============================================================================

// GetHolidays returns one year's Colombian public holidays, ascending.
// GET /api/holidays/{year}
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	days := h.Calendar.Holidays(year)
	formatted := make([]string, len(days))
	for i, d := range days {
		formatted[i] = payroll.FormatDate(d)
	}
	writeJSON(w, http.StatusOK, HolidaysDTO{Year: year, Holidays: formatted})
}

// =============================================================================
// SETTINGS ENDPOINTS
// =============================================================================

// GetSettings returns the persisted configuration, or defaults when
// nothing has been stored.
// GET /api/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutSettings replaces the persisted configuration.
// PUT /api/settings
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings payroll.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Store.PutSettings(r.Context(), settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
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

func toMergeInputs(existing, proposed []ShiftRecordDTO) ([]payroll.MergeInput, error) {
	inputs := make([]payroll.MergeInput, 0, len(existing)+len(proposed))
	add := func(recs []ShiftRecordDTO, isExisting bool) error {
		for _, rec := range recs {
			date, err := payroll.ParseDate(rec.Date)
			if err != nil {
				return err
			}
			inputs = append(inputs, payroll.MergeInput{
				Date:     date,
				Shift:    rec.Shift,
				Novelty:  rec.Novelty,
				Existing: isExisting,
			})
		}
		return nil
	}
	if err := add(existing, true); err != nil {
		return nil, err
	}
	if err := add(proposed, false); err != nil {
		return nil, err
	}
	return inputs, nil
}

// weekSpan returns the Monday of the earliest input's week and the
// Sunday of the latest input's week.
func weekSpan(inputs []payroll.MergeInput) (time.Time, time.Time) {
	min, max := inputs[0].Date, inputs[0].Date
	for _, in := range inputs[1:] {
		if in.Date.Before(min) {
			min = in.Date
		}
		if in.Date.After(max) {
			max = in.Date
		}
	}
	monday := func(t time.Time) time.Time {
		return t.AddDate(0, 0, -int((t.Weekday()+6)%7))
	}
	return monday(min), monday(max).AddDate(0, 0, 6)
}
