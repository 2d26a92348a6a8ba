/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Dates travel as
  YYYY-MM-DD strings; money travels as numbers (hourly rates may be
  fractional, stored pay is whole pesos). Breakdown and month-summary
  types from the payroll package already carry their wire tags and are
  embedded as-is.

SEE ALSO:
  - handlers.go: Uses these types
  - payroll/types.go: Breakdown wire format
*/
package api

import (
	"time"

	"github.com/nomina/payroll-engine/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateShiftsRequest asks for one calculation per date. Dates in the
// same week share the weekly ordinary allowance, so they should arrive
// in ascending order.
type CalculateShiftsRequest struct {
	Dates               []string            `json:"dateISOs"`
	Shift               payroll.ShiftType   `json:"shift"`
	Novelty             payroll.NoveltyType `json:"novelty"`
	HourlyRate          float64             `json:"hourlyRateCop"`
	WeeklyOrdinaryLimit int                 `json:"weeklyOrdinaryLimit,omitempty"`
	AdditionalTimeRange *payroll.TimeRange  `json:"additionalTimeRange,omitempty"`
}

// ShiftRecordDTO is one shift record inside a preview request.
type ShiftRecordDTO struct {
	Date    string              `json:"dateISO"`
	Shift   payroll.ShiftType   `json:"shift"`
	Novelty payroll.NoveltyType `json:"novelty"`
}

// PreviewShiftsRequest replays existing records plus proposed new ones
// through one shared weekly tracker; the response covers the new
// records only.
type PreviewShiftsRequest struct {
	Existing            []ShiftRecordDTO `json:"existing"`
	New                 []ShiftRecordDTO `json:"new"`
	HourlyRate          float64          `json:"hourlyRateCop"`
	WeeklyOrdinaryLimit int              `json:"weeklyOrdinaryLimit,omitempty"`
}

// ShiftCalculationDTO is one computed shift.
type ShiftCalculationDTO struct {
	ID        string              `json:"id,omitempty"`
	Date      string              `json:"dateISO"`
	Shift     payroll.ShiftType   `json:"shift"`
	Novelty   payroll.NoveltyType `json:"novelty"`
	Breakdown payroll.Breakdown   `json:"breakdown"`
}

// MonthEntryDTO is one daily result inside a summary request.
type MonthEntryDTO struct {
	Date      string              `json:"workDateISO"`
	Novelty   payroll.NoveltyType `json:"novelty"`
	TotalPay  int64               `json:"totalPayCop"`
	Breakdown payroll.Breakdown   `json:"breakdown"`
}

// MonthSummaryRequest aggregates a month. Entries may be supplied inline
// or omitted, in which case the stored entries for Month are used. A nil
// Config falls back to the persisted settings.
type MonthSummaryRequest struct {
	Month   string               `json:"monthISO"`
	Entries []MonthEntryDTO      `json:"entries,omitempty"`
	Config  *payroll.MonthConfig `json:"config,omitempty"`
}

// HolidaysDTO lists one year's public holidays.
type HolidaysDTO struct {
	Year     int      `json:"year"`
	Holidays []string `json:"holidays"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toCalculationDTO(sc payroll.ShiftCalculation) ShiftCalculationDTO {
	return ShiftCalculationDTO{
		Date:      payroll.FormatDate(sc.Date),
		Shift:     sc.Shift,
		Novelty:   sc.Novelty,
		Breakdown: sc.Breakdown,
	}
}

func toCalculationDTOs(scs []payroll.ShiftCalculation) []ShiftCalculationDTO {
	dtos := make([]ShiftCalculationDTO, len(scs))
	for i, sc := range scs {
		dtos[i] = toCalculationDTO(sc)
	}
	return dtos
}

func toEntryDTO(e payroll.Entry) ShiftCalculationDTO {
	return ShiftCalculationDTO{
		ID:        e.ID,
		Date:      payroll.FormatDate(e.Date),
		Shift:     e.Shift,
		Novelty:   e.Novelty,
		Breakdown: e.Breakdown,
	}
}

func parseDates(dates []string) ([]time.Time, error) {
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := payroll.ParseDate(d)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, t)
	}
	return parsed, nil
}
