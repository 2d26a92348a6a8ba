/*
Package payroll computes shift-based pay under Colombian labor rules.

PURPOSE:
  This package is the calculation core: it classifies every worked hour
  into day/night and Sunday-or-holiday buckets, separates ordinary hours
  from overtime against a weekly limit, applies the legally mandated
  premium percentages (which escalate across effective dates), and
  aggregates daily results into a monthly payroll summary.

KEY CONCEPTS IN THIS FILE (types.go):
  - ShiftType / NoveltyType: Wire-stable enums (Spanish values, matching
    the collaborating frontend's data model)
  - Breakdown: Per-shift hour buckets and pay totals
  - ShiftCalculation: The value produced for each requested date
  - RoundCOP: The single-rounding rule for peso amounts

DESIGN PRINCIPLES:
  1. Purity: Calculations are deterministic functions of their inputs;
     the only cache is the holiday calendar's per-year memo.
  2. Precision: Money accumulates as decimal.Decimal and is rounded to
     whole pesos exactly once per output field.
  3. Trust: Malformed domain input (bad clock strings) degrades to a
     zero result, never an error; callers validate beforehand.

SEE ALSO:
  - calendar.go: Colombian public-holiday calendar
  - calculator.go: Per-shift calculation dispatch
  - month.go: Monthly aggregation
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SHIFT AND NOVELTY ENUMS
// =============================================================================

// ShiftType identifies which daily window was worked. Values are the
// Spanish identifiers persisted by collaborators.
type ShiftType string

const (
	ShiftMorning    ShiftType = "manana"    // 05:00-13:00
	ShiftAfternoon  ShiftType = "tarde"     // 13:00-21:00
	ShiftNight      ShiftType = "noche"     // 21:00-05:00 next day
	ShiftAdditional ShiftType = "adicional" // explicit start/end times
)

// NoveltyType is a non-ordinary day status. Anything other than
// NoveltyNormal overrides hour classification entirely: the day becomes a
// flat eight hours times the novelty's pay multiplier.
type NoveltyType string

const (
	NoveltyNormal        NoveltyType = "normal"
	NoveltyIncapacityEPS NoveltyType = "incapacidad_eps"
	NoveltyIncapacityARL NoveltyType = "incapacidad_arl"
	NoveltyVacation      NoveltyType = "vacaciones"
	NoveltyPaidLeave     NoveltyType = "licencia_remunerada"
	NoveltyUnpaidLeave   NoveltyType = "licencia_no_remunerada"
	NoveltyFamilyDay     NoveltyType = "dia_familia"
	NoveltyBirthday      NoveltyType = "cumpleanos"
	NoveltyAbsence       NoveltyType = "ausencia"
)

var twoThirds = decimal.NewFromInt(2).Div(decimal.NewFromInt(3))

// PayMultiplier returns the fraction of the flat eight-hour day that is
// paid for this novelty: unpaid leave and unjustified absence pay nothing,
// EPS incapacity pays two thirds, everything else pays in full.
func (n NoveltyType) PayMultiplier() decimal.Decimal {
	switch n {
	case NoveltyUnpaidLeave, NoveltyAbsence:
		return decimal.Zero
	case NoveltyIncapacityEPS:
		return twoThirds
	default:
		return decimal.NewFromInt(1)
	}
}

// AllowanceDay reports whether a day under this novelty counts toward
// transport-allowance proration.
func (n NoveltyType) AllowanceDay() int {
	switch n {
	case NoveltyNormal, NoveltyPaidLeave, NoveltyFamilyDay, NoveltyBirthday:
		return 1
	default:
		return 0
	}
}

// ContributionDay reports whether a day under this novelty counts toward
// health/pension contribution proration.
func (n NoveltyType) ContributionDay() int {
	switch n {
	case NoveltyUnpaidLeave, NoveltyAbsence:
		return 0
	default:
		return 1
	}
}

// =============================================================================
// BREAKDOWN - Hour buckets and pay totals for one shift
// =============================================================================

// TimeRange is an explicit HH:mm clock range for an additional shift.
// If End is at or before Start the range rolls over to the next day.
type TimeRange struct {
	Start string `json:"startTimeHHmm"`
	End   string `json:"endTimeHHmm"`
}

// Breakdown holds the hour classification and pay totals for one shift.
// Hour fields are fractional (additional shifts run in quarter-hour
// slices); pay fields are whole pesos, each rounded exactly once.
type Breakdown struct {
	HoursTotal                   float64 `json:"hoursTotal"`
	HoursDay                     float64 `json:"hoursDay"`
	HoursNight                   float64 `json:"hoursNight"`
	HoursSundayOrHolidayDay      float64 `json:"hoursSundayOrHolidayDay"`
	HoursSundayOrHolidayNight    float64 `json:"hoursSundayOrHolidayNight"`
	OvertimeHoursTotal           float64 `json:"overtimeHoursTotal"`
	OvertimeDay                  float64 `json:"overtimeDay"`
	OvertimeNight                float64 `json:"overtimeNight"`
	OvertimeSundayOrHolidayDay   float64 `json:"overtimeSundayOrHolidayDay"`
	OvertimeSundayOrHolidayNight float64 `json:"overtimeSundayOrHolidayNight"`

	AdditionalStartTime string `json:"additionalStartTimeHHmm,omitempty"`
	AdditionalEndTime   string `json:"additionalEndTimeHHmm,omitempty"`

	BasePay      int64 `json:"basePayCop"`
	SurchargePay int64 `json:"surchargePayCop"`
	TotalPay     int64 `json:"totalPayCop"`
}

// ShiftCalculation is the computed result for one requested date. It is a
// pure value; persistence is a collaborator concern.
type ShiftCalculation struct {
	Date      time.Time
	Shift     ShiftType
	Novelty   NoveltyType
	Breakdown Breakdown
}

// =============================================================================
// MONEY AND DATE HELPERS
// =============================================================================

// DateLayout is the calendar-date format used throughout: map keys,
// persisted dates, and the API wire format.
const DateLayout = "2006-01-02"

// RoundCOP rounds an accumulated sum to whole pesos, half away from zero.
// Every monetary output field passes through here exactly once.
func RoundCOP(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// NewDate builds the midnight instant for a calendar date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// midnight truncates an instant to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DatesBetween enumerates calendar days from start through end inclusive.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := midnight(start); !d.After(midnight(end)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
