/*
classify.go - Hour classification and the legal premium table

PURPOSE:
  Labels an instant as night/day and Sunday-or-holiday, then maps that
  label (plus overtime status) to the premium percentage mandated by
  Colombian labor law. Two rules are effective-dated:

  - The nocturnal window starts at 21:00 and moves to 19:00 for days on
    or after 2025-12-25.
  - The ordinary Sunday/holiday surcharge escalates from 75% to 80%
    (2025-07-01), 90% (2026-07-01) and 100% (2027-07-01), each boundary
    lower-inclusive.

  Both rules key on the instant's own calendar day at local midnight, so
  a night shift straddling a boundary changes regime at midnight.

SEE ALSO:
  - calendar.go: Holiday lookups
  - calculator.go: Applies premiums per hour/slice
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EFFECTIVE DATES
// =============================================================================

var (
	nocturnal19From   = NewDate(2025, time.December, 25)
	sundayRate80From  = NewDate(2025, time.July, 1)
	sundayRate90From  = NewDate(2026, time.July, 1)
	sundayRate100From = NewDate(2027, time.July, 1)
)

// =============================================================================
// PREMIUM PERCENTAGES
// =============================================================================

var (
	rateNight = decimal.NewFromFloat(0.35)

	rateOvertimeDay         = decimal.NewFromFloat(0.25)
	rateOvertimeNight       = decimal.NewFromFloat(0.75)
	rateOvertimeSunday      = decimal.NewFromFloat(1.0)
	rateOvertimeSundayNight = decimal.NewFromFloat(1.5)

	rateSunday75  = decimal.NewFromFloat(0.75)
	rateSunday80  = decimal.NewFromFloat(0.8)
	rateSunday90  = decimal.NewFromFloat(0.9)
	rateSunday100 = decimal.NewFromFloat(1.0)
)

// HourClass is the legal classification of a single instant.
type HourClass struct {
	Night           bool
	SundayOrHoliday bool
}

// Classifier labels instants using a holiday calendar.
type Classifier struct {
	calendar *Calendar
}

func NewClassifier(calendar *Calendar) *Classifier {
	return &Classifier{calendar: calendar}
}

// Classify labels one instant. Night means at-or-after the nocturnal
// start for that day, or before 06:00.
func (cl *Classifier) Classify(t time.Time) HourClass {
	return HourClass{
		Night:           isNightHour(t),
		SundayOrHoliday: t.Weekday() == time.Sunday || cl.calendar.IsHoliday(t),
	}
}

func nocturnalStartHour(t time.Time) int {
	if !midnight(t).Before(nocturnal19From) {
		return 19
	}
	return 21
}

func isNightHour(t time.Time) bool {
	return t.Hour() >= nocturnalStartHour(t) || t.Hour() < 6
}

// sundayHolidayRate returns the ordinary Sunday/holiday surcharge in
// force on the instant's calendar day.
func sundayHolidayRate(t time.Time) decimal.Decimal {
	d := midnight(t)
	switch {
	case !d.Before(sundayRate100From):
		return rateSunday100
	case !d.Before(sundayRate90From):
		return rateSunday90
	case !d.Before(sundayRate80From):
		return rateSunday80
	default:
		return rateSunday75
	}
}

// PremiumRate returns the surcharge percentage for one classified hour.
// Overtime rates are flat; ordinary Sunday/holiday rates are
// effective-dated and stack with the 35% night surcharge.
func PremiumRate(at time.Time, overtime bool, class HourClass) decimal.Decimal {
	if overtime {
		switch {
		case class.SundayOrHoliday && class.Night:
			return rateOvertimeSundayNight
		case class.SundayOrHoliday:
			return rateOvertimeSunday
		case class.Night:
			return rateOvertimeNight
		default:
			return rateOvertimeDay
		}
	}

	switch {
	case class.SundayOrHoliday && class.Night:
		return sundayHolidayRate(at).Add(rateNight)
	case class.SundayOrHoliday:
		return sundayHolidayRate(at)
	case class.Night:
		return rateNight
	default:
		return decimal.Zero
	}
}
