/*
calculator.go - Per-shift calculation

PURPOSE:
  Orchestrates window resolution, hour classification, the weekly
  overtime tracker and the premium table into one Breakdown per
  requested date.

DISPATCH:
  Each (shift, novelty, range) combination resolves to exactly one work
  variant before any hours are processed:

    flatWork       novelty override: flat 8h x pay multiplier, no buckets
    additionalWork explicit range in 15-minute slices, always overtime
    windowWork     fixed window in whole hours, tracker decides overtime
    noWork         additional shift with a novelty or an unusable range

  Every variant produces its own breakdown through an isolated handler,
  so the "ordinary+overtime buckets sum to 8" invariant holds per
  variant by construction.

ROUNDING:
  Base and premium pay accumulate unrounded decimals across all hours or
  slices of a date and are rounded to whole pesos once, at the end.
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculator computes shift breakdowns for a single hourly rate.
type Calculator struct {
	classifier  *Classifier
	hourlyRate  decimal.Decimal
	weeklyLimit int
}

// NewCalculator builds a calculator. weeklyLimit <= 0 selects the
// default 44-hour ordinary week.
func NewCalculator(calendar *Calendar, hourlyRate decimal.Decimal, weeklyLimit int) *Calculator {
	if weeklyLimit <= 0 {
		weeklyLimit = DefaultWeeklyOrdinaryLimit
	}
	return &Calculator{
		classifier:  NewClassifier(calendar),
		hourlyRate:  hourlyRate,
		weeklyLimit: weeklyLimit,
	}
}

// Calculate produces one ShiftCalculation per date. Dates in the same
// week share a single overtime tracker, so they must be supplied in
// ascending chronological order for correct overtime attribution.
func (c *Calculator) Calculate(dates []time.Time, shift ShiftType, novelty NoveltyType, rng *TimeRange) []ShiftCalculation {
	tracker := NewWeekTracker(c.weeklyLimit)
	out := make([]ShiftCalculation, 0, len(dates))
	for _, date := range dates {
		out = append(out, ShiftCalculation{
			Date:      date,
			Shift:     shift,
			Novelty:   novelty,
			Breakdown: c.resolve(date, shift, novelty, rng).compute(c, tracker),
		})
	}
	return out
}

// =============================================================================
// WORK VARIANTS - tagged dispatch, one handler per shape of day
// =============================================================================

type work interface {
	compute(c *Calculator, tracker *WeekTracker) Breakdown
}

func (c *Calculator) resolve(date time.Time, shift ShiftType, novelty NoveltyType, rng *TimeRange) work {
	if shift == ShiftAdditional {
		if novelty != NoveltyNormal {
			return noWork{rng: rng}
		}
		start, end, ok := additionalWindow(date, rng)
		if !ok {
			return noWork{rng: rng}
		}
		return additionalWork{start: start, end: end, rng: *rng}
	}

	if novelty != NoveltyNormal {
		return flatWork{multiplier: novelty.PayMultiplier()}
	}

	start, end := shiftWindow(date, shift)
	return windowWork{start: start, end: end}
}

// flatWork pays a flat eight-hour day at the novelty multiplier. Hours
// are not bucketed and no premium applies.
type flatWork struct {
	multiplier decimal.Decimal
}

func (w flatWork) compute(c *Calculator, _ *WeekTracker) Breakdown {
	pay := RoundCOP(c.hourlyRate.Mul(decimal.NewFromInt(8)).Mul(w.multiplier))
	return Breakdown{
		HoursTotal: 8,
		BasePay:    pay,
		TotalPay:   pay,
	}
}

// noWork is the degenerate zero result: an additional shift whose range
// is unusable or whose novelty suppresses the work. The supplied clock
// strings are still echoed for the caller.
type noWork struct {
	rng *TimeRange
}

func (w noWork) compute(_ *Calculator, _ *WeekTracker) Breakdown {
	var b Breakdown
	if w.rng != nil {
		b.AdditionalStartTime = w.rng.Start
		b.AdditionalEndTime = w.rng.End
	}
	return b
}

// additionalWork walks the explicit range in 15-minute slices. Every
// slice is overtime: additional work never draws on the weekly ordinary
// allowance.
type additionalWork struct {
	start, end time.Time
	rng        TimeRange
}

func (w additionalWork) compute(c *Calculator, _ *WeekTracker) Breakdown {
	const step = 15 * time.Minute

	var acc payAccum
	for t := w.start; t.Before(w.end); {
		sliceEnd := t.Add(step)
		if sliceEnd.After(w.end) {
			sliceEnd = w.end
		}
		hours := sliceEnd.Sub(t).Hours()
		acc.add(t, c.classifier.Classify(t), true, hours, c.hourlyRate)
		t = sliceEnd
	}

	b := acc.breakdown()
	b.HoursTotal = b.OvertimeHoursTotal
	b.AdditionalStartTime = w.rng.Start
	b.AdditionalEndTime = w.rng.End
	return b
}

// windowWork walks a fixed eight-hour window in whole hours, consulting
// the shared weekly tracker for each one.
type windowWork struct {
	start, end time.Time
}

func (w windowWork) compute(c *Calculator, tracker *WeekTracker) Breakdown {
	var acc payAccum
	for t := w.start; t.Before(w.end); t = t.Add(time.Hour) {
		acc.add(t, c.classifier.Classify(t), tracker.Consume(t), 1, c.hourlyRate)
	}

	b := acc.breakdown()
	b.HoursTotal = 8
	return b
}

// =============================================================================
// PAY ACCUMULATOR - unrounded sums over one date's hours or slices
// =============================================================================

type payAccum struct {
	hoursDay, hoursNight       float64
	hoursSunDay, hoursSunNight float64
	otDay, otNight             float64
	otSunDay, otSunNight       float64

	base    decimal.Decimal
	premium decimal.Decimal
}

func (a *payAccum) add(at time.Time, class HourClass, overtime bool, hours float64, rate decimal.Decimal) {
	h := decimal.NewFromFloat(hours)
	a.base = a.base.Add(rate.Mul(h))
	a.premium = a.premium.Add(rate.Mul(PremiumRate(at, overtime, class)).Mul(h))

	switch {
	case overtime && class.SundayOrHoliday && class.Night:
		a.otSunNight += hours
	case overtime && class.SundayOrHoliday:
		a.otSunDay += hours
	case overtime && class.Night:
		a.otNight += hours
	case overtime:
		a.otDay += hours
	case class.SundayOrHoliday && class.Night:
		a.hoursSunNight += hours
	case class.SundayOrHoliday:
		a.hoursSunDay += hours
	case class.Night:
		a.hoursNight += hours
	default:
		a.hoursDay += hours
	}
}

func (a *payAccum) breakdown() Breakdown {
	return Breakdown{
		HoursDay:                     a.hoursDay,
		HoursNight:                   a.hoursNight,
		HoursSundayOrHolidayDay:      a.hoursSunDay,
		HoursSundayOrHolidayNight:    a.hoursSunNight,
		OvertimeHoursTotal:           a.otDay + a.otNight + a.otSunDay + a.otSunNight,
		OvertimeDay:                  a.otDay,
		OvertimeNight:                a.otNight,
		OvertimeSundayOrHolidayDay:   a.otSunDay,
		OvertimeSundayOrHolidayNight: a.otSunNight,
		BasePay:                      RoundCOP(a.base),
		SurchargePay:                 RoundCOP(a.premium),
		TotalPay:                     RoundCOP(a.base.Add(a.premium)),
	}
}
