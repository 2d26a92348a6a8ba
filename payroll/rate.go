package payroll

import "github.com/shopspring/decimal"

// DefaultWeeklyHours is the workweek convention used to spread a monthly
// salary over ordinary hours.
const DefaultWeeklyHours = 44

// MonthlyOrdinaryHours converts a weekly-hours convention into the
// average ordinary hours of one month (weekly x 52 weeks / 12 months).
func MonthlyOrdinaryHours(weeklyHours int) decimal.Decimal {
	if weeklyHours <= 0 {
		weeklyHours = DefaultWeeklyHours
	}
	return decimal.NewFromInt(int64(weeklyHours) * 52).Div(decimal.NewFromInt(12))
}

// HourlyRateFromMonthlySalary derives the unrounded hourly rate used by
// the shift calculator from a monthly base salary.
func HourlyRateFromMonthlySalary(salary int64, weeklyHours int) decimal.Decimal {
	return decimal.NewFromInt(salary).Div(MonthlyOrdinaryHours(weeklyHours))
}
