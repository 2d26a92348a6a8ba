package payroll_test

import (
	"testing"
	"time"

	"github.com/nomina/payroll-engine/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestClassifier_NightWindow(t *testing.T) {
	cl := payroll.NewClassifier(payroll.NewCalendar())

	cases := []struct {
		name  string
		at    time.Time
		night bool
	}{
		{"20:00 before the 19:00 change is day", at(2025, time.December, 24, 20), false},
		{"21:00 before the change is night", at(2025, time.December, 24, 21), true},
		{"19:00 from 2025-12-25 is night", at(2025, time.December, 25, 19), true},
		{"19:00 on 2025-12-26 is night", at(2025, time.December, 26, 19), true},
		{"18:00 after the change is still day", at(2026, time.January, 10, 18), false},
		{"05:00 is night on any date", at(2025, time.March, 4, 5), true},
		{"06:00 ends the night", at(2025, time.March, 4, 6), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.night, cl.Classify(tc.at).Night)
		})
	}
}

func TestClassifier_SundayOrHoliday(t *testing.T) {
	cl := payroll.NewClassifier(payroll.NewCalendar())

	assert.True(t, cl.Classify(at(2025, time.January, 5, 10)).SundayOrHoliday, "Sunday")
	assert.True(t, cl.Classify(at(2025, time.January, 6, 10)).SundayOrHoliday, "holiday Monday")
	assert.False(t, cl.Classify(at(2025, time.January, 7, 10)).SundayOrHoliday, "plain Tuesday")
}

func TestPremiumRate_OvertimeTable(t *testing.T) {
	// Overtime premiums are flat regardless of the calendar date.
	day := at(2025, time.January, 7, 10)

	cases := []struct {
		name  string
		class payroll.HourClass
		want  float64
	}{
		{"plain overtime", payroll.HourClass{}, 0.25},
		{"night overtime", payroll.HourClass{Night: true}, 0.75},
		{"sunday overtime", payroll.HourClass{SundayOrHoliday: true}, 1.0},
		{"sunday night overtime", payroll.HourClass{Night: true, SundayOrHoliday: true}, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := payroll.PremiumRate(day, true, tc.class)
			assert.True(t, got.Equal(decimal.NewFromFloat(tc.want)), "got %s", got)
		})
	}
}

func TestPremiumRate_OrdinarySundayEscalation(t *testing.T) {
	sunday := payroll.HourClass{SundayOrHoliday: true}

	cases := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"75% before 2025-07-01", at(2025, time.June, 30, 10), 0.75},
		{"80% from 2025-07-01", at(2025, time.July, 1, 10), 0.8},
		{"90% from 2026-07-01", at(2026, time.July, 1, 10), 0.9},
		{"100% from 2027-07-01", at(2027, time.July, 1, 10), 1.0},
		{"still 90% the day before the 100% boundary", at(2027, time.June, 30, 10), 0.9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := payroll.PremiumRate(tc.at, false, sunday)
			assert.True(t, got.Equal(decimal.NewFromFloat(tc.want)), "got %s", got)
		})
	}
}

func TestPremiumRate_OrdinaryNightStacksWithSunday(t *testing.T) {
	class := payroll.HourClass{Night: true, SundayOrHoliday: true}
	got := payroll.PremiumRate(at(2025, time.June, 1, 22), false, class)
	assert.True(t, got.Equal(decimal.NewFromFloat(1.1)), "0.75 + 0.35, got %s", got)

	plainNight := payroll.HourClass{Night: true}
	got = payroll.PremiumRate(at(2025, time.June, 2, 22), false, plainNight)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.35)), "got %s", got)
}
