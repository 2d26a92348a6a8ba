package payroll_test

import (
	"testing"
	"time"

	"github.com/nomina/payroll-engine/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T, rate int64, limit int) *payroll.Calculator {
	t.Helper()
	return payroll.NewCalculator(payroll.NewCalendar(), decimal.NewFromInt(rate), limit)
}

func ordinaryBucketSum(b payroll.Breakdown) float64 {
	return b.HoursDay + b.HoursNight + b.HoursSundayOrHolidayDay + b.HoursSundayOrHolidayNight +
		b.OvertimeDay + b.OvertimeNight + b.OvertimeSundayOrHolidayDay + b.OvertimeSundayOrHolidayNight
}

// =============================================================================
// FIXED-WINDOW SHIFTS
// =============================================================================

func TestCalculate_NightShiftSurcharge(t *testing.T) {
	// GIVEN: A night shift on 2025-01-07 at 1000/h
	// WHEN: Calculated with novelty normal
	// THEN: All 8 hours are night hours at the 35% surcharge

	calc := newTestCalculator(t, 1000, 44)
	out := calc.Calculate([]time.Time{payroll.NewDate(2025, time.January, 7)}, payroll.ShiftNight, payroll.NoveltyNormal, nil)
	require.Len(t, out, 1)

	b := out[0].Breakdown
	assert.Equal(t, 8.0, b.HoursNight)
	assert.Equal(t, 0.0, b.OvertimeHoursTotal)
	assert.Equal(t, int64(8000), b.BasePay)
	assert.Equal(t, int64(2800), b.SurchargePay)
	assert.Equal(t, int64(10800), b.TotalPay)
	assert.Equal(t, 8.0, ordinaryBucketSum(b))
}

func TestCalculate_NocturnalStartMovesTo19(t *testing.T) {
	// The afternoon window is 13:00-21:00; from 2025-12-25 the nocturnal
	// window opens at 19:00, so two of those hours become night.

	calc := newTestCalculator(t, 1000, 44)
	out := calc.Calculate([]time.Time{payroll.NewDate(2025, time.December, 26)}, payroll.ShiftAfternoon, payroll.NoveltyNormal, nil)
	require.Len(t, out, 1)

	b := out[0].Breakdown
	assert.Equal(t, 6.0, b.HoursDay)
	assert.Equal(t, 2.0, b.HoursNight)
	assert.Equal(t, int64(700), b.SurchargePay)
	assert.Equal(t, int64(8700), b.TotalPay)
}

func TestCalculate_WeeklyOvertimeAfter44Hours(t *testing.T) {
	// GIVEN: Six consecutive 8h morning shifts starting Monday 2025-01-06
	// WHEN: Calculated at the default 44h weekly limit
	// THEN: The sixth day (Saturday) splits 4 ordinary + 4 overtime hours

	calc := newTestCalculator(t, 1000, 44)
	dates := payroll.DatesBetween(payroll.NewDate(2025, time.January, 6), payroll.NewDate(2025, time.January, 11))
	out := calc.Calculate(dates, payroll.ShiftMorning, payroll.NoveltyNormal, nil)
	require.Len(t, out, 6)

	saturday := out[5].Breakdown
	assert.Equal(t, 4.0, saturday.OvertimeDay)
	assert.Equal(t, 4.0, saturday.OvertimeHoursTotal)
	// 1 ordinary night hour (05:00) at 35% + 4 overtime day hours at 25%.
	assert.Equal(t, int64(1350), saturday.SurchargePay)
	assert.Equal(t, int64(9350), saturday.TotalPay)

	for _, sc := range out {
		assert.Equal(t, 8.0, ordinaryBucketSum(sc.Breakdown))
		assert.Equal(t, sc.Breakdown.BasePay+sc.Breakdown.SurchargePay, sc.Breakdown.TotalPay)
	}
}

func TestCalculate_SundayHolidayRateEscalation(t *testing.T) {
	calc := newTestCalculator(t, 1000, 44)

	cases := []struct {
		name           string
		date           time.Time
		surcharge      int64
		total          int64
	}{
		{"75% before 2025-07-01", payroll.NewDate(2025, time.June, 2), 6000, 14000},
		{"80% from 2025-07-01", payroll.NewDate(2025, time.July, 20), 6400, 14400},
		{"90% from 2026-07-01 with 19:00 nights", payroll.NewDate(2026, time.July, 20), 7900, 15900},
		{"100% from 2027-07-01 with 19:00 nights", payroll.NewDate(2027, time.July, 20), 8700, 16700},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := calc.Calculate([]time.Time{tc.date}, payroll.ShiftAfternoon, payroll.NoveltyNormal, nil)
			require.Len(t, out, 1)
			b := out[0].Breakdown
			assert.Equal(t, int64(8000), b.BasePay)
			assert.Equal(t, tc.surcharge, b.SurchargePay)
			assert.Equal(t, tc.total, b.TotalPay)
		})
	}
}

// =============================================================================
// NOVELTY OVERRIDES
// =============================================================================

func TestCalculate_NoveltyMultipliers(t *testing.T) {
	calc := newTestCalculator(t, 1000, 44)
	monday := payroll.NewDate(2025, time.January, 6)

	cases := []struct {
		novelty payroll.NoveltyType
		pay     int64
	}{
		{payroll.NoveltyIncapacityEPS, 5333}, // round(8000 * 2/3)
		{payroll.NoveltyIncapacityARL, 8000},
		{payroll.NoveltyVacation, 8000},
		{payroll.NoveltyPaidLeave, 8000},
		{payroll.NoveltyFamilyDay, 8000},
		{payroll.NoveltyBirthday, 8000},
		{payroll.NoveltyUnpaidLeave, 0},
		{payroll.NoveltyAbsence, 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.novelty), func(t *testing.T) {
			out := calc.Calculate([]time.Time{monday}, payroll.ShiftMorning, tc.novelty, nil)
			require.Len(t, out, 1)

			b := out[0].Breakdown
			assert.Equal(t, 8.0, b.HoursTotal, "novelty days are a flat 8 hours")
			assert.Equal(t, 0.0, ordinaryBucketSum(b), "novelty days are never bucketed")
			assert.Equal(t, tc.pay, b.BasePay)
			assert.Equal(t, int64(0), b.SurchargePay)
			assert.Equal(t, tc.pay, b.TotalPay)
		})
	}
}

// =============================================================================
// ADDITIONAL SHIFTS
// =============================================================================

func TestCalculate_AdditionalShiftIsAlwaysOvertime(t *testing.T) {
	// 2025-01-06 is the Reyes holiday, so both hours land in the
	// overtime Sunday/holiday day bucket at the 100% overtime premium.

	calc := newTestCalculator(t, 1000, 44)
	rng := &payroll.TimeRange{Start: "18:00", End: "20:00"}
	out := calc.Calculate([]time.Time{payroll.NewDate(2025, time.January, 6)}, payroll.ShiftAdditional, payroll.NoveltyNormal, rng)
	require.Len(t, out, 1)

	b := out[0].Breakdown
	assert.Equal(t, 2.0, b.OvertimeSundayOrHolidayDay)
	assert.Equal(t, 2.0, b.OvertimeHoursTotal)
	assert.Equal(t, 2.0, b.HoursTotal)
	assert.Equal(t, int64(2000), b.BasePay)
	assert.Equal(t, int64(2000), b.SurchargePay)
	assert.Equal(t, int64(4000), b.TotalPay)
	assert.Equal(t, "18:00", b.AdditionalStartTime)
	assert.Equal(t, "20:00", b.AdditionalEndTime)
}

func TestCalculate_AdditionalShiftQuarterHourSlices(t *testing.T) {
	calc := newTestCalculator(t, 1000, 44)
	rng := &payroll.TimeRange{Start: "18:00", End: "19:30"}
	out := calc.Calculate([]time.Time{payroll.NewDate(2025, time.January, 7)}, payroll.ShiftAdditional, payroll.NoveltyNormal, rng)
	require.Len(t, out, 1)

	b := out[0].Breakdown
	assert.Equal(t, 1.5, b.OvertimeDay)
	assert.Equal(t, int64(1500), b.BasePay)
	assert.Equal(t, int64(375), b.SurchargePay, "1.5h at the 25% overtime premium")
	assert.Equal(t, int64(1875), b.TotalPay)
}

func TestCalculate_AdditionalShiftRollsPastMidnight(t *testing.T) {
	// 22:00-02:00 rolls into the next day: all four hours are night,
	// and the hours after midnight classify against the next calendar day.

	calc := newTestCalculator(t, 1000, 44)
	rng := &payroll.TimeRange{Start: "22:00", End: "02:00"}
	out := calc.Calculate([]time.Time{payroll.NewDate(2025, time.January, 7)}, payroll.ShiftAdditional, payroll.NoveltyNormal, rng)
	require.Len(t, out, 1)

	b := out[0].Breakdown
	assert.Equal(t, 4.0, b.OvertimeNight)
	assert.Equal(t, int64(4000), b.BasePay)
	assert.Equal(t, int64(3000), b.SurchargePay)
}

func TestCalculate_AdditionalShiftDegenerateCases(t *testing.T) {
	calc := newTestCalculator(t, 1000, 44)
	date := []time.Time{payroll.NewDate(2025, time.January, 7)}

	t.Run("unparseable range yields zero breakdown", func(t *testing.T) {
		rng := &payroll.TimeRange{Start: "25:00", End: "20:00"}
		out := calc.Calculate(date, payroll.ShiftAdditional, payroll.NoveltyNormal, rng)
		require.Len(t, out, 1)
		assert.Equal(t, int64(0), out[0].Breakdown.TotalPay)
		assert.Equal(t, 0.0, out[0].Breakdown.OvertimeHoursTotal)
		assert.Equal(t, "25:00", out[0].Breakdown.AdditionalStartTime, "clock strings are echoed back")
	})

	t.Run("missing range yields zero breakdown", func(t *testing.T) {
		out := calc.Calculate(date, payroll.ShiftAdditional, payroll.NoveltyNormal, nil)
		require.Len(t, out, 1)
		assert.Equal(t, payroll.Breakdown{}, out[0].Breakdown)
	})

	t.Run("novelty suppresses additional work", func(t *testing.T) {
		rng := &payroll.TimeRange{Start: "18:00", End: "20:00"}
		out := calc.Calculate(date, payroll.ShiftAdditional, payroll.NoveltyVacation, rng)
		require.Len(t, out, 1)
		assert.Equal(t, int64(0), out[0].Breakdown.TotalPay)
	})
}

// =============================================================================
// GENERAL PROPERTIES
// =============================================================================

func TestCalculate_Idempotent(t *testing.T) {
	calc := newTestCalculator(t, 1234, 44)
	dates := payroll.DatesBetween(payroll.NewDate(2025, time.June, 23), payroll.NewDate(2025, time.July, 6))

	first := calc.Calculate(dates, payroll.ShiftNight, payroll.NoveltyNormal, nil)
	second := calc.Calculate(dates, payroll.ShiftNight, payroll.NoveltyNormal, nil)
	assert.Equal(t, first, second)
}

func TestCalculate_TotalAlwaysBasePlusSurcharge(t *testing.T) {
	calc := newTestCalculator(t, 997, 44)
	dates := payroll.DatesBetween(payroll.NewDate(2025, time.December, 22), payroll.NewDate(2026, time.January, 4))

	for _, shift := range []payroll.ShiftType{payroll.ShiftMorning, payroll.ShiftAfternoon, payroll.ShiftNight} {
		for _, sc := range calc.Calculate(dates, shift, payroll.NoveltyNormal, nil) {
			assert.Equal(t, sc.Breakdown.BasePay+sc.Breakdown.SurchargePay, sc.Breakdown.TotalPay)
			assert.Equal(t, 8.0, ordinaryBucketSum(sc.Breakdown))
		}
	}
}
