package payroll_test

import (
	"sync"
	"testing"
	"time"

	"github.com/nomina/payroll-engine/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 2025 FIXTURES
// =============================================================================

func TestCalendar_Year2025(t *testing.T) {
	cal := payroll.NewCalendar()

	holidays := []time.Time{
		payroll.NewDate(2025, time.January, 1),
		payroll.NewDate(2025, time.January, 6),   // Reyes, already Monday
		payroll.NewDate(2025, time.March, 24),    // San José moved from Wed Mar 19
		payroll.NewDate(2025, time.April, 17),    // Holy Thursday
		payroll.NewDate(2025, time.April, 18),    // Good Friday
		payroll.NewDate(2025, time.May, 1),
		payroll.NewDate(2025, time.June, 2),      // Ascension, Easter+43
		payroll.NewDate(2025, time.June, 23),     // Corpus Christi, Easter+64
		payroll.NewDate(2025, time.June, 30),     // Sacred Heart and San Pedro collide
		payroll.NewDate(2025, time.July, 20),
		payroll.NewDate(2025, time.August, 7),
		payroll.NewDate(2025, time.August, 18),   // Assumption moved from Fri Aug 15
		payroll.NewDate(2025, time.October, 13),  // Día de la Raza moved from Sun Oct 12
		payroll.NewDate(2025, time.November, 3),  // All Saints moved from Sat Nov 1
		payroll.NewDate(2025, time.November, 17), // Independence of Cartagena moved from Tue Nov 11
		payroll.NewDate(2025, time.December, 8),
		payroll.NewDate(2025, time.December, 25),
	}
	for _, d := range holidays {
		assert.True(t, cal.IsHoliday(d), "expected %s to be a holiday", payroll.FormatDate(d))
	}

	notHolidays := []time.Time{
		payroll.NewDate(2025, time.January, 2),
		payroll.NewDate(2025, time.March, 19),  // nominal date, moved away
		payroll.NewDate(2025, time.August, 15), // nominal date, moved away
		payroll.NewDate(2025, time.April, 20),  // Easter Sunday itself is not listed
	}
	for _, d := range notHolidays {
		assert.False(t, cal.IsHoliday(d), "expected %s not to be a holiday", payroll.FormatDate(d))
	}

	// Sacred Heart and San Pedro both land on Jun 30, so the set dedupes
	// to 17 dates.
	assert.Len(t, cal.Holidays(2025), 17)
}

func TestCalendar_EasterRelative2026(t *testing.T) {
	// Easter 2026 falls on April 5.
	cal := payroll.NewCalendar()

	assert.True(t, cal.IsHoliday(payroll.NewDate(2026, time.April, 2)), "Holy Thursday 2026")
	assert.True(t, cal.IsHoliday(payroll.NewDate(2026, time.April, 3)), "Good Friday 2026")
	assert.True(t, cal.IsHoliday(payroll.NewDate(2026, time.May, 18)), "Ascension 2026 moved to Monday")
}

func TestCalendar_IsHolidayIgnoresClockTime(t *testing.T) {
	cal := payroll.NewCalendar()

	at := time.Date(2025, time.July, 20, 23, 45, 0, 0, time.UTC)
	assert.True(t, cal.IsHoliday(at))
}

func TestCalendar_HolidaysSorted(t *testing.T) {
	cal := payroll.NewCalendar()

	days := cal.Holidays(2027)
	require.NotEmpty(t, days)
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Before(days[i]), "holidays must be ascending")
	}
}

func TestCalendar_ConcurrentFirstAccess(t *testing.T) {
	// GIVEN: A fresh calendar
	// WHEN: Many goroutines ask for the same uncached year at once
	// THEN: Every caller sees the same holiday count (population may race,
	//       but the computed set is identical)

	cal := payroll.NewCalendar()

	var wg sync.WaitGroup
	counts := make([]int, 16)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i] = len(cal.Holidays(2030))
		}(i)
	}
	wg.Wait()

	for _, n := range counts {
		assert.Equal(t, counts[0], n)
	}
}
