/*
calendar.go - Colombian public-holiday calendar

PURPOSE:
  Computes the public-holiday date set for a given year and answers
  isHoliday lookups. Colombia has three kinds of holidays:

  1. Fixed:      Always on the same date (Jan 1, May 1, Jul 20, Aug 7,
                 Dec 8, Dec 25).
  2. Emiliani:   Nominal dates moved to the following Monday unless they
                 already fall on one (Ley Emiliani).
  3. Easter:     Holy Thursday and Good Friday relative to Easter Sunday
                 (kept in place), plus Ascension, Corpus Christi and
                 Sacred Heart (moved to Monday).

CACHING:
  Year sets are memoized inside the Calendar value, not in a package
  global. The cache is guarded by an RWMutex so concurrent callers may
  race on first-time population of the same year; the computed set is
  identical regardless of who wins.

SEE ALSO:
  - classify.go: Uses IsHoliday for Sunday-or-holiday classification
*/
package payroll

import (
	"sort"
	"sync"
	"time"
)

// Calendar memoizes Colombia's public-holiday sets per year.
type Calendar struct {
	mu    sync.RWMutex
	years map[int]map[string]struct{}
}

// NewCalendar creates an empty calendar; years are computed on demand.
func NewCalendar() *Calendar {
	return &Calendar{years: make(map[int]map[string]struct{})}
}

// IsHoliday reports whether the instant's calendar day is a public
// holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.yearSet(t.Year())[FormatDate(t)]
	return ok
}

// Holidays returns the year's holidays in ascending date order.
func (c *Calendar) Holidays(year int) []time.Time {
	set := c.yearSet(year)
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		d, err := ParseDate(k)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func (c *Calendar) yearSet(year int) map[string]struct{} {
	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return set
	}

	set = buildYear(year)

	c.mu.Lock()
	// Another caller may have populated the year meanwhile; both computed
	// the same set, so last write wins.
	c.years[year] = set
	c.mu.Unlock()
	return set
}

// =============================================================================
// HOLIDAY CONSTRUCTION
// =============================================================================

func buildYear(year int) map[string]struct{} {
	set := make(map[string]struct{})
	add := func(t time.Time) { set[FormatDate(t)] = struct{}{} }

	fixed := []time.Time{
		NewDate(year, time.January, 1),
		NewDate(year, time.May, 1),
		NewDate(year, time.July, 20),
		NewDate(year, time.August, 7),
		NewDate(year, time.December, 8),
		NewDate(year, time.December, 25),
	}
	for _, d := range fixed {
		add(d)
	}

	emiliani := []time.Time{
		NewDate(year, time.January, 6),
		NewDate(year, time.March, 19),
		NewDate(year, time.June, 29),
		NewDate(year, time.August, 15),
		NewDate(year, time.October, 12),
		NewDate(year, time.November, 1),
		NewDate(year, time.November, 11),
	}
	for _, d := range emiliani {
		add(moveToMonday(d))
	}

	easter := easterSunday(year)
	add(easter.AddDate(0, 0, -3)) // Holy Thursday, never moved
	add(easter.AddDate(0, 0, -2)) // Good Friday, never moved
	add(moveToMonday(easter.AddDate(0, 0, 43))) // Ascension
	add(moveToMonday(easter.AddDate(0, 0, 64))) // Corpus Christi
	add(moveToMonday(easter.AddDate(0, 0, 71))) // Sacred Heart

	return set
}

// moveToMonday applies the Ley Emiliani rule: a holiday already on Monday
// stays; otherwise it moves to the following Monday. With Sunday=0 the
// delta formula only yields 0 for Monday, which the early return handles.
func moveToMonday(t time.Time) time.Time {
	if t.Weekday() == time.Monday {
		return t
	}
	delta := (8 - int(t.Weekday())) % 7
	return t.AddDate(0, 0, delta)
}

// easterSunday computes Easter via the anonymous Gregorian computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return NewDate(year, time.Month(month), day)
}
