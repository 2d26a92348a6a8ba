/*
tracker.go - Weekly ordinary-hour accumulator

PURPOSE:
  Decides, hour by hour, whether the weekly ordinary limit (default 44h)
  has been consumed. Hours are keyed to the ISO week of their instant
  (weeks start Monday). Once a week's ordinary allowance is exhausted,
  every further hour in that week is overtime.

STATE MODEL:
  The tracker is an explicit accumulator created per calculation batch
  and threaded through it in chronological order; it is never persisted
  and never shared across calls. This keeps every batch referentially
  transparent.
*/
package payroll

import "time"

// DefaultWeeklyOrdinaryLimit is the legal ordinary workweek in hours.
const DefaultWeeklyOrdinaryLimit = 44

// WeekTracker accumulates ordinary hours consumed per week across one
// calculation batch.
type WeekTracker struct {
	limit int
	used  map[string]int
}

// NewWeekTracker creates a tracker with the given weekly ordinary limit;
// non-positive limits fall back to the default 44.
func NewWeekTracker(limit int) *WeekTracker {
	if limit <= 0 {
		limit = DefaultWeeklyOrdinaryLimit
	}
	return &WeekTracker{limit: limit, used: make(map[string]int)}
}

// Consume records one worked hour at t and reports whether it falls
// beyond the week's ordinary limit. Ordinary hours increment the week's
// counter; overtime hours do not.
func (w *WeekTracker) Consume(t time.Time) (overtime bool) {
	key := weekStartKey(t)
	if w.used[key] >= w.limit {
		return true
	}
	w.used[key]++
	return false
}

// weekStartKey returns the Monday that starts t's week, as a date string.
func weekStartKey(t time.Time) string {
	d := midnight(t)
	back := (int(d.Weekday()) + 6) % 7
	return FormatDate(d.AddDate(0, 0, -back))
}
