/*
window.go - Shift window resolution

PURPOSE:
  Maps (date, shift type) to a concrete start/end instant range. The
  three fixed shifts have hard-coded windows; additional shifts carry an
  explicit HH:mm range supplied by the caller. A range whose end is at or
  before its start rolls over to the next day.

LENIENT PARSING:
  Clock strings that do not parse, or whose hour/minute fall outside
  0-23/0-59, yield no window rather than an error. The calculator turns
  a missing window into an all-zero breakdown (see spec'd error model:
  callers validate, the core degrades).
*/
package payroll

import (
	"strconv"
	"strings"
	"time"
)

// shiftWindow returns the fixed window for a non-additional shift on the
// given date. Night shifts end at 05:00 the next day.
func shiftWindow(date time.Time, shift ShiftType) (start, end time.Time) {
	d := midnight(date)
	at := func(hour int) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
	}

	switch shift {
	case ShiftMorning:
		return at(5), at(13)
	case ShiftAfternoon:
		return at(13), at(21)
	case ShiftNight:
		return at(21), at(5).AddDate(0, 0, 1)
	default:
		return d, d
	}
}

// additionalWindow resolves an explicit time range on the given date.
// ok is false when the range is absent or either clock string is
// unparseable or out of range.
func additionalWindow(date time.Time, r *TimeRange) (start, end time.Time, ok bool) {
	if r == nil {
		return time.Time{}, time.Time{}, false
	}

	startMin, ok := parseClockMinutes(r.Start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	endMin, ok := parseClockMinutes(r.End)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	d := midnight(date)
	start = d.Add(time.Duration(startMin) * time.Minute)
	end = d.Add(time.Duration(endMin) * time.Minute)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

// parseClockMinutes parses "HH:mm" into minutes since midnight.
func parseClockMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
