/*
merge.go - Reconciling new shifts against already-recorded ones

PURPOSE:
  When previewing or saving new shifts, shifts already recorded in the
  same week must consume their ordinary-hour share first, in their true
  chronological position. Otherwise a new Saturday shift would be
  classified as if the week were empty.

ALGORITHM:
  1. Expand every input that actually generates worked hours
     (non-additional shift, normal novelty) into per-hour events.
  2. Sort events by instant ascending.
  3. Fold them once through one shared WeekTracker, accumulating hour
     buckets and pay per originating input.
  4. Emit one ShiftCalculation per input; flat-novelty inputs get their
     multiplier breakdown, inputs without events get zeros.

  Existing entries are recomputed only for their tracker side effects;
  callers discard those results and keep the new suffix. Note the
  recomputation runs under today's premium table, which may differ from
  the table in force when the existing entries were first persisted; the
  tracker itself depends only on hour counts, so overtime attribution
  for the new entries is unaffected.
*/
package payroll

import (
	"sort"
	"time"
)

// MergeInput is one shift record fed into the merge calculation.
// Existing marks records already persisted; they participate in weekly
// accounting but their recomputed values are discarded by callers.
type MergeInput struct {
	Date     time.Time
	Shift    ShiftType
	Novelty  NoveltyType
	Existing bool
}

type hourEvent struct {
	at    time.Time
	input int
	class HourClass
}

// CalculateMerged replays existing and new shifts through one shared
// weekly tracker and returns one calculation per input, in input order.
func (c *Calculator) CalculateMerged(inputs []MergeInput) []ShiftCalculation {
	var events []hourEvent
	for i, in := range inputs {
		if in.Novelty != NoveltyNormal || in.Shift == ShiftAdditional {
			continue
		}
		start, end := shiftWindow(in.Date, in.Shift)
		for t := start; t.Before(end); t = t.Add(time.Hour) {
			events = append(events, hourEvent{at: t, input: i, class: c.classifier.Classify(t)})
		}
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].at.Before(events[b].at)
	})

	tracker := NewWeekTracker(c.weeklyLimit)
	accums := make(map[int]*payAccum)
	for _, e := range events {
		overtime := tracker.Consume(e.at)
		acc, ok := accums[e.input]
		if !ok {
			acc = &payAccum{}
			accums[e.input] = acc
		}
		acc.add(e.at, e.class, overtime, 1, c.hourlyRate)
	}

	out := make([]ShiftCalculation, 0, len(inputs))
	for i, in := range inputs {
		out = append(out, ShiftCalculation{
			Date:      in.Date,
			Shift:     in.Shift,
			Novelty:   in.Novelty,
			Breakdown: c.mergedBreakdown(in, accums[i]),
		})
	}
	return out
}

func (c *Calculator) mergedBreakdown(in MergeInput, acc *payAccum) Breakdown {
	if in.Novelty != NoveltyNormal {
		return flatWork{multiplier: in.Novelty.PayMultiplier()}.compute(c, nil)
	}
	if acc == nil {
		acc = &payAccum{}
	}
	b := acc.breakdown()
	b.HoursTotal = 8
	return b
}
