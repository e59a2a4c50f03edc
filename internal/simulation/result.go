package simulation

import (
	"errors"
	"fmt"

	"planet-weather/internal/model"
)

var ErrDayNotFound = errors.New("day not found")

// Counts holds one counter per category; all four are always present.
type Counts struct {
	Drought   int
	Rain      int
	Optimal   int
	Undefined int
}

func (c Counts) Get(cat model.Category) int {
	switch cat {
	case model.Drought:
		return c.Drought
	case model.Rain:
		return c.Rain
	case model.Optimal:
		return c.Optimal
	case model.Undefined:
		return c.Undefined
	}
	return 0
}

func (c Counts) Total() int {
	return c.Drought + c.Rain + c.Optimal + c.Undefined
}

func (c *Counts) add(cat model.Category) {
	switch cat {
	case model.Drought:
		c.Drought++
	case model.Rain:
		c.Rain++
	case model.Optimal:
		c.Optimal++
	default:
		c.Undefined++
	}
}

// Result is the immutable outcome of one run. Safe for concurrent readers.
type Result struct {
	days     []Day
	counts   Counts
	rainiest int // index into days, -1 when no day rained
}

func (r *Result) Counts() Counts { return r.counts }

func (r *Result) TotalDays() int { return len(r.days) }

// Days returns a copy of every day in index order.
func (r *Result) Days() []Day {
	out := make([]Day, len(r.days))
	copy(out, r.days)
	return out
}

// RainiestDay is the Rain day with the largest perimeter; the earliest wins ties.
func (r *Result) RainiestDay() (Day, bool) {
	if r.rainiest < 0 {
		return Day{}, false
	}
	return r.days[r.rainiest], true
}

// DayByIndex looks up a day by its 1-based index.
func (r *Result) DayByIndex(index int) (Day, error) {
	if index < 1 || index > len(r.days) {
		return Day{}, fmt.Errorf("%w: day %d outside [1, %d]", ErrDayNotFound, index, len(r.days))
	}
	return r.days[index-1], nil
}

// DaysByCategory returns the days of one category in index order.
func (r *Result) DaysByCategory(cat model.Category) ([]Day, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, cat)
	}
	out := make([]Day, 0, r.counts.Get(cat))
	for _, d := range r.days {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out, nil
}

// tally accumulates classified days in increasing index order.
type tally struct {
	days     []Day
	counts   Counts
	rainiest int
}

func newTally(capacity int) *tally {
	return &tally{days: make([]Day, 0, capacity), rainiest: -1}
}

func (t *tally) add(d Day) {
	t.counts.add(d.Category)
	if d.Category == model.Rain {
		if t.rainiest < 0 || d.Perimeter > t.days[t.rainiest].Perimeter {
			t.rainiest = len(t.days)
		}
	}
	t.days = append(t.days, d)
}

func (t *tally) result() *Result {
	return &Result{days: t.days, counts: t.counts, rainiest: t.rainiest}
}
