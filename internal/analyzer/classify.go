// Package analyzer runs the stat formulas in reverse: it simulates every
// canonical growth tier and places an observed value between two adjacent
// simulated outcomes.
package analyzer

import (
	"fmt"
	"slices"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/scenario"
)

// Direction is the order in which more investment moves the metric.
type Direction int

const (
	// Ascending: more investment yields a larger metric.
	Ascending Direction = iota + 1
	// Descending: more investment yields a smaller metric.
	Descending
)

// key maps a metric onto an ascending scale.
func (d Direction) key(v int) int {
	if d == Descending {
		return -v
	}
	return v
}

// Outcome is one simulated scenario.
type Outcome struct {
	Scenario scenario.Scenario

	// Index is the scenario's position in the table.
	Index  int
	Stat   int
	Metric int
}

// Kind is the classification of an observed value.
type Kind int

const (
	BelowAll Kind = iota + 1
	AtOrAboveMax
	Between
)

func (k Kind) String() string {
	switch k {
	case BelowAll:
		return "below_all"
	case AtOrAboveMax:
		return "at_or_above_max"
	case Between:
		return "between"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Classification places an observed value among sorted outcomes.
// For Between, Low and High index the adjacent outcomes bracketing it.
type Classification struct {
	Kind      Kind
	Low, High int
}

// MetricFunc returns the simulated stat and metric for one scenario.
type MetricFunc func(s scenario.Scenario) (stat, metric int)

// Simulate evaluates metric for every scenario and sorts the outcomes by
// metric in direction order. Equal metrics keep table order.
func Simulate(scenarios []scenario.Scenario, metric MetricFunc, dir Direction) []Outcome {
	out := make([]Outcome, len(scenarios))
	for i, s := range scenarios {
		stat, m := metric(s)
		out[i] = Outcome{Scenario: s, Index: i, Stat: stat, Metric: m}
	}
	slices.SortStableFunc(out, func(a, b Outcome) int {
		return dir.key(a.Metric) - dir.key(b.Metric)
	})
	return out
}

// Classify places observed among outcomes sorted by Simulate with the same
// direction. Below the first outcome is BelowAll, at or past the last is
// AtOrAboveMax, otherwise the value falls in exactly one half-open interval
// [outcomes[i], outcomes[i+1]). Finding no interval means the simulation was
// not monotonic and is reported as calcerr.ErrInconsistent.
func Classify(outcomes []Outcome, observed int, dir Direction) (Classification, error) {
	if len(outcomes) == 0 {
		return Classification{}, fmt.Errorf("classify %d: no outcomes: %w", observed, calcerr.ErrInconsistent)
	}

	obs := dir.key(observed)
	switch {
	case obs < dir.key(outcomes[0].Metric):
		return Classification{Kind: BelowAll}, nil
	case obs >= dir.key(outcomes[len(outcomes)-1].Metric):
		return Classification{Kind: AtOrAboveMax}, nil
	}

	for i := 0; i+1 < len(outcomes); i++ {
		low, high := dir.key(outcomes[i].Metric), dir.key(outcomes[i+1].Metric)
		if low <= obs && obs < high {
			return Classification{Kind: Between, Low: i, High: i + 1}, nil
		}
	}
	return Classification{}, fmt.Errorf("classify %d among %d outcomes: %w", observed, len(outcomes), calcerr.ErrInconsistent)
}
