package analyzer

import (
	"math"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/descriptor"
	"github.com/udisondev/growthcalc/internal/formula"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/scenario"
)

// DamageAnalysis is the result of a damage-reverse run.
type DamageAnalysis struct {
	// OwnStat is the player's attack (defense-reverse) or defense
	// (attack-reverse) derived from the descriptor.
	OwnStat  int
	Observed int

	// Outcomes are sorted by metric in the variant's direction; Stat holds
	// the simulated opponent stat and Metric the simulated damage.
	Outcomes []Outcome
	Result   Classification
}

// VitalityAnalysis is the result of a vitality-reverse run.
type VitalityAnalysis struct {
	Estimated int

	// Outcomes are sorted by simulated vitality, ascending; Stat and Metric
	// both hold the simulated vitality.
	Outcomes []Outcome
	Result   Classification
}

// Analyzer runs the three reverse variants over the scenario table.
// It holds no mutable state.
type Analyzer struct {
	engine    formula.Engine
	scenarios []scenario.Scenario
}

// New returns an Analyzer using engine's constants.
func New(engine formula.Engine) *Analyzer {
	return &Analyzer{engine: engine, scenarios: scenario.Table()}
}

// ReverseDefense infers the opponent's defense tier from damage the player
// dealt. More defense investment lowers damage, so outcomes sort descending.
func (a *Analyzer) ReverseDefense(own descriptor.Descriptor, opponentBase, power, observed int) (DamageAnalysis, error) {
	attack := a.engine.Stat(own.Base, own.Personality, own.Investment)
	metric := func(s scenario.Scenario) (int, int) {
		defense := a.engine.Stat(opponentBase, s.Personality, s.Investment)
		return defense, formula.Damage(attack, defense, power)
	}
	return a.damage(attack, observed, metric, Descending)
}

// ReverseAttack infers the opponent's attack tier from damage the player
// took. More attack investment raises damage, so outcomes sort ascending.
func (a *Analyzer) ReverseAttack(own descriptor.Descriptor, opponentBase, power, observed int) (DamageAnalysis, error) {
	defense := a.engine.Stat(own.Base, own.Personality, own.Investment)
	metric := func(s scenario.Scenario) (int, int) {
		attack := a.engine.Stat(opponentBase, s.Personality, s.Investment)
		return attack, formula.Damage(attack, defense, power)
	}
	return a.damage(defense, observed, metric, Ascending)
}

func (a *Analyzer) damage(own, observed int, metric MetricFunc, dir Direction) (DamageAnalysis, error) {
	outcomes := Simulate(a.scenarios, metric, dir)
	result, err := Classify(outcomes, observed, dir)
	if err != nil {
		return DamageAnalysis{}, err
	}
	return DamageAnalysis{OwnStat: own, Observed: observed, Outcomes: outcomes, Result: result}, nil
}

// ReverseVitality infers the opponent's vitality tier from the damage dealt
// and the percent of vitality it removed.
func (a *Analyzer) ReverseVitality(opponentBase int, lostPercent float64, damage int) (VitalityAnalysis, error) {
	if lostPercent <= 0 {
		return VitalityAnalysis{}, calcerr.Validationf(i18n.MsgLostPercent)
	}
	estimated, err := EstimateVitality(damage, lostPercent)
	if err != nil {
		return VitalityAnalysis{}, err
	}

	metric := func(s scenario.Scenario) (int, int) {
		v := a.engine.Vitality(opponentBase, s.Personality, s.Investment)
		return v, v
	}
	outcomes := Simulate(a.scenarios, metric, Ascending)
	result, err := Classify(outcomes, estimated, Ascending)
	if err != nil {
		return VitalityAnalysis{}, err
	}
	return VitalityAnalysis{Estimated: estimated, Outcomes: outcomes, Result: result}, nil
}

// EstimateVitality returns the total vitality implied by damage removing
// lostPercent of it: ceil(damage / (lostPercent/100)). An estimate that does
// not fit an int is a ValidationError.
func EstimateVitality(damage int, lostPercent float64) (int, error) {
	estimate := math.Ceil(float64(damage) / (lostPercent / 100))
	if math.IsNaN(estimate) || math.IsInf(estimate, 0) || estimate >= math.MaxInt || estimate < 0 {
		return 0, calcerr.Validationf(i18n.MsgVitalityOutOfRange)
	}
	return int(estimate), nil
}
