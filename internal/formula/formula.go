// Package formula implements the stat, vitality and damage formulas.
//
// All functions are pure. Constants are carried by an explicit Engine value so
// the formulas can be exercised with alternate game parameters.
package formula

import "math"

// MaxDamage is returned by Damage when the defense is not positive.
const MaxDamage = 9999

// levelSpan is added to the level in the stat formula.
const levelSpan = 50

// Constants holds the fixed game parameters used by the formulas.
type Constants struct {
	Level                 int
	EffortBonus           int
	PersonalityMultiplier float64
}

// DefaultConstants returns level 60, effort bonus 50 and a 1.2 personality multiplier.
func DefaultConstants() Constants {
	return Constants{
		Level:                 60,
		EffortBonus:           50,
		PersonalityMultiplier: 1.2,
	}
}

// Engine evaluates the formulas with a fixed set of Constants.
type Engine struct {
	c Constants
}

// New returns an Engine using c.
func New(c Constants) Engine {
	return Engine{c: c}
}

// Constants returns the parameters the engine was built with.
func (e Engine) Constants() Constants {
	return e.c
}

// Stat derives an attack, defense or speed class stat.
//
//	coeff  = (base + investment/2) / 100
//	raw    = coeff × (level + 50) + 10
//	result = ⌈raw × multiplier + effort⌉
//
// Each product is converted explicitly so the compiler never fuses it into an
// FMA; rounding must be identical on every architecture because the result is ceiled.
func (e Engine) Stat(base int, personality bool, investment int) int {
	coeff := coefficient(base, investment)
	raw := float64(coeff*float64(e.c.Level+levelSpan)) + 10
	return e.finish(raw, personality)
}

// Vitality derives the health-pool stat. It is a separate formula, not a
// variant of Stat:
//
//	coeff  = (base + investment/2) / 100
//	raw    = (2 × coeff + 1) × level + 50 × coeff + 10
//	result = ⌈raw × multiplier + effort⌉
func (e Engine) Vitality(base int, personality bool, investment int) int {
	coeff := coefficient(base, investment)
	grown := float64((float64(2*coeff) + 1) * float64(e.c.Level))
	raw := grown + float64(50*coeff) + 10
	return e.finish(raw, personality)
}

func (e Engine) finish(raw float64, personality bool) int {
	multiplier := 1.0
	if personality {
		multiplier = e.c.PersonalityMultiplier
	}
	scaled := float64(raw*multiplier) + float64(e.c.EffortBonus)
	return int(math.Ceil(scaled))
}

func coefficient(base, investment int) float64 {
	return (float64(base) + float64(investment)/2) / 100
}

// Damage computes ⌊(attack / defense) × 0.9 × power⌋.
// A non-positive defense yields MaxDamage.
func Damage(attack, defense, power int) int {
	if defense <= 0 {
		return MaxDamage
	}
	ratio := float64(attack) / float64(defense)
	damage := float64(ratio*0.9) * float64(power)
	return int(math.Floor(damage))
}
