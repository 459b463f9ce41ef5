// Package scenario holds the fixed growth tiers every reverse analysis
// simulates.
package scenario

import "github.com/udisondev/growthcalc/internal/i18n"

// Scenario is one canonical combination of personality and investment.
// Label is an i18n message key.
type Scenario struct {
	Label       string
	Personality bool
	Investment  int
}

// Count is the number of canonical scenarios.
const Count = 10

var table = [Count]Scenario{
	{Label: i18n.LabelNone, Personality: false, Investment: 0},
	{Label: i18n.LabelPlain7, Personality: false, Investment: 42},
	{Label: i18n.LabelPlain8, Personality: false, Investment: 48},
	{Label: i18n.LabelPlain9, Personality: false, Investment: 54},
	{Label: i18n.LabelPlainFull, Personality: false, Investment: 60},
	{Label: i18n.LabelPersonality, Personality: true, Investment: 0},
	{Label: i18n.LabelPersonality7, Personality: true, Investment: 42},
	{Label: i18n.LabelPersonality8, Personality: true, Investment: 48},
	{Label: i18n.LabelPersonality9, Personality: true, Investment: 54},
	{Label: i18n.LabelPersonalityFl, Personality: true, Investment: 60},
}

// Table returns a copy of the scenarios in display order: the no-personality
// tier by ascending investment, then the personality tier.
func Table() []Scenario {
	out := make([]Scenario, Count)
	copy(out, table[:])
	return out
}
