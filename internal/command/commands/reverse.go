package commands

import "github.com/udisondev/growthcalc/internal/calc"

// Reverse handles /reverse: overview of the reverse commands.
type Reverse struct{ calc *calc.Calculator }

func NewReverse(c *calc.Calculator) *Reverse { return &Reverse{calc: c} }

func (c *Reverse) Names() []string   { return []string{"reverse", "反推"} }
func (c *Reverse) Topic() calc.Topic { return calc.TopicReverse }
func (c *Reverse) Handle(_ string) (string, error) {
	return c.calc.HelpText(calc.TopicReverse), nil
}

// ReverseDefense handles /reverse-defense: infer the opponent's defense
// investment from damage dealt.
type ReverseDefense struct{ calc *calc.Calculator }

func NewReverseDefense(c *calc.Calculator) *ReverseDefense { return &ReverseDefense{calc: c} }

func (c *ReverseDefense) Names() []string   { return []string{"reverse-defense", "反推防御"} }
func (c *ReverseDefense) Topic() calc.Topic { return calc.TopicReverseDefense }
func (c *ReverseDefense) Handle(params string) (string, error) {
	return c.calc.ReverseDefense(params)
}

// ReverseAttack handles /reverse-attack: infer the opponent's attack
// investment from damage taken.
type ReverseAttack struct{ calc *calc.Calculator }

func NewReverseAttack(c *calc.Calculator) *ReverseAttack { return &ReverseAttack{calc: c} }

func (c *ReverseAttack) Names() []string   { return []string{"reverse-attack", "反推攻击"} }
func (c *ReverseAttack) Topic() calc.Topic { return calc.TopicReverseAttack }
func (c *ReverseAttack) Handle(params string) (string, error) {
	return c.calc.ReverseAttack(params)
}

// VitalityReverse handles /vitality-reverse.
type VitalityReverse struct{ calc *calc.Calculator }

func NewVitalityReverse(c *calc.Calculator) *VitalityReverse { return &VitalityReverse{calc: c} }

func (c *VitalityReverse) Names() []string   { return []string{"vitality-reverse", "精力反推"} }
func (c *VitalityReverse) Topic() calc.Topic { return calc.TopicReverseVitality }
func (c *VitalityReverse) Handle(params string) (string, error) {
	return c.calc.ReverseVitality(params)
}
