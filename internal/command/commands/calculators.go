package commands

import (
	"strings"

	"github.com/udisondev/growthcalc/internal/calc"
	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/command"
	"github.com/udisondev/growthcalc/internal/i18n"
)

// StatCalc handles /stat-calc: final value of a non-vitality stat.
type StatCalc struct{ calc *calc.Calculator }

func NewStatCalc(c *calc.Calculator) *StatCalc { return &StatCalc{calc: c} }

func (c *StatCalc) Names() []string   { return []string{"stat-calc", "能力值计算"} }
func (c *StatCalc) Topic() calc.Topic { return calc.TopicStat }
func (c *StatCalc) Handle(params string) (string, error) {
	return c.calc.ComputeStat(params)
}

// VitalityCalc handles /vitality-calc: final vitality.
type VitalityCalc struct{ calc *calc.Calculator }

func NewVitalityCalc(c *calc.Calculator) *VitalityCalc { return &VitalityCalc{calc: c} }

func (c *VitalityCalc) Names() []string   { return []string{"vitality-calc", "精力计算"} }
func (c *VitalityCalc) Topic() calc.Topic { return calc.TopicVitality }
func (c *VitalityCalc) Handle(params string) (string, error) {
	return c.calc.ComputeVitality(params)
}

// DamageCalc handles /damage-calc: damage of one hit.
type DamageCalc struct{ calc *calc.Calculator }

func NewDamageCalc(c *calc.Calculator) *DamageCalc { return &DamageCalc{calc: c} }

func (c *DamageCalc) Names() []string   { return []string{"damage-calc", "伤害计算"} }
func (c *DamageCalc) Topic() calc.Topic { return calc.TopicDamage }
func (c *DamageCalc) Handle(params string) (string, error) {
	return c.calc.DamageText(params)
}

// Group handles /calc: the calculators as subcommands, e.g.
// "/calc stat-calc 186+personality".
type Group struct {
	calc *calc.Calculator
	subs map[string]command.Command
}

// NewGroup creates the group over subs, keyed by every sub name.
func NewGroup(c *calc.Calculator, subs ...command.Command) *Group {
	g := &Group{calc: c, subs: make(map[string]command.Command, 2*len(subs))}
	for _, sub := range subs {
		for _, name := range sub.Names() {
			g.subs[strings.ToLower(name)] = sub
		}
	}
	return g
}

func (g *Group) Names() []string   { return []string{"calc", "计算器"} }
func (g *Group) Topic() calc.Topic { return calc.TopicGeneral }

func (g *Group) Handle(params string) (string, error) {
	parts := strings.Fields(params)
	if len(parts) == 0 || g.calc.Lexicon().IsHelp(params) {
		return g.calc.HelpText(calc.TopicGeneral), nil
	}

	sub, ok := g.subs[strings.ToLower(parts[0])]
	if !ok {
		return "", calcerr.Formatf(i18n.MsgUnknownSubcommand, parts[0])
	}
	return sub.Handle(strings.TrimSpace(strings.TrimPrefix(params, parts[0])))
}
