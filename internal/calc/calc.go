// Package calc is the calculator core exposed to hosts: every operation takes
// the raw argument text of a command and returns reply text or a typed error
// from calcerr. Operations are pure; a Calculator is safe for concurrent use.
package calc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udisondev/growthcalc/internal/analyzer"
	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/descriptor"
	"github.com/udisondev/growthcalc/internal/formula"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/lexicon"
	"github.com/udisondev/growthcalc/internal/query"
	"github.com/udisondev/growthcalc/internal/report"
)

// Calculator wires the parsers, the formula engine and the renderer.
type Calculator struct {
	engine   formula.Engine
	lex      lexicon.Lexicon
	desc     descriptor.Parser
	query    *query.Parser
	analyzer *analyzer.Analyzer
	render   *report.Renderer
}

// New returns a Calculator replying in the language of tag.
func New(engine formula.Engine, lex lexicon.Lexicon, tag language.Tag) *Calculator {
	return &Calculator{
		engine:   engine,
		lex:      lex,
		desc:     descriptor.NewParser(lex),
		query:    query.New(lex),
		analyzer: analyzer.New(engine),
		render:   report.New(i18n.Printer(tag)),
	}
}

// Printer returns the printer replies are rendered with, for hosts that
// localize errors themselves.
func (c *Calculator) Printer() *message.Printer {
	return c.render.Printer()
}

// Lexicon returns the keyword table the calculator parses with.
func (c *Calculator) Lexicon() lexicon.Lexicon {
	return c.lex
}

// wantsHelp reports whether text is empty or a lone help keyword.
func (c *Calculator) wantsHelp(text string) bool {
	return strings.TrimSpace(text) == "" || c.lex.IsHelp(text)
}

// ComputeStat derives a non-vitality stat from a verbose descriptor.
func (c *Calculator) ComputeStat(text string) (string, error) {
	if c.wantsHelp(text) {
		return c.HelpText(TopicStat), nil
	}
	text = strings.TrimSpace(text)
	d, err := c.desc.ParseVerbose(text)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}
	return c.render.Stat(text, c.engine.Stat(d.Base, d.Personality, d.Investment)), nil
}

// ComputeVitality derives vitality from a verbose descriptor.
func (c *Calculator) ComputeVitality(text string) (string, error) {
	if c.wantsHelp(text) {
		return c.HelpText(TopicVitality), nil
	}
	text = strings.TrimSpace(text)
	d, err := c.desc.ParseVerbose(text)
	if err != nil {
		return "", fmt.Errorf("vitality: %w", err)
	}
	return c.render.Vitality(text, c.engine.Vitality(d.Base, d.Personality, d.Investment)), nil
}

// ComputeDamage returns the damage of one hit.
func (c *Calculator) ComputeDamage(attack, defense, power int) int {
	return formula.Damage(attack, defense, power)
}

// DamageText parses "attack defense power" and renders ComputeDamage.
func (c *Calculator) DamageText(text string) (string, error) {
	if c.wantsHelp(text) {
		return c.HelpText(TopicDamage), nil
	}
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return "", calcerr.Formatf(i18n.MsgDamageArgs)
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return "", calcerr.Formatf(i18n.MsgDamageArgs)
		}
		nums[i] = n
	}
	attack, defense, power := nums[0], nums[1], nums[2]
	return c.render.Damage(attack, defense, power, c.ComputeDamage(attack, defense, power)), nil
}

// ReverseDefense infers the opponent's defense investment from damage dealt.
func (c *Calculator) ReverseDefense(text string) (string, error) {
	if c.wantsHelp(text) {
		return c.HelpText(TopicReverseDefense), nil
	}
	q, err := c.query.ParseDamage(text, i18n.ExampleDefense)
	if err != nil {
		return "", fmt.Errorf("reverse defense: %w", err)
	}
	a, err := c.analyzer.ReverseDefense(q.Player, q.OpponentBase, q.Power, q.Damage)
	if err != nil {
		return "", fmt.Errorf("reverse defense: %w", err)
	}
	return c.render.ReverseDefense(q, a), nil
}

// ReverseAttack infers the opponent's attack investment from damage taken.
func (c *Calculator) ReverseAttack(text string) (string, error) {
	if c.wantsHelp(text) {
		return c.HelpText(TopicReverseAttack), nil
	}
	q, err := c.query.ParseDamage(text, i18n.ExampleAttack)
	if err != nil {
		return "", fmt.Errorf("reverse attack: %w", err)
	}
	a, err := c.analyzer.ReverseAttack(q.Player, q.OpponentBase, q.Power, q.Damage)
	if err != nil {
		return "", fmt.Errorf("reverse attack: %w", err)
	}
	return c.render.ReverseAttack(q, a), nil
}

// ReverseVitality infers the opponent's vitality investment from damage dealt
// and the percent of vitality it removed.
func (c *Calculator) ReverseVitality(text string) (string, error) {
	if c.wantsHelp(text) {
		return c.HelpText(TopicReverseVitality), nil
	}
	q, err := c.query.ParseVitality(text)
	if err != nil {
		return "", fmt.Errorf("reverse vitality: %w", err)
	}
	a, err := c.analyzer.ReverseVitality(q.OpponentBase, q.LostPercent, q.Damage)
	if err != nil {
		return "", fmt.Errorf("reverse vitality: %w", err)
	}
	return c.render.ReverseVitality(q, a), nil
}
