// Package report renders calculator results as reply text.
package report

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/message"

	"github.com/udisondev/growthcalc/internal/analyzer"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/query"
)

// Renderer formats results in one locale. Output depends only on the inputs.
type Renderer struct {
	p *message.Printer
}

// New returns a Renderer printing through p.
func New(p *message.Printer) *Renderer {
	return &Renderer{p: p}
}

// Printer returns the printer used for rendering.
func (r *Renderer) Printer() *message.Printer {
	return r.p
}

// Stat renders a final stat computed from token.
func (r *Renderer) Stat(token string, value int) string {
	return r.p.Sprintf(i18n.MsgStatResult, token, value)
}

// Vitality renders a final vitality computed from token.
func (r *Renderer) Vitality(token string, value int) string {
	return r.p.Sprintf(i18n.MsgVitalityResult, token, value)
}

// Damage renders the damage of one hit.
func (r *Renderer) Damage(attack, defense, power, damage int) string {
	return r.p.Sprintf(i18n.MsgDamageResult, attack, defense, power, damage)
}

// Help renders a help text key.
func (r *Renderer) Help(key string) string {
	return r.p.Sprintf(key)
}

// damageLayout is the wording that differs between the two damage reports.
type damageLayout struct {
	title, own, oppBase, damage, simHead, row, summary, low, high string
}

var (
	defenseLayout = damageLayout{
		title:   i18n.MsgDefenseTitle,
		own:     i18n.MsgDefenseOwn,
		oppBase: i18n.MsgDefenseOppBase,
		damage:  i18n.MsgDefenseDamage,
		simHead: i18n.MsgDefenseSimHead,
		row:     i18n.MsgDefenseRow,
		summary: i18n.MsgDefenseSummary,
		low:     i18n.MsgDefenseLow,
		high:    i18n.MsgDefenseHigh,
	}
	attackLayout = damageLayout{
		title:   i18n.MsgAttackTitle,
		own:     i18n.MsgAttackOwn,
		oppBase: i18n.MsgAttackOppBase,
		damage:  i18n.MsgAttackDamage,
		simHead: i18n.MsgAttackSimHead,
		row:     i18n.MsgAttackRow,
		summary: i18n.MsgAttackSummary,
		low:     i18n.MsgAttackLow,
		high:    i18n.MsgAttackHigh,
	}
)

// ReverseDefense renders a defense-reverse analysis.
func (r *Renderer) ReverseDefense(q query.DamageQuery, a analyzer.DamageAnalysis) string {
	return r.damageReport(defenseLayout, q, a)
}

// ReverseAttack renders an attack-reverse analysis.
func (r *Renderer) ReverseAttack(q query.DamageQuery, a analyzer.DamageAnalysis) string {
	return r.damageReport(attackLayout, q, a)
}

// damageReport lists the simulation by opponent stat, low to high, then the
// conclusion drawn from the metric-sorted classification.
func (r *Renderer) damageReport(l damageLayout, q query.DamageQuery, a analyzer.DamageAnalysis) string {
	var b strings.Builder
	r.line(&b, l.title)
	b.WriteString("\n")
	r.line(&b, l.own, a.OwnStat, q.Token)
	r.line(&b, l.oppBase, q.OpponentBase)
	r.line(&b, i18n.MsgSkillPower, q.Power)
	r.line(&b, l.damage, a.Observed)
	b.WriteString("\n")

	r.line(&b, l.simHead)
	for _, o := range byStat(a.Outcomes) {
		r.line(&b, l.row, r.label(o), o.Stat, o.Metric)
	}

	b.WriteString("\n")
	r.line(&b, i18n.MsgConclusion)
	r.line(&b, l.summary, a.Observed)
	switch a.Result.Kind {
	case analyzer.BelowAll:
		b.WriteString(r.p.Sprintf(l.low))
	case analyzer.AtOrAboveMax:
		b.WriteString(r.p.Sprintf(l.high))
	default:
		b.WriteString(r.p.Sprintf(i18n.MsgBetween,
			r.label(a.Outcomes[a.Result.Low]), r.label(a.Outcomes[a.Result.High])))
	}
	return b.String()
}

// ReverseVitality renders a vitality-reverse analysis.
func (r *Renderer) ReverseVitality(q query.VitalityQuery, a analyzer.VitalityAnalysis) string {
	var b strings.Builder
	r.line(&b, i18n.MsgVitalityTitle)
	b.WriteString("\n")
	r.line(&b, i18n.MsgVitalityOppBase, q.OpponentBase)
	r.line(&b, i18n.MsgVitalityLost, q.LostPercent)
	r.line(&b, i18n.MsgVitalityDamage, q.Damage)
	b.WriteString("\n")
	r.line(&b, i18n.MsgVitalityEstimate, a.Estimated)
	b.WriteString("\n")

	r.line(&b, i18n.MsgVitalitySimHead)
	for _, o := range a.Outcomes {
		r.line(&b, i18n.MsgVitalityRow, r.label(o), o.Metric)
	}

	b.WriteString("\n")
	r.line(&b, i18n.MsgConclusion)
	r.line(&b, i18n.MsgVitalitySummary, a.Estimated)
	switch a.Result.Kind {
	case analyzer.BelowAll:
		b.WriteString(r.p.Sprintf(i18n.MsgVitalityLow, a.Estimated, a.Outcomes[0].Metric))
	case analyzer.AtOrAboveMax:
		b.WriteString(r.p.Sprintf(i18n.MsgVitalityHigh, a.Estimated, a.Outcomes[len(a.Outcomes)-1].Metric))
	default:
		b.WriteString(r.p.Sprintf(i18n.MsgVitalityBetween,
			r.label(a.Outcomes[a.Result.Low]), r.label(a.Outcomes[a.Result.High])))
	}
	return b.String()
}

func (r *Renderer) line(b *strings.Builder, key string, args ...any) {
	r.p.Fprintf(b, key, args...)
	b.WriteString("\n")
}

func (r *Renderer) label(o analyzer.Outcome) string {
	return r.p.Sprintf(o.Scenario.Label)
}

func byStat(outcomes []analyzer.Outcome) []analyzer.Outcome {
	out := slices.Clone(outcomes)
	slices.SortFunc(out, func(a, b analyzer.Outcome) int {
		return cmp.Or(cmp.Compare(a.Stat, b.Stat), cmp.Compare(a.Index, b.Index))
	})
	return out
}
