package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/udisondev/growthcalc/internal/analyzer"
	"github.com/udisondev/growthcalc/internal/descriptor"
	"github.com/udisondev/growthcalc/internal/formula"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/query"
)

func defenseFixture(t *testing.T) (query.DamageQuery, analyzer.DamageAnalysis) {
	t.Helper()
	q := query.DamageQuery{
		Mode:         query.ModeQuick,
		Token:        "186xg8",
		Player:       descriptor.Descriptor{Base: 186, Investment: 48},
		OpponentBase: 80,
		Power:        75,
		Damage:       130,
	}
	a, err := analyzer.New(formula.New(formula.DefaultConstants())).
		ReverseDefense(q.Player, q.OpponentBase, q.Power, q.Damage)
	require.NoError(t, err)
	return q, a
}

func TestReverseDefense_English(t *testing.T) {
	q, a := defenseFixture(t)
	got := New(i18n.Printer(language.English)).ReverseDefense(q, a)

	want := strings.Join([]string{
		"--- Damage reverse (defense) analysis ---",
		"",
		"My attack: 291 (from 186xg8)",
		"Opponent defense base: 80",
		"Skill power: 75",
		"Actual damage dealt: 130",
		"",
		"--- Damage simulation (opponent defense, low to high) ---",
		"> No investment    (defense: 148) -> expected damage: 132",
		"> Personality only (defense: 168) -> expected damage: 116",
		"> No personality + 7 pts (defense: 172) -> expected damage: 114",
		"> No personality + 8 pts (defense: 175) -> expected damage: 112",
		"> No personality + 9 pts (defense: 178) -> expected damage: 110",
		"> No personality + full (10 pts) (defense: 181) -> expected damage: 108",
		"> Personality + 7 pts (defense: 196) -> expected damage: 100",
		"> Personality + 8 pts (defense: 200) -> expected damage: 98",
		"> Personality + 9 pts (defense: 204) -> expected damage: 96",
		"> Personality + full (10 pts) (defense: 208) -> expected damage: 94",
		"",
		"--- Conclusion ---",
		"You dealt 130 damage.",
		"The opponent's investment most likely lies between [No investment] and [Personality only].",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestReverseDefense_Chinese(t *testing.T) {
	q, a := defenseFixture(t)
	got := New(i18n.Printer(language.SimplifiedChinese)).ReverseDefense(q, a)

	assert.True(t, strings.HasPrefix(got, "--- 伤害反推(防御)分析 ---\n\n我方攻击: 291 (基于 186xg8)\n"))
	assert.Contains(t, got, "> 完全无养成"+strings.Repeat(" ", 11)+" (防御: 148) -> 预计伤害: 132\n")
	assert.Contains(t, got, "\n--- 结论 ---\n您造成的实际伤害为 130。\n")
	assert.True(t, strings.HasSuffix(got, "对方的养成情况最可能介于 [完全无养成] 和 [仅性格] 之间。"))
}

func TestReverseDefense_Boundaries(t *testing.T) {
	q, a := defenseFixture(t)
	r := New(i18n.Printer(language.English))

	a.Result = analyzer.Classification{Kind: analyzer.BelowAll}
	assert.True(t, strings.HasSuffix(r.ReverseDefense(q, a), i18n.MsgDefenseLow))

	a.Result = analyzer.Classification{Kind: analyzer.AtOrAboveMax}
	assert.True(t, strings.HasSuffix(r.ReverseDefense(q, a), i18n.MsgDefenseHigh))
}

func TestReverseAttack_ListsByOpponentAttack(t *testing.T) {
	q := query.DamageQuery{
		Token:        "100xg8",
		Player:       descriptor.Descriptor{Base: 100, Investment: 48},
		OpponentBase: 186,
		Power:        75,
		Damage:       100,
	}
	a, err := analyzer.New(formula.New(formula.DefaultConstants())).
		ReverseAttack(q.Player, q.OpponentBase, q.Power, q.Damage)
	require.NoError(t, err)

	got := New(i18n.Printer(language.English)).ReverseAttack(q, a)

	assert.Contains(t, got, "My defense: 197 (from 100xg8)\nOpponent attack base: 186\n")
	assert.Contains(t, got, "> No investment    (attack: 265) -> expected damage: 90\n")
	assert.Contains(t, got, "You took 100 damage.\n")
	assert.True(t, strings.HasSuffix(got,
		"between [No personality + 8 pts] and [No personality + 9 pts]."))
	assert.Less(t, strings.Index(got, "(attack: 265)"), strings.Index(got, "(attack: 348)"))
}

func TestReverseVitality(t *testing.T) {
	q := query.VitalityQuery{OpponentBase: 128, LostPercent: 20, Damage: 102}
	a, err := analyzer.New(formula.New(formula.DefaultConstants())).
		ReverseVitality(q.OpponentBase, q.LostPercent, q.Damage)
	require.NoError(t, err)

	got := New(i18n.Printer(language.English)).ReverseVitality(q, a)

	for _, line := range []string{
		"--- Vitality reverse analysis ---\n\n",
		"Opponent vitality base: 128\n",
		"Actual damage: 102\n\n==> Estimated total vitality: 510\n\n",
		"> No investment    -> simulated vitality: 338\n",
		"> Personality + full (10 pts) -> simulated vitality: 457\n\n--- Conclusion ---\n",
		"Your estimated total vitality is 510.\n",
	} {
		assert.Contains(t, got, line)
	}
	assert.True(t, strings.HasSuffix(got,
		"estimated vitality (510) is at or above the fully invested simulation (457)."))
}

func TestRenderer_Idempotent(t *testing.T) {
	q, a := defenseFixture(t)
	r := New(i18n.Printer(language.English))
	assert.Equal(t, r.ReverseDefense(q, a), r.ReverseDefense(q, a))
}

func TestByStat_DoesNotReorderInput(t *testing.T) {
	in := []analyzer.Outcome{{Index: 0, Stat: 3}, {Index: 1, Stat: 1}, {Index: 2, Stat: 1}}
	got := byStat(in)

	assert.Equal(t, []int{1, 2, 0}, []int{got[0].Index, got[1].Index, got[2].Index})
	assert.Equal(t, 0, in[0].Index)
}

func TestPlainResults(t *testing.T) {
	r := New(i18n.Printer(language.English))
	assert.Equal(t, "Final stat for '150': 225", r.Stat("150", 225))
	assert.Equal(t, "Final vitality for '150': 375", r.Vitality("150", 375))
	assert.Equal(t, "Attack 225, defense 100, power 75: final damage 151", r.Damage(225, 100, 75, 151))
}
