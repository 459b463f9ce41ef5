package lexicon

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Lexicon)
	}{
		{"empty group", func(l *Lexicon) { l.Power = nil }},
		{"blank alias", func(l *Lexicon) { l.Damage = []string{"damage", " "} }},
		{"digit alias", func(l *Lexicon) { l.Lost = []string{"lost1"} }},
		{"same flags", func(l *Lexicon) { l.InvestmentFlag = 'x' }},
		{"digit flag", func(l *Lexicon) { l.NoPersonalityFlag = '7' }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(&l)
			assert.Error(t, l.Validate())
		})
	}
}

func TestAlternation_LongestFirst(t *testing.T) {
	re := regexp.MustCompile("^" + Alternation([]string{"dmg", "dmg+", "a.b"}))

	assert.Equal(t, "dmg+", re.FindString("dmg+5"))
	assert.Equal(t, "dmg", re.FindString("dmg5"))
	assert.Equal(t, "", re.FindString("axb"), "aliases are quoted")
}

func TestRemoveAll(t *testing.T) {
	got := RemoveAll("我方186 my-side my-side", []string{"my-side", "我方"})
	assert.Equal(t, "186  ", got)
}

func TestIsHelp(t *testing.T) {
	l := Default()
	assert.True(t, l.IsHelp(" HELP "))
	assert.True(t, l.IsHelp("帮助"))
	assert.False(t, l.IsHelp("help me"))
	assert.False(t, l.IsHelp(""))
}

func TestCanonical(t *testing.T) {
	l := Default()
	got, ok := Canonical("威力", l.Power)
	assert.True(t, ok)
	assert.Equal(t, "power", got)

	_, ok = Canonical("damage", l.Power)
	assert.False(t, ok)
}

func TestMarkers(t *testing.T) {
	l := Default()
	m := l.Markers()
	assert.Contains(t, m, "+")
	assert.Contains(t, m, "性格")
	assert.NotContains(t, m, "lost", "lost only matters to the vitality command")
}
