package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/lexicon"
)

func TestParseVerbose(t *testing.T) {
	p := NewParser(lexicon.Default())

	tests := []struct {
		input string
		want  Descriptor
	}{
		{"186", Descriptor{Base: 186}},
		{"186+investment8", Descriptor{Base: 186, Investment: 48}},
		{"186+investment48", Descriptor{Base: 186, Investment: 48}},
		{"186+investment54", Descriptor{Base: 186, Investment: 54}},
		{"186+investment", Descriptor{Base: 186, Investment: 60}},
		{"186+personality", Descriptor{Base: 186, Personality: true}},
		{"186+personality+investment10", Descriptor{Base: 186, Personality: true, Investment: 60}},
		{"  my-side 150+personality ", Descriptor{Base: 150, Personality: true}},
		{"opponent-side80", Descriptor{Base: 80}},
		{"我方186+性格+个体7", Descriptor{Base: 186, Personality: true, Investment: 42}},
		{"150+个体", Descriptor{Base: 150, Investment: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.ParseVerbose(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVerbose_Errors(t *testing.T) {
	p := NewParser(lexicon.Default())

	tests := []struct {
		input string
		want  error
	}{
		{"personality186", calcerr.ErrFormat},
		{"", calcerr.ErrFormat},
		{"my-side", calcerr.ErrFormat},
		{"186+investment11", calcerr.ErrValidation},
		{"186+investment6", calcerr.ErrValidation},
		{"186+investment50", calcerr.ErrValidation},
		{"99999999999999999999999", calcerr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := p.ParseVerbose(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseCompact(t *testing.T) {
	p := NewParser(lexicon.Default())

	tests := []struct {
		input string
		want  Descriptor
	}{
		{"186xg8", Descriptor{Base: 186, Personality: false, Investment: 48}},
		{"100g", Descriptor{Base: 100, Personality: true, Investment: 0}},
		{"100", Descriptor{Base: 100, Personality: true, Investment: 60}},
		{"100x", Descriptor{Base: 100, Personality: false, Investment: 60}},
		{"100g10x", Descriptor{Base: 100, Personality: false, Investment: 60}},
		{"80xg", Descriptor{Base: 80, Personality: false, Investment: 0}},
		{"80g7", Descriptor{Base: 80, Personality: true, Investment: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.ParseCompact(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCompact_Errors(t *testing.T) {
	p := NewParser(lexicon.Default())

	tests := []struct {
		input string
		want  error
	}{
		{"100gg", calcerr.ErrFormat},
		{"100xx", calcerr.ErrFormat},
		{"100xgx", calcerr.ErrFormat},
		{"x100", calcerr.ErrFormat},
		{"100gx8", calcerr.ErrFormat},
		{"100y", calcerr.ErrFormat},
		{"100G8", calcerr.ErrFormat},
		{"100g6", calcerr.ErrValidation},
		{"100g48", calcerr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := p.ParseCompact(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseCompact_CustomFlags(t *testing.T) {
	lex := lexicon.Default()
	lex.NoPersonalityFlag = 'n'
	lex.InvestmentFlag = 'i'
	p := NewParser(lex)

	got, err := p.ParseCompact("186ni9")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: 186, Investment: 54}, got)

	_, err = p.ParseCompact("186xg8")
	assert.ErrorIs(t, err, calcerr.ErrFormat)
}

func TestParseVerbose_CustomAliases(t *testing.T) {
	lex := lexicon.Default()
	lex.Investment = []string{"iv"}
	p := NewParser(lex)

	for range 2 {
		got, err := p.ParseVerbose("186+iv8")
		require.NoError(t, err)
		assert.Equal(t, Descriptor{Base: 186, Investment: 48}, got)
	}

	got, err := p.ParseVerbose("186+investment8")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: 186}, got, "default alias no longer recognized")
}

func TestInvestmentHelpers(t *testing.T) {
	assert.Equal(t, []int{0, 42, 48, 54, 60}, Totals())
	assert.True(t, IsPoints(7))
	assert.False(t, IsPoints(11))
	assert.True(t, IsTotal(54))
	assert.False(t, IsTotal(36))
	assert.False(t, IsTotal(0))
}
