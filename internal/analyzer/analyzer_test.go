package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/descriptor"
	"github.com/udisondev/growthcalc/internal/formula"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/scenario"
)

func outcomesOf(metrics ...int) []Outcome {
	out := make([]Outcome, len(metrics))
	for i, m := range metrics {
		out[i] = Outcome{Index: i, Metric: m}
	}
	return out
}

func TestClassify_Ascending(t *testing.T) {
	sorted := outcomesOf(10, 20, 20, 30)

	tests := []struct {
		observed int
		want     Classification
	}{
		{9, Classification{Kind: BelowAll}},
		{10, Classification{Kind: Between, Low: 0, High: 1}},
		{19, Classification{Kind: Between, Low: 0, High: 1}},
		{20, Classification{Kind: Between, Low: 2, High: 3}},
		{29, Classification{Kind: Between, Low: 2, High: 3}},
		{30, Classification{Kind: AtOrAboveMax}},
		{31, Classification{Kind: AtOrAboveMax}},
	}

	for _, tt := range tests {
		got, err := Classify(sorted, tt.observed, Ascending)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "observed %d", tt.observed)
	}
}

func TestClassify_Descending(t *testing.T) {
	sorted := outcomesOf(30, 20, 10)

	tests := []struct {
		observed int
		want     Classification
	}{
		{31, Classification{Kind: BelowAll}},
		{30, Classification{Kind: Between, Low: 0, High: 1}},
		{21, Classification{Kind: Between, Low: 0, High: 1}},
		{20, Classification{Kind: Between, Low: 1, High: 2}},
		{11, Classification{Kind: Between, Low: 1, High: 2}},
		{10, Classification{Kind: AtOrAboveMax}},
		{0, Classification{Kind: AtOrAboveMax}},
	}

	for _, tt := range tests {
		got, err := Classify(sorted, tt.observed, Descending)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "observed %d", tt.observed)
	}
}

func TestClassify_Inconsistent(t *testing.T) {
	for _, dir := range []Direction{Ascending, Descending} {
		_, err := Classify(nil, 5, dir)
		assert.ErrorIs(t, err, calcerr.ErrInconsistent)

		_, err = Classify([]Outcome{}, 5, dir)
		assert.ErrorIs(t, err, calcerr.ErrInconsistent)
	}
}

// Between the first and last metric some adjacent pair always crosses the
// observed value, even when the outcomes are not sorted.
func TestClassify_UnsortedStillBracketed(t *testing.T) {
	tests := []struct {
		metrics  []int
		observed int
		want     Classification
	}{
		{[]int{10, 30, 12, 40}, 15, Classification{Kind: Between, Low: 0, High: 1}},
		{[]int{10, 5, 8, 50}, 20, Classification{Kind: Between, Low: 2, High: 3}},
		{[]int{10, 40, 12, 50}, 20, Classification{Kind: Between, Low: 0, High: 1}},
	}
	for _, tt := range tests {
		got, err := Classify(outcomesOf(tt.metrics...), tt.observed, Ascending)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "metrics %v, observed %d", tt.metrics, tt.observed)
	}
}

func TestSimulate_StableOrder(t *testing.T) {
	table := scenario.Table()
	metric := func(s scenario.Scenario) (int, int) {
		if s.Personality {
			return 0, 1
		}
		return 0, 2
	}

	asc := Simulate(table, metric, Ascending)
	desc := Simulate(table, metric, Descending)

	for i := range 5 {
		assert.Equal(t, 5+i, asc[i].Index)
		assert.Equal(t, i, asc[5+i].Index)
		assert.Equal(t, i, desc[i].Index)
		assert.Equal(t, 5+i, desc[5+i].Index)
	}
}

func TestReverseDefense(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))
	own := descriptor.Descriptor{Base: 186, Personality: false, Investment: 48}

	got, err := a.ReverseDefense(own, 80, 75, 130)
	require.NoError(t, err)

	assert.Equal(t, 291, got.OwnStat)
	assert.Equal(t, 130, got.Observed)

	var metrics, indices []int
	for _, o := range got.Outcomes {
		metrics = append(metrics, o.Metric)
		indices = append(indices, o.Index)
	}
	assert.Equal(t, []int{132, 116, 114, 112, 110, 108, 100, 98, 96, 94}, metrics)
	assert.Equal(t, []int{0, 5, 1, 2, 3, 4, 6, 7, 8, 9}, indices)

	assert.Equal(t, Classification{Kind: Between, Low: 0, High: 1}, got.Result)
	assert.Equal(t, i18n.LabelNone, got.Outcomes[got.Result.Low].Scenario.Label)
	assert.Equal(t, i18n.LabelPersonality, got.Outcomes[got.Result.High].Scenario.Label)
}

func TestReverseDefense_Boundaries(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))
	own := descriptor.Descriptor{Base: 186, Investment: 48}

	tests := []struct {
		observed int
		want     Kind
	}{
		{133, BelowAll},
		{132, Between},
		{95, Between},
		{94, AtOrAboveMax},
		{1, AtOrAboveMax},
	}

	for _, tt := range tests {
		got, err := a.ReverseDefense(own, 80, 75, tt.observed)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Result.Kind, "observed %d", tt.observed)
	}
}

func TestReverseDefense_Monotonic(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))

	for _, base := range []int{40, 80, 120, 186} {
		got, err := a.ReverseDefense(descriptor.Descriptor{Base: 150, Personality: true, Investment: 60}, base, 90, 1)
		require.NoError(t, err)

		damage := make(map[int]int, len(got.Outcomes))
		defense := make(map[int]int, len(got.Outcomes))
		for _, o := range got.Outcomes {
			damage[o.Index], defense[o.Index] = o.Metric, o.Stat
		}
		for i := range scenario.Count {
			for j := range scenario.Count {
				if defense[i] < defense[j] {
					assert.GreaterOrEqual(t, damage[i], damage[j], "base %d: scenario %d vs %d", base, i, j)
				}
			}
		}
		for i := 1; i < 5; i++ {
			assert.LessOrEqual(t, damage[i], damage[i-1], "base %d: plain tier %d", base, i)
			assert.LessOrEqual(t, damage[5+i], damage[5+i-1], "base %d: personality tier %d", base, i)
		}
	}
}

func TestReverseAttack(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))
	own := descriptor.Descriptor{Base: 100, Personality: false, Investment: 48}

	got, err := a.ReverseAttack(own, 186, 75, 100)
	require.NoError(t, err)

	assert.Equal(t, 197, got.OwnStat)
	var stats, metrics []int
	for _, o := range got.Outcomes {
		stats = append(stats, o.Stat)
		metrics = append(metrics, o.Metric)
	}
	assert.Equal(t, []int{265, 288, 291, 295, 298, 308, 336, 340, 344, 348}, stats)
	assert.Equal(t, []int{90, 98, 99, 101, 102, 105, 115, 116, 117, 119}, metrics)

	assert.Equal(t, Classification{Kind: Between, Low: 2, High: 3}, got.Result)
	assert.Equal(t, i18n.LabelPlain8, got.Outcomes[2].Scenario.Label)
	assert.Equal(t, i18n.LabelPlain9, got.Outcomes[3].Scenario.Label)

	tests := []struct {
		observed int
		want     Kind
	}{
		{89, BelowAll},
		{90, Between},
		{118, Between},
		{119, AtOrAboveMax},
		{130, AtOrAboveMax},
	}
	for _, tt := range tests {
		got, err := a.ReverseAttack(own, 186, 75, tt.observed)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Result.Kind, "observed %d", tt.observed)
	}
}

func TestReverseVitality(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))

	got, err := a.ReverseVitality(128, 20, 102)
	require.NoError(t, err)
	assert.Equal(t, 510, got.Estimated)
	assert.Equal(t, AtOrAboveMax, got.Result.Kind)

	var metrics []int
	for _, o := range got.Outcomes {
		metrics = append(metrics, o.Metric)
	}
	assert.Equal(t, []int{338, 374, 379, 384, 389, 396, 438, 445, 451, 457}, metrics)

	got, err = a.ReverseVitality(128, 20, 70)
	require.NoError(t, err)
	assert.Equal(t, 350, got.Estimated)
	assert.Equal(t, Classification{Kind: Between, Low: 0, High: 1}, got.Result)

	got, err = a.ReverseVitality(128, 50, 100)
	require.NoError(t, err)
	assert.Equal(t, 200, got.Estimated)
	assert.Equal(t, BelowAll, got.Result.Kind)
}

func TestReverseVitality_SortsAcrossTiers(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))

	got, err := a.ReverseVitality(100, 100, 337)
	require.NoError(t, err)

	var indices []int
	for _, o := range got.Outcomes {
		indices = append(indices, o.Index)
	}
	// Personality alone outgrows 54 investment points but not 60.
	assert.Equal(t, []int{0, 1, 2, 3, 5, 4, 6, 7, 8, 9}, indices)
	assert.Equal(t, Classification{Kind: Between, Low: 3, High: 4}, got.Result)
}

func TestReverseVitality_RejectsNonPositivePercent(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))

	_, err := a.ReverseVitality(128, 0, 102)
	assert.ErrorIs(t, err, calcerr.ErrValidation)
}

func TestEstimateVitality(t *testing.T) {
	tests := []struct {
		damage int
		pct    float64
		want   int
	}{
		{102, 20, 510},
		{64, 12.5, 512},
		{102, 100, 102},
	}
	for _, tt := range tests {
		got, err := EstimateVitality(tt.damage, tt.pct)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "damage %d, lost %v%%", tt.damage, tt.pct)
	}
}

func TestEstimateVitality_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		damage int
		pct    float64
	}{
		{"huge damage", math.MaxInt, 20},
		{"tiny percent", 102, 1e-22},
		{"infinite", 102, math.SmallestNonzeroFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateVitality(tt.damage, tt.pct)
			assert.ErrorIs(t, err, calcerr.ErrValidation)
		})
	}
}

func TestReverseVitality_EstimateOverflow(t *testing.T) {
	a := New(formula.New(formula.DefaultConstants()))

	_, err := a.ReverseVitality(128, 20, math.MaxInt)
	assert.ErrorIs(t, err, calcerr.ErrValidation)
}
