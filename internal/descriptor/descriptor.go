// Package descriptor parses textual stat descriptions into a normalized
// Descriptor. Two grammars exist and are never mixed within one token:
//
//   - verbose: "186+personality+investment8", used by smart-form input and the
//     plain stat/vitality calculators;
//   - compact: "186xg8", used only by the quick form of the reverse commands.
package descriptor

import (
	"fmt"
	"regexp"

	"github.com/udisondev/growthcalc/internal/lexicon"
)

// Investment grammar constants. Investment may be entered either as points
// (MinPoints..MaxPoints) or as a canonical total (points × PointValue).
const (
	MinPoints     = 7
	MaxPoints     = 10
	PointValue    = 6
	MaxInvestment = MaxPoints * PointValue
)

// Descriptor is one side's stat growth: base value, personality flag and the
// total investment. Investment is always 0 or a canonical total.
type Descriptor struct {
	Base        int
	Personality bool
	Investment  int
}

func (d Descriptor) String() string {
	return fmt.Sprintf("base=%d personality=%t investment=%d", d.Base, d.Personality, d.Investment)
}

// IsPoints reports whether n is a per-point investment value.
func IsPoints(n int) bool {
	return n >= MinPoints && n <= MaxPoints
}

// IsTotal reports whether n is a canonical investment total.
func IsTotal(n int) bool {
	return n%PointValue == 0 && IsPoints(n/PointValue)
}

// Totals returns the canonical investment totals in ascending order, 0 first.
func Totals() []int {
	out := []int{0}
	for p := MinPoints; p <= MaxPoints; p++ {
		out = append(out, p*PointValue)
	}
	return out
}

// Parser parses both dialects with one keyword table.
type Parser struct {
	lex        lexicon.Lexicon
	investment *regexp.Regexp
}

// NewParser returns a Parser using lex.
func NewParser(lex lexicon.Lexicon) Parser {
	return Parser{
		lex:        lex,
		investment: regexp.MustCompile(lexicon.Alternation(lex.Investment) + `(\d+)`),
	}
}
