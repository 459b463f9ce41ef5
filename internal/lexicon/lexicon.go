// Package lexicon holds the keyword tables recognized in command text.
//
// Every concept answers to a list of aliases so English and Chinese phrasings
// can be mixed freely in one message.
package lexicon

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Lexicon lists the aliases for each keyword concept.
type Lexicon struct {
	OwnSide      []string
	OpponentSide []string
	Personality  []string
	Investment   []string
	Power        []string
	Damage       []string
	Lost         []string
	Help         []string

	// Compact dialect flag characters.
	NoPersonalityFlag byte
	InvestmentFlag    byte
}

// Default returns the English keywords plus their Chinese aliases.
func Default() Lexicon {
	return Lexicon{
		OwnSide:           []string{"my-side", "我方"},
		OpponentSide:      []string{"opponent-side", "对方"},
		Personality:       []string{"personality", "性格"},
		Investment:        []string{"investment", "个体"},
		Power:             []string{"power", "威力"},
		Damage:            []string{"damage", "伤害"},
		Lost:              []string{"lost", "掉血"},
		Help:              []string{"help", "帮助"},
		NoPersonalityFlag: 'x',
		InvestmentFlag:    'g',
	}
}

// Validate checks that every concept has at least one alias and that the
// compact flags are distinct non-digit characters.
func (l Lexicon) Validate() error {
	groups := []struct {
		name    string
		aliases []string
	}{
		{"own_side", l.OwnSide},
		{"opponent_side", l.OpponentSide},
		{"personality", l.Personality},
		{"investment", l.Investment},
		{"power", l.Power},
		{"damage", l.Damage},
		{"lost", l.Lost},
		{"help", l.Help},
	}

	var errs []error
	for _, g := range groups {
		if len(g.aliases) == 0 {
			errs = append(errs, fmt.Errorf("lexicon %s: at least one alias required", g.name))
			continue
		}
		for _, a := range g.aliases {
			if strings.TrimSpace(a) == "" {
				errs = append(errs, fmt.Errorf("lexicon %s: blank alias", g.name))
			}
			if strings.ContainsAny(a, "0123456789") {
				errs = append(errs, fmt.Errorf("lexicon %s: alias %q must not contain digits", g.name, a))
			}
		}
	}

	if l.NoPersonalityFlag == l.InvestmentFlag {
		errs = append(errs, fmt.Errorf("lexicon: compact flags must differ, both are %q", l.InvestmentFlag))
	}
	for _, f := range []byte{l.NoPersonalityFlag, l.InvestmentFlag} {
		if f == 0 || (f >= '0' && f <= '9') || f == ' ' {
			errs = append(errs, fmt.Errorf("lexicon: invalid compact flag %q", f))
		}
	}

	return errors.Join(errs...)
}

// Markers returns every alias whose presence switches a reverse command into
// smart form, plus the literal "+".
func (l Lexicon) Markers() []string {
	out := []string{"+"}
	for _, group := range [][]string{l.OwnSide, l.OpponentSide, l.Power, l.Damage, l.Personality, l.Investment} {
		out = append(out, group...)
	}
	return out
}

// IsHelp reports whether text is exactly one help alias, ignoring case and
// surrounding whitespace.
func (l Lexicon) IsHelp(text string) bool {
	text = strings.TrimSpace(text)
	for _, h := range l.Help {
		if strings.EqualFold(text, h) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether text contains any of the aliases.
func ContainsAny(text string, aliases []string) bool {
	for _, a := range aliases {
		if a != "" && strings.Contains(text, a) {
			return true
		}
	}
	return false
}

// RemoveAll deletes every occurrence of every alias from text.
func RemoveAll(text string, aliases []string) string {
	for _, a := range byLength(aliases) {
		text = strings.ReplaceAll(text, a, "")
	}
	return text
}

// Alternation returns a non-capturing regexp group matching any alias.
// Longer aliases come first so a shorter alias never wins on a shared prefix.
func Alternation(aliases []string) string {
	quoted := make([]string, 0, len(aliases))
	for _, a := range byLength(aliases) {
		quoted = append(quoted, regexp.QuoteMeta(a))
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// Canonical maps a matched alias back to the first alias of its group.
func Canonical(match string, aliases []string) (string, bool) {
	if slices.Contains(aliases, match) {
		return aliases[0], true
	}
	return "", false
}

func byLength(aliases []string) []string {
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a != "" {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int { return len(b) - len(a) })
	return out
}
