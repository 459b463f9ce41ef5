package descriptor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/lexicon"
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// ParseVerbose parses the verbose dialect.
//
// Side markers are stripped first; the rest must start with the base value.
// Any personality alias sets the personality flag. Investment is read from an
// investment alias followed by digits (points 7-10 or a canonical total); a
// bare investment alias means full investment, and no alias means none.
func (p Parser) ParseVerbose(text string) (Descriptor, error) {
	clean := lexicon.RemoveAll(text, p.lex.OwnSide)
	clean = lexicon.RemoveAll(clean, p.lex.OpponentSide)
	clean = strings.TrimSpace(clean)

	digits := leadingDigits.FindString(clean)
	if digits == "" {
		return Descriptor{}, calcerr.Formatf(i18n.MsgBaseRequired, strings.TrimSpace(text))
	}
	base, err := strconv.Atoi(digits)
	if err != nil {
		return Descriptor{}, calcerr.Validationf(i18n.MsgNumberOutOfRange, digits)
	}

	investment, err := p.verboseInvestment(clean)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Base:        base,
		Personality: lexicon.ContainsAny(clean, p.lex.Personality),
		Investment:  investment,
	}, nil
}

func (p Parser) verboseInvestment(clean string) (int, error) {
	if m := p.investment.FindStringSubmatch(clean); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || !(IsPoints(n) || IsTotal(n)) {
			return 0, calcerr.Validationf(i18n.MsgInvestmentInvalid, m[1], MinPoints, MaxPoints, totalsList())
		}
		if IsPoints(n) {
			return n * PointValue, nil
		}
		return n, nil
	}
	if lexicon.ContainsAny(clean, p.lex.Investment) {
		return MaxInvestment, nil
	}
	return 0, nil
}

func totalsList() string {
	totals := Totals()[1:]
	parts := make([]string, len(totals))
	for i, t := range totals {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ", ")
}
