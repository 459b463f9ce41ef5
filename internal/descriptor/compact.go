package descriptor

import (
	"strconv"
	"strings"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/i18n"
)

// ParseCompact parses the compact dialect: base digits followed by at most one
// no-personality flag and at most one investment flag, the latter optionally
// followed by investment points.
//
// Defaults are the reverse of the verbose dialect: personality is on unless
// flagged off, and investment is full unless the investment flag is given.
// A bare investment flag means no investment.
func (p Parser) ParseCompact(text string) (Descriptor, error) {
	digits := leadingDigits.FindString(text)
	if digits == "" {
		return Descriptor{}, calcerr.Formatf(i18n.MsgQuickBaseRequired, text)
	}
	base, err := strconv.Atoi(digits)
	if err != nil {
		return Descriptor{}, calcerr.Validationf(i18n.MsgNumberOutOfRange, digits)
	}

	noPers, inv := p.lex.NoPersonalityFlag, p.lex.InvestmentFlag
	suffix := text[len(digits):]
	for _, flag := range []byte{noPers, inv} {
		if strings.Count(suffix, string(flag)) > 1 {
			return Descriptor{}, calcerr.Formatf(i18n.MsgQuickRepeatedFlag, text, string(flag))
		}
	}

	d := Descriptor{Base: base, Personality: true, Investment: MaxInvestment}
	for i := 0; i < len(suffix); {
		switch suffix[i] {
		case noPers:
			d.Personality = false
			i++
		case inv:
			j := i + 1
			for j < len(suffix) && suffix[j] >= '0' && suffix[j] <= '9' {
				j++
			}
			if j == i+1 {
				d.Investment = 0
			} else {
				points, err := strconv.Atoi(suffix[i+1 : j])
				if err != nil || !IsPoints(points) {
					return Descriptor{}, calcerr.Validationf(i18n.MsgQuickPointsInvalid, suffix[i+1:j], MinPoints, MaxPoints)
				}
				d.Investment = points * PointValue
			}
			i = j
		default:
			return Descriptor{}, calcerr.Formatf(i18n.MsgQuickUnknownSuffix, text, suffix[i:])
		}
	}

	return d, nil
}
