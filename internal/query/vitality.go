package query

import (
	"strconv"
	"strings"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/i18n"
)

// ParseVitality parses vitality-reverse arguments.
//
// The lost-percent and damage keywords are read first, each consuming its
// first occurrence, and the first remaining digit run is the opponent base.
// If any of the three is still missing, the text must hold exactly three
// numbers in the order base, lost percent, damage.
func (p *Parser) ParseVitality(text string) (VitalityQuery, error) {
	text = strings.TrimSpace(text)

	q, ok, err := p.vitalityKeywords(text)
	if err != nil {
		return VitalityQuery{}, err
	}
	if !ok {
		if q, err = vitalityPositional(text); err != nil {
			return VitalityQuery{}, err
		}
	}

	if q.LostPercent <= 0 {
		return VitalityQuery{}, calcerr.Validationf(i18n.MsgLostPercent)
	}
	return q, nil
}

func (p *Parser) vitalityKeywords(text string) (VitalityQuery, bool, error) {
	var q VitalityQuery
	var haveLost, haveDamage, haveBase bool
	rest := text

	if m := p.lost.FindStringSubmatchIndex(rest); m != nil {
		pct, err := strconv.ParseFloat(rest[m[2]:m[3]], 64)
		if err != nil {
			return q, false, calcerr.Validationf(i18n.MsgNumberOutOfRange, rest[m[2]:m[3]])
		}
		q.LostPercent, haveLost = pct, true
		rest = blank(rest, m[0], m[1])
	}

	if m := p.damageTaken.FindStringSubmatchIndex(rest); m != nil {
		n, err := atoi(rest[m[2]:m[3]])
		if err != nil {
			return q, false, err
		}
		q.Damage, haveDamage = n, true
		rest = blank(rest, m[0], m[1])
	}

	if s := digitRun.FindString(rest); s != "" {
		n, err := atoi(s)
		if err != nil {
			return q, false, err
		}
		q.OpponentBase, haveBase = n, true
	}

	return q, haveLost && haveDamage && haveBase, nil
}

func vitalityPositional(text string) (VitalityQuery, error) {
	nums := numberRun.FindAllString(text, -1)
	if len(nums) != 3 {
		return VitalityQuery{}, calcerr.Missingf(i18n.MsgVitalityArgs)
	}

	base, err := wholeField(nums[0])
	if err != nil {
		return VitalityQuery{}, err
	}
	pct, err := strconv.ParseFloat(nums[1], 64)
	if err != nil {
		return VitalityQuery{}, calcerr.Validationf(i18n.MsgNumberOutOfRange, nums[1])
	}
	damage, err := wholeField(nums[2])
	if err != nil {
		return VitalityQuery{}, err
	}

	return VitalityQuery{OpponentBase: base, LostPercent: pct, Damage: damage}, nil
}
