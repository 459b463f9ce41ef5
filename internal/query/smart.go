package query

import (
	"strings"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/lexicon"
)

// Role is the side a stat block was attributed to.
type Role int

const (
	RoleNeutral Role = iota
	RolePlayer
	RoleOpponent
)

type statBlock struct {
	text  string
	start int
	role  Role
}

func (p *Parser) parseSmart(text, example string) (DamageQuery, error) {
	power, damage, rest, err := p.extractFixed(text)
	if err != nil {
		return DamageQuery{}, err
	}

	blocks := p.statBlocks(rest)
	if len(blocks) != 2 {
		return DamageQuery{}, calcerr.Ambiguousf(example, i18n.MsgBlockCount, len(blocks))
	}

	player, opponent, ok := resolve(blocks[0], blocks[1])
	if !ok {
		return DamageQuery{}, calcerr.Ambiguousf(example, i18n.MsgRoleConflict)
	}

	oppBase, err := atoi(digitRun.FindString(opponent.text))
	if err != nil {
		return DamageQuery{}, err
	}
	desc, err := p.desc.ParseVerbose(player.text)
	if err != nil {
		return DamageQuery{}, err
	}

	return DamageQuery{
		Mode:         ModeSmart,
		Token:        player.text,
		Player:       desc,
		OpponentBase: oppBase,
		Power:        power,
		Damage:       damage,
	}, nil
}

// extractFixed captures the keyword-tagged power and damage values and
// returns text with every captured span blanked.
//
// Bindings are tried in tiers: keyword and digits written together, then
// keyword followed by spaced digits, then spaced digits followed by keyword.
// A later tier only binds keywords no earlier tier bound, so in
// "80 power75" the 80 stays a stat value. Within a tier the last value wins.
func (p *Parser) extractFixed(text string) (power, damage int, rest string, err error) {
	var havePower, haveDamage bool
	rest = text
	for _, tier := range p.fixed {
		boundPower, boundDamage := havePower, haveDamage
		for _, m := range tier.FindAllStringSubmatchIndex(rest, -1) {
			key, val := keyValue(rest, m)
			_, isPower := lexicon.Canonical(key, p.lex.Power)
			if (isPower && boundPower) || (!isPower && boundDamage) {
				continue
			}
			n, err := atoi(val)
			if err != nil {
				return 0, 0, "", err
			}
			if isPower {
				power, havePower = n, true
			} else {
				damage, haveDamage = n, true
			}
			rest = blank(rest, m[0], m[1])
		}
	}

	switch {
	case !havePower:
		return 0, 0, "", calcerr.Missingf(i18n.MsgMissingPower)
	case !haveDamage:
		return 0, 0, "", calcerr.Missingf(i18n.MsgMissingDamage)
	}
	return power, damage, rest, nil
}

func (p *Parser) statBlocks(rest string) []statBlock {
	var out []statBlock
	for _, loc := range p.block.FindAllStringIndex(rest, -1) {
		raw := rest[loc[0]:loc[1]]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		out = append(out, statBlock{
			text:  trimmed,
			start: loc[0] + strings.Index(raw, trimmed),
			role:  p.classify(trimmed),
		})
	}
	return out
}

func (p *Parser) classify(block string) Role {
	switch {
	case lexicon.ContainsAny(block, p.lex.OwnSide),
		lexicon.ContainsAny(block, p.lex.Personality),
		lexicon.ContainsAny(block, p.lex.Investment):
		return RolePlayer
	case lexicon.ContainsAny(block, p.lex.OpponentSide):
		return RoleOpponent
	default:
		return RoleNeutral
	}
}

// resolve assigns the player and opponent roles to an unordered pair of
// blocks. A neutral block always takes the role its partner leaves open; two
// neutral blocks resolve by position, earlier one as player. Two blocks
// claiming the same side cannot be resolved.
func resolve(a, b statBlock) (player, opponent statBlock, ok bool) {
	switch {
	case a.role == RolePlayer && b.role != RolePlayer,
		a.role == RoleNeutral && b.role == RoleOpponent:
		return a, b, true
	case b.role == RolePlayer && a.role != RolePlayer,
		b.role == RoleNeutral && a.role == RoleOpponent:
		return b, a, true
	case a.role == RoleNeutral && b.role == RoleNeutral:
		if a.start <= b.start {
			return a, b, true
		}
		return b, a, true
	default:
		return statBlock{}, statBlock{}, false
	}
}
