// Package query turns the raw argument text of the reverse commands into
// normalized inputs.
//
// The damage-reverse commands accept a positional quick form and a
// keyword-driven smart form; which one applies is decided from the text alone.
// The vitality-reverse command reads keywords first and falls back to three
// positional numbers.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/descriptor"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/lexicon"
)

// Mode is the input form a damage query was written in.
type Mode int

const (
	ModeQuick Mode = iota + 1
	ModeSmart
)

func (m Mode) String() string {
	switch m {
	case ModeQuick:
		return "quick"
	case ModeSmart:
		return "smart"
	default:
		return "unknown"
	}
}

// DamageQuery is the normalized input of a damage-reverse command.
type DamageQuery struct {
	Mode Mode

	// Token is the player's descriptor text as written.
	Token        string
	Player       descriptor.Descriptor
	OpponentBase int
	Power        int
	Damage       int
}

// VitalityQuery is the normalized input of the vitality-reverse command.
type VitalityQuery struct {
	OpponentBase int
	LostPercent  float64
	Damage       int
}

var (
	wholeNumber = regexp.MustCompile(`^\d+$`)
	digitRun    = regexp.MustCompile(`\d+`)
	numberRun   = regexp.MustCompile(`\d+\.?\d*`)
)

// Parser parses reverse-command arguments with one keyword table.
// It is immutable and safe for concurrent use.
type Parser struct {
	lex  lexicon.Lexicon
	desc descriptor.Parser

	fixed       []*regexp.Regexp
	block       *regexp.Regexp
	lost        *regexp.Regexp
	damageTaken *regexp.Regexp
}

// New compiles the keyword patterns for lex.
func New(lex lexicon.Lexicon) *Parser {
	keywords := lexicon.Alternation(append(append([]string{}, lex.Power...), lex.Damage...))
	sides := lexicon.Alternation(append(append([]string{}, lex.OwnSide...), lex.OpponentSide...))
	modifier := `\s*\+\s*(?:` + lexicon.Alternation(lex.Personality) + `|` + lexicon.Alternation(lex.Investment) + `\d*)`

	return &Parser{
		lex:  lex,
		desc: descriptor.NewParser(lex),
		fixed: []*regexp.Regexp{
			regexp.MustCompile(`(` + keywords + `)(\d+)|(\d+)(` + keywords + `)`),
			regexp.MustCompile(`(` + keywords + `)\s+(\d+)`),
			regexp.MustCompile(`(\d+)\s+(` + keywords + `)`),
		},
		block:       regexp.MustCompile(sides + `?\s*\d+(?:` + modifier + `){0,2}`),
		lost:        regexp.MustCompile(lexicon.Alternation(lex.Lost) + `\s*(\d+\.?\d*)\s*%?`),
		damageTaken: regexp.MustCompile(lexicon.Alternation(lex.Damage) + `\s*(\d+)`),
	}
}

// IsSmart reports whether text must be read as the smart form: anything but
// exactly four fields, or any marker or keyword present.
func (p *Parser) IsSmart(text string) bool {
	return len(strings.Fields(text)) != 4 || lexicon.ContainsAny(text, p.lex.Markers())
}

// ParseDamage parses damage-reverse arguments in either form. example is the
// unambiguous phrasing attached to ambiguity errors.
func (p *Parser) ParseDamage(text, example string) (DamageQuery, error) {
	text = strings.TrimSpace(text)
	if p.IsSmart(text) {
		return p.parseSmart(text, example)
	}
	return p.parseQuick(text)
}

func (p *Parser) parseQuick(text string) (DamageQuery, error) {
	fields := strings.Fields(text)

	player, err := p.desc.ParseCompact(fields[0])
	if err != nil {
		return DamageQuery{}, err
	}

	nums := make([]int, 3)
	for i, f := range fields[1:] {
		if nums[i], err = wholeField(f); err != nil {
			return DamageQuery{}, err
		}
	}

	return DamageQuery{
		Mode:         ModeQuick,
		Token:        fields[0],
		Player:       player,
		OpponentBase: nums[0],
		Power:        nums[1],
		Damage:       nums[2],
	}, nil
}

func wholeField(f string) (int, error) {
	if !wholeNumber.MatchString(f) {
		return 0, calcerr.Formatf(i18n.MsgQuickNotNumber, f)
	}
	n, err := strconv.Atoi(f)
	if err != nil {
		return 0, calcerr.Validationf(i18n.MsgNumberOutOfRange, f)
	}
	return n, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, calcerr.Validationf(i18n.MsgNumberOutOfRange, s)
	}
	return n, nil
}

// keyValue splits a fixed-parameter match into its keyword and digits.
func keyValue(text string, m []int) (key, val string) {
	for g := 2; g+1 < len(m); g += 2 {
		if m[g] < 0 {
			continue
		}
		s := text[m[g]:m[g+1]]
		if s[0] >= '0' && s[0] <= '9' {
			val = s
		} else {
			key = s
		}
	}
	return key, val
}

// blank overwrites text[start:end] with spaces so later offsets stay valid.
func blank(text string, start, end int) string {
	return text[:start] + strings.Repeat(" ", end-start) + text[end:]
}
