package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/growthcalc/internal/formula"
	"github.com/udisondev/growthcalc/internal/i18n"
	"github.com/udisondev/growthcalc/internal/lexicon"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CALCBOT_"

// EnvConfigPath names the variable holding the config file path.
const EnvConfigPath = EnvPrefix + "CONFIG"

// Calcbot holds all configuration for the calculator bot.
type Calcbot struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	Locale   string `yaml:"locale" env:"LOCALE"`

	Formula Formula `yaml:"formula" envPrefix:"FORMULA_"`
	Lexicon Lexicon `yaml:"lexicon" envPrefix:"LEXICON_"`
	Server  Server  `yaml:"server" envPrefix:"SERVER_"`
	Batch   Batch   `yaml:"batch" envPrefix:"BATCH_"`
}

// Formula holds the game constants.
type Formula struct {
	Level                 int     `yaml:"level" env:"LEVEL"`
	EffortBonus           int     `yaml:"effort_bonus" env:"EFFORT_BONUS"`
	PersonalityMultiplier float64 `yaml:"personality_multiplier" env:"PERSONALITY_MULTIPLIER"`
}

// Lexicon holds the keyword aliases. Lists replace the defaults wholesale.
type Lexicon struct {
	OwnSide      []string `yaml:"own_side" env:"OWN_SIDE"`
	OpponentSide []string `yaml:"opponent_side" env:"OPPONENT_SIDE"`
	Personality  []string `yaml:"personality" env:"PERSONALITY"`
	Investment   []string `yaml:"investment" env:"INVESTMENT"`
	Power        []string `yaml:"power" env:"POWER"`
	Damage       []string `yaml:"damage" env:"DAMAGE"`
	Lost         []string `yaml:"lost" env:"LOST"`
	Help         []string `yaml:"help" env:"HELP"`

	// Compact dialect flags, one character each.
	NoPersonalityFlag string `yaml:"no_personality_flag" env:"NO_PERSONALITY_FLAG"`
	InvestmentFlag    string `yaml:"investment_flag" env:"INVESTMENT_FLAG"`
}

// Server holds the TCP transport settings.
type Server struct {
	BindAddress string        `yaml:"bind_address" env:"BIND_ADDRESS"`
	Port        int           `yaml:"port" env:"PORT"`
	ReadTimeout time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"` // idle client disconnect
}

// Batch holds the batch evaluation settings.
type Batch struct {
	Workers int `yaml:"workers" env:"WORKERS"`
}

// Default returns the configuration with sensible defaults.
func Default() Calcbot {
	c := formula.DefaultConstants()
	lex := lexicon.Default()
	return Calcbot{
		LogLevel: "info",
		Locale:   "en",
		Formula: Formula{
			Level:                 c.Level,
			EffortBonus:           c.EffortBonus,
			PersonalityMultiplier: c.PersonalityMultiplier,
		},
		Lexicon: Lexicon{
			OwnSide:           lex.OwnSide,
			OpponentSide:      lex.OpponentSide,
			Personality:       lex.Personality,
			Investment:        lex.Investment,
			Power:             lex.Power,
			Damage:            lex.Damage,
			Lost:              lex.Lost,
			Help:              lex.Help,
			NoPersonalityFlag: string(lex.NoPersonalityFlag),
			InvestmentFlag:    string(lex.InvestmentFlag),
		},
		Server: Server{
			BindAddress: "127.0.0.1",
			Port:        7070,
			ReadTimeout: 5 * time.Minute,
		},
		Batch: Batch{
			Workers: 4,
		},
	}
}

// Load reads config from a YAML file, then applies CALCBOT_* environment
// overrides and validates the result.
// If the file doesn't exist, the defaults are used.
func Load(path string) (Calcbot, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every section and joins the problems found.
func (c Calcbot) Validate() error {
	var errs []error

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := i18n.ResolveTag(c.Locale); !ok {
		errs = append(errs, fmt.Errorf("locale %q is not supported", c.Locale))
	}

	if c.Formula.Level <= 0 {
		errs = append(errs, fmt.Errorf("formula level must be positive, got %d", c.Formula.Level))
	}
	if c.Formula.EffortBonus < 0 {
		errs = append(errs, fmt.Errorf("formula effort bonus must not be negative, got %d", c.Formula.EffortBonus))
	}
	if c.Formula.PersonalityMultiplier < 1 {
		errs = append(errs, fmt.Errorf("formula personality multiplier must be at least 1, got %v", c.Formula.PersonalityMultiplier))
	}

	if len(c.Lexicon.NoPersonalityFlag) != 1 {
		errs = append(errs, fmt.Errorf("lexicon no_personality_flag must be one character, got %q", c.Lexicon.NoPersonalityFlag))
	}
	if len(c.Lexicon.InvestmentFlag) != 1 {
		errs = append(errs, fmt.Errorf("lexicon investment_flag must be one character, got %q", c.Lexicon.InvestmentFlag))
	}
	if len(errs) == 0 {
		if err := c.LexiconTable().Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, fmt.Errorf("server read timeout must not be negative, got %s", c.Server.ReadTimeout))
	}
	if c.Batch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("batch workers must be positive, got %d", c.Batch.Workers))
	}

	return errors.Join(errs...)
}

// Constants converts the formula section.
func (c Calcbot) Constants() formula.Constants {
	return formula.Constants{
		Level:                 c.Formula.Level,
		EffortBonus:           c.Formula.EffortBonus,
		PersonalityMultiplier: c.Formula.PersonalityMultiplier,
	}
}

// LexiconTable converts the lexicon section. Flags must be validated first.
func (c Calcbot) LexiconTable() lexicon.Lexicon {
	l := c.Lexicon
	lex := lexicon.Lexicon{
		OwnSide:      l.OwnSide,
		OpponentSide: l.OpponentSide,
		Personality:  l.Personality,
		Investment:   l.Investment,
		Power:        l.Power,
		Damage:       l.Damage,
		Lost:         l.Lost,
		Help:         l.Help,
	}
	if len(l.NoPersonalityFlag) > 0 {
		lex.NoPersonalityFlag = l.NoPersonalityFlag[0]
	}
	if len(l.InvestmentFlag) > 0 {
		lex.InvestmentFlag = l.InvestmentFlag[0]
	}
	return lex
}

// Tag resolves the configured locale.
func (c Calcbot) Tag() language.Tag {
	tag, _ := i18n.ResolveTag(c.Locale)
	return tag
}

// SlogLevel parses the log level.
func (c Calcbot) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
