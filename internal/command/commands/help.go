package commands

import (
	"github.com/udisondev/growthcalc/internal/calc"
	"github.com/udisondev/growthcalc/internal/command"
)

// topical is implemented by commands that own a help topic.
type topical interface {
	Topic() calc.Topic
}

// Help handles /help [command]. The argument may be any registered command
// name or a help topic.
type Help struct {
	calc    *calc.Calculator
	handler *command.Handler
}

func NewHelp(c *calc.Calculator, h *command.Handler) *Help {
	return &Help{calc: c, handler: h}
}

func (c *Help) Names() []string   { return []string{"help", "帮助"} }
func (c *Help) Topic() calc.Topic { return calc.TopicGeneral }

func (c *Help) Handle(params string) (string, error) {
	if params == "" {
		return c.calc.HelpText(calc.TopicGeneral), nil
	}
	if cmd, ok := c.handler.Lookup(params); ok {
		if t, ok := cmd.(topical); ok {
			return c.calc.HelpText(t.Topic()), nil
		}
	}
	return c.calc.HelpText(calc.Topic(params)), nil
}
