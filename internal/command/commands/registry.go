package commands

import (
	"github.com/udisondev/growthcalc/internal/calc"
	"github.com/udisondev/growthcalc/internal/command"
)

// RegisterAll registers all calculator commands into the handler.
func RegisterAll(h *command.Handler, c *calc.Calculator) {
	stat := NewStatCalc(c)
	vitality := NewVitalityCalc(c)
	damage := NewDamageCalc(c)

	h.Register(stat)
	h.Register(vitality)
	h.Register(damage)
	h.Register(NewGroup(c, stat, vitality, damage))

	h.Register(NewReverse(c))
	h.Register(NewReverseDefense(c))
	h.Register(NewReverseAttack(c))
	h.Register(NewVitalityReverse(c))

	h.Register(NewHelp(c, h))
}
