package faultcnf

import (
	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/cnf"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
)

// context holds the per-fault mutable state of a Builder call: the
// lazily-allocated sensitization literal for each line, the special
// "spec" literal used by boundary substitution, and the next free
// literal to hand out. It is reset after every fault.
type context struct {
	fault fault.Fault

	lineToSensitizationLiteral []int // indexed by line id; 0 means unset

	specLit    int
	maxLiteral int
}

func (c *context) init(g *circuit.Graph, f fault.Fault) {
	c.fault = f
	c.lineToSensitizationLiteral = make([]int, g.LineIDEnd())
	c.maxLiteral = cnf.Literal(g.LineIDEnd())
}

func (c *context) reset() {
	c.fault = fault.Fault{}
	c.lineToSensitizationLiteral = nil
	c.specLit = 0
	c.maxLiteral = 0
}

func (c *context) makeNewLit() int {
	lit := c.maxLiteral
	c.maxLiteral++
	return lit
}

func (c *context) specLiteral() int {
	if c.specLit == 0 {
		c.specLit = c.makeNewLit()
	}
	return c.specLit
}

func (c *context) sensitizationLiteral(l *circuit.Line) int {
	lit := c.lineToSensitizationLiteral[l.ID]
	if lit == 0 {
		lit = c.makeNewLit()
		c.lineToSensitizationLiteral[l.ID] = lit
	}
	return lit
}

func goodLiteral(l *circuit.Line) int {
	return cnf.Literal(l.ID)
}
