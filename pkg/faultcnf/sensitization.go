package faultcnf

import (
	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/cnf"
)

// The phi_1..phi_5 sensitization rules for an AND-family gate z = x . y
// (controlling value 0): if an input is at its controlling value and not
// sensitized the output can't be sensitized; if neither input is
// sensitized neither is the output; two sensitized inputs with differing
// values desensitize the output; a sensitized input paired with a
// non-controlling, non-sensitized one sensitizes the output; two
// sensitized inputs with matching values sensitize the output.
func addAndSensitization(sink cnf.Sink, x, xs, y, ys, zs int) {
	sink.AddClause(xs, ys, -zs)
	sink.AddClause(-xs, -y, ys, zs)
	sink.AddClause(-x, xs, -ys, zs)
	sink.AddClause(x, -xs, y, -ys, zs)
	sink.AddClause(-x, -xs, y, -zs)
	sink.AddClause(x, xs, -zs)
	sink.AddClause(x, -y, -ys, -zs)
	sink.AddClause(-x, -y, -ys, zs)
	sink.AddClause(y, ys, -zs)
}

// addOrSensitization is the OR-family dual (controlling value 1).
func addOrSensitization(sink cnf.Sink, x, xs, y, ys, zs int) {
	sink.AddClause(xs, ys, -zs)
	sink.AddClause(-xs, y, ys, zs)
	sink.AddClause(x, xs, -ys, zs)
	sink.AddClause(-x, -xs, -y, -ys, zs)
	sink.AddClause(x, -xs, -y, -zs)
	sink.AddClause(-x, xs, -zs)
	sink.AddClause(x, y, -ys, zs)
	sink.AddClause(-x, y, -ys, -zs)
	sink.AddClause(-y, ys, -zs)
}

// addXorSensitization: output sensitization is the XOR of the inputs'
// sensitization, independent of good-circuit polarity.
func addXorSensitization(sink cnf.Sink, xs, ys, zs int) {
	sink.AddClause(-xs, -ys, -zs)
	sink.AddClause(xs, ys, -zs)
	sink.AddClause(xs, -ys, zs)
	sink.AddClause(-xs, ys, zs)
}

// addSensitizationPropagation: z = NOT(x) or z = BUFF(x) just forwards
// the input's sensitization.
func addSensitizationPropagation(sink cnf.Sink, xs, zs int) {
	sink.AddClause(-xs, zs)
	sink.AddClause(xs, -zs)
}

// addGateSensitization emits the sensitization clauses for a single
// sub-gate (arity <= 2). useSpecX/useSpecY substitute the context's
// special literal for the normal input sensitization literal, per the
// branch-input substitution rule in addGateSensitizationWithExpansion.
func (b *Builder) addGateSensitization(gate *circuit.Gate, useSpecX, useSpecY bool, sink cnf.Sink) {
	if len(gate.Inputs) == 1 {
		xs := b.context.sensitizationLiteral(gate.Inputs[0])
		if useSpecX {
			xs = b.context.specLiteral()
		}
		zs := b.context.sensitizationLiteral(gate.Output)
		addSensitizationPropagation(sink, xs, zs)
		return
	}

	x := goodLiteral(gate.Inputs[0])
	y := goodLiteral(gate.Inputs[len(gate.Inputs)-1])

	xs := b.context.sensitizationLiteral(gate.Inputs[0])
	if useSpecX {
		xs = b.context.specLiteral()
	}
	ys := b.context.sensitizationLiteral(gate.Inputs[len(gate.Inputs)-1])
	if useSpecY {
		ys = b.context.specLiteral()
	}
	zs := b.context.sensitizationLiteral(gate.Output)

	switch gate.Type {
	case circuit.AND, circuit.NAND:
		addAndSensitization(sink, x, xs, y, ys, zs)
	case circuit.OR, circuit.NOR:
		addOrSensitization(sink, x, xs, y, ys, zs)
	case circuit.XOR, circuit.XNOR:
		addXorSensitization(sink, xs, ys, zs)
	}
}

// addGateSensitizationWithExpansion walks conn.Gate's expansion,
// substituting the special literal wherever a sub-gate's physical input
// is the faulted line but does not correspond to the faulted connection
// itself — the mapping rule from original input index to sub-gate
// position, applied deepest-subgate-first.
func (b *Builder) addGateSensitizationWithExpansion(conn circuit.Connection, sink cnf.Sink) {
	inputsSize := len(conn.Gate.Inputs)

	for i, sub := range conn.Gate.Expansion {
		useSpecX, useSpecY := false, false

		lineX := sub.Inputs[0]
		if lineX == b.context.fault.Line {
			useSpecX = b.context.fault.Connection.Gate != conn.Gate
			if !useSpecX {
				inpIdx := 0
				if inputsSize > 1 {
					inpIdx = inputsSize - 2 - i
				}
				useSpecX = b.context.fault.Connection.InputIdx != inpIdx
			}
		}

		if len(sub.Inputs) >= 2 {
			lineY := sub.Inputs[len(sub.Inputs)-1]
			if lineY == b.context.fault.Line {
				useSpecY = b.context.fault.Connection.Gate != conn.Gate
				if !useSpecY {
					inpIdx := inputsSize - 2 - i + 1
					useSpecY = b.context.fault.Connection.InputIdx != inpIdx
				}
			}
		}

		b.addGateSensitization(sub, useSpecX, useSpecY, sink)
	}
}
