// Package tseitin maps circuit gates to the clauses that define their
// Boolean relation in the good-circuit CNF, following the standard
// Tseitin transformation.
package tseitin

import (
	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/cnf"
)

// GateClauses emits the clauses defining g.Output's relation to g's
// inputs and writes them to sink. AND/NAND/OR/NOR clauses are emitted for
// any number of inputs (MakeCNF with expand=false passes wide gates here
// unexpanded); XOR/XNOR read exactly two inputs.
func GateClauses(g *circuit.Gate, sink cnf.Sink) {
	o := cnf.Literal(g.Output.ID)

	switch g.Type {
	case circuit.AND, circuit.BUFF:
		xs := inputLiterals(g)
		for _, x := range xs {
			sink.AddClause(-o, x)
		}
		clause := make([]int, 0, len(xs)+1)
		clause = append(clause, o)
		for _, x := range xs {
			clause = append(clause, -x)
		}
		sink.AddClause(clause...)

	case circuit.NAND, circuit.NOT:
		xs := inputLiterals(g)
		for _, x := range xs {
			sink.AddClause(o, x)
		}
		clause := make([]int, 0, len(xs)+1)
		clause = append(clause, -o)
		for _, x := range xs {
			clause = append(clause, -x)
		}
		sink.AddClause(clause...)

	case circuit.OR:
		xs := inputLiterals(g)
		for _, x := range xs {
			sink.AddClause(o, -x)
		}
		clause := make([]int, 0, len(xs)+1)
		clause = append(clause, -o)
		clause = append(clause, xs...)
		sink.AddClause(clause...)

	case circuit.NOR:
		xs := inputLiterals(g)
		for _, x := range xs {
			sink.AddClause(-o, -x)
		}
		clause := make([]int, 0, len(xs)+1)
		clause = append(clause, o)
		clause = append(clause, xs...)
		sink.AddClause(clause...)

	case circuit.XOR:
		x, y := inputLiterals(g)[0], inputLiterals(g)[1]
		sink.AddClause(-x, -y, -o)
		sink.AddClause(x, y, -o)
		sink.AddClause(x, -y, o)
		sink.AddClause(-x, y, o)

	case circuit.XNOR:
		x, y := inputLiterals(g)[0], inputLiterals(g)[1]
		sink.AddClause(-x, -y, o)
		sink.AddClause(x, y, o)
		sink.AddClause(x, -y, -o)
		sink.AddClause(-x, y, -o)
	}
}

func inputLiterals(g *circuit.Gate) []int {
	lits := make([]int, len(g.Inputs))
	for i, in := range g.Inputs {
		lits[i] = cnf.Literal(in.ID)
	}
	return lits
}

// MakeCNF walks g's gates in insertion order, emitting clauses for each.
// When expand is true, clauses come from each gate's expansion sub-gates
// instead of the original wide gate.
func MakeCNF(g *circuit.Graph, expand bool) *cnf.CNF {
	out := cnf.New()
	for _, gate := range g.Gates() {
		if expand {
			for _, sub := range gate.Expansion {
				GateClauses(sub, out)
			}
		} else {
			GateClauses(gate, out)
		}
	}
	return out
}
