// Package faultcnf builds, for a single stuck-at fault, the CNF whose
// satisfiability is equivalent to that fault's detectability.
package faultcnf

import (
	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/cnf"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
	"github.com/fyerfyer/sat-atpg/pkg/tseitin"
)

// DefaultThresholdRatio is used when a Builder's caller does not specify
// one: fanout-cone-only encoding is used while fewer than
// outputs_total * ratio primary outputs sit inside the cone, else the
// whole circuit is encoded (and cached) once and reused.
const DefaultThresholdRatio = 0.6

// Builder produces per-fault CNF, streaming clauses into a cnf.Sink. A
// Builder is not safe for concurrent use: it owns one mutable context and
// one cached whole-circuit CNF, both scoped to the graph it was built
// for.
type Builder struct {
	graph         *circuit.Graph
	thresholdRatio float64

	context context

	circuitCNF *cnf.CNF
}

// NewBuilder returns a Builder for g using ratio as the cone/whole-circuit
// switch threshold.
func NewBuilder(g *circuit.Graph, ratio float64) *Builder {
	return &Builder{graph: g, thresholdRatio: ratio}
}

// MakeFault writes every clause needed to test f's detectability into
// sink. sink should be freshly cleared by the caller before this call
// (the builder never clears it itself — it only appends).
func (b *Builder) MakeFault(f fault.Fault, sink cnf.Sink) {
	b.context.init(b.graph, f)
	defer b.context.reset()

	outputThreshold := float64(len(b.graph.Outputs())) * b.thresholdRatio

	cone := BuildCone(f)

	if float64(len(cone.PrimaryOutputsInside)) < outputThreshold {
		var outGates []*circuit.Gate
		for _, l := range cone.PrimaryOutputsInside {
			if l.Source != nil {
				outGates = append(outGates, l.Source)
			}
		}
		circuit.WalkGatesBFS(outGates, circuit.TowardInputs, true, func(g *circuit.Gate) {
			tseitin.GateClauses(g, sink)
		})
	} else {
		if b.circuitCNF == nil {
			b.circuitCNF = tseitin.MakeCNF(b.graph, true)
		}
		for _, clause := range b.circuitCNF.Clauses {
			sink.AddClause(clause...)
		}
		sink.Reserve(b.circuitCNF.MaxVar)
	}

	b.addSensitization(cone, sink)
	b.addFaultActivation(sink)
	b.addBoundaryScan(cone, sink)
	b.addFaultPresentation(cone, sink)

	sink.Reserve(b.context.maxLiteral - 1)
}

// addSensitization collects the set of gates whose output differs
// between good and faulty circuits and emits sensitization clauses for
// each, over expanded sub-gates.
func (b *Builder) addSensitization(cone *Cone, sink cnf.Sink) {
	sensitized := make(map[*circuit.Gate]struct{})
	f := b.context.fault

	if f.Site != fault.Stem && f.Site != fault.PrimaryOutput {
		sensitized[f.Connection.Gate] = struct{}{}
		b.addGateSensitizationWithExpansion(f.Connection, sink)
	}

	for _, l := range cone.LinesInsideOrder {
		if f.Site != fault.Stem && l == f.Line {
			continue
		}
		for _, conn := range l.Destinations {
			if _, done := sensitized[conn.Gate]; done {
				continue
			}
			sensitized[conn.Gate] = struct{}{}
			b.addGateSensitizationWithExpansion(conn, sink)
		}
	}
}

// addFaultActivation asserts that the fault site differs from good and
// pins the site's good value to the opposite of the stuck-at constant.
func (b *Builder) addFaultActivation(sink cnf.Sink) {
	f := b.context.fault
	sink.AddClause(b.context.sensitizationLiteral(f.Line))
	if f.StuckAt == 0 {
		sink.AddClause(goodLiteral(f.Line))
	} else {
		sink.AddClause(-goodLiteral(f.Line))
	}
}

// addBoundaryScan suppresses sensitization outside the cone, routing the
// faulted branch's own boundary appearance through the special literal
// instead of its own sensitization variable.
func (b *Builder) addBoundaryScan(cone *Cone, sink cnf.Sink) {
	f := b.context.fault

	for boundary := range cone.BoundaryLines {
		if boundary == f.Line {
			sink.AddClause(-b.context.specLiteral())
		} else {
			sink.AddClause(-b.context.sensitizationLiteral(boundary))
		}
	}

	if f.Site != fault.Stem && f.Line.HasDuplicateInputTo() {
		metGate := false
		needClause := false
		for _, conn := range f.Line.Destinations {
			if conn.Gate != f.Connection.Gate {
				continue
			}
			if !metGate {
				metGate = true
				continue
			}
			needClause = true
			break
		}
		if needClause {
			sink.AddClause(-b.context.specLiteral())
		}
	}
}

// addFaultPresentation requires at least one primary output inside the
// cone to become sensitized.
func (b *Builder) addFaultPresentation(cone *Cone, sink cnf.Sink) {
	clause := make([]int, 0, len(cone.PrimaryOutputsInside))
	for _, l := range cone.PrimaryOutputsInside {
		clause = append(clause, b.context.sensitizationLiteral(l))
	}
	sink.AddClause(clause...)
}
