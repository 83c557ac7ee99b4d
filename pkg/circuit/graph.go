package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Graph owns every line and gate in a parsed netlist, with stable
// addresses: insertion never relocates a previously returned *Line or
// *Gate. It is mutated only through AddInput/AddOutput/AddGate and never
// shrinks.
type Graph struct {
	idAllocator

	lines []*Line
	gates []*Gate

	nameToLine map[string]*Line

	inputs  []*Line
	outputs []*Line
}

// NewGraph creates an empty circuit graph.
func NewGraph() *Graph {
	return &Graph{
		nameToLine: make(map[string]*Line),
	}
}

func (g *Graph) ensureLine(name string) *Line {
	if l, ok := g.nameToLine[name]; ok {
		return l
	}
	l := newLine(g.makeLineID(), name, false)
	g.nameToLine[name] = l
	g.lines = append(g.lines, l)
	return l
}

// AddInput creates-or-fetches the named line and marks it a primary input.
// Calling this more than once for the same name is idempotent.
func (g *Graph) AddInput(name string) *Line {
	l := g.ensureLine(name)
	for _, in := range g.inputs {
		if in == l {
			return l
		}
	}
	g.inputs = append(g.inputs, l)
	return l
}

// AddOutput creates-or-fetches the named line and marks it a primary
// output, appending it to the outputs list the first time it is marked.
// Calling this more than once for the same name is idempotent.
func (g *Graph) AddOutput(name string) *Line {
	l := g.ensureLine(name)
	if !l.IsOutput {
		l.IsOutput = true
		g.outputs = append(g.outputs, l)
	}
	return l
}

// AddGate creates lines for any new names, constructs the gate (computing
// its expansion), sets the output's source, and wires each input's
// destination connection. It returns an error if the requested type/arity
// combination is invalid.
func (g *Graph) AddGate(typ GateType, inputNames []string, outputName string) (*Gate, error) {
	inputs := make([]*Line, len(inputNames))
	for i, name := range inputNames {
		inputs[i] = g.ensureLine(name)
	}
	output := g.ensureLine(outputName)

	gate, err := newGate(&g.idAllocator, typ, output, inputs)
	if err != nil {
		return nil, fmt.Errorf("line %q: %w", outputName, err)
	}

	output.Source = gate
	for i, in := range inputs {
		in.connectAsInput(gate, i)
	}

	g.gates = append(g.gates, gate)
	return gate, nil
}

// GetLine returns the named line, or nil if it does not exist.
func (g *Graph) GetLine(name string) *Line {
	return g.nameToLine[name]
}

func (g *Graph) Inputs() []*Line  { return g.inputs }
func (g *Graph) Outputs() []*Line { return g.outputs }
func (g *Graph) Gates() []*Gate   { return g.gates }
func (g *Graph) Lines() []*Line   { return g.lines }

// Stats renders a human-readable summary: input/output/line/gate counts
// plus a per-type gate histogram, ordered by GateType (AND, NAND, NOT, OR,
// NOR, XOR, XNOR, BUFF).
func (g *Graph) Stats() string {
	var b strings.Builder

	plural := func(n int) string {
		if n != 1 {
			return "s"
		}
		return ""
	}

	fmt.Fprintf(&b, "# %d input%s\n", len(g.inputs), plural(len(g.inputs)))
	fmt.Fprintf(&b, "# %d output%s\n", len(g.outputs), plural(len(g.outputs)))
	fmt.Fprintf(&b, "# %d line%s\n", len(g.lines), plural(len(g.lines)))
	fmt.Fprintf(&b, "# %d gate%s:\n", len(g.gates), plural(len(g.gates)))

	counts := make(map[GateType]int)
	for _, gate := range g.gates {
		counts[gate.Type]++
	}

	types := make([]GateType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		fmt.Fprintf(&b, "#     %d %s\n", counts[t], t)
	}

	return b.String()
}
