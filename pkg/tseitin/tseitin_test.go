package tseitin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/cnf"
	"github.com/fyerfyer/sat-atpg/pkg/tseitin"
)

// assignmentFor builds a full assignment array sized to the CNF's
// MaxVar from a map of line name -> bool, using the graph to resolve
// names to literals.
func assignmentFor(g *circuit.Graph, c *cnf.CNF, values map[string]bool) []bool {
	assign := make([]bool, c.MaxVar+1)
	for name, v := range values {
		l := g.GetLine(name)
		assign[cnf.Literal(l.ID)] = v
	}
	return assign
}

func TestANDGateTruthTable(t *testing.T) {
	g := circuit.NewGraph()
	g.AddInput("a")
	g.AddInput("b")
	g.AddOutput("y")
	_, err := g.AddGate(circuit.AND, []string{"a", "b"}, "y")
	require.NoError(t, err)

	c := tseitin.MakeCNF(g, true)

	cases := []struct {
		a, b, y bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, tc := range cases {
		assign := assignmentFor(g, c, map[string]bool{"a": tc.a, "b": tc.b, "y": tc.y})
		require.True(t, c.IsSatisfied(assign), "a=%v b=%v y=%v", tc.a, tc.b, tc.y)

		wrongAssign := assignmentFor(g, c, map[string]bool{"a": tc.a, "b": tc.b, "y": !tc.y})
		require.False(t, c.IsSatisfied(wrongAssign), "a=%v b=%v y=%v should be unsatisfiable", tc.a, tc.b, !tc.y)
	}
}

func TestXORGateTruthTable(t *testing.T) {
	g := circuit.NewGraph()
	g.AddInput("a")
	g.AddInput("b")
	g.AddOutput("y")
	_, err := g.AddGate(circuit.XOR, []string{"a", "b"}, "y")
	require.NoError(t, err)

	c := tseitin.MakeCNF(g, true)

	cases := []struct{ a, b, y bool }{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, tc := range cases {
		assign := assignmentFor(g, c, map[string]bool{"a": tc.a, "b": tc.b, "y": tc.y})
		require.True(t, c.IsSatisfied(assign))
	}
}

func TestMakeCNFExpandsWideGates(t *testing.T) {
	g := circuit.NewGraph()
	for _, name := range []string{"a", "b", "c", "d"} {
		g.AddInput(name)
	}
	g.AddOutput("y")
	_, err := g.AddGate(circuit.NAND, []string{"a", "b", "c", "d"}, "y")
	require.NoError(t, err)

	expanded := tseitin.MakeCNF(g, true)
	notExpanded := tseitin.MakeCNF(g, false)

	// Expanding a 4-input gate into 3 binary sub-gates yields more
	// clauses than treating it as a single n-ary gate.
	require.Greater(t, len(expanded.Clauses), len(notExpanded.Clauses))
}
