package fault_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
)

func buildStandaloneGate(t *testing.T, typ circuit.GateType, arity int) *circuit.Graph {
	t.Helper()
	g := circuit.NewGraph()
	names := make([]string, arity)
	for i := range names {
		names[i] = string(rune('a' + i))
		g.AddInput(names[i])
	}
	g.AddOutput("y")
	_, err := g.AddGate(typ, names, "y")
	require.NoError(t, err)
	return g
}

// Invariant: a standalone buff/not gate yields 2 faults, AND/NAND/OR/NOR
// yield 4, XOR/XNOR yield 6, with no fanout and the output a primary
// output.
func TestStandaloneGateFaultCounts(t *testing.T) {
	cases := []struct {
		typ      circuit.GateType
		arity    int
		expected int
	}{
		{circuit.NOT, 1, 2},
		{circuit.BUFF, 1, 2},
		{circuit.AND, 2, 4},
		{circuit.NAND, 2, 4},
		{circuit.OR, 2, 4},
		{circuit.NOR, 2, 4},
		{circuit.XOR, 2, 6},
		{circuit.XNOR, 2, 6},
	}

	for _, c := range cases {
		g := buildStandaloneGate(t, c.typ, c.arity)
		faults, err := fault.Enumerate(g)
		require.NoError(t, err)
		require.Lenf(t, faults, c.expected, "gate type %s", c.typ)
	}
}

// S5: a single 2-input XOR yields exactly 6 faults (both stuck-at values
// on each input branch and on the output stem).
func TestSingleXORSixFaults(t *testing.T) {
	g := buildStandaloneGate(t, circuit.XOR, 2)
	faults, err := fault.Enumerate(g)
	require.NoError(t, err)
	require.Len(t, faults, 6)
}

// Invariant 10: for y=AND(x,x), (x stuck-at-1, stem) is among the
// emitted faults.
func TestDuplicateInputFaultList(t *testing.T) {
	g := circuit.NewGraph()
	g.AddInput("x")
	g.AddOutput("y")
	_, err := g.AddGate(circuit.AND, []string{"x", "x"}, "y")
	require.NoError(t, err)

	faults, err := fault.Enumerate(g)
	require.NoError(t, err)

	var sawStemSA1 bool
	for _, f := range faults {
		if f.Line.Name == "x" && f.Site == fault.Stem && f.StuckAt == 1 {
			sawStemSA1 = true
		}
	}
	require.True(t, sawStemSA1)
}

func TestDanglingLineRejected(t *testing.T) {
	g := circuit.NewGraph()
	g.AddInput("a")
	g.AddInput("b")
	_, err := g.AddGate(circuit.AND, []string{"a", "b"}, "y")
	require.NoError(t, err)
	g.GetLine("y") // y has no destinations and is not marked output

	_, err = fault.Enumerate(g)
	require.Error(t, err)
}

func TestBranchFaultConnection(t *testing.T) {
	g := circuit.NewGraph()
	g.AddInput("a")
	g.AddInput("b")
	g.AddOutput("y")
	gate, err := g.AddGate(circuit.OR, []string{"a", "b"}, "y")
	require.NoError(t, err)

	faults, err := fault.Enumerate(g)
	require.NoError(t, err)

	var found bool
	for _, f := range faults {
		if f.Site == fault.Branch && f.Line.Name == "a" {
			require.Equal(t, gate, f.Connection.Gate)
			require.Equal(t, 0, f.Connection.InputIdx)
			found = true
		}
	}
	require.True(t, found)
}
