package faultcnf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
	"github.com/fyerfyer/sat-atpg/pkg/faultcnf"
)

func namesOf(lines []*circuit.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Name
	}
	return out
}

func namesOfSet(set map[*circuit.Line]struct{}) []string {
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l.Name)
	}
	return out
}

// x2 fans out into g=AND(x1,x2) and f=NOT(x2); its stem cone must reach
// every downstream line (g,f,h,y) and bound on x1 and x3.
func TestBuildConeStemFaultCoversDownstreamCone(t *testing.T) {
	g := buildTestCircuit(t)
	x2 := g.GetLine("x2")
	require.True(t, len(x2.Destinations) > 1)

	f := fault.Fault{Line: x2, StuckAt: 0, Site: fault.Stem}
	cone := faultcnf.BuildCone(f)

	require.ElementsMatch(t, []string{"x2", "g", "f", "h", "y"}, namesOf(cone.LinesInsideOrder))
	require.ElementsMatch(t, []string{"x1", "x3"}, namesOfSet(cone.BoundaryLines))
	require.ElementsMatch(t, []string{"y"}, namesOf(cone.PrimaryOutputsInside))
}

// The branch fault on x2 feeding the NOT gate f must not pull in g's
// branch of x2: g stays outside the cone and bounds it as an input of the
// OR gate y.
func TestBuildConeBranchFaultLeavesSiblingBranchOutside(t *testing.T) {
	g := buildTestCircuit(t)
	x2 := g.GetLine("x2")

	var notConn circuit.Connection
	for _, conn := range x2.Destinations {
		if conn.Gate.Type == circuit.NOT {
			notConn = conn
		}
	}
	require.NotNil(t, notConn.Gate)

	f := fault.Fault{Line: x2, StuckAt: 1, Site: fault.Branch, Connection: notConn}
	cone := faultcnf.BuildCone(f)

	require.ElementsMatch(t, []string{"x2", "f", "h", "y"}, namesOf(cone.LinesInsideOrder))
	require.Contains(t, namesOfSet(cone.BoundaryLines), "g")
	require.Contains(t, namesOfSet(cone.BoundaryLines), "x3")
}

// A stem fault on a primary output with no fanout carries an empty cone
// body beyond the line itself; it is its own primary output.
func TestBuildConePrimaryOutputWithoutFanout(t *testing.T) {
	g := circuit.NewGraph()
	g.AddInput("a")
	g.AddOutput("y")
	_, err := g.AddGate(circuit.NOT, []string{"a"}, "y")
	require.NoError(t, err)

	y := g.GetLine("y")
	f := fault.Fault{Line: y, StuckAt: 0, Site: fault.Stem}
	cone := faultcnf.BuildCone(f)

	require.ElementsMatch(t, []string{"y"}, namesOf(cone.LinesInsideOrder))
	require.ElementsMatch(t, []string{"y"}, namesOf(cone.PrimaryOutputsInside))
	require.Empty(t, cone.BoundaryLines)
}
