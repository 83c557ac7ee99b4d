package faultcnf

import (
	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
)

// Cone is the fanout cone of a fault site: every line the fault's effect
// can reach, the lines bounding that reach, and which primary outputs
// sit inside it.
type Cone struct {
	LinesInside          map[*circuit.Line]struct{}
	LinesInsideOrder     []*circuit.Line
	BoundaryLines        map[*circuit.Line]struct{}
	PrimaryOutputsInside []*circuit.Line

	primaryOutputSeen map[*circuit.Line]struct{}
}

func newCone() *Cone {
	return &Cone{
		LinesInside:       make(map[*circuit.Line]struct{}),
		BoundaryLines:     make(map[*circuit.Line]struct{}),
		primaryOutputSeen: make(map[*circuit.Line]struct{}),
	}
}

func (c *Cone) markLineInside(l *circuit.Line) {
	if _, ok := c.LinesInside[l]; ok {
		return
	}
	c.LinesInside[l] = struct{}{}
	c.LinesInsideOrder = append(c.LinesInsideOrder, l)
}

func (c *Cone) markPrimaryOutput(l *circuit.Line) {
	if _, ok := c.primaryOutputSeen[l]; ok {
		return
	}
	c.primaryOutputSeen[l] = struct{}{}
	c.PrimaryOutputsInside = append(c.PrimaryOutputsInside, l)
}

// BuildCone walks forward from the fault's activation site, over
// expanded sub-gates (see WalkGatesBFS's queue-vs-callback granularity
// split), collecting every line reached and its boundary.
func BuildCone(f fault.Fault) *Cone {
	cone := newCone()
	cone.markLineInside(f.Line)

	var seeds []*circuit.Gate

	switch f.Site {
	case fault.Stem:
		if len(f.Line.Destinations) != 0 {
			seeds = f.Line.DestinationGates()
		} else {
			cone.markPrimaryOutput(f.Line)
		}
	case fault.PrimaryOutput:
		cone.markPrimaryOutput(f.Line)
	case fault.Branch:
		seeds = []*circuit.Gate{f.Connection.Gate}
	}

	if len(seeds) == 0 {
		return cone
	}

	circuit.WalkGatesBFS(seeds, circuit.TowardOutputs, true, func(g *circuit.Gate) {
		for _, in := range g.Inputs {
			_, inside := cone.LinesInside[in]
			faultLineEscapes := f.Site == fault.Branch && in == f.Line && g != f.Connection.Gate
			if !inside || faultLineEscapes {
				cone.BoundaryLines[in] = struct{}{}
			}
		}
		cone.markLineInside(g.Output)
		delete(cone.BoundaryLines, g.Output)
		if g.Output.IsOutput {
			cone.markPrimaryOutput(g.Output)
		}
	})

	return cone
}
