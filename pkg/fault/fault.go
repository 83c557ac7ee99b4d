// Package fault enumerates the collapsed stuck-at fault list for a
// circuit graph.
package fault

import (
	"fmt"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
)

// Site discriminates where a fault lives relative to a fanout stem.
type Site int

const (
	// Stem faults model the line itself, upstream of any fanout split.
	Stem Site = iota
	// Branch faults model one particular (gate, input index) connection
	// downstream of a fanout split.
	Branch
	// PrimaryOutput faults model the output pin of a line that is both a
	// primary output and a fanout stem, distinct from the stem fault.
	PrimaryOutput
)

func (s Site) String() string {
	switch s {
	case Stem:
		return "stem"
	case Branch:
		return "branch"
	case PrimaryOutput:
		return "primary-output"
	default:
		return "unknown"
	}
}

// Fault is one stuck-at fault: a line, a stuck-at value (0 or 1), and,
// for branch faults, which connection it sits on.
type Fault struct {
	Line    *circuit.Line
	StuckAt int
	Site    Site

	// Connection is set only for Branch faults.
	Connection circuit.Connection
}

func (f Fault) String() string {
	switch f.Site {
	case Branch:
		return fmt.Sprintf("%s/I%d S-A-%d", f.Connection.Gate.Output.Name, f.Connection.InputIdx+1, f.StuckAt)
	default:
		return fmt.Sprintf("%s/O S-A-%d", f.Line.Name, f.StuckAt)
	}
}

func controllingStuckAt(t circuit.GateType) []int {
	switch t {
	case circuit.AND, circuit.NAND:
		return []int{1}
	case circuit.OR, circuit.NOR:
		return []int{0}
	case circuit.XOR, circuit.XNOR:
		return []int{0, 1}
	default:
		return nil
	}
}

func hasFanoutBranches(l *circuit.Line) bool {
	if l.IsOutput && len(l.Destinations) > 0 {
		return true
	}
	return len(l.Destinations) > 1
}

// Enumerate returns the collapsed fault list for g, in the order lines
// appear in g.Lines().
func Enumerate(g *circuit.Graph) ([]Fault, error) {
	var faults []Fault

	for _, l := range g.Lines() {
		if hasFanoutBranches(l) || l.IsOutput {
			faults = append(faults,
				Fault{Line: l, StuckAt: 0, Site: Stem},
				Fault{Line: l, StuckAt: 1, Site: Stem},
			)

			if l.IsOutput && hasFanoutBranches(l) {
				faults = append(faults,
					Fault{Line: l, StuckAt: 0, Site: PrimaryOutput},
					Fault{Line: l, StuckAt: 1, Site: PrimaryOutput},
				)
			}

			for _, conn := range l.Destinations {
				destGate := conn.Gate
				if destGate.Type == circuit.NOT || destGate.Type == circuit.BUFF {
					continue
				}
				for _, sa := range controllingStuckAt(destGate.Type) {
					faults = append(faults, Fault{
						Line: l, StuckAt: sa, Site: Branch, Connection: conn,
					})
				}
			}
			continue
		}

		if len(l.Destinations) == 0 {
			if !l.IsOutput {
				return nil, fmt.Errorf("dangling line %q: no destinations and not a primary output", l.Name)
			}
			continue
		}

		conn := l.Destinations[0]
		dest := conn.Gate
		if dest.Type == circuit.NOT || dest.Type == circuit.BUFF {
			continue
		}

		site := Branch
		if l.Source != nil {
			site = Stem
		}
		for _, sa := range controllingStuckAt(dest.Type) {
			f := Fault{Line: l, StuckAt: sa, Site: site}
			if site == Branch {
				f.Connection = conn
			}
			faults = append(faults, f)
		}
	}

	return faults, nil
}
