// Package report renders faults, witnesses, and run statistics as the
// human-readable text the CLI prints.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
	"github.com/fyerfyer/sat-atpg/pkg/solver"
)

// FaultLabel renders a fault as "<line>/O S-A-<bit>" for stems/primary
// outputs or "<sink>/I<index+1> S-A-<bit>" for branches.
func FaultLabel(f fault.Fault) string {
	if f.Site == fault.Branch {
		return fmt.Sprintf("%s/I%d S-A-%d", f.Connection.Gate.Output.Name, f.Connection.InputIdx+1, f.StuckAt)
	}
	return fmt.Sprintf("%s/O S-A-%d", f.Line.Name, f.StuckAt)
}

// DetectabilityTag renders the per-fault detectability banner.
func DetectabilityTag(status solver.Status) string {
	if status == solver.Sat {
		return "===DETECTABLE==="
	}
	return "===REDUNDANT===="
}

// Witness renders the satisfying assignment of every primary input as a
// tab-indented "<name> <bit>", one per line, 0 when the solver's value is
// <= 0 and 1 otherwise.
func Witness(g *circuit.Graph, s solver.Solver) []string {
	lines := make([]string, 0, len(g.Inputs()))
	for _, in := range g.Inputs() {
		val := s.Value(in.ID + 1)
		bit := 0
		if val > 0 {
			bit = 1
		}
		lines = append(lines, fmt.Sprintf("\t%s %d", in.Name, bit))
	}
	return lines
}

// Timing accumulates the phase durations of a full run.
type Timing struct {
	FaultGeneration time.Duration
	CNFGeneration   time.Duration
	CNFSolving      time.Duration
	WorstSolve      time.Duration
	Total           time.Duration
}

// Counts tallies fault outcomes.
type Counts struct {
	Total        int
	Detectable   int
	Undetectable int
	Unknown      int
}

// Summary is the end-of-run report.
type Summary struct {
	Timing Timing
	Counts Counts
}

func ms(d time.Duration) int64 { return d.Milliseconds() }

// Short renders the one-line summary form.
func (s Summary) Short() string {
	return fmt.Sprintf(
		"time (total/gen/solve): %d %d %d faults (total/undetectable): %d %d",
		ms(s.Timing.Total), ms(s.Timing.CNFGeneration), ms(s.Timing.CNFSolving),
		s.Counts.Total, s.Counts.Undetectable,
	)
}

// Verbose renders the multi-line summary form.
func (s Summary) Verbose() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Timing:\n")
	fmt.Fprintf(&b, "  Fault generation: %dms\n", ms(s.Timing.FaultGeneration))
	fmt.Fprintf(&b, "  CNF generation: %dms\n", ms(s.Timing.CNFGeneration))
	fmt.Fprintf(&b, "  CNF solving: %dms\n", ms(s.Timing.CNFSolving))
	fmt.Fprintf(&b, "  Slowest solve time: %dms\n", ms(s.Timing.WorstSolve))
	fmt.Fprintf(&b, "  Total: %dms\n", ms(s.Timing.Total))
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Total: %d\n", s.Counts.Total)
	fmt.Fprintf(&b, "Detectable: %d\n", s.Counts.Detectable)
	fmt.Fprintf(&b, "Undetectable: %d\n", s.Counts.Undetectable)
	fmt.Fprintf(&b, "UNKNOWN: %d\n", s.Counts.Unknown)
	return b.String()
}
