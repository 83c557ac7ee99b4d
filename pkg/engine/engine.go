// Package engine orchestrates a full ATPG run: enumerate faults, build
// and solve each fault's CNF, and collect statistics.
package engine

import (
	"context"
	"time"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
	"github.com/fyerfyer/sat-atpg/pkg/fault"
	"github.com/fyerfyer/sat-atpg/pkg/faultcnf"
	"github.com/fyerfyer/sat-atpg/pkg/report"
	"github.com/fyerfyer/sat-atpg/pkg/solver"
	"github.com/fyerfyer/sat-atpg/pkg/telemetry"
)

// Config controls one run of the engine.
type Config struct {
	ThresholdRatio     float64
	TimeBudget         time.Duration // 0 means unbounded
	WriteFaults        bool
	WriteSolutions     bool
	WriteDetectability bool
}

// FaultOutcome is one fault's final status, produced in enumeration
// order.
type FaultOutcome struct {
	Fault    fault.Fault
	Status   solver.Status
	Witness  []string
}

// Result is a full run's output.
type Result struct {
	Outcomes []FaultOutcome
	Summary  report.Summary
}

// Run enumerates every fault in g, builds and solves its CNF via sv, and
// returns the full per-fault outcome list plus summary statistics.
func Run(g *circuit.Graph, cfg Config, sv solver.Solver, log *telemetry.Logger) (*Result, error) {
	start := time.Now()

	genStart := time.Now()
	faults, err := fault.Enumerate(g)
	if err != nil {
		return nil, err
	}
	faultGenElapsed := time.Since(genStart)

	builder := faultcnf.NewBuilder(g, cfg.ThresholdRatio)

	result := &Result{Outcomes: make([]FaultOutcome, 0, len(faults))}

	var cnfElapsed, solveElapsed, worstSolve time.Duration

	for _, f := range faults {
		result.Summary.Counts.Total++

		if cfg.TimeBudget > 0 && time.Since(start) > cfg.TimeBudget {
			result.Summary.Counts.Unknown++
			result.Outcomes = append(result.Outcomes, FaultOutcome{Fault: f, Status: solver.Unknown})
			continue
		}

		if cfg.WriteFaults {
			log.WithField("fault", report.FaultLabel(f)).Info("processing fault")
		}

		cnfStart := time.Now()
		sv.Reset()
		builder.MakeFault(f, sv)
		cnfElapsed += time.Since(cnfStart)

		ctx := context.Background()
		if cfg.TimeBudget > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithDeadline(ctx, start.Add(cfg.TimeBudget))
			defer cancel()
		}

		solveStart := time.Now()
		status := sv.SolvePrepared(ctx)
		solveDuration := time.Since(solveStart)
		solveElapsed += solveDuration
		if solveDuration > worstSolve {
			worstSolve = solveDuration
		}

		outcome := FaultOutcome{Fault: f, Status: status}

		switch status {
		case solver.Sat:
			result.Summary.Counts.Detectable++
			if cfg.WriteSolutions {
				outcome.Witness = report.Witness(g, sv)
				for _, line := range outcome.Witness {
					log.Info(line)
				}
			}
		case solver.Unsat:
			result.Summary.Counts.Undetectable++
		default:
			result.Summary.Counts.Unknown++
		}

		if cfg.WriteDetectability {
			log.WithField("fault", report.FaultLabel(f)).Info(report.DetectabilityTag(status))
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Summary.Timing = report.Timing{
		FaultGeneration: faultGenElapsed,
		CNFGeneration:   cnfElapsed,
		CNFSolving:      solveElapsed,
		WorstSolve:      worstSolve,
		Total:           time.Since(start),
	}

	return result, nil
}
