// Package solver defines the narrow contract the fault-CNF builder needs
// from a SAT solver, and an adapter onto github.com/go-air/gini.
package solver

import "context"

// Status is the outcome of a SolvePrepared call.
type Status int

const (
	Unknown Status = iota
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Solver is the minimal interface the core needs: reset, a variable-count
// hint, clause accumulation, a single blocking solve respecting ctx's
// deadline, and per-variable value readback. No incrementality is
// assumed or required.
type Solver interface {
	Reset()
	Reserve(maxVarHint int)
	AddClause(lits ...int)
	SolvePrepared(ctx context.Context) Status
	Value(v int) int8
}
