package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniSolver streams clauses directly into a github.com/go-air/gini
// instance using DIMACS-convention literals (the same convention our CNF
// already uses: positive literal v selects variable v true; gini's
// z.Dimacs converts between the two).
type GiniSolver struct {
	g *gini.Gini
}

// NewGiniSolver returns a solver with an empty clause set.
func NewGiniSolver() *GiniSolver {
	return &GiniSolver{g: gini.New()}
}

// Reset discards all learned clauses and assignments by swapping in a
// fresh instance; gini has no cheaper incremental clause-set removal.
func (s *GiniSolver) Reset() {
	s.g = gini.New()
}

// Reserve registers maxVarHint with the solver via a tautological
// two-literal clause (v or -v), so later Value lookups on unused variables are still
// well-defined.
func (s *GiniSolver) Reserve(maxVarHint int) {
	if maxVarHint <= 0 {
		return
	}
	s.g.Add(z.Dimacs(maxVarHint))
	s.g.Add(z.Dimacs(-maxVarHint))
	s.g.Add(0)
}

// AddClause adds one clause, terminating it for gini as every clause must
// be.
func (s *GiniSolver) AddClause(lits ...int) {
	for _, l := range lits {
		s.g.Add(z.Dimacs(l))
	}
	s.g.Add(0)
}

// SolvePrepared runs the solver, bounding it to ctx's deadline when one is
// set.
func (s *GiniSolver) SolvePrepared(ctx context.Context) Status {
	var result int
	if deadline, ok := ctx.Deadline(); ok {
		result = s.g.Try(time.Until(deadline))
	} else {
		result = s.g.Solve()
	}

	switch result {
	case 1:
		return Sat
	case -1:
		return Unsat
	default:
		return Unknown
	}
}

// Value returns +1 if variable v is true in the last solution, -1
// otherwise (matching the {-1,+1} convention used throughout the core).
func (s *GiniSolver) Value(v int) int8 {
	if s.g.Value(z.Dimacs(v)) {
		return 1
	}
	return -1
}
