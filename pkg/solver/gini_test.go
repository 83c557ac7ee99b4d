package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/sat-atpg/pkg/solver"
)

func TestGiniSolverSatisfiable(t *testing.T) {
	s := solver.NewGiniSolver()
	s.AddClause(1, 2)
	s.AddClause(-1, 2)

	status := s.SolvePrepared(context.Background())
	require.Equal(t, solver.Sat, status)
	require.EqualValues(t, 1, s.Value(2))
}

func TestGiniSolverUnsatisfiable(t *testing.T) {
	s := solver.NewGiniSolver()
	s.AddClause(1)
	s.AddClause(-1)

	status := s.SolvePrepared(context.Background())
	require.Equal(t, solver.Unsat, status)
}

func TestGiniSolverResetClearsClauses(t *testing.T) {
	s := solver.NewGiniSolver()
	s.AddClause(1)
	s.AddClause(-1)
	require.Equal(t, solver.Unsat, s.SolvePrepared(context.Background()))

	s.Reset()
	s.AddClause(1)
	require.Equal(t, solver.Sat, s.SolvePrepared(context.Background()))
}
