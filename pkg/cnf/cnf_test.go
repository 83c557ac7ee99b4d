package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/sat-atpg/pkg/cnf"
)

func TestLiteralMapping(t *testing.T) {
	require.Equal(t, 1, cnf.Literal(0))
	require.Equal(t, 5, cnf.Literal(4))
}

func TestAddClauseTracksMaxVar(t *testing.T) {
	c := cnf.New()
	c.AddClause(1, -2, 3)
	require.Equal(t, 3, c.MaxVar)
	c.AddClause(-5)
	require.Equal(t, 5, c.MaxVar)
}

func TestIsSatisfied(t *testing.T) {
	c := cnf.New()
	c.AddClause(1, 2)
	c.AddClause(-1, -2)

	require.True(t, c.IsSatisfied([]bool{false, true, false}))
	require.False(t, c.IsSatisfied([]bool{false, false, false}))
	require.False(t, c.IsSatisfied([]bool{false, true, true}))
}

func TestDIMACSFormat(t *testing.T) {
	c := cnf.New()
	c.AddClause(1, -2)
	c.AddClause(2)

	dimacs := c.DIMACS()
	require.Contains(t, dimacs, "p cnf 2 2")
	require.Contains(t, dimacs, "1 -2 0")
	require.Contains(t, dimacs, "2 0")
}

func TestAddClausesMerges(t *testing.T) {
	a := cnf.New()
	a.AddClause(1, 2)
	b := cnf.New()
	b.AddClause(3, 4)

	a.AddClauses(b)
	require.Len(t, a.Clauses, 2)
	require.Equal(t, 4, a.MaxVar)
}
