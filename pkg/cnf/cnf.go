// Package cnf provides a materialized conjunctive-normal-form clause
// container and the DIMACS text serialization of it.
package cnf

import (
	"fmt"
	"strconv"
	"strings"
)

// Clause is a disjunction of literals. A positive literal v asserts
// variable v true; a negative literal -v asserts it false. Variable 0 is
// never used (DIMACS reserves 0 as the clause terminator).
type Clause []int

// CNF is a materialized set of clauses together with the highest variable
// index referenced by any of them.
type CNF struct {
	Clauses  []Clause
	MaxVar   int
}

// New returns an empty CNF.
func New() *CNF {
	return &CNF{}
}

// AddClause appends a clause and updates MaxVar.
func (c *CNF) AddClause(lits ...int) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	c.Clauses = append(c.Clauses, clause)
	for _, l := range lits {
		v := l
		if v < 0 {
			v = -v
		}
		if v > c.MaxVar {
			c.MaxVar = v
		}
	}
}

// AddClauses appends every clause from other, bumping this CNF's MaxVar
// if other's is larger.
func (c *CNF) AddClauses(other *CNF) {
	c.Clauses = append(c.Clauses, other.Clauses...)
	if other.MaxVar > c.MaxVar {
		c.MaxVar = other.MaxVar
	}
}

// Reserve raises MaxVar to at least v without adding any clause. Used to
// pre-declare the variable range a solver should allocate for, even when
// some variables never appear in a clause body.
func (c *CNF) Reserve(v int) {
	if v > c.MaxVar {
		c.MaxVar = v
	}
}

// Literal returns the DIMACS literal for the positive polarity of a
// circuit line id: variable numbering is 1-based, so line id maps to
// id+1.
func Literal(lineID int) int {
	return lineID + 1
}

// IsSatisfied reports whether assignment (mapping variable -> truth
// value, 1-indexed, index 0 unused) satisfies every clause.
func (c *CNF) IsSatisfied(assignment []bool) bool {
	for _, clause := range c.Clauses {
		ok := false
		for _, l := range clause {
			v := l
			neg := false
			if v < 0 {
				v = -v
				neg = true
			}
			if v >= len(assignment) {
				continue
			}
			val := assignment[v]
			if neg {
				val = !val
			}
			if val {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// DIMACS renders the standard "p cnf <maxvar> <numclauses>" text format.
func (c *CNF) DIMACS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", c.MaxVar, len(c.Clauses))
	for _, clause := range c.Clauses {
		parts := make([]string, 0, len(clause)+1)
		for _, l := range clause {
			parts = append(parts, strconv.Itoa(l))
		}
		parts = append(parts, "0")
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Sink receives clauses one at a time, without requiring the whole CNF to
// be materialized in memory. *CNF and solver-backed streaming adapters
// both implement it.
type Sink interface {
	AddClause(lits ...int)
	Reserve(v int)
}
