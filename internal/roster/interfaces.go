package roster

import (
	"context"
	"time"

	"physician-roster/internal/cp"
	"physician-roster/internal/models"
)

// Solver is the boundary to the constraint solving engine. Implementations
// translate a populated model into a Solution and carry no scheduling-domain
// logic, so the underlying engine can be swapped without touching any other
// component. The ctx deadline bounds the search; expiry yields an UNKNOWN
// status or the best feasible solution found so far, never a crash. A
// returned error is an engine fault, distinct from infeasibility.
type Solver interface {
	Solve(ctx context.Context, m *cp.Model) (*Solution, error)
}

// Valuation resolves a solved assignment variable to its 0/1 value.
type Valuation func(v cp.IntVar) int64

// Solution is the solver's outcome: a status, search statistics, and - only
// when the status permits reading values - a variable valuation.
type Solution struct {
	Status    models.SolverStatus
	Conflicts int64
	Branches  int64
	WallTime  time.Duration

	// Values is nil unless Status.Solved() is true.
	Values Valuation
}
