// Package solver binds the roster.Solver boundary to the in-process cp
// engine. It is a pure translation layer: options in, statuses out, no
// scheduling-domain logic.
package solver

import (
	"context"
	"time"

	"physician-roster/internal/cp"
	"physician-roster/internal/models"
	"physician-roster/internal/roster"
)

// Engine is the default roster.Solver implementation. A zero time limit
// leaves the search bounded only by the caller's ctx.
type Engine struct {
	timeLimit time.Duration
}

func New(timeLimit time.Duration) *Engine {
	return &Engine{timeLimit: timeLimit}
}

// Solve submits the model to the cp engine and maps its outcome onto the
// domain-facing solution. Engine faults come back as errors; infeasibility
// and timeouts are statuses, never errors.
func (e *Engine) Solve(ctx context.Context, m *cp.Model) (*roster.Solution, error) {
	if e.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeLimit)
		defer cancel()
	}

	res, err := cp.NewSolver().Solve(ctx, m)
	if err != nil {
		return nil, err
	}

	sol := &roster.Solution{
		Status:    mapStatus(res.Status),
		Conflicts: res.Stats.Conflicts,
		Branches:  res.Stats.Branches,
		WallTime:  res.Stats.WallTime,
	}
	if sol.Status.Solved() {
		sol.Values = res.Value
	}
	return sol, nil
}

func mapStatus(s cp.Status) models.SolverStatus {
	switch s {
	case cp.StatusOptimal:
		return models.StatusOptimal
	case cp.StatusFeasible:
		return models.StatusFeasible
	case cp.StatusInfeasible:
		return models.StatusInfeasible
	default:
		return models.StatusUnknown
	}
}
