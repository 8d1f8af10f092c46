// Package roster formulates the weekly physician scheduling problem: the
// assignment grid, the constraint catalog, the workload fairness objective,
// and the decoding of a solved model back into a schedule report.
package roster

import (
	"errors"
	"fmt"

	"physician-roster/internal/cp"
)

// ErrInvalidConfig marks configuration errors: bad dimensions or indices
// outside the grid's declared bounds. These fail before any solving happens.
var ErrInvalidConfig = errors.New("invalid configuration")

// Grid is the dense assignment variable grid: one boolean decision variable
// per (physician, day, shift) triple. It is created once per scheduling run,
// owned exclusively by that run, and discarded with it.
type Grid struct {
	NumPhysicians int
	NumDays       int
	NumShifts     int

	vars []cp.IntVar
}

// BuildGrid allocates one boolean variable per (p, d, s) triple on m. Every
// triple in the Cartesian product exists exactly once; values stay
// unconstrained until the catalog functions run.
func BuildGrid(m *cp.Model, physicians, days, shifts int) (*Grid, error) {
	if physicians <= 0 || days <= 0 || shifts <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %d physicians, %d days, %d shifts",
			ErrInvalidConfig, physicians, days, shifts)
	}
	g := &Grid{
		NumPhysicians: physicians,
		NumDays:       days,
		NumShifts:     shifts,
		vars:          make([]cp.IntVar, physicians*days*shifts),
	}
	for p := 0; p < physicians; p++ {
		for d := 0; d < days; d++ {
			for s := 0; s < shifts; s++ {
				g.vars[g.index(p, d, s)] = m.NewBoolVar(fmt.Sprintf("shift_p%d_d%d_s%d", p, d, s))
			}
		}
	}
	return g, nil
}

func (g *Grid) index(p, d, s int) int {
	return (p*g.NumDays+d)*g.NumShifts + s
}

// Var returns the assignment variable for physician p, day d, shift s.
// Indices must be in range; catalog functions validate their parameters
// before iterating.
func (g *Grid) Var(p, d, s int) cp.IntVar {
	return g.vars[g.index(p, d, s)]
}

func (g *Grid) checkShift(s int) error {
	if s < 0 || s >= g.NumShifts {
		return fmt.Errorf("%w: shift index %d outside [0, %d)", ErrInvalidConfig, s, g.NumShifts)
	}
	return nil
}

func (g *Grid) checkDay(d int) error {
	if d < 0 || d >= g.NumDays {
		return fmt.Errorf("%w: day index %d outside [0, %d)", ErrInvalidConfig, d, g.NumDays)
	}
	return nil
}

// NightShiftCount is the number of night shifts physician p works, as a
// linear expression over the grid. Recomputed on demand, never stored.
func (g *Grid) NightShiftCount(p, nightShift int) cp.LinearExpr {
	e := cp.LinearExpr{}
	for d := 0; d < g.NumDays; d++ {
		e = e.Add(g.Var(p, d, nightShift))
	}
	return e
}

// TotalShiftCount is the total number of shifts physician p works across the
// whole horizon, as a linear expression over the grid.
func (g *Grid) TotalShiftCount(p int) cp.LinearExpr {
	e := cp.LinearExpr{}
	for d := 0; d < g.NumDays; d++ {
		for s := 0; s < g.NumShifts; s++ {
			e = e.Add(g.Var(p, d, s))
		}
	}
	return e
}
