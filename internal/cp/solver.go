package cp

import (
	"context"
	"errors"
	"time"
)

// Status classifies the outcome of a solve.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// Stats reports search effort for a completed solve.
type Stats struct {
	Conflicts int64
	Branches  int64
	WallTime  time.Duration
}

// Result carries the outcome of a solve. Variable values are only defined
// when Status is StatusOptimal or StatusFeasible.
type Result struct {
	Status    Status
	Stats     Stats
	Objective int64

	hasSolution bool
	values      []int64
}

// Value returns the value assigned to v in the best solution found.
func (r *Result) Value(v IntVar) int64 {
	return r.values[v]
}

// BoolValue reports whether v resolved to 1.
func (r *Result) BoolValue(v IntVar) bool {
	return r.values[v] == 1
}

// Solver runs a depth-first backtracking search with bound propagation over
// the linear constraints and branch-and-bound pruning on the objective.
// Search is deterministic: variables are branched in creation order, values
// ascending.
type Solver struct{}

func NewSolver() *Solver {
	return &Solver{}
}

// Solve searches for an assignment of every model variable. The ctx deadline
// bounds the search; when it expires the best incumbent found so far is
// returned as FEASIBLE, or UNKNOWN if none exists. An error indicates an
// engine fault (malformed model), never infeasibility.
func (s *Solver) Solve(ctx context.Context, m *Model) (*Result, error) {
	if m == nil {
		return nil, errors.New("cp: nil model")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	st := &searchState{
		m:   m,
		ctx: ctx,
		lo:  make([]int64, len(m.vars)),
		hi:  make([]int64, len(m.vars)),
	}
	for i, v := range m.vars {
		st.lo[i] = v.lo
		st.hi[i] = v.hi
	}

	st.search()

	res := &Result{
		Stats: Stats{
			Conflicts: st.conflicts,
			Branches:  st.branches,
			WallTime:  time.Since(start),
		},
	}
	switch {
	case st.timedOut && st.hasBest:
		res.Status = StatusFeasible
	case st.timedOut:
		res.Status = StatusUnknown
	case st.hasBest:
		res.Status = StatusOptimal
	default:
		res.Status = StatusInfeasible
	}
	if st.hasBest {
		res.hasSolution = true
		res.values = st.best
		res.Objective = st.bestObj
	}
	return res, nil
}

type searchState struct {
	m   *Model
	ctx context.Context

	lo []int64
	hi []int64

	best    []int64
	bestObj int64
	hasBest bool

	conflicts int64
	branches  int64

	timedOut bool
	stop     bool
}

func (st *searchState) search() {
	if st.stop || st.timedOut {
		return
	}
	if st.ctx.Err() != nil {
		st.timedOut = true
		return
	}

	if !st.propagate() {
		st.conflicts++
		return
	}

	v := st.firstUnfixed()
	if v < 0 {
		st.record()
		return
	}

	valLo, valHi := st.lo[v], st.hi[v]
	savedLo := make([]int64, len(st.lo))
	savedHi := make([]int64, len(st.hi))
	copy(savedLo, st.lo)
	copy(savedHi, st.hi)

	for val := valLo; val <= valHi; val++ {
		st.branches++
		st.lo[v], st.hi[v] = val, val
		st.search()
		if st.stop || st.timedOut {
			return
		}
		copy(st.lo, savedLo)
		copy(st.hi, savedHi)
	}
}

func (st *searchState) firstUnfixed() IntVar {
	for i := range st.lo {
		if st.lo[i] < st.hi[i] {
			return IntVar(i)
		}
	}
	return -1
}

// record stores the current (complete) assignment if it improves on the
// incumbent. For pure satisfaction models the first solution ends the search.
func (st *searchState) record() {
	obj := int64(0)
	if st.m.objective != nil {
		obj = st.evalExpr(*st.m.objective)
	}
	if !st.hasBest || obj < st.bestObj {
		if st.best == nil {
			st.best = make([]int64, len(st.lo))
		}
		copy(st.best, st.lo)
		st.bestObj = obj
		st.hasBest = true
	}
	if st.m.objective == nil {
		st.stop = true
	}
}

func (st *searchState) evalExpr(e LinearExpr) int64 {
	v := e.offset
	for _, t := range e.terms {
		v += t.coeff * st.lo[t.v]
	}
	return v
}

// propagate tightens variable bounds to a fixpoint. It returns false on a
// contradiction, including nodes whose objective lower bound cannot beat the
// incumbent.
func (st *searchState) propagate() bool {
	for {
		changed := false
		for i := range st.m.linear {
			ok, ch := st.propagateLinear(&st.m.linear[i])
			if !ok {
				return false
			}
			changed = changed || ch
		}
		for i := range st.m.products {
			ok, ch := st.propagateProduct(&st.m.products[i])
			if !ok {
				return false
			}
			changed = changed || ch
		}
		if st.hasBest && st.m.objective != nil {
			objLo, _ := st.exprRange(*st.m.objective)
			if objLo >= st.bestObj {
				return false
			}
		}
		if !changed {
			return true
		}
	}
}

func (st *searchState) exprRange(e LinearExpr) (int64, int64) {
	lo, hi := e.offset, e.offset
	for _, t := range e.terms {
		a := t.coeff * st.lo[t.v]
		b := t.coeff * st.hi[t.v]
		if a > b {
			a, b = b, a
		}
		lo += a
		hi += b
	}
	return lo, hi
}

func (st *searchState) propagateLinear(c *linearConstraint) (ok, changed bool) {
	sumLo, sumHi := st.exprRange(c.expr)
	if sumLo > c.hi || sumHi < c.lo {
		return false, false
	}

	for _, t := range c.expr.terms {
		tLo := t.coeff * st.lo[t.v]
		tHi := t.coeff * st.hi[t.v]
		if tLo > tHi {
			tLo, tHi = tHi, tLo
		}
		restLo := sumLo - tLo
		restHi := sumHi - tHi

		// c.lo - restHi <= coeff*v <= c.hi - restLo
		termLo := c.lo - restHi
		termHi := c.hi - restLo

		var newLo, newHi int64
		if t.coeff > 0 {
			newLo = ceilDiv(termLo, t.coeff)
			newHi = floorDiv(termHi, t.coeff)
		} else {
			newLo = ceilDiv(termHi, t.coeff)
			newHi = floorDiv(termLo, t.coeff)
		}
		if newLo > st.lo[t.v] {
			st.lo[t.v] = newLo
			changed = true
		}
		if newHi < st.hi[t.v] {
			st.hi[t.v] = newHi
			changed = true
		}
		if st.lo[t.v] > st.hi[t.v] {
			return false, false
		}
		if changed {
			// Bounds moved; recompute the running sums for later terms.
			sumLo, sumHi = st.exprRange(c.expr)
		}
	}
	return true, changed
}

func (st *searchState) propagateProduct(p *productConstraint) (ok, changed bool) {
	// Interval product of the operand corners.
	corners := [4]int64{
		st.lo[p.a] * st.lo[p.b],
		st.lo[p.a] * st.hi[p.b],
		st.hi[p.a] * st.lo[p.b],
		st.hi[p.a] * st.hi[p.b],
	}
	pLo, pHi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c < pLo {
			pLo = c
		}
		if c > pHi {
			pHi = c
		}
	}
	if pLo > st.lo[p.target] {
		st.lo[p.target] = pLo
		changed = true
	}
	if pHi < st.hi[p.target] {
		st.hi[p.target] = pHi
		changed = true
	}
	if st.lo[p.target] > st.hi[p.target] {
		return false, false
	}
	return true, changed
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
