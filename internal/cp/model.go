// Package cp is a small constraint programming engine: boolean and bounded
// integer variables, linear constraints, multiplication equality, and a
// linear minimization objective. Consumers build a Model and hand it to a
// Solver; the search itself is an implementation detail behind that boundary.
package cp

import "fmt"

// IntVar is a handle to an integer decision variable in a Model. Boolean
// variables are integer variables with domain {0, 1}.
type IntVar int

type varDef struct {
	name string
	lo   int64
	hi   int64
}

type term struct {
	v     IntVar
	coeff int64
}

// LinearExpr is an integer linear expression: a sum of coefficient*variable
// terms plus a constant offset. The zero value is the empty expression.
type LinearExpr struct {
	terms  []term
	offset int64
}

// Sum builds an expression adding the given variables with coefficient 1.
func Sum(vars ...IntVar) LinearExpr {
	terms := make([]term, 0, len(vars))
	for _, v := range vars {
		terms = append(terms, term{v: v, coeff: 1})
	}
	return LinearExpr{terms: terms}
}

// Add returns a copy of e with v added (coefficient 1).
func (e LinearExpr) Add(v IntVar) LinearExpr {
	return e.AddTerm(v, 1)
}

// AddTerm returns a copy of e with coeff*v added.
func (e LinearExpr) AddTerm(v IntVar, coeff int64) LinearExpr {
	terms := make([]term, 0, len(e.terms)+1)
	terms = append(terms, e.terms...)
	terms = append(terms, term{v: v, coeff: coeff})
	return LinearExpr{terms: terms, offset: e.offset}
}

// AddConstant returns a copy of e with the constant offset increased by c.
func (e LinearExpr) AddConstant(c int64) LinearExpr {
	terms := make([]term, len(e.terms))
	copy(terms, e.terms)
	return LinearExpr{terms: terms, offset: e.offset + c}
}

// Sub returns e - o as a new expression.
func (e LinearExpr) Sub(o LinearExpr) LinearExpr {
	terms := make([]term, 0, len(e.terms)+len(o.terms))
	terms = append(terms, e.terms...)
	for _, t := range o.terms {
		terms = append(terms, term{v: t.v, coeff: -t.coeff})
	}
	return LinearExpr{terms: terms, offset: e.offset - o.offset}
}

type linearConstraint struct {
	expr LinearExpr
	lo   int64
	hi   int64
}

// productConstraint enforces target == a * b.
type productConstraint struct {
	target IntVar
	a      IntVar
	b      IntVar
}

// Model collects variables, constraints and an optional minimization
// objective. A Model is not safe for concurrent mutation; each solving run
// owns its own instance.
type Model struct {
	vars      []varDef
	linear    []linearConstraint
	products  []productConstraint
	objective *LinearExpr
}

func NewModel() *Model {
	return &Model{}
}

// NewBoolVar adds a boolean (0/1) decision variable.
func (m *Model) NewBoolVar(name string) IntVar {
	return m.NewIntVar(0, 1, name)
}

// NewIntVar adds an integer variable with inclusive domain [lo, hi].
func (m *Model) NewIntVar(lo, hi int64, name string) IntVar {
	m.vars = append(m.vars, varDef{name: name, lo: lo, hi: hi})
	return IntVar(len(m.vars) - 1)
}

// NumVars reports the number of variables added so far.
func (m *Model) NumVars() int {
	return len(m.vars)
}

// Name returns the name given to v at creation.
func (m *Model) Name(v IntVar) string {
	return m.vars[v].name
}

// AddLinearConstraint constrains expr to lie in [lo, hi].
func (m *Model) AddLinearConstraint(expr LinearExpr, lo, hi int64) {
	m.linear = append(m.linear, linearConstraint{expr: expr, lo: lo, hi: hi})
}

// AddAtLeast constrains expr >= k.
func (m *Model) AddAtLeast(expr LinearExpr, k int64) {
	_, hi := m.exprBounds(expr)
	m.AddLinearConstraint(expr, k, hi)
}

// AddAtMost constrains expr <= k.
func (m *Model) AddAtMost(expr LinearExpr, k int64) {
	lo, _ := m.exprBounds(expr)
	m.AddLinearConstraint(expr, lo, k)
}

// AddEquals constrains expr == k.
func (m *Model) AddEquals(expr LinearExpr, k int64) {
	m.AddLinearConstraint(expr, k, k)
}

// AddEquality constrains a == b.
func (m *Model) AddEquality(a, b LinearExpr) {
	m.AddLinearConstraint(a.Sub(b), 0, 0)
}

// AddMultiplicationEquality constrains target == a * b. Passing the same
// variable for a and b yields a quadratic (square) equality.
func (m *Model) AddMultiplicationEquality(target, a, b IntVar) {
	m.products = append(m.products, productConstraint{target: target, a: a, b: b})
}

// Minimize sets the objective to minimize. Later calls replace earlier ones.
func (m *Model) Minimize(expr LinearExpr) {
	m.objective = &expr
}

// exprBounds computes the implied bounds of expr from variable domains.
func (m *Model) exprBounds(expr LinearExpr) (int64, int64) {
	lo, hi := expr.offset, expr.offset
	for _, t := range expr.terms {
		a := t.coeff * m.vars[t.v].lo
		b := t.coeff * m.vars[t.v].hi
		if a > b {
			a, b = b, a
		}
		lo += a
		hi += b
	}
	return lo, hi
}

func (m *Model) validate() error {
	for i, v := range m.vars {
		if v.lo > v.hi {
			return fmt.Errorf("variable %q (#%d) has empty domain [%d, %d]", v.name, i, v.lo, v.hi)
		}
	}
	check := func(v IntVar) error {
		if int(v) < 0 || int(v) >= len(m.vars) {
			return fmt.Errorf("reference to unknown variable #%d", v)
		}
		return nil
	}
	// A linear constraint whose interval is empty is unsatisfiable, not
	// malformed; the search reports it as infeasibility.
	for _, c := range m.linear {
		for _, t := range c.expr.terms {
			if err := check(t.v); err != nil {
				return err
			}
		}
	}
	for _, p := range m.products {
		for _, v := range []IntVar{p.target, p.a, p.b} {
			if err := check(v); err != nil {
				return err
			}
		}
	}
	if m.objective != nil {
		for _, t := range m.objective.terms {
			if err := check(t.v); err != nil {
				return err
			}
		}
	}
	return nil
}
