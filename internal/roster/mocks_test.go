package roster

import (
	"context"

	"physician-roster/internal/cp"
)

type MockSolver struct {
	SolveFunc func(ctx context.Context, m *cp.Model) (*Solution, error)

	Calls int
}

func (s *MockSolver) Solve(ctx context.Context, m *cp.Model) (*Solution, error) {
	s.Calls++
	return s.SolveFunc(ctx, m)
}
