package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physician-roster/internal/cp"
	"physician-roster/internal/models"
)

func TestSolve_MapsSolvedStatus(t *testing.T) {
	m := cp.NewModel()
	x := m.NewBoolVar("x")
	m.AddEquals(cp.Sum(x), 1)

	sol, err := New(time.Second).Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, models.StatusOptimal, sol.Status)
	require.NotNil(t, sol.Values)
	assert.Equal(t, int64(1), sol.Values(x))
}

func TestSolve_MapsInfeasibleStatus(t *testing.T) {
	m := cp.NewModel()
	x := m.NewBoolVar("x")
	m.AddEquals(cp.Sum(x), 1)
	m.AddEquals(cp.Sum(x), 0)

	sol, err := New(time.Second).Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, models.StatusInfeasible, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestSolve_ExpiredContextIsUnknown(t *testing.T) {
	m := cp.NewModel()
	m.NewBoolVar("x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := New(0).Solve(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnknown, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestSolve_EngineFaultIsError(t *testing.T) {
	_, err := New(time.Second).Solve(context.Background(), nil)
	assert.Error(t, err)
}
