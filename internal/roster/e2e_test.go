package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physician-roster/internal/models"
	"physician-roster/internal/roster"
	"physician-roster/internal/solver"
)

// End-to-end runs through the real engine adapter.

func TestSchedule_FullCatalogFeasibleInstance(t *testing.T) {
	// 3 physicians, 3 days, 2 shifts, all policies active. A rotation
	// exists (night: P1, P2, P3 across the days; mornings filled by the
	// rested physician), every total equals 2, so the optimum is a zero
	// objective.
	cfg := roster.Config{
		Physicians:      models.DefaultPhysicians(3, nil),
		Days:            3,
		Shifts:          2,
		NightShift:      1,
		MorningShift:    0,
		PeakShifts:      nil,
		PeakMinimum:     1,
		BaselineMinimum: 1,
		WeekendPair:     [2]int{5, 6},
	}

	report, err := roster.NewScheduler(cfg, solver.New(time.Minute)).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, models.StatusOptimal, report.Stats.Status)
	require.True(t, report.Solved)
	require.Len(t, report.Days, 3)

	nightCounts := make([]int, 3)
	for _, day := range report.Days {
		workedToday := make(map[int]int)
		for _, sh := range day.Shifts {
			assert.GreaterOrEqual(t, len(sh.PhysicianIDs), 1,
				"day %d shift %d below coverage", day.Day, sh.Shift)
			for _, p := range sh.PhysicianIDs {
				workedToday[p]++
				if sh.Shift == cfg.NightShift {
					nightCounts[p]++
				}
			}
		}
		for p, n := range workedToday {
			assert.LessOrEqual(t, n, 1, "physician %d double-booked on day %d", p, day.Day)
		}
	}
	assert.Equal(t, nightCounts[0], nightCounts[1])
	assert.Equal(t, nightCounts[1], nightCounts[2])
}

func TestSchedule_DefaultInstanceHasNoSolution(t *testing.T) {
	// The reference instance carries a latent contradiction: the two
	// senior physicians are pinned to zero night shifts while the pairwise
	// fairness equalities force every physician to that same count, so no
	// one may work nights at all and night coverage cannot be met. The
	// engine proves this by propagation alone.
	report, err := roster.NewScheduler(roster.DefaultConfig(), solver.New(time.Minute)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.StatusInfeasible, report.Stats.Status)
	assert.False(t, report.Solved)
	assert.Contains(t, report.Render(), "No solution found.")
}

func TestSchedule_PeakDemandAbovePanelIsInfeasible(t *testing.T) {
	cfg := roster.Config{
		Physicians:      models.DefaultPhysicians(2, nil),
		Days:            2,
		Shifts:          3,
		NightShift:      2,
		MorningShift:    0,
		PeakShifts:      []int{0, 1},
		PeakMinimum:     3, // more than the whole panel
		BaselineMinimum: 1,
		WeekendPair:     [2]int{5, 6},
	}

	report, err := roster.NewScheduler(cfg, solver.New(time.Minute)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.StatusInfeasible, report.Stats.Status)
	assert.False(t, report.Solved)
	assert.Contains(t, report.Render(), "No solution found.")
}

func TestSchedule_PeakCoverageExceedsDailyCapacity(t *testing.T) {
	// Four physicians cannot staff 2+2+1 slots a day at one shift each.
	cfg := roster.Config{
		Physicians:      models.DefaultPhysicians(4, nil),
		Days:            2,
		Shifts:          3,
		NightShift:      2,
		MorningShift:    0,
		PeakShifts:      []int{0, 1},
		PeakMinimum:     2,
		BaselineMinimum: 1,
		WeekendPair:     [2]int{5, 6},
	}

	report, err := roster.NewScheduler(cfg, solver.New(time.Minute)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.StatusInfeasible, report.Stats.Status)
	assert.False(t, report.Solved)
}

func BenchmarkSchedule_SmallInstance(b *testing.B) {
	cfg := roster.Config{
		Physicians:      models.DefaultPhysicians(3, nil),
		Days:            3,
		Shifts:          2,
		NightShift:      1,
		MorningShift:    0,
		PeakMinimum:     1,
		BaselineMinimum: 1,
		WeekendPair:     [2]int{5, 6},
	}
	sched := roster.NewScheduler(cfg, solver.New(time.Minute))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sched.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func TestSchedule_CancelledContextReportsUnknown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := roster.NewScheduler(roster.DefaultConfig(), solver.New(0)).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.StatusUnknown, report.Stats.Status)
	assert.False(t, report.Solved)
	assert.Contains(t, report.Render(), "No solution found.")
}
