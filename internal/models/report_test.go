package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender_SolvedReport(t *testing.T) {
	report := &ScheduleReport{
		Solved: true,
		Days: []DaySchedule{
			{Day: 0, Shifts: []ShiftAssignment{
				{Shift: 0, PhysicianIDs: []int{0, 2}},
				{Shift: 1, PhysicianIDs: []int{1}},
			}},
		},
		Stats: SolveStats{
			Status:   StatusOptimal,
			Branches: 5,
			WallTime: 1500 * time.Microsecond,
		},
	}

	out := report.Render()
	assert.Contains(t, out, "Solution found:")
	assert.Contains(t, out, "Day 1:\n  Shift 1: P1 P3\n  Shift 2: P2\n")
	assert.Contains(t, out, "  - Status    : OPTIMAL\n")
	assert.Contains(t, out, "  - Branches  : 5\n")
	assert.Contains(t, out, "  - Wall time : 0.001500 s\n")
}

func TestRender_NoSolution(t *testing.T) {
	report := &ScheduleReport{
		Stats: SolveStats{Status: StatusInfeasible, Conflicts: 9},
	}

	out := report.Render()
	assert.Contains(t, out, "No solution found.\n")
	assert.Contains(t, out, "  - Status    : INFEASIBLE\n")
	assert.Contains(t, out, "  - Conflicts : 9\n")
	assert.NotContains(t, out, "Day 1")
}

func TestDefaultPhysicians(t *testing.T) {
	panel := DefaultPhysicians(4, []int{2, 3})

	assert.Len(t, panel, 4)
	assert.Equal(t, "P1", panel[0].Name)
	assert.Equal(t, "P3", panel[2].Label())
	assert.True(t, panel[0].NightShiftEligible)
	assert.True(t, panel[1].NightShiftEligible)
	assert.False(t, panel[2].NightShiftEligible)
	assert.False(t, panel[3].NightShiftEligible)
}
