package roster

import (
	"time"

	"github.com/google/uuid"

	"physician-roster/internal/models"
)

// BuildReport decodes a solver solution into the schedule report: for every
// day in ascending order, for every shift in ascending order, the physicians
// whose assignment variable resolved to 1, in ascending ID order. On a
// non-solved status no variable is ever read; the report carries only the
// statistics and a no-solution marker.
func BuildReport(g *Grid, sol *Solution) *models.ScheduleReport {
	report := &models.ScheduleReport{
		RunID:       uuid.New(),
		GeneratedAt: time.Now(),
		Stats: models.SolveStats{
			Status:    sol.Status,
			Conflicts: sol.Conflicts,
			Branches:  sol.Branches,
			WallTime:  sol.WallTime,
		},
	}
	if !sol.Status.Solved() || sol.Values == nil {
		return report
	}

	report.Solved = true
	report.Days = make([]models.DaySchedule, 0, g.NumDays)
	for d := 0; d < g.NumDays; d++ {
		day := models.DaySchedule{Day: d, Shifts: make([]models.ShiftAssignment, 0, g.NumShifts)}
		for s := 0; s < g.NumShifts; s++ {
			assigned := models.ShiftAssignment{Shift: s}
			for p := 0; p < g.NumPhysicians; p++ {
				if sol.Values(g.Var(p, d, s)) == 1 {
					assigned.PhysicianIDs = append(assigned.PhysicianIDs, p)
				}
			}
			day.Shifts = append(day.Shifts, assigned)
		}
		report.Days = append(report.Days, day)
	}
	return report
}
