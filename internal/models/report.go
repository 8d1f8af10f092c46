package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SolveStats summarizes the search effort behind a scheduling run.
type SolveStats struct {
	Status    SolverStatus  `json:"status"`
	Conflicts int64         `json:"conflicts"`
	Branches  int64         `json:"branches"`
	WallTime  time.Duration `json:"wall_time"`
}

// ShiftAssignment lists the physicians working one shift of one day, in
// ascending ID order.
type ShiftAssignment struct {
	Shift        int   `json:"shift"`
	PhysicianIDs []int `json:"physician_ids"`
}

// DaySchedule is the roster for a single day, shifts in ascending order.
type DaySchedule struct {
	Day    int               `json:"day"`
	Shifts []ShiftAssignment `json:"shifts"`
}

// ScheduleReport is the terminal product of a scheduling run: the decoded
// roster (when one exists) plus solver statistics. It is held in memory only;
// nothing is persisted between runs.
type ScheduleReport struct {
	RunID       uuid.UUID     `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Solved      bool          `json:"solved"`
	Days        []DaySchedule `json:"days,omitempty"`
	Stats       SolveStats    `json:"stats"`
}

// Render formats the report for display. Days, shifts and physicians are
// 1-indexed in the output.
func (r *ScheduleReport) Render() string {
	var b strings.Builder
	if r.Solved {
		b.WriteString("Solution found:\n")
		for _, day := range r.Days {
			fmt.Fprintf(&b, "Day %d:\n", day.Day+1)
			for _, sh := range day.Shifts {
				fmt.Fprintf(&b, "  Shift %d:", sh.Shift+1)
				for _, p := range sh.PhysicianIDs {
					fmt.Fprintf(&b, " P%d", p+1)
				}
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("No solution found.\n")
	}
	b.WriteString("\nStatistics\n")
	fmt.Fprintf(&b, "  - Status    : %s\n", r.Stats.Status)
	fmt.Fprintf(&b, "  - Conflicts : %d\n", r.Stats.Conflicts)
	fmt.Fprintf(&b, "  - Branches  : %d\n", r.Stats.Branches)
	fmt.Fprintf(&b, "  - Wall time : %f s\n", r.Stats.WallTime.Seconds())
	return b.String()
}
