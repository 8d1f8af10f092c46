package roster

import (
	"fmt"

	"physician-roster/internal/cp"
)

// AddWorkloadBalanceObjective sets the fairness metric to minimize: the sum
// over all unordered physician pairs of the squared difference in total
// shift counts. The engine takes only linear objectives, so each pair gets
// an auxiliary difference variable tied to the two totals and a square
// variable bound through the multiplication-equality primitive; the
// objective minimizes the sum of the squares. The target stays the exact sum
// of squared differences, not an absolute-value surrogate, since the two do
// not share optima in general.
func AddWorkloadBalanceObjective(m *cp.Model, g *Grid) {
	totals := make([]cp.LinearExpr, g.NumPhysicians)
	for p := 0; p < g.NumPhysicians; p++ {
		totals[p] = g.TotalShiftCount(p)
	}

	maxTotal := int64(g.NumDays * g.NumShifts)
	objective := cp.LinearExpr{}
	for p1 := 0; p1 < g.NumPhysicians; p1++ {
		for p2 := p1 + 1; p2 < g.NumPhysicians; p2++ {
			diff := m.NewIntVar(-maxTotal, maxTotal, fmt.Sprintf("total_diff_p%d_p%d", p1, p2))
			m.AddEquality(totals[p1].Sub(totals[p2]), cp.Sum(diff))

			sq := m.NewIntVar(0, maxTotal*maxTotal, fmt.Sprintf("total_diff_sq_p%d_p%d", p1, p2))
			m.AddMultiplicationEquality(sq, diff, diff)

			objective = objective.Add(sq)
		}
	}
	m.Minimize(objective)
}
