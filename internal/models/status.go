package models

// SolverStatus is the solving engine's outcome classification as seen by the
// scheduling domain, independent of any particular engine's own enums.
type SolverStatus int

const (
	StatusUnknown SolverStatus = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
)

func (s SolverStatus) String() string {
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

// Solved reports whether variable values may be read for this status.
// Reading values on any other status is undefined.
func (s SolverStatus) Solved() bool {
	return s == StatusOptimal || s == StatusFeasible
}
