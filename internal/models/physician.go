package models

import "fmt"

// Physician is a roster participant. IDs are dense indices 0..N-1; a
// physician with NightShiftEligible == false is never assigned the night
// shift. Instances are configured once and never mutated afterwards.
type Physician struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	NightShiftEligible bool   `json:"night_shift_eligible"`
}

// Label is the display identifier used in reports (1-indexed, e.g. "P3").
func (p Physician) Label() string {
	return fmt.Sprintf("P%d", p.ID+1)
}

// DefaultPhysicians builds a panel of count physicians named P1..Pn, with
// the listed indices marked ineligible for night shifts.
func DefaultPhysicians(count int, nightIneligible []int) []Physician {
	excluded := make(map[int]bool, len(nightIneligible))
	for _, i := range nightIneligible {
		excluded[i] = true
	}
	panel := make([]Physician, count)
	for i := range panel {
		panel[i] = Physician{
			ID:                 i,
			Name:               fmt.Sprintf("P%d", i+1),
			NightShiftEligible: !excluded[i],
		}
	}
	return panel
}
