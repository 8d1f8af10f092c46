package roster

import (
	"context"
	"fmt"

	"physician-roster/internal/cp"
	"physician-roster/internal/models"
)

// Config holds the scheduling run parameters. Everything here is
// configuration, not hidden constants; DefaultConfig mirrors the classic
// ten-physician week.
type Config struct {
	Physicians []models.Physician

	Days   int
	Shifts int

	// NightShift and MorningShift identify the shift roles the rest and
	// night policies act on.
	NightShift   int
	MorningShift int

	// PeakShifts need PeakMinimum physicians; every other slot needs
	// BaselineMinimum.
	PeakShifts      []int
	PeakMinimum     int
	BaselineMinimum int

	// WeekendPair names the two mirrored days. A horizon too short to
	// contain both leaves the rule vacuous.
	WeekendPair [2]int
}

// DefaultConfig is the reference instance: 10 physicians with the last two
// ineligible for nights, 7 days, 3 shifts, peak coverage 2 on shifts 0 and
// 1, baseline 1, weekend pair (5, 6).
func DefaultConfig() Config {
	return Config{
		Physicians:      models.DefaultPhysicians(10, []int{8, 9}),
		Days:            7,
		Shifts:          3,
		NightShift:      2,
		MorningShift:    0,
		PeakShifts:      []int{0, 1},
		PeakMinimum:     2,
		BaselineMinimum: 1,
		WeekendPair:     [2]int{5, 6},
	}
}

// Scheduler orchestrates one scheduling run: build the grid, post the
// constraint catalog and the fairness objective, solve through the adapter,
// decode the result. Each run owns a fresh model and grid; concurrent runs
// never share one.
type Scheduler struct {
	cfg    Config
	solver Solver
}

func NewScheduler(cfg Config, solver Solver) *Scheduler {
	return &Scheduler{cfg: cfg, solver: solver}
}

// Run produces the schedule report for the configured instance. It fails
// fast on configuration errors, before any solver interaction; solver
// infeasibility is not an error but a reportable outcome.
func (s *Scheduler) Run(ctx context.Context) (*models.ScheduleReport, error) {
	cfg := s.cfg
	m := cp.NewModel()

	g, err := BuildGrid(m, len(cfg.Physicians), cfg.Days, cfg.Shifts)
	if err != nil {
		return nil, err
	}

	// Post the constraint catalog.
	if err := AddShiftCoverage(m, g, cfg.BaselineMinimum, cfg.PeakMinimum, cfg.PeakShifts); err != nil {
		return nil, err
	}
	if err := AddOneShiftPerDay(m, g); err != nil {
		return nil, err
	}
	if err := AddRestPeriods(m, g, cfg.NightShift, cfg.MorningShift); err != nil {
		return nil, err
	}
	if err := AddNightFairness(m, g, cfg.NightShift); err != nil {
		return nil, err
	}
	if err := AddNightShiftExclusion(m, g, cfg.Physicians, cfg.NightShift); err != nil {
		return nil, err
	}
	if err := AddWeekendMirroring(m, g, cfg.WeekendPair[0], cfg.WeekendPair[1]); err != nil {
		return nil, err
	}

	AddWorkloadBalanceObjective(m, g)

	sol, err := s.solver.Solve(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("solver fault: %w", err)
	}

	return BuildReport(g, sol), nil
}
