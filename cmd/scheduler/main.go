package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"physician-roster/internal/config"
	"physician-roster/internal/logger"
	"physician-roster/internal/models"
	"physician-roster/internal/roster"
	"physician-roster/internal/solver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load configuration: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.Environment)

	rosterCfg, err := buildRosterConfig(cfg)
	if err != nil {
		logger.Log.Fatalf("Could not build roster configuration: %v", err)
	}

	engine := solver.New(cfg.SolverTimeLimit)
	scheduler := roster.NewScheduler(rosterCfg, engine)

	runOnce := func() {
		report, err := scheduler.Run(context.Background())
		if err != nil {
			logger.Log.WithError(err).Error("Scheduling run failed")
			return
		}
		fmt.Print(report.Render())
		logger.Log.WithFields(map[string]interface{}{
			"run_id":    report.RunID,
			"status":    report.Stats.Status.String(),
			"conflicts": report.Stats.Conflicts,
			"branches":  report.Stats.Branches,
			"wall_time": report.Stats.WallTime,
		}).Info("Scheduling run complete")
	}

	if cfg.CronSpec == "" {
		runOnce()
		return
	}

	// Daemon mode: re-run the scheduling pass on the configured cron spec.
	// Each run builds a fresh model and grid.
	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec, runOnce); err != nil {
		logger.Log.Fatalf("Invalid SCHEDULE_CRON %q: %v", cfg.CronSpec, err)
	}
	c.Start()
	logger.Log.Infof("Scheduler daemon started with cron spec %q", cfg.CronSpec)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down scheduler daemon")
	<-c.Stop().Done()
}

// buildRosterConfig maps the process configuration onto a scheduling run
// configuration, loading the optional YAML roster file first.
func buildRosterConfig(cfg *config.AppConfig) (roster.Config, error) {
	var physicians []models.Physician
	if cfg.RosterFile != "" {
		spec, err := config.LoadRosterFile(cfg.RosterFile)
		if err != nil {
			return roster.Config{}, err
		}
		cfg.Apply(spec)
		physicians = make([]models.Physician, len(spec.Physicians))
		for i, ph := range spec.Physicians {
			name := ph.Name
			if name == "" {
				name = fmt.Sprintf("P%d", i+1)
			}
			physicians[i] = models.Physician{
				ID:                 i,
				Name:               name,
				NightShiftEligible: ph.NightShiftEligible == nil || *ph.NightShiftEligible,
			}
		}
	} else {
		physicians = models.DefaultPhysicians(cfg.PhysicianCount, cfg.SeniorityExclusions)
	}

	return roster.Config{
		Physicians:      physicians,
		Days:            cfg.DayCount,
		Shifts:          cfg.ShiftCount,
		NightShift:      cfg.ShiftCount - 1,
		MorningShift:    0,
		PeakShifts:      cfg.PeakShifts,
		PeakMinimum:     cfg.PeakMinimum,
		BaselineMinimum: cfg.BaselineMinimum,
		WeekendPair:     cfg.WeekendPair,
	}, nil
}
