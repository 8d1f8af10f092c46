package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for a scheduling process. Every knob of
// the scheduling instance is configuration here, not a hidden constant.
type AppConfig struct {
	PhysicianCount int
	ShiftCount     int
	DayCount       int

	// SeniorityExclusions lists the physician indices barred from night
	// shifts. Defaults to the last two indices of the panel.
	SeniorityExclusions []int

	PeakShifts      []int
	PeakMinimum     int
	BaselineMinimum int

	// WeekendPair names the two mirrored days of the horizon.
	WeekendPair [2]int

	SolverTimeLimit time.Duration

	LogLevel    string
	Environment string

	// CronSpec, when set, keeps the process alive and re-runs the
	// scheduling pass on that schedule.
	CronSpec string

	// RosterFile optionally points at a YAML file describing the physician
	// panel by name and eligibility; it overrides the numeric defaults.
	RosterFile string
}

// Load reads configuration from environment variables and a .env file (if
// present). Missing values fall back to the reference instance defaults.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override already-set env variables; a missing
	// .env file is fine.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	if cfg.PhysicianCount, err = intEnv("PHYSICIAN_COUNT", 10); err != nil {
		return nil, err
	}
	if cfg.ShiftCount, err = intEnv("SHIFT_COUNT", 3); err != nil {
		return nil, err
	}
	if cfg.DayCount, err = intEnv("DAY_COUNT", 7); err != nil {
		return nil, err
	}
	if cfg.PhysicianCount <= 0 || cfg.ShiftCount <= 0 || cfg.DayCount <= 0 {
		return nil, fmt.Errorf("PHYSICIAN_COUNT, SHIFT_COUNT and DAY_COUNT must be positive")
	}

	defaultSeniors := []int{}
	if cfg.PhysicianCount >= 2 {
		defaultSeniors = []int{cfg.PhysicianCount - 2, cfg.PhysicianCount - 1}
	}
	if cfg.SeniorityExclusions, err = intListEnv("SENIORITY_EXCLUSIONS", defaultSeniors); err != nil {
		return nil, err
	}
	if cfg.PeakShifts, err = intListEnv("PEAK_SHIFTS", []int{0, 1}); err != nil {
		return nil, err
	}
	if cfg.PeakMinimum, err = intEnv("PEAK_MINIMUM", 2); err != nil {
		return nil, err
	}
	if cfg.BaselineMinimum, err = intEnv("BASELINE_MINIMUM", 1); err != nil {
		return nil, err
	}

	weekend, err := intListEnv("WEEKEND_PAIR", []int{5, 6})
	if err != nil {
		return nil, err
	}
	if len(weekend) != 2 {
		return nil, fmt.Errorf("WEEKEND_PAIR must name exactly two days, got %v", weekend)
	}
	cfg.WeekendPair = [2]int{weekend[0], weekend[1]}

	limitStr := os.Getenv("SOLVER_TIME_LIMIT")
	if limitStr == "" {
		cfg.SolverTimeLimit = 30 * time.Second
	} else if cfg.SolverTimeLimit, err = time.ParseDuration(limitStr); err != nil {
		return nil, fmt.Errorf("invalid SOLVER_TIME_LIMIT: %w", err)
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	cfg.CronSpec = os.Getenv("SCHEDULE_CRON")
	cfg.RosterFile = os.Getenv("ROSTER_FILE")

	for _, i := range cfg.SeniorityExclusions {
		if i < 0 || i >= cfg.PhysicianCount {
			return nil, fmt.Errorf("SENIORITY_EXCLUSIONS index %d out of range for %d physicians", i, cfg.PhysicianCount)
		}
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func intListEnv(key string, def []int) ([]int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", key, part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// RosterPhysician is one entry of the roster file. Eligibility defaults to
// true when omitted.
type RosterPhysician struct {
	Name               string `yaml:"name"`
	NightShiftEligible *bool  `yaml:"night_shift_eligible"`
}

// RosterFileSpec is the YAML roster file shape. Any omitted knob keeps the
// value already loaded from the environment.
type RosterFileSpec struct {
	Physicians      []RosterPhysician `yaml:"physicians"`
	Days            *int              `yaml:"days"`
	Shifts          *int              `yaml:"shifts"`
	PeakShifts      []int             `yaml:"peak_shifts"`
	PeakMinimum     *int              `yaml:"peak_minimum"`
	BaselineMinimum *int              `yaml:"baseline_minimum"`
}

// LoadRosterFile parses the YAML roster file at path.
func LoadRosterFile(path string) (*RosterFileSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	var spec RosterFileSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing roster file %s: %w", path, err)
	}
	if len(spec.Physicians) == 0 {
		return nil, fmt.Errorf("roster file %s lists no physicians", path)
	}
	return &spec, nil
}

// Apply merges the roster file into the loaded configuration. The physician
// panel size always follows the file.
func (c *AppConfig) Apply(spec *RosterFileSpec) {
	c.PhysicianCount = len(spec.Physicians)
	c.SeniorityExclusions = nil
	for i, ph := range spec.Physicians {
		if ph.NightShiftEligible != nil && !*ph.NightShiftEligible {
			c.SeniorityExclusions = append(c.SeniorityExclusions, i)
		}
	}
	if spec.Days != nil {
		c.DayCount = *spec.Days
	}
	if spec.Shifts != nil {
		c.ShiftCount = *spec.Shifts
	}
	if spec.PeakShifts != nil {
		c.PeakShifts = spec.PeakShifts
	}
	if spec.PeakMinimum != nil {
		c.PeakMinimum = *spec.PeakMinimum
	}
	if spec.BaselineMinimum != nil {
		c.BaselineMinimum = *spec.BaselineMinimum
	}
}
