// Package engine owns the office-month time loop: it resolves targets,
// applies them to each office's roster, and folds the outcomes into monthly
// snapshots, yearly aggregates, and a globally ordered event log.
package engine

import (
	"context"
	"hash/fnv"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"workforce-engine/internal/model"
	"workforce-engine/internal/plan"
	"workforce-engine/internal/workforce"
)

// ErrInvalidScenario marks configuration errors caught before any simulation
// step runs. Callers fix the scenario and resubmit.
var ErrInvalidScenario = errors.New("invalid scenario")

type Status string

const (
	StatusInitialized Status = "INITIALIZED"
	StatusRunning     Status = "RUNNING"
	StatusCompleted   Status = "COMPLETED"
	StatusFailed      Status = "FAILED"
)

type Config struct {
	Workforce workforce.Config

	// Workers caps concurrent office workers. Offices share no mutable state
	// and each derives its own seed, so results do not depend on this.
	Workers int

	Log *logrus.Logger
}

type Engine struct {
	cfg Config
	log *logrus.Logger
}

func New(cfg Config) (*Engine, error) {
	if err := cfg.Workforce.Validate(); err != nil {
		return nil, errors.Wrap(err, "workforce configuration")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &Engine{cfg: cfg, log: cfg.Log}, nil
}

// Run executes the scenario and returns the complete results. Validation is
// all-or-nothing: nothing is simulated unless the whole scenario is
// acceptable. Mid-run failures abort the run, since later months depend on the
// mutated population.
func (e *Engine) Run(ctx context.Context, scenario *model.ScenarioRequest) (*model.SimulationResults, error) {
	started := time.Now().UTC()
	runID := uuid.New().String()
	log := e.log.WithFields(logrus.Fields{"run_id": runID, "scenario": scenarioName(scenario)})
	log.WithField("status", StatusInitialized).Info("scenario received")

	if err := validateScenario(scenario); err != nil {
		log.WithField("status", StatusFailed).WithError(err).Warn("scenario rejected")
		return nil, err
	}

	levers := model.DefaultLevers()
	if scenario.Levers != nil {
		levers = *scenario.Levers
	}
	seed := drawSeed(scenario)
	months := scenario.Range.Months()
	offices := uniqueSorted(scenario.Offices)
	resolver := plan.NewResolver(scenario.Plans, e.log)

	log.WithFields(logrus.Fields{
		"status":  StatusRunning,
		"offices": len(offices),
		"months":  len(months),
		"seed":    seed,
	}).Info("simulation started")

	outcomes := e.runOffices(ctx, offices, months, scenario, resolver, levers, seed)
	for _, o := range outcomes {
		if o.err != nil {
			log.WithField("status", StatusFailed).WithError(o.err).Error("simulation aborted")
			return nil, errors.Wrapf(o.err, "office %s", o.office)
		}
	}

	results := assembleResults(scenario, outcomes, offices, months)
	results.ScenarioID = runID

	completed := time.Now().UTC()
	results.Metadata = model.ExecutionMetadata{
		RunID:       runID,
		StartedAt:   started.Format(time.RFC3339),
		CompletedAt: completed.Format(time.RFC3339),
		DurationMs:  completed.Sub(started).Milliseconds(),
		EventCount:  len(results.Events),
		Seed:        seed,
		Warnings:    results.Metadata.Warnings,
	}

	log.WithFields(logrus.Fields{
		"status":   StatusCompleted,
		"events":   len(results.Events),
		"warnings": len(results.Metadata.Warnings),
	}).Info("simulation completed")
	return results, nil
}

type officeOutcome struct {
	office   string
	events   []*model.PersonEvent
	monthly  []*model.MonthlyResults
	warnings []model.RunWarning
	err      error
}

func (e *Engine) runOffices(ctx context.Context, offices []string, months []model.YearMonth, scenario *model.ScenarioRequest, resolver *plan.Resolver, levers model.Levers, seed int64) []*officeOutcome {
	outcomes := make([]*officeOutcome, len(offices))

	if e.cfg.Workers <= 1 || len(offices) == 1 {
		for i, office := range offices {
			outcomes[i] = e.runOffice(ctx, office, months, scenario, resolver, levers, seed)
		}
		return outcomes
	}

	// Per-office workers with per-worker buffers, merged after completion.
	sem := make(chan struct{}, e.cfg.Workers)
	var wg sync.WaitGroup
	for i, office := range offices {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, office string) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = e.runOffice(ctx, office, months, scenario, resolver, levers, seed)
		}(i, office)
	}
	wg.Wait()
	return outcomes
}

// runOffice is the strict per-office fold: each month's population is the
// input to the next, so months execute in program order.
func (e *Engine) runOffice(ctx context.Context, office string, months []model.YearMonth, scenario *model.ScenarioRequest, resolver *plan.Resolver, levers model.Levers, seed int64) *officeOutcome {
	out := &officeOutcome{office: office}
	log := e.log.WithField("office", office)

	rng := rand.New(rand.NewSource(deriveSeed(seed, office)))
	mgr, err := workforce.NewManager(e.cfg.Workforce, rng, log)
	if err != nil {
		out.err = err
		return out
	}

	state, warnings, err := seedRoster(office, scenario.Snapshot, months[0], log)
	if err != nil {
		out.err = err
		return out
	}
	out.warnings = append(out.warnings, warnings...)

	seq := &model.EventSequence{}
	for idx, ym := range months {
		// Cancellation is only honored between office-month steps; a partial
		// step would leave the roster inconsistent with the event log.
		if err := ctx.Err(); err != nil {
			out.err = errors.Wrapf(err, "month %s", ym.Key())
			return out
		}

		targets, warns := resolver.Resolve(office, ym, levers)
		out.warnings = append(out.warnings, warns...)

		step, err := mgr.RunMonth(state, targets, ym, idx, seq, levers.Progression)
		if err != nil {
			out.err = errors.Wrapf(err, "month %s", ym.Key())
			return out
		}
		out.warnings = append(out.warnings, step.Warnings...)
		out.events = append(out.events, step.Events...)
		out.monthly = append(out.monthly, snapshotMonth(state, targets, step, ym))
	}
	return out
}

// seedRoster builds the office's initial population from the snapshot.
// Entries with unparseable dates are skipped with a warning; a roster shape
// conflict is fatal.
func seedRoster(office string, snapshot *model.PopulationSnapshot, startMonth model.YearMonth, log logrus.FieldLogger) (*model.OfficeState, []model.RunWarning, error) {
	state := model.NewOfficeState(office)
	var warnings []model.RunWarning
	if snapshot == nil {
		return state, nil, nil
	}

	for _, entry := range snapshot.Entries {
		if entry.Office != office {
			continue
		}
		hire, err1 := time.Parse("2006-01-02", entry.HireDate)
		levelStart, err2 := time.Parse("2006-01-02", entry.LevelStart)
		if entry.LevelStart == "" {
			levelStart, err2 = hire, err1
		}
		if entry.ID == "" || err1 != nil || err2 != nil {
			msg := "skipping malformed snapshot entry for id " + entry.ID
			log.WithField("entry", entry.ID).Warn(msg)
			warnings = append(warnings, model.RunWarning{
				Office: office, Month: startMonth.Key(),
				Code: model.WarnMalformedEntry, Message: msg,
			})
			continue
		}
		p := &model.Person{
			ID:         entry.ID,
			Role:       entry.Role,
			Level:      entry.Level,
			Office:     office,
			HireDate:   hire,
			LevelStart: levelStart,
			Active:     true,
		}
		if err := state.Add(p); err != nil {
			return nil, nil, errors.Wrap(err, "seeding roster")
		}
	}
	return state, warnings, nil
}

func validateScenario(s *model.ScenarioRequest) error {
	if s == nil {
		return errors.Wrap(ErrInvalidScenario, "missing scenario")
	}
	if len(s.Offices) == 0 {
		return errors.Wrap(ErrInvalidScenario, "no offices in scope")
	}
	if err := s.Range.Validate(); err != nil {
		return errors.Wrap(ErrInvalidScenario, err.Error())
	}
	if s.Levers != nil {
		if err := s.Levers.Validate(); err != nil {
			return errors.Wrap(ErrInvalidScenario, err.Error())
		}
	}
	return nil
}

func scenarioName(s *model.ScenarioRequest) string {
	if s == nil {
		return ""
	}
	return s.Name
}

// drawSeed uses the requested seed when present, otherwise the wall clock.
// Either way the seed lands in the metadata so the run can be replayed.
func drawSeed(s *model.ScenarioRequest) int64 {
	if s.Seed != nil {
		return *s.Seed
	}
	return time.Now().UnixNano()
}

// deriveSeed gives each office its own deterministic stream, so results do not
// depend on office execution order.
func deriveSeed(base int64, office string) int64 {
	h := fnv.New64a()
	h.Write([]byte(office))
	return base ^ int64(h.Sum64())
}

func uniqueSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
