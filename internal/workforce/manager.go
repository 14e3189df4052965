// Package workforce applies resolved monthly targets to an office's roster:
// churn selection, CAT-driven progression, and recruitment, in that order.
package workforce

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"workforce-engine/internal/model"
)

// ChurnStrategy names how churned people are selected.
type ChurnStrategy string

const (
	StrategyRandom ChurnStrategy = "random"
	StrategyTenure ChurnStrategy = "tenure_based"
)

func ParseStrategy(s string) (ChurnStrategy, error) {
	switch ChurnStrategy(s) {
	case StrategyRandom, StrategyTenure:
		return ChurnStrategy(s), nil
	case "":
		return StrategyRandom, nil
	default:
		return "", fmt.Errorf("unknown churn strategy %q", s)
	}
}

// Config is the per-run workforce configuration.
type Config struct {
	Strategy    ChurnStrategy
	CAT         model.CATMatrix
	Progression model.ProgressionRules
}

func (c Config) Validate() error {
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if err := c.CAT.Validate(); err != nil {
		return err
	}
	if err := c.Progression.Validate(); err != nil {
		return err
	}

	// A promotion may only land on a level the rules know about. Promoting
	// into an undeclared level would put people on a rung with no CAT row
	// and no further rules.
	known := make(map[model.Level]bool)
	for level := range c.CAT {
		known[level] = true
	}
	for level := range c.Progression.Months {
		known[level] = true
	}
	for level := range c.Progression.MinTenureMonths {
		known[level] = true
	}
	for _, steps := range c.Progression.Paths {
		for from := range steps {
			known[from] = true
		}
	}
	for role, steps := range c.Progression.Paths {
		for from, to := range steps {
			if to != model.NoLevel && !known[to] {
				return fmt.Errorf("progression path %s/%s targets unknown level %q", role, from, to)
			}
		}
	}
	return nil
}

// Manager mutates one office's roster month by month. All randomness flows
// through the single seeded generator, so a fixed seed reproduces the exact
// event sequence.
type Manager struct {
	cfg Config
	rng *rand.Rand
	log logrus.FieldLogger
}

func NewManager(cfg Config, rng *rand.Rand, log logrus.FieldLogger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("workforce manager requires a random source")
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyRandom
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{cfg: cfg, rng: rng, log: log}, nil
}

// StepResult is the outcome of one office-month.
type StepResult struct {
	Events    []*model.PersonEvent
	Recruited int
	Churned   int
	Promoted  int
	Warnings  []model.RunWarning
}

// RunMonth executes churn, progression, then recruitment for one office-month.
// Recruitment runs last so new hires are never churn-eligible in their first
// month. Events are numbered from seq in emit order.
func (m *Manager) RunMonth(state *model.OfficeState, targets *model.MonthlyTargets, ym model.YearMonth, monthIndex int, seq *model.EventSequence, progressionLever float64) (*StepResult, error) {
	res := &StepResult{}

	m.applyChurn(state, targets, ym, monthIndex, seq, res)
	if err := m.applyProgression(state, ym, monthIndex, seq, progressionLever, res); err != nil {
		return nil, err
	}
	if err := m.applyRecruitment(state, targets, ym, monthIndex, seq, res); err != nil {
		return nil, err
	}

	return res, nil
}

// sortedRoles gives a stable iteration order over a target map; map order
// would break seeded determinism.
func sortedRoles(m map[model.Role]map[model.Level]int) []model.Role {
	roles := make([]model.Role, 0, len(m))
	for role := range m {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

func sortedLevels(m map[model.Level]int) []model.Level {
	levels := make([]model.Level, 0, len(m))
	for level := range m {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}
