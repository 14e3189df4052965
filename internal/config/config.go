// Package config loads the server configuration from the environment and the
// progression/CAT rules from YAML.
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"workforce-engine/internal/model"
	"workforce-engine/internal/workforce"
)

// Server holds the environment-driven process configuration.
type Server struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	RulesPath string `env:"RULES_PATH"`
	Workers   int    `env:"SIM_WORKERS" envDefault:"4"`
}

func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}
	return cfg, nil
}

const defaultRulesYAML = `# workforce simulation rules
churn_strategy: random

cat_matrix:
  A:
    "0-6": 0.0
    "6-12": 0.10
    "12-18": 0.25
    "18-24": 0.40
    "24-30": 0.55
    "30+": 0.70
  B:
    "0-6": 0.0
    "6-12": 0.05
    "12-18": 0.15
    "18-24": 0.25
    "24-30": 0.35
    "30+": 0.50

progression:
  paths:
    consultant:
      A: B
      B: C
  months:
    A: [1, 7]
    B: [1]
  min_tenure_months:
    A: 6
    B: 12
    C: 18
`

// Rules is the YAML shape of the workforce rules file.
type Rules struct {
	ChurnStrategy string                        `yaml:"churn_strategy"`
	CATMatrix     map[string]map[string]float64 `yaml:"cat_matrix"`
	Progression   struct {
		Paths           map[string]map[string]string `yaml:"paths"`
		Months          map[string][]int             `yaml:"months"`
		MinTenureMonths map[string]int               `yaml:"min_tenure_months"`
	} `yaml:"progression"`
}

// LoadRules reads the rules file, or falls back to the built-in defaults when
// path is empty.
func LoadRules(path string) (*Rules, error) {
	raw := []byte(defaultRulesYAML)
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading rules file")
		}
	}

	rules := &Rules{}
	if err := yaml.Unmarshal(raw, rules); err != nil {
		return nil, errors.Wrap(err, "parsing rules")
	}
	return rules, nil
}

// Workforce converts the YAML rules into a validated workforce configuration.
func (r *Rules) Workforce() (workforce.Config, error) {
	strategy, err := workforce.ParseStrategy(r.ChurnStrategy)
	if err != nil {
		return workforce.Config{}, err
	}

	cat := make(model.CATMatrix, len(r.CATMatrix))
	for level, byCat := range r.CATMatrix {
		probs := make(map[model.CATCategory]float64, len(byCat))
		for bucket, p := range byCat {
			probs[model.CATCategory(bucket)] = p
		}
		cat[model.Level(level)] = probs
	}

	rules := model.ProgressionRules{
		Paths:           make(map[model.Role]map[model.Level]model.Level, len(r.Progression.Paths)),
		Months:          make(map[model.Level][]time.Month, len(r.Progression.Months)),
		MinTenureMonths: make(map[model.Level]int, len(r.Progression.MinTenureMonths)),
	}
	for role, steps := range r.Progression.Paths {
		path := make(map[model.Level]model.Level, len(steps))
		for from, to := range steps {
			path[model.Level(from)] = model.Level(to)
		}
		rules.Paths[model.Role(role)] = path
	}
	for level, months := range r.Progression.Months {
		converted := make([]time.Month, 0, len(months))
		for _, m := range months {
			converted = append(converted, time.Month(m))
		}
		rules.Months[model.Level(level)] = converted
	}
	for level, n := range r.Progression.MinTenureMonths {
		rules.MinTenureMonths[model.Level(level)] = n
	}

	cfg := workforce.Config{Strategy: strategy, CAT: cat, Progression: rules}
	if err := cfg.Validate(); err != nil {
		return workforce.Config{}, err
	}
	return cfg, nil
}
