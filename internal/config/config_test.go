package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workforce-engine/internal/model"
	"workforce-engine/internal/workforce"
)

func TestDefaultRulesAreValid(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)

	cfg, err := rules.Workforce()
	require.NoError(t, err)

	require.Equal(t, workforce.StrategyRandom, cfg.Strategy)
	require.InDelta(t, 0.25, cfg.CAT.Probability("A", model.CAT12To18), 1e-9)

	next, ok := cfg.Progression.NextLevel("consultant", "A")
	require.True(t, ok)
	require.Equal(t, model.Level("B"), next)
	require.True(t, cfg.Progression.InWindow("A", time.July))
	require.False(t, cfg.Progression.InWindow("A", time.March))
	require.Equal(t, 12, cfg.Progression.MinTenure("B"))
}

func TestLoadRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
churn_strategy: tenure_based
cat_matrix:
  X:
    "30+": 0.9
progression:
  paths:
    engineer:
      X: Y
  min_tenure_months:
    Y: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	cfg, err := rules.Workforce()
	require.NoError(t, err)
	require.Equal(t, workforce.StrategyTenure, cfg.Strategy)
	require.InDelta(t, 0.9, cfg.CAT.Probability("X", model.CAT30Plus), 1e-9)
}

func TestPathTargetMustBeDeclared(t *testing.T) {
	rules := &Rules{}
	rules.Progression.Paths = map[string]map[string]string{"engineer": {"X": "Y"}}
	_, err := rules.Workforce()
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown level "Y"`)
}

func TestInvalidProbabilityRejected(t *testing.T) {
	rules := &Rules{CATMatrix: map[string]map[string]float64{"A": {"0-6": 1.5}}}
	_, err := rules.Workforce()
	require.Error(t, err)
}

func TestUnknownStrategyRejected(t *testing.T) {
	rules := &Rules{ChurnStrategy: "alphabetical"}
	_, err := rules.Workforce()
	require.Error(t, err)
}

func TestMissingRulesFile(t *testing.T) {
	_, err := LoadRules("/nonexistent/rules.yaml")
	require.Error(t, err)
}
