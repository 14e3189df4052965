package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCategoryBuckets(t *testing.T) {
	require.Equal(t, CATUnder6, CategoryForTenure(0))
	require.Equal(t, CATUnder6, CategoryForTenure(5))
	require.Equal(t, CAT6To12, CategoryForTenure(6))
	require.Equal(t, CAT6To12, CategoryForTenure(11))
	require.Equal(t, CAT12To18, CategoryForTenure(12))
	require.Equal(t, CAT18To24, CategoryForTenure(23))
	require.Equal(t, CAT24To30, CategoryForTenure(29))
	require.Equal(t, CAT30Plus, CategoryForTenure(30))
	require.Equal(t, CAT30Plus, CategoryForTenure(200))
}

func TestCATMatrixValidation(t *testing.T) {
	good := CATMatrix{"A": {CAT6To12: 0.4, CAT30Plus: 1.0}}
	require.NoError(t, good.Validate())

	bad := CATMatrix{"A": {CAT6To12: 1.2}}
	require.Error(t, bad.Validate())
}

func TestMatrixProbabilityDefaultsToZero(t *testing.T) {
	m := CATMatrix{"A": {CAT6To12: 0.4}}
	require.Zero(t, m.Probability("A", CAT12To18))
	require.Zero(t, m.Probability("Z", CAT6To12))
}

func TestProgressionRules(t *testing.T) {
	rules := ProgressionRules{
		Paths:           map[Role]map[Level]Level{"consultant": {"A": "B", "B": "C"}},
		Months:          map[Level][]time.Month{"A": {time.January, time.July}},
		MinTenureMonths: map[Level]int{"A": 9},
	}
	require.NoError(t, rules.Validate())

	next, ok := rules.NextLevel("consultant", "A")
	require.True(t, ok)
	require.Equal(t, Level("B"), next)

	_, ok = rules.NextLevel("consultant", "C")
	require.False(t, ok)

	require.True(t, rules.InWindow("A", time.July))
	require.False(t, rules.InWindow("A", time.March))
	// Levels without a configured window promote in any month.
	require.True(t, rules.InWindow("B", time.March))

	require.Equal(t, 9, rules.MinTenure("A"))
	require.Equal(t, DefaultMinTenureMonths, rules.MinTenure("B"))
}

func TestProgressionRuleValidationCatchesSelfLoop(t *testing.T) {
	rules := ProgressionRules{Paths: map[Role]map[Level]Level{"consultant": {"A": "A"}}}
	require.Error(t, rules.Validate())
}

func TestProgressionRuleValidationCatchesCycle(t *testing.T) {
	rules := ProgressionRules{Paths: map[Role]map[Level]Level{"consultant": {"A": "B", "B": "A"}}}
	require.Error(t, rules.Validate())

	long := ProgressionRules{Paths: map[Role]map[Level]Level{"consultant": {"A": "B", "B": "C", "C": "A"}}}
	require.Error(t, long.Validate())
}
