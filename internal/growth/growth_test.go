package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workforce-engine/internal/model"
)

func TestExponentialCompounding(t *testing.T) {
	spec := model.GrowthSpec{Pattern: model.PatternExponential, BaseRate: 0.05}

	require.InDelta(t, 1.05, Multiplier(spec, 12, time.June), 1e-6)
	require.InDelta(t, 1.1025, Multiplier(spec, 24, time.June), 1e-6)
	require.InDelta(t, 1.0, Multiplier(spec, 0, time.June), 1e-9)
}

func TestLinear(t *testing.T) {
	spec := model.GrowthSpec{Pattern: model.PatternLinear, BaseRate: 0.10}

	require.InDelta(t, 1.10, Multiplier(spec, 12, time.January), 1e-9)
	require.InDelta(t, 1.05, Multiplier(spec, 6, time.January), 1e-9)
}

func TestUnsetPatternIsFlatAtZeroRate(t *testing.T) {
	require.InDelta(t, 1.0, Multiplier(model.GrowthSpec{}, 36, time.March), 1e-9)
}

func TestSigmoidStaysUnderCap(t *testing.T) {
	spec := model.GrowthSpec{Pattern: model.PatternSigmoid, BaseRate: 0.5}
	maxRate := 1 + 5*spec.BaseRate

	prev := 0.0
	for months := 0; months <= 240; months += 12 {
		m := Multiplier(spec, months, time.January)
		require.LessOrEqual(t, m, maxRate)
		require.GreaterOrEqual(t, m, prev, "sigmoid must be non-decreasing")
		prev = m
	}

	// Explicit cap overrides the default plateau.
	capped := model.GrowthSpec{Pattern: model.PatternSigmoid, BaseRate: 0.5, MaxRate: 1.2}
	require.LessOrEqual(t, Multiplier(capped, 240, time.January), 1.2)
}

func TestSeasonalFactor(t *testing.T) {
	spec := model.GrowthSpec{
		Pattern:     model.PatternSeasonal,
		BaseRate:    0.05,
		Seasonality: map[int]float64{int(time.December): 1.5},
	}

	require.InDelta(t, 1.05*1.5, Multiplier(spec, 12, time.December), 1e-6)
	// Months without a factor default to 1.0.
	require.InDelta(t, 1.05, Multiplier(spec, 12, time.July), 1e-6)
}

func TestAcceleration(t *testing.T) {
	spec := model.GrowthSpec{Pattern: model.PatternLinear, BaseRate: 0.1, Acceleration: 0.02}

	// (1 + 0.1*2) * (1 + 0.02*4) at two years forward.
	require.InDelta(t, 1.2*1.08, Multiplier(spec, 24, time.January), 1e-9)
}

func TestFloorNeverBreached(t *testing.T) {
	specs := []model.GrowthSpec{
		{Pattern: model.PatternLinear, BaseRate: -0.9},
		{Pattern: model.PatternExponential, BaseRate: -0.99},
		{Pattern: model.PatternSigmoid, BaseRate: -2},
		{Pattern: model.PatternSeasonal, BaseRate: -0.9, Seasonality: map[int]float64{1: 0.01}},
	}
	for _, spec := range specs {
		for months := 0; months <= 120; months += 7 {
			require.GreaterOrEqual(t, Multiplier(spec, months, time.January), MinMultiplier)
		}
	}
}

func TestNegativeMonthsClampToZero(t *testing.T) {
	spec := model.GrowthSpec{Pattern: model.PatternLinear, BaseRate: 0.5}
	require.InDelta(t, 1.0, Multiplier(spec, -12, time.January), 1e-9)
}
