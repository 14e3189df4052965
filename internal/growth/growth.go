// Package growth computes the dimensionless multipliers used to extrapolate
// business-plan metrics beyond their defined months.
package growth

import (
	"math"
	"time"

	"workforce-engine/internal/model"
)

// MinMultiplier is the floor for every multiplier. A zero or negative
// multiplier would be unrecoverable once compounded.
const MinMultiplier = 0.1

// Multiplier evaluates the spec's curve at monthsForward months past the base
// month. calendarMonth is the target month's calendar month, read only by the
// seasonal pattern. Pure function of its inputs.
func Multiplier(spec model.GrowthSpec, monthsForward int, calendarMonth time.Month) float64 {
	if monthsForward < 0 {
		monthsForward = 0
	}
	years := float64(monthsForward) / 12.0

	var m float64
	switch spec.Pattern {
	case model.PatternExponential:
		m = math.Pow(1+spec.BaseRate, years)
	case model.PatternSigmoid:
		maxRate := spec.MaxRate
		if maxRate <= 0 {
			maxRate = 1 + 5*spec.BaseRate
		}
		m = maxRate / (1 + math.Exp(-spec.BaseRate*(years-2)))
	case model.PatternSeasonal:
		m = math.Pow(1+spec.BaseRate, years)
		if factor, ok := spec.Seasonality[int(calendarMonth)]; ok {
			m *= factor
		}
	default:
		// Linear, also the fallback for an unset pattern.
		m = 1 + spec.BaseRate*years
	}

	if spec.Acceleration != 0 {
		m *= 1 + spec.Acceleration*years*years
	}

	if m < MinMultiplier {
		return MinMultiplier
	}
	return m
}
