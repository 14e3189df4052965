package model

import "fmt"

// PatternType names the curve used to extrapolate a metric beyond the months a
// business plan defines.
type PatternType string

const (
	PatternLinear      PatternType = "linear"
	PatternExponential PatternType = "exponential"
	PatternSigmoid     PatternType = "sigmoid"
	PatternSeasonal    PatternType = "seasonal"
)

func ParsePattern(s string) (PatternType, error) {
	switch PatternType(s) {
	case PatternLinear, PatternExponential, PatternSigmoid, PatternSeasonal:
		return PatternType(s), nil
	case "":
		return PatternLinear, nil
	default:
		return "", fmt.Errorf("unknown growth pattern %q", s)
	}
}

// GrowthSpec configures one metric's growth curve.
type GrowthSpec struct {
	Pattern  PatternType `json:"pattern" yaml:"pattern"`
	BaseRate float64     `json:"base_rate" yaml:"base_rate"`

	// Seasonality maps calendar month (1-12) to a multiplier; months absent
	// from the map use 1.0. Only the seasonal pattern reads it.
	Seasonality map[int]float64 `json:"seasonality,omitempty" yaml:"seasonality,omitempty"`

	// Acceleration adds a quadratic term on top of the base curve.
	Acceleration float64 `json:"acceleration,omitempty" yaml:"acceleration,omitempty"`

	// MaxRate caps the sigmoid plateau. Zero means 1 + 5*BaseRate.
	MaxRate float64 `json:"max_rate,omitempty" yaml:"max_rate,omitempty"`
}

// GrowthRates carries one spec per extrapolated plan metric.
type GrowthRates struct {
	Recruitment GrowthSpec `json:"recruitment" yaml:"recruitment"`
	Price       GrowthSpec `json:"price" yaml:"price"`
	Salary      GrowthSpec `json:"salary" yaml:"salary"`
	Cost        GrowthSpec `json:"cost" yaml:"cost"`
}
