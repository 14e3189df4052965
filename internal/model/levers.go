package model

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Levers are the scenario's multiplicative adjustments, applied on top of
// resolved targets. Stored plan data is never mutated by a lever. On the wire,
// fields left out of the JSON object default to 1.0; an explicit 0 switches
// that flow off.
type Levers struct {
	Recruitment float64 `json:"recruitment"`
	Churn       float64 `json:"churn"`
	Progression float64 `json:"progression"`
	Price       float64 `json:"price"`
	Salary      float64 `json:"salary"`
}

// DefaultLevers is the identity adjustment.
func DefaultLevers() Levers {
	return Levers{Recruitment: 1, Churn: 1, Progression: 1, Price: 1, Salary: 1}
}

func (l *Levers) UnmarshalJSON(data []byte) error {
	var raw struct {
		Recruitment *float64 `json:"recruitment"`
		Churn       *float64 `json:"churn"`
		Progression *float64 `json:"progression"`
		Price       *float64 `json:"price"`
		Salary      *float64 `json:"salary"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = DefaultLevers()
	if raw.Recruitment != nil {
		l.Recruitment = *raw.Recruitment
	}
	if raw.Churn != nil {
		l.Churn = *raw.Churn
	}
	if raw.Progression != nil {
		l.Progression = *raw.Progression
	}
	if raw.Price != nil {
		l.Price = *raw.Price
	}
	if raw.Salary != nil {
		l.Salary = *raw.Salary
	}
	return nil
}

func (l Levers) Validate() error {
	for name, v := range map[string]float64{
		"recruitment": l.Recruitment,
		"churn":       l.Churn,
		"progression": l.Progression,
		"price":       l.Price,
		"salary":      l.Salary,
	} {
		if v < 0 {
			return fmt.Errorf("lever %s must be non-negative, got %v", name, v)
		}
	}
	return nil
}
