package model

// PlanEntry is one role/level line of a business-plan month.
type PlanEntry struct {
	Role        Role    `json:"role"`
	Level       Level   `json:"level"`
	Recruitment int     `json:"recruitment"`
	Churn       int     `json:"churn"`
	Price       float64 `json:"price"`
	Salary      float64 `json:"salary"`
}

// PlanMonth is the plan data for one office-month.
type PlanMonth struct {
	Entries       []PlanEntry `json:"entries"`
	OperatingCost float64     `json:"operating_cost"`
}

// BusinessPlan holds an office's monthly targets, keyed "YYYY-MM". Plans may
// be partial; missing months are extrapolated with the growth specs.
type BusinessPlan struct {
	Office string               `json:"office"`
	Months map[string]PlanMonth `json:"months"`
	Growth GrowthRates          `json:"growth"`
}

// LatestMonthBefore returns the latest defined plan month that is at or before
// the given month. Malformed month keys are ignored.
func (bp *BusinessPlan) LatestMonthBefore(ym YearMonth) (YearMonth, bool) {
	var best YearMonth
	found := false
	for key := range bp.Months {
		parsed, err := ParseYearMonth(key)
		if err != nil {
			continue
		}
		if ym.Before(parsed) {
			continue
		}
		if !found || best.Before(parsed) {
			best = parsed
			found = true
		}
	}
	return best, found
}
