package model

// MonthlyTargets is the concrete, resolved set of targets for one
// office-month. Always fully populated: a month with no plan data resolves to
// zero targets with empty (but non-nil) maps.
type MonthlyTargets struct {
	Office string    `json:"office"`
	Month  YearMonth `json:"month"`

	Recruitment map[Role]map[Level]int `json:"recruitment"`
	Churn       map[Role]map[Level]int `json:"churn"`

	Revenue       float64 `json:"revenue"`
	OperatingCost float64 `json:"operating_cost"`
	SalaryBudget  float64 `json:"salary_budget"`
}

func NewMonthlyTargets(office string, month YearMonth) *MonthlyTargets {
	return &MonthlyTargets{
		Office:      office,
		Month:       month,
		Recruitment: make(map[Role]map[Level]int),
		Churn:       make(map[Role]map[Level]int),
	}
}

func (t *MonthlyTargets) AddRecruitment(role Role, level Level, count int) {
	if count <= 0 {
		return
	}
	if t.Recruitment[role] == nil {
		t.Recruitment[role] = make(map[Level]int)
	}
	t.Recruitment[role][level] += count
}

func (t *MonthlyTargets) AddChurn(role Role, level Level, count int) {
	if count <= 0 {
		return
	}
	if t.Churn[role] == nil {
		t.Churn[role] = make(map[Level]int)
	}
	t.Churn[role][level] += count
}

func (t *MonthlyTargets) TotalRecruitment() int {
	return sumTargets(t.Recruitment)
}

func (t *MonthlyTargets) TotalChurn() int {
	return sumTargets(t.Churn)
}

func sumTargets(m map[Role]map[Level]int) int {
	total := 0
	for _, byLevel := range m {
		for _, n := range byLevel {
			total += n
		}
	}
	return total
}
