package model

// SimulationResults is the full output of one completed run.
type SimulationResults struct {
	ScenarioID string `json:"scenario_id"`
	Scenario   string `json:"scenario"`

	// Monthly is keyed "YYYY-MM", then office id.
	Monthly map[string]map[string]*MonthlyResults `json:"monthly"`
	Yearly  map[int]*YearlyResults                `json:"yearly"`

	// Events is the complete run log, globally ordered and renumbered.
	Events []*PersonEvent `json:"events"`

	Metadata ExecutionMetadata `json:"execution_metadata"`
}

// MonthlyResults is one office's snapshot after a simulated month.
type MonthlyResults struct {
	Office string `json:"office"`
	Month  string `json:"month"`

	TotalFTE  int                    `json:"total_fte"`
	Headcount map[Role]map[Level]int `json:"headcount"`

	Recruited int `json:"recruited"`
	Churned   int `json:"churned"`
	Promoted  int `json:"promoted"`

	Revenue       float64 `json:"revenue"`
	OperatingCost float64 `json:"operating_cost"`
	SalaryBudget  float64 `json:"salary_budget"`
}

// YearlyResults folds the monthly results of one calendar year across all
// offices in scope.
type YearlyResults struct {
	Year int `json:"year"`

	Recruited int `json:"recruited"`
	Churned   int `json:"churned"`
	Promoted  int `json:"promoted"`

	Revenue       float64 `json:"revenue"`
	OperatingCost float64 `json:"operating_cost"`
	SalaryBudget  float64 `json:"salary_budget"`

	// EndingFTE is the total headcount after the year's last simulated month.
	EndingFTE int `json:"ending_fte"`
}

type ExecutionMetadata struct {
	RunID       string `json:"run_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	EventCount  int    `json:"event_count"`
	Seed        int64  `json:"seed"`

	// Warnings lists the degraded office-months (missing plans, churn
	// shortfalls, skipped records). A non-empty list does not fail the run.
	Warnings []RunWarning `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
