package model

// ScenarioRequest describes one simulation run: the months to simulate, the
// offices in scope, the levers to apply, and the in-memory inputs loaded by
// external collaborators (population snapshot, business plans).
type ScenarioRequest struct {
	Name    string    `json:"name"`
	Range   TimeRange `json:"range"`
	Offices []string  `json:"offices"`

	// Levers left out entirely run the scenario unadjusted.
	Levers *Levers `json:"levers,omitempty"`

	// Seed makes the run reproducible. When absent, the engine draws one and
	// reports it in the execution metadata.
	Seed *int64 `json:"seed,omitempty"`

	Snapshot *PopulationSnapshot      `json:"snapshot,omitempty"`
	Plans    map[string]*BusinessPlan `json:"plans,omitempty"` // keyed by office id
}

// PopulationSnapshot seeds each office's roster before month 0.
type PopulationSnapshot struct {
	Entries []WorkforceEntry `json:"entries"`
}

// WorkforceEntry is one person in a snapshot. Dates are YYYY-MM-DD.
type WorkforceEntry struct {
	ID         string `json:"id"`
	Role       Role   `json:"role"`
	Level      Level  `json:"level"`
	Office     string `json:"office"`
	HireDate   string `json:"hire_date"`
	LevelStart string `json:"level_start"`
}
