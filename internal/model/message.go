package model

// RunWarning records a degraded office-month: the simulation continued, but
// with a fallback applied.
type RunWarning struct {
	Office  string `json:"office"`
	Month   string `json:"month"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarnMissingPlan    = "MISSING_PLAN"
	WarnMalformedEntry = "MALFORMED_ENTRY"
	WarnChurnShortfall = "CHURN_SHORTFALL"
)
