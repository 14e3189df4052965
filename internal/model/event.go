package model

type EventKind string

const (
	EventHired    EventKind = "HIRED"
	EventChurned  EventKind = "CHURNED"
	EventPromoted EventKind = "PROMOTED"
)

// PersonEvent is one append-only record in the simulation's event log. The
// serialized form is stable so the log can be replayed and audited downstream.
type PersonEvent struct {
	Sequence   int          `json:"sequence"`
	PersonID   string       `json:"person_id"`
	Kind       EventKind    `json:"kind"`
	Date       string       `json:"date"` // YYYY-MM-DD
	MonthIndex int          `json:"month_index"`
	Details    EventDetails `json:"details"`
	Before     *PersonState `json:"before"` // nil for HIRED
	After      PersonState  `json:"after"`
}

type EventDetails struct {
	Role   Role   `json:"role"`
	Level  Level  `json:"level"`
	Office string `json:"office"`

	// Promotion fields.
	FromLevel   Level   `json:"from_level,omitempty"`
	ToLevel     Level   `json:"to_level,omitempty"`
	Probability float64 `json:"probability,omitempty"`

	// Churn fields.
	TenureMonths      int `json:"tenure_months,omitempty"`
	LevelTenureMonths int `json:"level_tenure_months,omitempty"`
}

// EventSequence is the per-run monotonic event counter. The engine owns one
// per office worker and renumbers globally when buffers are merged.
type EventSequence struct {
	next int
}

func (s *EventSequence) Next() int {
	n := s.next
	s.next++
	return n
}
