package model

import "time"

type Role string

// Level is the seniority step within a role. Roles without a level ladder use
// the empty level.
type Level string

const NoLevel Level = ""

// Person is one individually tracked employee. Owned by the OfficeState that
// holds it while active; after churn it survives only in the event log.
type Person struct {
	ID         string    `json:"id"`
	Role       Role      `json:"role"`
	Level      Level     `json:"level"`
	Office     string    `json:"office"`
	HireDate   time.Time `json:"hire_date"`
	LevelStart time.Time `json:"level_start"`
	Active     bool      `json:"active"`

	// Events holds this person's own slice of the run's event log, in
	// chronological order.
	Events []*PersonEvent `json:"-"`
}

// TenureMonths is the number of whole months since hire as of the given date.
func (p *Person) TenureMonths(asOf time.Time) int {
	return wholeMonths(p.HireDate, asOf)
}

// LevelTenureMonths is the number of whole months spent at the current level.
func (p *Person) LevelTenureMonths(asOf time.Time) int {
	return wholeMonths(p.LevelStart, asOf)
}

func wholeMonths(from, to time.Time) int {
	m := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		m--
	}
	if m < 0 {
		return 0
	}
	return m
}

// PersonState is the part of a person that simulation steps mutate, snapshotted
// before and after each event.
type PersonState struct {
	Level  Level `json:"level"`
	Active bool  `json:"active"`
}

func (p *Person) State() PersonState {
	return PersonState{Level: p.Level, Active: p.Active}
}
