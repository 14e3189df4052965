package model

import (
	"fmt"
	"sort"
)

// RoleRoster holds the active people for one role. The shape is resolved once
// when the first person (or recruitment target) for the role arrives: leveled
// roles bucket people per level, flat roles keep a single ordered list.
type RoleRoster struct {
	Leveled bool
	Levels  map[Level][]*Person
	People  []*Person
}

func newRoleRoster(leveled bool) *RoleRoster {
	r := &RoleRoster{Leveled: leveled}
	if leveled {
		r.Levels = make(map[Level][]*Person)
	}
	return r
}

// SortedLevels returns the roster's level keys in a stable order.
func (r *RoleRoster) SortedLevels() []Level {
	if !r.Leveled {
		return []Level{NoLevel}
	}
	levels := make([]Level, 0, len(r.Levels))
	for lvl := range r.Levels {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

func (r *RoleRoster) at(level Level) []*Person {
	if !r.Leveled {
		return r.People
	}
	return r.Levels[level]
}

// OfficeState is one office's live roster. It is mutated only by the workforce
// manager, once per simulated month, always sequentially.
type OfficeState struct {
	Office string
	Roles  map[Role]*RoleRoster
}

func NewOfficeState(office string) *OfficeState {
	return &OfficeState{Office: office, Roles: make(map[Role]*RoleRoster)}
}

// Add places a person into the roster, resolving the role's shape on first
// contact. Mixing leveled and flat people within one role is a consistency
// violation.
func (s *OfficeState) Add(p *Person) error {
	leveled := p.Level != NoLevel
	roster, ok := s.Roles[p.Role]
	if !ok {
		roster = newRoleRoster(leveled)
		s.Roles[p.Role] = roster
	}
	if roster.Leveled != leveled {
		return fmt.Errorf("role %q: cannot mix leveled and flat people", p.Role)
	}
	if roster.Leveled {
		roster.Levels[p.Level] = append(roster.Levels[p.Level], p)
	} else {
		roster.People = append(roster.People, p)
	}
	return nil
}

// ActiveAt returns the active people at role/level in roster order. Flat roles
// ignore the level argument.
func (s *OfficeState) ActiveAt(role Role, level Level) []*Person {
	roster, ok := s.Roles[role]
	if !ok {
		return nil
	}
	var out []*Person
	for _, p := range roster.at(level) {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Remove drops a person from the live roster. Order of the remaining people is
// preserved.
func (s *OfficeState) Remove(p *Person) {
	roster, ok := s.Roles[p.Role]
	if !ok {
		return
	}
	if roster.Leveled {
		roster.Levels[p.Level] = removePerson(roster.Levels[p.Level], p)
	} else {
		roster.People = removePerson(roster.People, p)
	}
}

// MoveLevel relocates a person between level buckets of a leveled role.
func (s *OfficeState) MoveLevel(p *Person, to Level) error {
	roster, ok := s.Roles[p.Role]
	if !ok || !roster.Leveled {
		return fmt.Errorf("role %q has no level ladder", p.Role)
	}
	roster.Levels[p.Level] = removePerson(roster.Levels[p.Level], p)
	roster.Levels[to] = append(roster.Levels[to], p)
	return nil
}

func removePerson(people []*Person, target *Person) []*Person {
	for i, p := range people {
		if p == target {
			return append(people[:i:i], people[i+1:]...)
		}
	}
	return people
}

// ActiveCount is the office's total active headcount.
func (s *OfficeState) ActiveCount() int {
	total := 0
	for _, roster := range s.Roles {
		for _, lvl := range roster.SortedLevels() {
			for _, p := range roster.at(lvl) {
				if p.Active {
					total++
				}
			}
		}
	}
	return total
}

// Headcount returns active counts by role and level. Flat roles report under
// the empty level.
func (s *OfficeState) Headcount() map[Role]map[Level]int {
	out := make(map[Role]map[Level]int, len(s.Roles))
	for role, roster := range s.Roles {
		byLevel := make(map[Level]int)
		for _, lvl := range roster.SortedLevels() {
			n := 0
			for _, p := range roster.at(lvl) {
				if p.Active {
					n++
				}
			}
			if n > 0 {
				byLevel[lvl] = n
			}
		}
		if len(byLevel) > 0 {
			out[role] = byLevel
		}
	}
	return out
}

// SortedRoles returns the roster's role keys in a stable order.
func (s *OfficeState) SortedRoles() []Role {
	roles := make([]Role, 0, len(s.Roles))
	for role := range s.Roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
