package workforce

import (
	"github.com/pkg/errors"

	"workforce-engine/internal/model"
)

// applyProgression evaluates CAT-driven promotions. Only levels whose
// progression window includes the calendar month are considered, and only
// people past the level's minimum tenure. Candidates are snapshotted up front
// so a promotion never re-enters the iteration at its new level.
func (m *Manager) applyProgression(state *model.OfficeState, ym model.YearMonth, monthIndex int, seq *model.EventSequence, lever float64, res *StepResult) error {
	asOf := ym.Date()
	rules := m.cfg.Progression

	type candidate struct {
		person *model.Person
		level  model.Level
	}
	var candidates []candidate
	for _, role := range state.SortedRoles() {
		roster := state.Roles[role]
		if !roster.Leveled {
			continue
		}
		for _, level := range roster.SortedLevels() {
			if !rules.InWindow(level, ym.Month) {
				continue
			}
			for _, p := range state.ActiveAt(role, level) {
				candidates = append(candidates, candidate{person: p, level: level})
			}
		}
	}

	for _, c := range candidates {
		p := c.person
		if !p.Active || p.Level != c.level {
			continue
		}
		tenure := p.LevelTenureMonths(asOf)
		if tenure < rules.MinTenure(c.level) {
			continue
		}
		next, ok := rules.NextLevel(p.Role, c.level)
		if !ok {
			// Top of the ladder.
			continue
		}

		prob := m.cfg.CAT.Probability(c.level, model.CategoryForTenure(tenure)) * lever
		if prob > 1 {
			prob = 1
		}
		if prob <= 0 || m.rng.Float64() >= prob {
			continue
		}

		before := p.State()
		if err := state.MoveLevel(p, next); err != nil {
			return errors.Wrapf(err, "promoting %s from %s", p.ID, c.level)
		}
		p.Level = next
		p.LevelStart = asOf

		ev := &model.PersonEvent{
			Sequence:   seq.Next(),
			PersonID:   p.ID,
			Kind:       model.EventPromoted,
			Date:       asOf.Format("2006-01-02"),
			MonthIndex: monthIndex,
			Details: model.EventDetails{
				Role:        p.Role,
				Level:       next,
				Office:      p.Office,
				FromLevel:   c.level,
				ToLevel:     next,
				Probability: prob,
			},
			Before: &before,
			After:  p.State(),
		}
		p.Events = append(p.Events, ev)
		res.Events = append(res.Events, ev)
		res.Promoted++
	}

	return nil
}
