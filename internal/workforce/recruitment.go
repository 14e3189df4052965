package workforce

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"workforce-engine/internal/model"
)

// applyRecruitment creates the targeted number of new people per role/level.
// IDs are UUIDs drawn from the seeded generator, so recruitment stays
// reproducible under a fixed seed.
func (m *Manager) applyRecruitment(state *model.OfficeState, targets *model.MonthlyTargets, ym model.YearMonth, monthIndex int, seq *model.EventSequence, res *StepResult) error {
	asOf := ym.Date()
	for _, role := range sortedRoles(targets.Recruitment) {
		for _, level := range sortedLevels(targets.Recruitment[role]) {
			for i := 0; i < targets.Recruitment[role][level]; i++ {
				id, err := uuid.NewRandomFromReader(m.rng)
				if err != nil {
					return errors.Wrap(err, "generating person id")
				}
				p := &model.Person{
					ID:         id.String(),
					Role:       role,
					Level:      level,
					Office:     state.Office,
					HireDate:   asOf,
					LevelStart: asOf,
					Active:     true,
				}
				if err := state.Add(p); err != nil {
					return errors.Wrapf(err, "recruiting into %s/%s", role, level)
				}

				ev := &model.PersonEvent{
					Sequence:   seq.Next(),
					PersonID:   p.ID,
					Kind:       model.EventHired,
					Date:       asOf.Format("2006-01-02"),
					MonthIndex: monthIndex,
					Details: model.EventDetails{
						Role:   role,
						Level:  level,
						Office: state.Office,
					},
					After: p.State(),
				}
				p.Events = append(p.Events, ev)
				res.Events = append(res.Events, ev)
				res.Recruited++
			}
		}
	}
	return nil
}
