package workforce

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"workforce-engine/internal/model"
)

// applyChurn deactivates min(target, available) people per role/level. A
// shortfall is a warning, never an error.
func (m *Manager) applyChurn(state *model.OfficeState, targets *model.MonthlyTargets, ym model.YearMonth, monthIndex int, seq *model.EventSequence, res *StepResult) {
	for _, role := range sortedRoles(targets.Churn) {
		for _, level := range sortedLevels(targets.Churn[role]) {
			target := targets.Churn[role][level]
			if target <= 0 {
				continue
			}

			candidates := state.ActiveAt(role, level)
			n := target
			if n > len(candidates) {
				n = len(candidates)
				msg := fmt.Sprintf("churn target %d for %s/%s exceeds %d available, churning all",
					target, role, level, len(candidates))
				m.log.WithFields(logrus.Fields{
					"office": state.Office,
					"month":  ym.Key(),
					"role":   role,
					"level":  level,
				}).Warn(msg)
				res.Warnings = append(res.Warnings, model.RunWarning{
					Office: state.Office, Month: ym.Key(),
					Code: model.WarnChurnShortfall, Message: msg,
				})
			}
			if n == 0 {
				continue
			}

			for _, p := range m.selectForChurn(candidates, n, ym) {
				m.churnPerson(state, p, ym, monthIndex, seq, res)
			}
		}
	}
}

// selectForChurn picks n people from an immutable snapshot of candidates,
// without replacement, per the configured strategy.
func (m *Manager) selectForChurn(candidates []*model.Person, n int, ym model.YearMonth) []*model.Person {
	if m.cfg.Strategy == StrategyTenure {
		return m.selectByTenureWeight(candidates, n, ym)
	}

	picked := make([]*model.Person, 0, n)
	for _, idx := range m.rng.Perm(len(candidates))[:n] {
		picked = append(picked, candidates[idx])
	}
	return picked
}

// selectByTenureWeight draws without replacement with weight 1/(tenure+1),
// biasing toward shorter-tenured people. Each draw is a binary search over the
// cumulative weights of the not-yet-picked candidates.
func (m *Manager) selectByTenureWeight(candidates []*model.Person, n int, ym model.YearMonth) []*model.Person {
	asOf := ym.Date()
	weights := make([]float64, len(candidates))
	for i, p := range candidates {
		weights[i] = 1.0 / float64(p.TenureMonths(asOf)+1)
	}

	picked := make([]*model.Person, 0, n)
	taken := make([]bool, len(candidates))
	for len(picked) < n {
		cum := make([]float64, 0, len(candidates))
		index := make([]int, 0, len(candidates))
		total := 0.0
		for i := range candidates {
			if taken[i] {
				continue
			}
			total += weights[i]
			cum = append(cum, total)
			index = append(index, i)
		}
		if total <= 0 {
			break
		}
		draw := m.rng.Float64() * total
		pos := sort.SearchFloat64s(cum, draw)
		if pos >= len(index) {
			pos = len(index) - 1
		}
		taken[index[pos]] = true
		picked = append(picked, candidates[index[pos]])
	}
	return picked
}

func (m *Manager) churnPerson(state *model.OfficeState, p *model.Person, ym model.YearMonth, monthIndex int, seq *model.EventSequence, res *StepResult) {
	asOf := ym.Date()
	before := p.State()
	p.Active = false
	state.Remove(p)

	ev := &model.PersonEvent{
		Sequence:   seq.Next(),
		PersonID:   p.ID,
		Kind:       model.EventChurned,
		Date:       asOf.Format("2006-01-02"),
		MonthIndex: monthIndex,
		Details: model.EventDetails{
			Role:              p.Role,
			Level:             p.Level,
			Office:            p.Office,
			TenureMonths:      p.TenureMonths(asOf),
			LevelTenureMonths: p.LevelTenureMonths(asOf),
		},
		Before: &before,
		After:  p.State(),
	}
	p.Events = append(p.Events, ev)
	res.Events = append(res.Events, ev)
	res.Churned++
}
