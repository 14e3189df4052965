package engine

import (
	"sort"

	"workforce-engine/internal/model"
	"workforce-engine/internal/workforce"
)

// snapshotMonth captures one office's state after a simulated month.
func snapshotMonth(state *model.OfficeState, targets *model.MonthlyTargets, step *workforce.StepResult, ym model.YearMonth) *model.MonthlyResults {
	return &model.MonthlyResults{
		Office:        state.Office,
		Month:         ym.Key(),
		TotalFTE:      state.ActiveCount(),
		Headcount:     state.Headcount(),
		Recruited:     step.Recruited,
		Churned:       step.Churned,
		Promoted:      step.Promoted,
		Revenue:       targets.Revenue,
		OperatingCost: targets.OperatingCost,
		SalaryBudget:  targets.SalaryBudget,
	}
}

// assembleResults merges the per-office outcomes: events are globally ordered
// by (month, office) and renumbered, monthly snapshots are keyed by month then
// office, and yearly aggregates are folded from the monthly results.
func assembleResults(scenario *model.ScenarioRequest, outcomes []*officeOutcome, offices []string, months []model.YearMonth) *model.SimulationResults {
	rank := make(map[string]int, len(offices))
	for i, office := range offices {
		rank[office] = i
	}

	var events []*model.PersonEvent
	monthly := make(map[string]map[string]*model.MonthlyResults, len(months))
	var warnings []model.RunWarning

	for _, o := range outcomes {
		events = append(events, o.events...)
		warnings = append(warnings, o.warnings...)
		for _, mr := range o.monthly {
			if monthly[mr.Month] == nil {
				monthly[mr.Month] = make(map[string]*model.MonthlyResults, len(offices))
			}
			monthly[mr.Month][mr.Office] = mr
		}
	}

	// Per-office buffers are already in month order with per-office sequence
	// numbers; a stable sort on (month, office) yields the global order.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].MonthIndex != events[j].MonthIndex {
			return events[i].MonthIndex < events[j].MonthIndex
		}
		return rank[events[i].Details.Office] < rank[events[j].Details.Office]
	})
	for i, ev := range events {
		ev.Sequence = i
	}

	return &model.SimulationResults{
		Scenario: scenario.Name,
		Monthly:  monthly,
		Yearly:   foldYears(monthly, months),
		Events:   events,
		Metadata: model.ExecutionMetadata{Warnings: warnings},
	}
}

// foldYears sums monthly results into per-year aggregates. EndingFTE is the
// total headcount after the year's last simulated month.
func foldYears(monthly map[string]map[string]*model.MonthlyResults, months []model.YearMonth) map[int]*model.YearlyResults {
	yearly := make(map[int]*model.YearlyResults)
	for _, ym := range months {
		yr := yearly[ym.Year]
		if yr == nil {
			yr = &model.YearlyResults{Year: ym.Year}
			yearly[ym.Year] = yr
		}

		endingFTE := 0
		for _, mr := range monthly[ym.Key()] {
			yr.Recruited += mr.Recruited
			yr.Churned += mr.Churned
			yr.Promoted += mr.Promoted
			yr.Revenue += mr.Revenue
			yr.OperatingCost += mr.OperatingCost
			yr.SalaryBudget += mr.SalaryBudget
			endingFTE += mr.TotalFTE
		}
		// Months arrive in chronological order, so the last month of each
		// year wins.
		yr.EndingFTE = endingFTE
	}
	return yearly
}
