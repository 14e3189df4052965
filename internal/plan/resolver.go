// Package plan resolves business plans into concrete monthly targets,
// extrapolating past the plan's horizon and applying scenario levers.
package plan

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"workforce-engine/internal/growth"
	"workforce-engine/internal/model"
)

// Resolver turns (office, month, levers) into MonthlyTargets. It never fails:
// missing plans degrade to zero targets, malformed entries are skipped, both
// with warnings.
type Resolver struct {
	plans map[string]*model.BusinessPlan
	log   logrus.FieldLogger
}

func NewResolver(plans map[string]*model.BusinessPlan, log logrus.FieldLogger) *Resolver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Resolver{plans: plans, log: log}
}

// Resolve returns the concrete targets for one office-month, plus warnings for
// anything that degraded. The result is never nil and its maps are never nil.
func (r *Resolver) Resolve(office string, ym model.YearMonth, levers model.Levers) (*model.MonthlyTargets, []model.RunWarning) {
	targets := model.NewMonthlyTargets(office, ym)
	var warnings []model.RunWarning

	bp := r.plans[office]
	if bp == nil || len(bp.Months) == 0 {
		warnings = append(warnings, r.warn(office, ym, model.WarnMissingPlan,
			"no business plan loaded, resolving to zero targets"))
		return ApplyLevers(targets, levers), warnings
	}

	base, monthsForward, ok := r.baseMonth(bp, ym)
	if !ok {
		warnings = append(warnings, r.warn(office, ym, model.WarnMissingPlan,
			"requested month precedes all plan months, resolving to zero targets"))
		return ApplyLevers(targets, levers), warnings
	}

	pm := bp.Months[base.Key()]

	// A direct plan hit uses the entries as-is; only extrapolated months grow.
	recMult, priceMult, salaryMult, costMult := 1.0, 1.0, 1.0, 1.0
	if monthsForward > 0 {
		recMult = growth.Multiplier(bp.Growth.Recruitment, monthsForward, ym.Month)
		priceMult = growth.Multiplier(bp.Growth.Price, monthsForward, ym.Month)
		salaryMult = growth.Multiplier(bp.Growth.Salary, monthsForward, ym.Month)
		costMult = growth.Multiplier(bp.Growth.Cost, monthsForward, ym.Month)
	}

	for i, entry := range pm.Entries {
		if err := validateEntry(entry); err != nil {
			warnings = append(warnings, r.warn(office, ym, model.WarnMalformedEntry,
				fmt.Sprintf("skipping plan entry %d: %v", i, err)))
			continue
		}

		rec := roundCount(float64(entry.Recruitment) * recMult)
		targets.AddRecruitment(entry.Role, entry.Level, rec)
		targets.AddChurn(entry.Role, entry.Level, entry.Churn)

		// Simplified revenue model: hires times price. Utilization-based
		// revenue is computed downstream, outside the core.
		targets.Revenue += float64(rec) * entry.Price * priceMult
		targets.SalaryBudget += float64(rec) * entry.Salary * salaryMult
	}
	targets.OperatingCost = pm.OperatingCost * costMult

	return ApplyLevers(targets, levers), warnings
}

// baseMonth picks the plan month to resolve from: the requested month when
// defined, otherwise the latest defined month at or before it.
func (r *Resolver) baseMonth(bp *model.BusinessPlan, ym model.YearMonth) (model.YearMonth, int, bool) {
	if _, ok := bp.Months[ym.Key()]; ok {
		return ym, 0, true
	}
	last, ok := bp.LatestMonthBefore(ym)
	if !ok {
		return model.YearMonth{}, 0, false
	}
	return last, model.MonthsBetween(last, ym), true
}

func validateEntry(e model.PlanEntry) error {
	switch {
	case e.Role == "":
		return fmt.Errorf("missing role")
	case e.Recruitment < 0:
		return fmt.Errorf("negative recruitment %d", e.Recruitment)
	case e.Churn < 0:
		return fmt.Errorf("negative churn %d", e.Churn)
	case e.Price < 0:
		return fmt.Errorf("negative price %v", e.Price)
	case e.Salary < 0:
		return fmt.Errorf("negative salary %v", e.Salary)
	}
	return nil
}

func (r *Resolver) warn(office string, ym model.YearMonth, code, msg string) model.RunWarning {
	r.log.WithFields(logrus.Fields{
		"office": office,
		"month":  ym.Key(),
		"code":   code,
	}).Warn(msg)
	return model.RunWarning{Office: office, Month: ym.Key(), Code: code, Message: msg}
}

// ApplyLevers returns a copy of the targets with the scenario levers applied.
// Recruitment and churn counts are scaled and re-rounded, revenue follows the
// price lever, the salary budget follows the salary lever. Operating cost is
// deliberately untouched by the price lever. Identity levers return an equal
// value.
func ApplyLevers(t *model.MonthlyTargets, levers model.Levers) *model.MonthlyTargets {
	out := model.NewMonthlyTargets(t.Office, t.Month)
	for role, byLevel := range t.Recruitment {
		for level, n := range byLevel {
			out.AddRecruitment(role, level, roundCount(float64(n)*levers.Recruitment))
		}
	}
	for role, byLevel := range t.Churn {
		for level, n := range byLevel {
			out.AddChurn(role, level, roundCount(float64(n)*levers.Churn))
		}
	}
	out.Revenue = t.Revenue * levers.Price
	out.SalaryBudget = t.SalaryBudget * levers.Salary
	out.OperatingCost = t.OperatingCost
	return out
}

// roundCount rounds a scaled people count to the nearest whole person, never
// below zero.
func roundCount(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
