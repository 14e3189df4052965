package model

import (
	"fmt"
	"time"
)

// CATCategory is the tenure-in-level bucket used to look up a promotion
// probability.
type CATCategory string

const (
	CATUnder6 CATCategory = "0-6"
	CAT6To12  CATCategory = "6-12"
	CAT12To18 CATCategory = "12-18"
	CAT18To24 CATCategory = "18-24"
	CAT24To30 CATCategory = "24-30"
	CAT30Plus CATCategory = "30+"
)

// CategoryForTenure buckets whole months spent at the current level.
func CategoryForTenure(months int) CATCategory {
	switch {
	case months < 6:
		return CATUnder6
	case months < 12:
		return CAT6To12
	case months < 18:
		return CAT12To18
	case months < 24:
		return CAT18To24
	case months < 30:
		return CAT24To30
	default:
		return CAT30Plus
	}
}

// CATMatrix maps level and tenure category to a promotion probability.
type CATMatrix map[Level]map[CATCategory]float64

// Probability returns the configured probability, or 0 when the level or
// category has none.
func (m CATMatrix) Probability(level Level, cat CATCategory) float64 {
	return m[level][cat]
}

func (m CATMatrix) Validate() error {
	for level, byCat := range m {
		for cat, p := range byCat {
			if p < 0 || p > 1 {
				return fmt.Errorf("cat matrix %s/%s: probability %v outside [0,1]", level, cat, p)
			}
		}
	}
	return nil
}

// ProgressionRules configures when and where promotions can happen.
type ProgressionRules struct {
	// Paths maps role and current level to the promotion target level.
	Paths map[Role]map[Level]Level

	// Months lists the calendar months in which a level's promotions are
	// evaluated. A level with no entry is evaluated every month.
	Months map[Level][]time.Month

	// MinTenureMonths is the minimum tenure at a level before promotion is
	// possible. Levels with no entry use DefaultMinTenureMonths.
	MinTenureMonths map[Level]int
}

const DefaultMinTenureMonths = 6

// NextLevel returns the promotion target for role/level. The second return is
// false at the top of the ladder.
func (r ProgressionRules) NextLevel(role Role, level Level) (Level, bool) {
	next, ok := r.Paths[role][level]
	return next, ok && next != NoLevel
}

// InWindow reports whether the level promotes in the given calendar month.
func (r ProgressionRules) InWindow(level Level, month time.Month) bool {
	months, ok := r.Months[level]
	if !ok {
		return true
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

func (r ProgressionRules) MinTenure(level Level) int {
	if n, ok := r.MinTenureMonths[level]; ok {
		return n
	}
	return DefaultMinTenureMonths
}

func (r ProgressionRules) Validate() error {
	// Paths must terminate. A walk from any entry level that revisits a
	// level is a cycle and would promote people forever.
	for role, steps := range r.Paths {
		for start := range steps {
			seen := map[Level]bool{start: true}
			cur := start
			for {
				next, ok := steps[cur]
				if !ok || next == NoLevel {
					break
				}
				if seen[next] {
					return fmt.Errorf("progression path for %s cycles at %s", role, next)
				}
				seen[next] = true
				cur = next
			}
		}
	}
	for level, months := range r.Months {
		for _, m := range months {
			if m < time.January || m > time.December {
				return fmt.Errorf("progression months for %s: invalid month %d", level, m)
			}
		}
	}
	for level, n := range r.MinTenureMonths {
		if n < 0 {
			return fmt.Errorf("min tenure for %s must be non-negative", level)
		}
	}
	return nil
}
