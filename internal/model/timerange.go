package model

import (
	"fmt"
	"time"
)

// Calendar bounds supported by the simulation.
const (
	MinYear = 2000
	MaxYear = 2100
)

// YearMonth identifies one simulated calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Key returns the canonical "YYYY-MM" form used to key plans and results.
func (ym YearMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Date returns the first day of the month in UTC.
func (ym YearMonth) Date() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (ym YearMonth) AddMonths(n int) YearMonth {
	t := ym.Date().AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// MonthsBetween returns to - from in whole months. Negative when to precedes from.
func MonthsBetween(from, to YearMonth) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}

// ParseYearMonth parses the canonical "YYYY-MM" form.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ym.Key() + `"`), nil
}

func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid month value %s", data)
	}
	parsed, err := ParseYearMonth(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

// TimeRange is an inclusive [Start, End] span of months.
type TimeRange struct {
	Start YearMonth `json:"start"`
	End   YearMonth `json:"end"`
}

func (r TimeRange) Validate() error {
	for _, ym := range []YearMonth{r.Start, r.End} {
		if ym.Year < MinYear || ym.Year > MaxYear {
			return fmt.Errorf("year %d outside supported range %d-%d", ym.Year, MinYear, MaxYear)
		}
		if ym.Month < time.January || ym.Month > time.December {
			return fmt.Errorf("invalid month %d", ym.Month)
		}
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("end %s precedes start %s", r.End.Key(), r.Start.Key())
	}
	return nil
}

// Months expands the range into its ordered list of months, crossing year
// boundaries as needed.
func (r TimeRange) Months() []YearMonth {
	n := MonthsBetween(r.Start, r.End) + 1
	if n <= 0 {
		return nil
	}
	months := make([]YearMonth, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, r.Start.AddMonths(i))
	}
	return months
}
