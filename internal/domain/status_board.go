package domain

import "fmt"

// PeriodMode selects how the status board restricts rows by hire date.
type PeriodMode string

const (
	PeriodAll   PeriodMode = "all"
	PeriodYear  PeriodMode = "year"
	PeriodMonth PeriodMode = "month"
)

// PeriodFilter restricts rows by hire-date year or hire-date month. The two
// restrictions are mutually exclusive.
type PeriodFilter struct {
	Mode  PeriodMode `json:"mode"`
	Year  int        `json:"year,omitempty"`
	Month int        `json:"month,omitempty"`
}

// AllPeriods applies no restriction.
func AllPeriods() PeriodFilter {
	return PeriodFilter{Mode: PeriodAll}
}

// ForYear keeps rows hired in the given year.
func ForYear(year int) PeriodFilter {
	return PeriodFilter{Mode: PeriodYear, Year: year}
}

// ForMonth keeps rows hired in the given month of any year.
func ForMonth(month int) PeriodFilter {
	return PeriodFilter{Mode: PeriodMonth, Month: month}
}

// Validate checks that the filter is well formed.
func (p PeriodFilter) Validate() error {
	switch p.Mode {
	case PeriodAll, "":
		return nil
	case PeriodYear:
		if p.Year < 1 {
			return fmt.Errorf("year must be positive, got %d", p.Year)
		}
		return nil
	case PeriodMonth:
		if p.Month < 1 || p.Month > 12 {
			return fmt.Errorf("month must be between 1 and 12, got %d", p.Month)
		}
		return nil
	default:
		return fmt.Errorf("unknown period mode %q", p.Mode)
	}
}

// Matches reports whether a hire date passes the filter. Absent hire dates
// only pass the unrestricted filter.
func (p PeriodFilter) Matches(hire Date) bool {
	switch p.Mode {
	case PeriodYear:
		return !hire.IsZero() && hire.Year == p.Year
	case PeriodMonth:
		return !hire.IsZero() && int(hire.Month) == p.Month
	default:
		return true
	}
}

// StatusBoard is the active / resigned-this-year split of a roster.
type StatusBoard struct {
	Period           PeriodFilter
	AsOf             Date
	Active           []Employee
	ResignedThisYear []Employee
}

// PeriodOptions lists the choices offered by the period pickers.
type PeriodOptions struct {
	Years  []int `json:"years"`
	Months []int `json:"months"`
}
