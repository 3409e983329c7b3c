package service

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/spec-kit/employee-board/internal/domain"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

// Oldest year offered by the year picker.
const firstPickerYear = 2001

// QueryService answers search and status-board queries over a loaded table.
// It never modifies the table it is given.
type QueryService struct {
	clock Clock
}

// NewQueryService builds the service.
func NewQueryService(clock Clock) *QueryService {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &QueryService{clock: clock}
}

// Search returns, in table order, the employees whose name contains term
// ignoring case or whose employee ID contains term exactly. An empty term
// matches every row.
func (s *QueryService) Search(table *domain.Table, term string) ([]domain.Employee, error) {
	if table == nil {
		return nil, apperrors.NewNoDataset()
	}

	fold := cases.Fold()
	needle := fold.String(term)

	result := make([]domain.Employee, 0)
	for _, emp := range table.Rows {
		if strings.Contains(fold.String(emp.Name), needle) || strings.Contains(emp.EmployeeID, term) {
			result = append(result, emp)
		}
	}
	return result, nil
}

// StatusBoard splits the table into currently active employees and
// employees who resigned in the current calendar year. The period filter is
// applied to hire date before either subset is taken, so it narrows the
// resigned subset too.
func (s *QueryService) StatusBoard(table *domain.Table, period domain.PeriodFilter) (domain.StatusBoard, error) {
	if table == nil {
		return domain.StatusBoard{}, apperrors.NewNoDataset()
	}
	if period.Mode == "" {
		period.Mode = domain.PeriodAll
	}
	if err := period.Validate(); err != nil {
		return domain.StatusBoard{}, apperrors.NewValidationError(err.Error(), nil)
	}

	today := domain.DateOf(s.clock.Now())
	board := domain.StatusBoard{
		Period:           period,
		AsOf:             today,
		Active:           make([]domain.Employee, 0),
		ResignedThisYear: make([]domain.Employee, 0),
	}

	for _, emp := range table.Rows {
		if !period.Matches(emp.HireDate) {
			continue
		}
		switch {
		case emp.IsActive():
			board.Active = append(board.Active, emp)
		case emp.IsResigned() && !emp.ResignationDate.IsZero() && emp.ResignationDate.Year == today.Year:
			board.ResignedThisYear = append(board.ResignedThisYear, emp)
		}
	}
	return board, nil
}

// PeriodOptions lists the years (newest first, down to 2001) and months the
// status board pickers offer.
func (s *QueryService) PeriodOptions() domain.PeriodOptions {
	current := s.clock.Now().Year()
	years := make([]int, 0, current-firstPickerYear+1)
	for y := current; y >= firstPickerYear; y-- {
		years = append(years, y)
	}
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return domain.PeriodOptions{Years: years, Months: months}
}
