package dto

import (
	"github.com/spec-kit/employee-board/internal/domain"
)

// StatusBoardQuery captures the period picker. Year applies to period=year,
// Month to period=month.
type StatusBoardQuery struct {
	Period string `query:"period" validate:"omitempty,oneof=all year month"`
	Year   int    `query:"year" validate:"required_if=Period year,min=0,max=9999"`
	Month  int    `query:"month" validate:"required_if=Period month,min=0,max=12"`
}

// ActiveRow is the fixed column subset shown for active employees.
type ActiveRow struct {
	Name           string      `json:"name"`
	EmploymentType string      `json:"employment_type"`
	Title          string      `json:"title"`
	HireDate       domain.Date `json:"hire_date"`
	Department     string      `json:"department"`
}

// ResignedRow is the fixed column subset shown for this year's resignations.
type ResignedRow struct {
	Name             string      `json:"name"`
	EmploymentType   string      `json:"employment_type"`
	Title            string      `json:"title"`
	ResignationDate  domain.Date `json:"resignation_date"`
	ResignationRoute string      `json:"resignation_route"`
}

// StatusBoardResponse is the rendered board.
type StatusBoardResponse struct {
	Period           domain.PeriodFilter `json:"period"`
	AsOf             domain.Date         `json:"as_of"`
	ActiveCount      int                 `json:"active_count"`
	ResignedCount    int                 `json:"resigned_count"`
	Active           []ActiveRow         `json:"active"`
	ResignedThisYear []ResignedRow       `json:"resigned_this_year"`
}
