package dto

import (
	"github.com/spec-kit/employee-board/internal/domain"
)

// SearchQuery captures GET /employees/search parameters.
type SearchQuery struct {
	Q string `query:"q" validate:"max=100"`
}

// EmployeeDetail renders every field of a roster row.
type EmployeeDetail struct {
	Name             string                  `json:"name"`
	EmployeeID       string                  `json:"employee_id"`
	Status           domain.EmploymentStatus `json:"status"`
	StatusLabel      string                  `json:"status_label"`
	EmploymentType   string                  `json:"employment_type"`
	Title            string                  `json:"title"`
	Grade            string                  `json:"grade"`
	Organization     string                  `json:"organization"`
	Department       string                  `json:"department"`
	Phone            string                  `json:"phone"`
	Email            string                  `json:"email"`
	HireDate         domain.Date             `json:"hire_date"`
	ResignationDate  domain.Date             `json:"resignation_date"`
	ResignationRoute string                  `json:"resignation_route"`
}

// SearchResponse distinguishes "no search performed" from "no results".
type SearchResponse struct {
	Query    string           `json:"query"`
	Searched bool             `json:"searched"`
	Count    int              `json:"count"`
	Message  string           `json:"message,omitempty"`
	Results  []EmployeeDetail `json:"results"`
}
