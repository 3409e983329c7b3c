package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-board/internal/api/dto"
	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/service"
)

const noResultsMessage = "no results"

// EmployeesHandler serves roster search.
type EmployeesHandler struct {
	datasets *service.DatasetService
	queries  *service.QueryService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(datasets *service.DatasetService, queries *service.QueryService) *EmployeesHandler {
	return &EmployeesHandler{datasets: datasets, queries: queries}
}

// Search GET /employees/search?q=.
func (h *EmployeesHandler) Search(c *fiber.Ctx) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	var query dto.SearchQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	table, err := h.datasets.Table(c.UserContext(), sid)
	if err != nil {
		return err
	}

	resp := dto.SearchResponse{Query: query.Q, Results: []dto.EmployeeDetail{}}
	if query.Q == "" {
		return c.JSON(fiber.Map{"data": resp})
	}

	matches, err := h.queries.Search(table, query.Q)
	if err != nil {
		return err
	}
	resp.Searched = true
	resp.Count = len(matches)
	for i := range matches {
		resp.Results = append(resp.Results, employeeDetail(&matches[i]))
	}
	if resp.Count == 0 {
		resp.Message = noResultsMessage
	}
	return c.JSON(fiber.Map{"data": resp})
}

func employeeDetail(e *domain.Employee) dto.EmployeeDetail {
	return dto.EmployeeDetail{
		Name:             e.Name,
		EmployeeID:       e.EmployeeID,
		Status:           e.Status,
		StatusLabel:      e.Status.Label(),
		EmploymentType:   e.EmploymentType,
		Title:            e.Title,
		Grade:            e.Grade,
		Organization:     e.Organization,
		Department:       e.Department,
		Phone:            e.Phone,
		Email:            e.Email,
		HireDate:         e.HireDate,
		ResignationDate:  e.ResignationDate,
		ResignationRoute: e.ResignationRoute,
	}
}
