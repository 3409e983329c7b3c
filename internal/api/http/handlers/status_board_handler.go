package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-board/internal/api/dto"
	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatusBoardHandler serves the active / resigned-this-year board.
type StatusBoardHandler struct {
	datasets *service.DatasetService
	queries  *service.QueryService
	exports  *service.ExportService
}

// NewStatusBoardHandler constructs handler.
func NewStatusBoardHandler(datasets *service.DatasetService, queries *service.QueryService, exports *service.ExportService) *StatusBoardHandler {
	return &StatusBoardHandler{datasets: datasets, queries: queries, exports: exports}
}

// Board GET /status-board.
func (h *StatusBoardHandler) Board(c *fiber.Ctx) error {
	board, err := h.buildBoard(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": statusBoardResponse(board)})
}

// Periods GET /status-board/periods.
func (h *StatusBoardHandler) Periods(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.queries.PeriodOptions()})
}

// Export GET /status-board/export.
func (h *StatusBoardHandler) Export(c *fiber.Ctx) error {
	board, err := h.buildBoard(c)
	if err != nil {
		return err
	}
	buf, fileName, err := h.exports.ExportStatusBoard(board)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(buf.Bytes())
}

func (h *StatusBoardHandler) buildBoard(c *fiber.Ctx) (domain.StatusBoard, error) {
	sid, err := sessionID(c)
	if err != nil {
		return domain.StatusBoard{}, err
	}
	var query dto.StatusBoardQuery
	if err := bindQuery(c, &query); err != nil {
		return domain.StatusBoard{}, err
	}
	table, err := h.datasets.Table(c.UserContext(), sid)
	if err != nil {
		return domain.StatusBoard{}, err
	}
	return h.queries.StatusBoard(table, periodFilter(query))
}

func periodFilter(q dto.StatusBoardQuery) domain.PeriodFilter {
	switch domain.PeriodMode(q.Period) {
	case domain.PeriodYear:
		return domain.ForYear(q.Year)
	case domain.PeriodMonth:
		return domain.ForMonth(q.Month)
	default:
		return domain.AllPeriods()
	}
}

func statusBoardResponse(board domain.StatusBoard) dto.StatusBoardResponse {
	resp := dto.StatusBoardResponse{
		Period:           board.Period,
		AsOf:             board.AsOf,
		ActiveCount:      len(board.Active),
		ResignedCount:    len(board.ResignedThisYear),
		Active:           make([]dto.ActiveRow, 0, len(board.Active)),
		ResignedThisYear: make([]dto.ResignedRow, 0, len(board.ResignedThisYear)),
	}
	for _, e := range board.Active {
		resp.Active = append(resp.Active, dto.ActiveRow{
			Name:           e.Name,
			EmploymentType: e.EmploymentType,
			Title:          e.Title,
			HireDate:       e.HireDate,
			Department:     e.Department,
		})
	}
	for _, e := range board.ResignedThisYear {
		resp.ResignedThisYear = append(resp.ResignedThisYear, dto.ResignedRow{
			Name:             e.Name,
			EmploymentType:   e.EmploymentType,
			Title:            e.Title,
			ResignationDate:  e.ResignationDate,
			ResignationRoute: e.ResignationRoute,
		})
	}
	return resp
}
