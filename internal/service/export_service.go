package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-board/internal/domain"
)

const (
	activeSheet   = "Active"
	resignedSheet = "Resigned This Year"
)

// ErrExportGenerateFail reports a failure while building the workbook.
var ErrExportGenerateFail = errors.New("failed to generate status board workbook")

var (
	activeHeaders   = []interface{}{"Name", "Employment Type", "Title", "Hire Date", "Department"}
	resignedHeaders = []interface{}{"Name", "Employment Type", "Title", "Resignation Date", "Resignation Route"}
)

// ExportService renders status boards as spreadsheets.
type ExportService struct {
	logger *zap.Logger
}

// NewExportService builds the service.
func NewExportService(logger *zap.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// ExportStatusBoard writes the board as an .xlsx workbook with one sheet per
// subset. It returns the workbook and a suggested file name.
func (s *ExportService) ExportStatusBoard(board domain.StatusBoard) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName(f.GetSheetName(0), activeSheet); err != nil {
		return nil, "", s.fail(err)
	}
	if _, err := f.NewSheet(resignedSheet); err != nil {
		return nil, "", s.fail(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", s.fail(err)
	}

	activeRows := make([][]interface{}, 0, len(board.Active))
	for _, e := range board.Active {
		activeRows = append(activeRows, []interface{}{e.Name, e.EmploymentType, e.Title, e.HireDate.String(), e.Department})
	}
	resignedRows := make([][]interface{}, 0, len(board.ResignedThisYear))
	for _, e := range board.ResignedThisYear {
		resignedRows = append(resignedRows, []interface{}{e.Name, e.EmploymentType, e.Title, e.ResignationDate.String(), e.ResignationRoute})
	}

	if err := writeSheet(f, activeSheet, activeHeaders, activeRows, headerStyle); err != nil {
		return nil, "", s.fail(err)
	}
	if err := writeSheet(f, resignedSheet, resignedHeaders, resignedRows, headerStyle); err != nil {
		return nil, "", s.fail(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", s.fail(err)
	}
	return buf, exportFileName(board), nil
}

func writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "E", 18)
}

func exportFileName(board domain.StatusBoard) string {
	name := "status-board-" + board.AsOf.String()
	switch board.Period.Mode {
	case domain.PeriodYear:
		name += fmt.Sprintf("-hired-%d", board.Period.Year)
	case domain.PeriodMonth:
		name += fmt.Sprintf("-hired-month-%02d", board.Period.Month)
	}
	return name + ".xlsx"
}

func (s *ExportService) fail(err error) error {
	s.logger.Error("status board export failed", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
}
