package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-board/internal/domain"
)

func TestExportService_StatusBoard(t *testing.T) {
	board := domain.StatusBoard{
		Period: domain.ForYear(2021),
		AsOf:   date(2026, time.October, 18),
		Active: []domain.Employee{{
			Name: "Kim", EmploymentType: "정규직", Title: "대리",
			HireDate: date(2021, time.March, 1), Department: "개발팀",
		}},
		ResignedThisYear: []domain.Employee{{
			Name: "Park", EmploymentType: "계약직", Title: "사원",
			ResignationDate: date(2026, time.June, 15), ResignationRoute: "자진 퇴사",
		}},
	}

	buf, name, err := NewExportService(zap.NewNop()).ExportStatusBoard(board)
	require.NoError(t, err)
	assert.Equal(t, "status-board-2026-10-18-hired-2021.xlsx", name)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Active", "Resigned This Year"}, f.GetSheetList())

	rows, err := f.GetRows("Active")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Employment Type", "Title", "Hire Date", "Department"},
		{"Kim", "정규직", "대리", "2021-03-01", "개발팀"},
	}, rows)

	rows, err = f.GetRows("Resigned This Year")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Employment Type", "Title", "Resignation Date", "Resignation Route"},
		{"Park", "계약직", "사원", "2026-06-15", "자진 퇴사"},
	}, rows)
}

func TestExportService_EmptyBoard(t *testing.T) {
	board := domain.StatusBoard{Period: domain.ForMonth(3), AsOf: date(2026, time.October, 18)}

	buf, name, err := NewExportService(zap.NewNop()).ExportStatusBoard(board)
	require.NoError(t, err)
	assert.Equal(t, "status-board-2026-10-18-hired-month-03.xlsx", name)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Resigned This Year")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
