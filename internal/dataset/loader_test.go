package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"

	"github.com/spec-kit/employee-board/internal/domain"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

var koreanHeader = []string{
	"이름", "직원 번호", "고용 상태", "정규직/비정규직 여부", "직위", "직급",
	"소속", "부서", "전화번호", "이메일", "입사일", "퇴사일", "퇴사 경로",
}

const koreanCSV = "이름,직원 번호,고용 상태,정규직/비정규직 여부,직위,직급,소속,부서,전화번호,이메일,입사일,퇴사일,퇴사 경로\n" +
	"김민수,E001,재직 중,정규직,대리,3급,본사,개발팀,010-1234-5678,kim@example.com,2021-03-01,,\n" +
	"이서연,E002,퇴사,비정규직,사원,5급,지사,영업팀,010-2222-3333,lee@example.com,2020/01/15,2026-06-15 00:00:00,자진 퇴사\n"

func requireLoadError(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %T", err)
	assert.Equal(t, apperrors.CodeLoadFailed, de.Code)
	return de
}

func TestLoader_CSV(t *testing.T) {
	table, err := NewLoader(nil).Load("roster.csv", strings.NewReader(koreanCSV))
	require.NoError(t, err)

	assert.Equal(t, koreanHeader, table.Columns)
	require.Equal(t, 2, table.Len())

	kim := table.Rows[0]
	assert.Equal(t, "김민수", kim.Name)
	assert.Equal(t, "E001", kim.EmployeeID)
	assert.Equal(t, domain.EmploymentStatusActive, kim.Status)
	assert.Equal(t, "재직 중", kim.RawStatus)
	assert.Equal(t, "정규직", kim.EmploymentType)
	assert.Equal(t, "개발팀", kim.Department)
	assert.Equal(t, domain.NewDate(2021, time.March, 1), kim.HireDate)
	assert.True(t, kim.ResignationDate.IsZero())

	lee := table.Rows[1]
	assert.Equal(t, domain.EmploymentStatusResigned, lee.Status)
	assert.Equal(t, domain.NewDate(2020, time.January, 15), lee.HireDate)
	assert.Equal(t, domain.NewDate(2026, time.June, 15), lee.ResignationDate)
	assert.Equal(t, "자진 퇴사", lee.ResignationRoute)
}

func TestLoader_CSVWithBOMAndBlankLines(t *testing.T) {
	data := "\ufeff" + strings.Replace(koreanCSV, "\n", "\n\n", 1)
	table, err := NewLoader(nil).Load("ROSTER.CSV", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "이름", table.Columns[0])
	assert.Equal(t, 2, table.Len())
}

func TestLoader_CSVInEUCKR(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String(koreanCSV)
	require.NoError(t, err)

	table, err := NewLoader(nil).Load("legacy.csv", strings.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "김민수", table.Rows[0].Name)
	assert.Equal(t, domain.EmploymentStatusResigned, table.Rows[1].Status)
}

func TestLoader_EnglishHeaders(t *testing.T) {
	data := "Name,Employee ID,Status,Employment Type,Title,Grade,Organization,Department,Phone,Email,Hire Date,Resignation Date,Resignation Route\n" +
		"Kim,E001,Active,regular,Manager,M1,HQ,Platform,555-0100,kim@example.com,2021-03-01,,\n"

	table, err := NewLoader(nil).Load("roster.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Kim", table.Rows[0].Name)
	assert.Equal(t, domain.EmploymentStatusActive, table.Rows[0].Status)
}

func TestLoader_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &koreanHeader))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{
		"김민수", 1001, "재직 중", "정규직", "대리", "3급", "본사", "개발팀",
		"010-1234-5678", "kim@example.com", 44256, nil, nil,
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{
		"이서연", "E002", "퇴사", "비정규직", "사원", "5급", "지사", "영업팀",
		"010-2222-3333", "lee@example.com", "2020-01-15", 46188, "권고 사직",
	}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := NewLoader(nil).Load("roster.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len(), "blank row 3 must be skipped")

	kim := table.Rows[0]
	assert.Equal(t, "1001", kim.EmployeeID)
	assert.Equal(t, domain.NewDate(2021, time.March, 1), kim.HireDate)
	assert.True(t, kim.ResignationDate.IsZero())

	lee := table.Rows[1]
	assert.Equal(t, domain.NewDate(2020, time.January, 15), lee.HireDate)
	assert.Equal(t, domain.NewDate(2026, time.June, 15), lee.ResignationDate)
	assert.Equal(t, "권고 사직", lee.ResignationRoute)
}

func TestLoader_CSVShortRowsArePadded(t *testing.T) {
	data := koreanCSV + "박지훈,E003\n"
	table, err := NewLoader(nil).Load("roster.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	short := table.Rows[2]
	assert.Equal(t, "박지훈", short.Name)
	assert.Equal(t, "E003", short.EmployeeID)
	assert.Equal(t, domain.EmploymentStatusUnknown, short.Status)
	assert.True(t, short.HireDate.IsZero())
	assert.Empty(t, short.ResignationRoute)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewLoader(nil).Load("roster.pdf", strings.NewReader("x"))
		de := requireLoadError(t, err)
		assert.Contains(t, de.Message, "unsupported file extension")
	})

	t.Run("missing column", func(t *testing.T) {
		data := strings.Replace(koreanCSV, "입사일", "메모", 1)
		_, err := NewLoader(nil).Load("roster.csv", strings.NewReader(data))
		de := requireLoadError(t, err)
		assert.Equal(t, "missing expected column: hire date", de.Message)
		assert.Equal(t, "hire date", de.Details["column"])
	})

	t.Run("malformed csv", func(t *testing.T) {
		data := koreanCSV + "박지훈,\"E0\"03\n"
		_, err := NewLoader(nil).Load("roster.csv", strings.NewReader(data))
		de := requireLoadError(t, err)
		assert.Equal(t, "failed to read csv", de.Message)
	})

	t.Run("bare year in csv date column", func(t *testing.T) {
		data := strings.Replace(koreanCSV, "2021-03-01", "2021", 1)
		_, err := NewLoader(nil).Load("roster.csv", strings.NewReader(data))
		de := requireLoadError(t, err)
		assert.Equal(t, "invalid hire date in row 2", de.Message)
	})

	t.Run("invalid date", func(t *testing.T) {
		data := strings.Replace(koreanCSV, "2021-03-01", "sometime", 1)
		_, err := NewLoader(nil).Load("roster.csv", strings.NewReader(data))
		de := requireLoadError(t, err)
		assert.Equal(t, "invalid hire date in row 2", de.Message)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		_, err := NewLoader(nil).Load("roster.xlsx", strings.NewReader("not a zip"))
		de := requireLoadError(t, err)
		assert.Equal(t, "failed to read spreadsheet", de.Message)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := NewLoader(nil).Load("roster.csv", strings.NewReader(""))
		de := requireLoadError(t, err)
		assert.Equal(t, "file contains no header row", de.Message)
	})
}

func TestLoadSchema_ExtraAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns:\n  hire_date: [\"Joined On\"]\n"), 0o600))

	schema, err := LoadSchema(path)
	require.NoError(t, err)

	data := strings.Replace(koreanCSV, "입사일", "joined   on", 1)
	table, err := NewLoader(schema).Load("roster.csv", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2021, time.March, 1), table.Rows[0].HireDate)
}

func TestLoadSchema_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSchema(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("columns:\n  salary: [\"연봉\"]\n"), 0o600))
	_, err = LoadSchema(unknown)
	assert.ErrorContains(t, err, "unknown column")

	schema, err := LoadSchema("")
	require.NoError(t, err)
	assert.NotNil(t, schema)
}

func TestFormatFor(t *testing.T) {
	cases := map[string]domain.FileFormat{
		"a.xlsx":         domain.FileFormatXLSX,
		"A.XLSM":         domain.FileFormatXLSX,
		"dir/roster.csv": domain.FileFormatCSV,
	}
	for name, want := range cases {
		got, err := FormatFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"roster.xls", "roster", "roster.csv.txt"} {
		_, err := FormatFor(name)
		requireLoadError(t, err)
	}
}
