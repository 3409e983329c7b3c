package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spec-kit/employee-board/internal/domain"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

var formatsByExt = map[string]domain.FileFormat{
	".xlsx": domain.FileFormatXLSX,
	".xlsm": domain.FileFormatXLSX,
	".csv":  domain.FileFormatCSV,
}

// FormatFor picks the parser for a file by its name suffix.
func FormatFor(fileName string) (domain.FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	format, ok := formatsByExt[ext]
	if !ok {
		return "", apperrors.NewLoadError(fmt.Sprintf("unsupported file extension %q: upload .xlsx or .csv", ext), nil)
	}
	return format, nil
}

// Loader turns uploaded spreadsheets into roster tables.
type Loader struct {
	schema *Schema
}

// NewLoader builds a loader using schema for header matching. A nil schema
// means DefaultSchema.
func NewLoader(schema *Schema) *Loader {
	if schema == nil {
		schema = DefaultSchema()
	}
	return &Loader{schema: schema}
}

// Load reads the whole upload and parses it according to its file name.
func (l *Loader) Load(fileName string, r io.Reader) (*domain.Table, error) {
	format, err := FormatFor(fileName)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewLoadError("failed to read uploaded file", err)
	}
	return l.Parse(format, data)
}

// Parse builds a table from raw file bytes of a known format.
func (l *Loader) Parse(format domain.FileFormat, data []byte) (*domain.Table, error) {
	var (
		records   [][]string
		parseDate = ParseDate
		err       error
	)
	switch format {
	case domain.FileFormatXLSX:
		parseDate = ParseCellDate
		records, err = readXLSX(data)
		if err != nil {
			return nil, apperrors.NewLoadError("failed to read spreadsheet", err)
		}
	case domain.FileFormatCSV:
		records, err = readCSV(data)
		if err != nil {
			return nil, apperrors.NewLoadError("failed to read csv", err)
		}
	default:
		return nil, apperrors.NewLoadError(fmt.Sprintf("unsupported file format %q", format), nil)
	}
	return l.buildTable(records, parseDate)
}

func (l *Loader) buildTable(records [][]string, parseDate func(string) (domain.Date, error)) (*domain.Table, error) {
	start := 0
	for start < len(records) && isBlank(records[start]) {
		start++
	}
	if start == len(records) {
		return nil, apperrors.NewLoadError("file contains no header row", nil)
	}

	header := records[start]
	index, err := l.schema.Resolve(header)
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]domain.Employee, 0, len(records)-start-1)
	for i := start + 1; i < len(records); i++ {
		record := records[i]
		if isBlank(record) {
			continue
		}
		line := i + 1
		emp, err := buildEmployee(record, index, line, parseDate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, emp)
	}

	return &domain.Table{Columns: columns, Rows: rows}, nil
}

func buildEmployee(record []string, index map[Column]int, line int, parseDate func(string) (domain.Date, error)) (domain.Employee, error) {
	cell := func(col Column) string {
		j := index[col]
		if j >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[j])
	}
	date := func(col Column) (domain.Date, error) {
		d, err := parseDate(cell(col))
		if err != nil {
			return domain.Date{}, apperrors.NewLoadError(fmt.Sprintf("invalid %s in row %d", col.DisplayName(), line), err)
		}
		return d, nil
	}

	hired, err := date(ColumnHireDate)
	if err != nil {
		return domain.Employee{}, err
	}
	resigned, err := date(ColumnResignationDate)
	if err != nil {
		return domain.Employee{}, err
	}

	rawStatus := cell(ColumnStatus)
	return domain.Employee{
		Name:             cell(ColumnName),
		EmployeeID:       cell(ColumnEmployeeID),
		Status:           ParseStatus(rawStatus),
		RawStatus:        rawStatus,
		EmploymentType:   cell(ColumnEmploymentType),
		Title:            cell(ColumnTitle),
		Grade:            cell(ColumnGrade),
		Organization:     cell(ColumnOrganization),
		Department:       cell(ColumnDepartment),
		Phone:            cell(ColumnPhone),
		Email:            cell(ColumnEmail),
		HireDate:         hired,
		ResignationDate:  resigned,
		ResignationRoute: cell(ColumnResignationRoute),
	}, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
