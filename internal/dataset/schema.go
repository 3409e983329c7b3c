package dataset

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/spec-kit/employee-board/internal/domain"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

// Column identifies one field of the roster schema.
type Column string

const (
	ColumnName             Column = "name"
	ColumnEmployeeID       Column = "employee_id"
	ColumnStatus           Column = "status"
	ColumnEmploymentType   Column = "employment_type"
	ColumnTitle            Column = "title"
	ColumnGrade            Column = "grade"
	ColumnOrganization     Column = "organization"
	ColumnDepartment       Column = "department"
	ColumnPhone            Column = "phone"
	ColumnEmail            Column = "email"
	ColumnHireDate         Column = "hire_date"
	ColumnResignationDate  Column = "resignation_date"
	ColumnResignationRoute Column = "resignation_route"
)

// Columns lists every schema column in display order. All are required.
var Columns = []Column{
	ColumnName,
	ColumnEmployeeID,
	ColumnStatus,
	ColumnEmploymentType,
	ColumnTitle,
	ColumnGrade,
	ColumnOrganization,
	ColumnDepartment,
	ColumnPhone,
	ColumnEmail,
	ColumnHireDate,
	ColumnResignationDate,
	ColumnResignationRoute,
}

// DisplayName is the column's name in error messages.
func (c Column) DisplayName() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

var defaultAliases = map[Column][]string{
	ColumnName:             {"이름", "성명", "name", "employee name"},
	ColumnEmployeeID:       {"직원 번호", "사번", "사원 번호", "employee id", "employee no", "id"},
	ColumnStatus:           {"고용 상태", "재직 상태", "status", "employment status"},
	ColumnEmploymentType:   {"정규직/비정규직 여부", "고용 형태", "employment type"},
	ColumnTitle:            {"직위", "title", "position"},
	ColumnGrade:            {"직급", "grade", "rank"},
	ColumnOrganization:     {"소속", "organization", "org"},
	ColumnDepartment:       {"부서", "department", "dept"},
	ColumnPhone:            {"전화번호", "연락처", "phone", "phone number"},
	ColumnEmail:            {"이메일", "email", "e-mail"},
	ColumnHireDate:         {"입사일", "hire date", "hired at", "start date"},
	ColumnResignationDate:  {"퇴사일", "resignation date", "resigned at", "end date"},
	ColumnResignationRoute: {"퇴사 경로", "퇴사 사유", "resignation route", "resignation reason"},
}

// Schema maps uploaded header text onto schema columns.
type Schema struct {
	aliases map[string]Column
}

// DefaultSchema recognises the Korean headers of the source spreadsheets and
// their English equivalents.
func DefaultSchema() *Schema {
	s := &Schema{aliases: make(map[string]Column)}
	for col, names := range defaultAliases {
		s.AddAliases(col, names...)
	}
	return s
}

type aliasFile struct {
	Columns map[Column][]string `yaml:"columns"`
}

// LoadSchema extends the default aliases with those listed in a YAML file:
//
//	columns:
//	  hire_date: ["Joined", "입사 일자"]
func LoadSchema(path string) (*Schema, error) {
	s := DefaultSchema()
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read column map %s: %w", path, err)
	}
	var file aliasFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("dataset: parse column map: %w", err)
	}
	for col, names := range file.Columns {
		if _, known := defaultAliases[col]; !known {
			return nil, fmt.Errorf("dataset: column map names unknown column %q", col)
		}
		s.AddAliases(col, names...)
	}
	return s, nil
}

// AddAliases registers extra header spellings for a column.
func (s *Schema) AddAliases(col Column, names ...string) {
	for _, name := range names {
		if key := normalizeHeader(name); key != "" {
			s.aliases[key] = col
		}
	}
}

// Resolve locates every schema column in the header row. The first column
// that cannot be found is reported as a load error.
func (s *Schema) Resolve(header []string) (map[Column]int, error) {
	index := make(map[Column]int, len(Columns))
	for i, h := range header {
		col, ok := s.aliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := index[col]; !seen {
			index[col] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, apperrors.NewMissingColumn(col.DisplayName())
		}
	}
	return index, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return cases.Fold().String(strings.Join(strings.Fields(h), " "))
}

var statusAliases = map[string]domain.EmploymentStatus{
	"재직중":        domain.EmploymentStatusActive,
	"재직":         domain.EmploymentStatusActive,
	"active":     domain.EmploymentStatusActive,
	"employed":   domain.EmploymentStatusActive,
	"퇴사":         domain.EmploymentStatusResigned,
	"퇴직":         domain.EmploymentStatusResigned,
	"resigned":   domain.EmploymentStatusResigned,
	"retired":    domain.EmploymentStatusResigned,
	"terminated": domain.EmploymentStatusResigned,
}

// ParseStatus maps status cell text onto the status enum, ignoring case and
// whitespace. Unrecognised text yields EmploymentStatusUnknown.
func ParseStatus(raw string) domain.EmploymentStatus {
	key := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if status, ok := statusAliases[cases.Fold().String(key)]; ok {
		return status
	}
	return domain.EmploymentStatusUnknown
}
