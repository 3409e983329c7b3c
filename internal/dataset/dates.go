package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/employee-board/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"20060102",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
}

// Excel's last representable day, 9999-12-31.
const maxExcelSerial = 2958465

// ParseDate normalises a text date into a calendar date. Blank input gives
// the zero Date. Any time-of-day part is dropped.
func ParseDate(raw string) (domain.Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Date{}, nil
	}

	// "2021. 3. 1." as typed in Korean locales
	if strings.Contains(s, ". ") || strings.HasSuffix(s, ".") {
		s = strings.TrimSuffix(strings.ReplaceAll(s, ". ", "."), ".")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateOf(t), nil
		}
	}
	return domain.Date{}, fmt.Errorf("unrecognised date %q", raw)
}

// ParseCellDate is ParseDate for raw workbook cells, which additionally hold
// dates as Excel serial day numbers.
func ParseCellDate(raw string) (domain.Date, error) {
	d, textErr := ParseDate(raw)
	if textErr == nil {
		return d, nil
	}

	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || serial < 1 || serial > maxExcelSerial {
		return domain.Date{}, textErr
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return domain.Date{}, fmt.Errorf("convert excel serial %q: %w", raw, err)
	}
	return domain.DateOf(t), nil
}
