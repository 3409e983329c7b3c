package dataset

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the raw cell values of the workbook's first sheet. Raw
// values keep date cells as serial numbers so they can be normalised without
// guessing at the cell's display format.
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}
