package dataset

import (
	"bytes"
	"encoding/csv"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV decodes a comma-separated upload into raw records. Rows may have
// fewer fields than the header. Input that is not
// valid UTF-8 is treated as EUC-KR (CP949), which is what Korean spreadsheet
// tools write by default.
func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := korean.EUCKR.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	// short rows are padded by the loader
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
