package domain

import "time"

// FileFormat identifies the parser used for an upload.
type FileFormat string

const (
	FileFormatXLSX FileFormat = "xlsx"
	FileFormatCSV  FileFormat = "csv"
)

// Table is the in-memory roster produced by a successful load. It is never
// mutated after load; queries build new slices.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    []Employee `json:"rows"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// DatasetInfo describes the table currently owned by a session.
type DatasetInfo struct {
	ID          string     `json:"id"`
	FileName    string     `json:"file_name"`
	Format      FileFormat `json:"format"`
	SizeBytes   int64      `json:"size_bytes"`
	RowCount    int        `json:"row_count"`
	Fingerprint string     `json:"fingerprint"`
	LoadedAt    time.Time  `json:"loaded_at"`
}

// Dataset bundles a session's table with its metadata.
type Dataset struct {
	Info  DatasetInfo `json:"info"`
	Table *Table      `json:"table"`
}

// UploadOutcome records whether an upload attempt produced a table.
type UploadOutcome string

const (
	UploadOutcomeLoaded   UploadOutcome = "LOADED"
	UploadOutcomeRejected UploadOutcome = "REJECTED"
)

// UploadRecord is audit metadata for one upload attempt. It never carries
// employee rows.
type UploadRecord struct {
	ID          string
	SessionID   string
	FileName    string
	Format      *FileFormat
	SizeBytes   int64
	RowCount    int
	Fingerprint string
	Outcome     UploadOutcome
	ErrorDetail *string
	CreatedAt   time.Time
}
