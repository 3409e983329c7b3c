package dto

import (
	"time"

	"github.com/spec-kit/employee-board/internal/domain"
)

// DatasetResponse describes the session's loaded table.
type DatasetResponse struct {
	ID          string            `json:"id"`
	FileName    string            `json:"file_name"`
	Format      domain.FileFormat `json:"format"`
	SizeBytes   int64             `json:"size_bytes"`
	RowCount    int               `json:"row_count"`
	Fingerprint string            `json:"fingerprint"`
	LoadedAt    time.Time         `json:"loaded_at"`
}

// UploadRecordResponse is one entry of the upload history.
type UploadRecordResponse struct {
	ID          string               `json:"id"`
	FileName    string               `json:"file_name"`
	Format      *domain.FileFormat   `json:"format"`
	SizeBytes   int64                `json:"size_bytes"`
	RowCount    int                  `json:"row_count"`
	Fingerprint string               `json:"fingerprint"`
	Outcome     domain.UploadOutcome `json:"outcome"`
	ErrorDetail *string              `json:"error_detail"`
	CreatedAt   time.Time            `json:"created_at"`
}
