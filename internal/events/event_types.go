package events

import (
	"time"

	"github.com/spec-kit/employee-board/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDatasetLoaded   EventType = "dataset_loaded"
	EventDatasetRejected EventType = "dataset_rejected"
	EventDatasetCleared  EventType = "dataset_cleared"
)

// Event represents a dataset lifecycle change within one session.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DatasetLoadedPayload payload.
type DatasetLoadedPayload struct {
	Info domain.DatasetInfo `json:"info"`
}

// DatasetRejectedPayload payload.
type DatasetRejectedPayload struct {
	FileName    string             `json:"file_name"`
	Format      *domain.FileFormat `json:"format,omitempty"`
	SizeBytes   int64              `json:"size_bytes"`
	Fingerprint string             `json:"fingerprint"`
	Code        string             `json:"code"`
	Detail      string             `json:"detail"`
}

// DatasetClearedPayload payload.
type DatasetClearedPayload struct {
	DatasetID string `json:"dataset_id,omitempty"`
}
