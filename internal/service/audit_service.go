package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/events"
	"github.com/spec-kit/employee-board/internal/repository"
)

const defaultHistoryLimit = 20

// AuditService records dataset lifecycle events. Upload metadata is written
// to the audit repository when one is configured; employee rows never are.
type AuditService struct {
	dispatcher events.Dispatcher
	uploads    repository.UploadRepository
	logger     *zap.Logger
}

// NewAuditService creates the service. uploads may be nil, in which case
// events are only logged.
func NewAuditService(dispatcher events.Dispatcher, uploads repository.UploadRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		uploads:    uploads,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventDatasetLoaded, a.handleDatasetLoaded)
	a.dispatcher.Subscribe(events.EventDatasetRejected, a.handleDatasetRejected)
	a.dispatcher.Subscribe(events.EventDatasetCleared, a.handleDatasetCleared)
}

// History lists the session's most recent upload attempts, newest first.
func (a *AuditService) History(ctx context.Context, sessionID string) ([]domain.UploadRecord, error) {
	if a.uploads == nil {
		return []domain.UploadRecord{}, nil
	}
	return a.uploads.ListBySession(ctx, sessionID, defaultHistoryLimit)
}

func (a *AuditService) handleDatasetLoaded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DatasetLoadedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	a.logger.Info("DatasetLoaded",
		zap.String("session_id", event.SessionID),
		zap.String("dataset_id", payload.Info.ID),
		zap.String("file_name", payload.Info.FileName),
		zap.Int("rows", payload.Info.RowCount))

	if a.uploads == nil {
		return nil
	}
	format := payload.Info.Format
	return a.uploads.Create(ctx, &domain.UploadRecord{
		ID:          event.ID,
		SessionID:   event.SessionID,
		FileName:    payload.Info.FileName,
		Format:      &format,
		SizeBytes:   payload.Info.SizeBytes,
		RowCount:    payload.Info.RowCount,
		Fingerprint: payload.Info.Fingerprint,
		Outcome:     domain.UploadOutcomeLoaded,
	})
}

func (a *AuditService) handleDatasetRejected(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DatasetRejectedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	a.logger.Info("DatasetRejected",
		zap.String("session_id", event.SessionID),
		zap.String("file_name", payload.FileName),
		zap.String("code", payload.Code),
		zap.String("detail", payload.Detail))

	if a.uploads == nil {
		return nil
	}
	detail := payload.Detail
	return a.uploads.Create(ctx, &domain.UploadRecord{
		ID:          event.ID,
		SessionID:   event.SessionID,
		FileName:    payload.FileName,
		Format:      payload.Format,
		SizeBytes:   payload.SizeBytes,
		Fingerprint: payload.Fingerprint,
		Outcome:     domain.UploadOutcomeRejected,
		ErrorDetail: &detail,
	})
}

func (a *AuditService) handleDatasetCleared(_ context.Context, event events.Event) error {
	a.logger.Info("DatasetCleared", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}
