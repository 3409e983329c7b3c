package service

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/spec-kit/employee-board/internal/dataset"
	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/events"
	"github.com/spec-kit/employee-board/internal/session"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

// DatasetService owns the upload lifecycle of each session's table.
type DatasetService struct {
	loader     *dataset.Loader
	store      session.Store
	dispatcher events.Dispatcher
	clock      Clock
	logger     *zap.Logger
}

// DatasetDependencies encapsulates collaborators for the dataset service.
type DatasetDependencies struct {
	Loader     *dataset.Loader
	Store      session.Store
	Dispatcher events.Dispatcher
	Clock      Clock
	Logger     *zap.Logger
}

// NewDatasetService builds the service.
func NewDatasetService(deps DatasetDependencies) *DatasetService {
	svc := &DatasetService{
		loader:     deps.Loader,
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}
	if svc.loader == nil {
		svc.loader = dataset.NewLoader(nil)
	}
	if svc.clock == nil {
		svc.clock = NewClock(nil)
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// Upload parses the file and makes it the session's table, replacing any
// previous one. When the file cannot be loaded the session is left with no
// table at all, never the stale one.
func (s *DatasetService) Upload(ctx context.Context, sessionID, fileName string, content io.Reader) (*domain.DatasetInfo, error) {
	fileName = filepath.Base(fileName)

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, s.reject(ctx, sessionID, rejection{fileName: fileName}, apperrors.NewLoadError("failed to read uploaded file", err))
	}
	sum := blake2b.Sum256(data)
	rej := rejection{fileName: fileName, size: int64(len(data)), fingerprint: hex.EncodeToString(sum[:])}

	format, err := dataset.FormatFor(fileName)
	if err != nil {
		return nil, s.reject(ctx, sessionID, rej, err)
	}
	rej.format = &format

	table, err := s.loader.Parse(format, data)
	if err != nil {
		return nil, s.reject(ctx, sessionID, rej, err)
	}

	info := domain.DatasetInfo{
		ID:          uuid.NewString(),
		FileName:    fileName,
		Format:      format,
		SizeBytes:   rej.size,
		RowCount:    table.Len(),
		Fingerprint: rej.fingerprint,
		LoadedAt:    s.clock.Now(),
	}
	if err := s.store.Put(ctx, sessionID, &domain.Dataset{Info: info, Table: table}); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("dataset loaded",
		zap.String("session_id", sessionID),
		zap.String("file_name", fileName),
		zap.Int("rows", info.RowCount))
	s.publish(ctx, events.Event{
		Type:      events.EventDatasetLoaded,
		SessionID: sessionID,
		Payload:   events.DatasetLoadedPayload{Info: info},
	})
	return &info, nil
}

// Reject records an upload that failed before its content could be read. The
// session's table is cleared exactly as for a file that fails to load.
func (s *DatasetService) Reject(ctx context.Context, sessionID, fileName string, cause error) error {
	return s.reject(ctx, sessionID, rejection{fileName: filepath.Base(fileName)}, cause)
}

type rejection struct {
	fileName    string
	format      *domain.FileFormat
	size        int64
	fingerprint string
}

func (s *DatasetService) reject(ctx context.Context, sessionID string, rej rejection, cause error) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear session after rejected upload", zap.String("session_id", sessionID), zap.Error(err))
	}

	de := apperrors.ToDomainError(cause)
	s.logger.Info("dataset rejected",
		zap.String("session_id", sessionID),
		zap.String("file_name", rej.fileName),
		zap.String("reason", de.Error()))
	s.publish(ctx, events.Event{
		Type:      events.EventDatasetRejected,
		SessionID: sessionID,
		Payload: events.DatasetRejectedPayload{
			FileName:    rej.fileName,
			Format:      rej.format,
			SizeBytes:   rej.size,
			Fingerprint: rej.fingerprint,
			Code:        de.Code,
			Detail:      de.Error(),
		},
	})
	return cause
}

// Current returns the session's dataset.
func (s *DatasetService) Current(ctx context.Context, sessionID string) (*domain.Dataset, error) {
	ds, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, apperrors.NewNoDataset()
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return ds, nil
}

// Table returns the session's loaded table.
func (s *DatasetService) Table(ctx context.Context, sessionID string) (*domain.Table, error) {
	ds, err := s.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ds.Table, nil
}

// Discard drops the session's table. Discarding an empty session is a no-op.
func (s *DatasetService) Discard(ctx context.Context, sessionID string) error {
	var datasetID string
	if ds, err := s.store.Get(ctx, sessionID); err == nil {
		datasetID = ds.Info.ID
	} else if !errors.Is(err, session.ErrNotFound) {
		return apperrors.NewInternalError(err)
	}
	if datasetID == "" {
		return nil
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		return apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.Event{
		Type:      events.EventDatasetCleared,
		SessionID: sessionID,
		Payload:   events.DatasetClearedPayload{DatasetID: datasetID},
	})
	return nil
}

func (s *DatasetService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.clock.Now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
