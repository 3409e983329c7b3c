package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/events"
	"github.com/spec-kit/employee-board/internal/service"
)

func TestStartAuditWorker(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	StartAuditWorker(service.NewAuditService(dispatcher, nil, zap.New(core)))
	StartAuditWorker(nil)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:      events.EventDatasetLoaded,
		SessionID: "s1",
		Payload:   events.DatasetLoadedPayload{Info: domain.DatasetInfo{ID: "d1", FileName: "roster.csv", RowCount: 3}},
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("DatasetLoaded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "roster.csv", entries[0].ContextMap()["file_name"])
}
