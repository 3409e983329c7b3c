package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_PublishRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventDatasetLoaded, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.SessionID)
		return errors.New("audit store down")
	})
	d.Subscribe(EventDatasetLoaded, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.SessionID)
		return nil
	})
	d.Subscribe(EventDatasetCleared, func(context.Context, Event) error {
		calls = append(calls, "cleared")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventDatasetLoaded, SessionID: "s1"})

	assert.Equal(t, []string{"first:s1", "second:s1"}, calls)
	assert.ErrorContains(t, err, "audit store down")
}

func TestDispatcher_NoListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventDatasetRejected}))
}
