package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var delivered []Event
	d.Subscribe(EventComplaintCreated, func(_ context.Context, event Event) error {
		delivered = append(delivered, event)
		return nil
	})
	d.Subscribe(EventComplaintStatusChanged, func(_ context.Context, event Event) error {
		t.Fatalf("wrong event type delivered: %s", event.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventComplaintCreated, ComplaintID: 5})
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, int64(5), delivered[0].ComplaintID)
}

func TestDispatcherFailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventComplaintStatusChanged, func(context.Context, Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventComplaintStatusChanged, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventComplaintStatusChanged})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventComplaintPriorityChanged}))
}
