package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribersByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, statusChanged int
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		created++
		return nil
	})
	d.Subscribe(EventTicketStatusChanged, func(ctx context.Context, e Event) error {
		statusChanged++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: 1}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if created != 1 {
		t.Errorf("created handler invoked %d times, want 1", created)
	}
	if statusChanged != 0 {
		t.Errorf("status handler invoked %d times, want 0", statusChanged)
	}
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventCommentAdded, func(ctx context.Context, e Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventCommentAdded, func(ctx context.Context, e Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventCommentAdded}); err != nil {
		t.Fatalf("Publish() error = %v, want nil despite handler failure", err)
	}
	if !second {
		t.Error("second handler skipped after first handler error")
	}
}
