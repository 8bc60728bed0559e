package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventTicketSubmitted, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	event := Event{Type: EventTicketSubmitted, TicketID: "ticket-1"}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if len(got) != 1 || got[0].TicketID != "ticket-1" {
		t.Errorf("delivered = %+v", got)
	}
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventTicketStatusChanged, func(context.Context, Event) error {
		called = true
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventTicketSubmitted})
	if called {
		t.Error("handler invoked for unrelated event type")
	}
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	d.Subscribe(EventTicketCommentAdded, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	second := false
	d.Subscribe(EventTicketCommentAdded, func(context.Context, Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCommentAdded}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if !second {
		t.Error("handler error stopped delivery to remaining handlers")
	}
}
