package service

import (
	"context"

	"github.com/alejandrorivera22/great-travel/internal/queue"
)

// EventPublisher is the outbound side of the booking queue.  Publishing
// is best effort: booking services call publish after the transaction
// commits and discard the returned error, so a broker outage never
// fails a request.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.BookingEvent) error
}

// NopPublisher discards events.  Used when no broker is configured and
// in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, queue.BookingEvent) error { return nil }

func publish(ctx context.Context, p EventPublisher, event queue.BookingEvent) {
	if p == nil {
		return
	}
	_ = p.Publish(ctx, event)
}
