package audit

import (
	"context"
	"log/slog"

	"credlens/pkg/requestcontext"
)

// Publisher buffers events for the background worker. Emit never blocks: if
// the buffer is full the event is dropped with a warning. Losing an audit
// event must never fail or slow a scoring request.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(bufferSize int, logger *slog.Logger) *Publisher {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &Publisher{
		inbox:  make(chan Event, bufferSize),
		logger: logger,
	}
}

// Emit enqueues an event, stamping timestamp and request ID from context
// when absent.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			slog.String("action", string(event.Action)),
			slog.String("user_id", event.UserID.String()),
		)
	}
}

// Events exposes the inbox to the worker.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}
