package audit

import (
	"context"
	"log/slog"
)

// Sink receives every event after it is persisted, e.g. a Kafka producer.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker drains the publisher's inbox, persists each event, and forwards it
// to the optional sink. Persistence and sink failures are logged, never
// fatal: one bad event must not stop the audit trail.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker builds a worker. sink may be nil when no broker is configured.
func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

// Run processes events until ctx is cancelled, then drains what is already
// buffered before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.process(ctx, event)
		}
	}
}

func (w *Worker) process(ctx context.Context, event Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to persist audit event",
			slog.String("action", string(event.Action)),
			slog.String("user_id", event.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
	if w.sink == nil {
		return
	}
	if err := w.sink.Publish(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to publish audit event",
			slog.String("action", string(event.Action)),
			slog.String("error", err.Error()),
		)
	}
}

func (w *Worker) drain() {
	// Shutdown context is already cancelled; use a fresh one so the final
	// writes still go through.
	ctx := context.Background()
	for {
		select {
		case event := <-w.inbox:
			w.process(ctx, event)
		default:
			return
		}
	}
}
