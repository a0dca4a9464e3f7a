package audit

import (
	"context"

	"go.uber.org/zap"
)

// Publisher mirrors audit records to an external stream for downstream
// consumers (reporting, compliance exports). Mirroring is best-effort by
// contract: the store write has already succeeded by the time a record
// reaches a publisher.
type Publisher interface {
	Publish(ctx context.Context, record Record) error
}

// Worker consumes records from the mirror channel and hands them to the
// publisher. Publish failures are logged and skipped, never retried; the
// store remains the source of truth.
type Worker struct {
	publisher Publisher
	inbox     <-chan Record
	log       *zap.Logger
}

func NewWorker(publisher Publisher, inbox <-chan Record, log *zap.Logger) *Worker {
	return &Worker{publisher: publisher, inbox: inbox, log: log}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record := <-w.inbox:
			if err := w.publisher.Publish(ctx, record); err != nil {
				w.log.Warn("mirror publish failed",
					zap.String("entity_type", record.EntityType),
					zap.Int64("entity_id", record.EntityID),
					zap.Error(err),
				)
			}
		}
	}
}
