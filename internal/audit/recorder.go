package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"trastienda/internal/diff"
	"trastienda/pkg/requestcontext"
)

var tracer = otel.Tracer("trastienda/audit")

// Recorder builds and persists audit records from entity snapshots. The
// persistence layer calls Record as part of the same logical operation that
// performs the mutation; a failed store write surfaces as *PersistenceError
// and is never retried or queued here.
type Recorder struct {
	store  Store
	mirror chan<- Record
	log    *zap.Logger
	now    func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithMirror attaches a best-effort mirror channel. Records are offered
// after a successful store write; a full buffer drops the record with a log
// line rather than blocking the mutation path.
func WithMirror(mirror chan<- Record) RecorderOption {
	return func(r *Recorder) { r.mirror = mirror }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

func NewRecorder(store Store, log *zap.Logger, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record diffs the two snapshots, derives the action (absent before means
// create, absent after means delete), stamps actor and client metadata from
// the context, and appends the result to the store. The returned record is
// the one persisted.
func (r *Recorder) Record(ctx context.Context, entityType string, entityID int64, before, after map[string]any) (Record, error) {
	ctx, span := tracer.Start(ctx, "audit.Record")
	defer span.End()

	var action Action
	switch {
	case before == nil && after == nil:
		return Record{}, ErrNoSnapshots
	case before == nil:
		action = ActionCreate
	case after == nil:
		action = ActionDelete
	default:
		action = ActionUpdate
	}

	record := Record{
		ID:         uuid.New(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Diffs:      diff.Compute(before, after),
		OccurredAt: r.occurredAt(ctx),
		Client: ClientContext{
			IPAddress: requestcontext.ClientIP(ctx),
			UserAgent: requestcontext.UserAgent(ctx),
		},
	}
	if actor, ok := requestcontext.ActorFrom(ctx); ok {
		record.Actor = &Actor{ID: actor.ID, DisplayName: actor.DisplayName}
	}

	start := time.Now()
	if err := r.store.Append(ctx, record); err != nil {
		appendFailuresTotal.Inc()
		r.log.Error("audit append failed",
			zap.String("entity_type", entityType),
			zap.Int64("entity_id", entityID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return Record{}, &PersistenceError{Op: "append", Err: err}
	}
	appendDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000)
	recordsTotal.WithLabelValues(string(action)).Inc()

	r.offerMirror(record)
	return record, nil
}

func (r *Recorder) occurredAt(ctx context.Context) time.Time {
	if pinned := requestcontext.RequestTime(ctx); !pinned.IsZero() {
		return pinned
	}
	return r.now()
}

func (r *Recorder) offerMirror(record Record) {
	if r.mirror == nil {
		return
	}
	select {
	case r.mirror <- record:
	default:
		mirrorDroppedTotal.Inc()
		r.log.Warn("audit mirror buffer full, record dropped from mirror",
			zap.String("entity_type", record.EntityType),
			zap.Int64("entity_id", record.EntityID),
		)
	}
}
