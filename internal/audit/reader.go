package audit

import (
	"context"
	"sort"
)

// Reader serves an entity's change history. It promises chronological order
// (oldest first); UI consumers wanting newest-first sort on their side.
type Reader struct {
	store Store
}

func NewReader(store Store) *Reader {
	return &Reader{store: store}
}

// History returns every record for the entity, oldest first. The sort is
// re-applied here so the contract holds even for stores that only promise
// "roughly chronological" retrieval.
func (r *Reader) History(ctx context.Context, entityType string, entityID int64) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "audit.History")
	defer span.End()

	records, err := r.store.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OccurredAt.Before(records[j].OccurredAt)
	})
	return records, nil
}

// LastUpdate returns the most recent record's timestamp and actor, or nil
// when the entity has no trail yet. The newest mutation wins even when it
// was recorded without an actor.
func (r *Reader) LastUpdate(ctx context.Context, entityType string, entityID int64) (*LastUpdate, error) {
	records, err := r.History(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	latest := records[len(records)-1]
	return &LastUpdate{UpdatedAt: latest.OccurredAt, UpdatedBy: latest.Actor}, nil
}
