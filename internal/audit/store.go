package audit

import (
	"context"
	"errors"
	"fmt"
)

// Store is the append-only persistence boundary. Implementations must return
// records for an entity in ascending chronological order and must surface
// write failures; the recorder never retries or drops.
type Store interface {
	Append(ctx context.Context, record Record) error
	ListByEntity(ctx context.Context, entityType string, entityID int64) ([]Record, error)
}

// ErrNoSnapshots reports a Record call where both snapshots were absent;
// there is no mutation to describe.
var ErrNoSnapshots = errors.New("audit: neither snapshot provided")

// PersistenceError wraps a store failure. It always propagates to the caller
// unmasked so the surrounding transaction can decide whether to roll back
// the entity mutation; silently losing an audit entry is worse than
// surfacing the failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("audit %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
