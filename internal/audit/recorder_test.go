package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trastienda/internal/diff"
	"trastienda/pkg/requestcontext"
)

type failingStore struct {
	err error
}

func (s *failingStore) Append(context.Context, Record) error { return s.err }
func (s *failingStore) ListByEntity(context.Context, string, int64) ([]Record, error) {
	return nil, s.err
}

func TestRecordCreate(t *testing.T) {
	store := NewInMemoryStore()
	recorder := NewRecorder(store, zap.NewNop())

	ctx := requestcontext.WithActor(context.Background(),
		requestcontext.Actor{ID: "u-7", DisplayName: "Marta Quispe"})
	ctx = requestcontext.WithClientIP(ctx, "10.1.2.3")
	ctx = requestcontext.WithUserAgent(ctx, "Mozilla/5.0")

	after := map[string]any{"name": "Sucursal Centro", "city": "La Paz"}
	record, err := recorder.Record(ctx, "branch", 42, nil, after)
	require.NoError(t, err)

	assert.Equal(t, ActionCreate, record.Action)
	assert.Equal(t, "branch", record.EntityType)
	assert.Equal(t, int64(42), record.EntityID)
	assert.NotEqual(t, [16]byte{}, [16]byte(record.ID))
	assert.Len(t, record.Diffs, 2)
	for _, entry := range record.Diffs {
		assert.Nil(t, entry.Old, entry.Field)
	}
	require.NotNil(t, record.Actor)
	assert.Equal(t, "Marta Quispe", record.Actor.DisplayName)
	assert.Equal(t, "10.1.2.3", record.Client.IPAddress)
	assert.Equal(t, "Mozilla/5.0", record.Client.UserAgent)
	assert.False(t, record.OccurredAt.IsZero())

	stored, err := store.ListByEntity(ctx, "branch", 42)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record, stored[0])
}

func TestRecordDeriveAction(t *testing.T) {
	recorder := NewRecorder(NewInMemoryStore(), zap.NewNop())
	ctx := context.Background()
	snapshot := map[string]any{"name": "x"}

	record, err := recorder.Record(ctx, "supplier", 1, nil, snapshot)
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, record.Action)

	record, err = recorder.Record(ctx, "supplier", 1, snapshot, map[string]any{"name": "y"})
	require.NoError(t, err)
	assert.Equal(t, ActionUpdate, record.Action)

	record, err = recorder.Record(ctx, "supplier", 1, snapshot, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionDelete, record.Action)
	for _, entry := range record.Diffs {
		assert.Nil(t, entry.New)
	}

	_, err = recorder.Record(ctx, "supplier", 1, nil, nil)
	assert.ErrorIs(t, err, ErrNoSnapshots)
}

func TestRecordWithoutActorOrClient(t *testing.T) {
	recorder := NewRecorder(NewInMemoryStore(), zap.NewNop())

	record, err := recorder.Record(context.Background(), "warehouse", 9, nil, map[string]any{"name": "x"})
	require.NoError(t, err)

	assert.Nil(t, record.Actor)
	assert.Empty(t, record.Client.IPAddress)
	assert.Empty(t, record.Client.UserAgent)
}

func TestRecordUsesPinnedRequestTime(t *testing.T) {
	recorder := NewRecorder(NewInMemoryStore(), zap.NewNop())
	pinned := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithRequestTime(context.Background(), pinned)

	record, err := recorder.Record(ctx, "manager", 5, nil, map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, pinned, record.OccurredAt)
}

func TestRecordPropagatesPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	recorder := NewRecorder(&failingStore{err: cause}, zap.NewNop())

	_, err := recorder.Record(context.Background(), "branch", 1, nil, map[string]any{"name": "x"})

	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, cause)
}

func TestRecordMirrorsAfterSuccessfulAppend(t *testing.T) {
	mirror := make(chan Record, 1)
	recorder := NewRecorder(NewInMemoryStore(), zap.NewNop(), WithMirror(mirror))

	record, err := recorder.Record(context.Background(), "branch", 1, nil, map[string]any{"name": "x"})
	require.NoError(t, err)

	select {
	case mirrored := <-mirror:
		assert.Equal(t, record, mirrored)
	default:
		t.Fatal("expected record on mirror channel")
	}
}

func TestRecordFullMirrorDoesNotBlock(t *testing.T) {
	mirror := make(chan Record) // unbuffered, nobody reading
	recorder := NewRecorder(NewInMemoryStore(), zap.NewNop(), WithMirror(mirror))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := recorder.Record(context.Background(), "branch", 1, nil, map[string]any{"name": "x"})
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recorder blocked on full mirror channel")
	}
}

func TestRecordMirrorNotOfferedOnStoreFailure(t *testing.T) {
	mirror := make(chan Record, 1)
	recorder := NewRecorder(&failingStore{err: errors.New("down")}, zap.NewNop(), WithMirror(mirror))

	_, err := recorder.Record(context.Background(), "branch", 1, nil, map[string]any{"name": "x"})
	require.Error(t, err)
	assert.Empty(t, mirror)
}

func TestRecordDiffsMatchEngineOutput(t *testing.T) {
	recorder := NewRecorder(NewInMemoryStore(), zap.NewNop())
	before := map[string]any{"city": "La Paz", "name": "Ana"}
	after := map[string]any{"city": "El Alto", "name": "Ana"}

	record, err := recorder.Record(context.Background(), "customer", 3, before, after)
	require.NoError(t, err)

	assert.Equal(t, diff.Compute(before, after), record.Diffs)
}
