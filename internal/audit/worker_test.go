package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturePublisher struct {
	mu        sync.Mutex
	published []Record
	failFirst bool
}

func (p *capturePublisher) Publish(_ context.Context, record Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failFirst {
		p.failFirst = false
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, record)
	return nil
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func TestWorkerPublishesInboxRecords(t *testing.T) {
	inbox := make(chan Record, 2)
	publisher := &capturePublisher{}
	worker := NewWorker(publisher, inbox, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Record{ID: uuid.New(), EntityType: "branch", EntityID: 1, Action: ActionCreate}
	inbox <- Record{ID: uuid.New(), EntityType: "branch", EntityID: 1, Action: ActionUpdate}

	require.Eventually(t, func() bool { return publisher.count() == 2 },
		2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

// A publish failure must not stop the worker; mirroring is best-effort.
func TestWorkerSkipsFailedPublishes(t *testing.T) {
	inbox := make(chan Record, 2)
	publisher := &capturePublisher{failFirst: true}
	worker := NewWorker(publisher, inbox, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	inbox <- Record{ID: uuid.New(), EntityType: "branch", EntityID: 1, Action: ActionCreate}
	inbox <- Record{ID: uuid.New(), EntityType: "branch", EntityID: 1, Action: ActionUpdate}

	require.Eventually(t, func() bool { return publisher.count() == 1 },
		2*time.Second, 10*time.Millisecond)
}
