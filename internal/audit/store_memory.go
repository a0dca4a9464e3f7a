package audit

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStore keeps the initial implementation lightweight and testable.
// It intentionally favors clarity over performance.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string][]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string][]Record)}
}

func entityKey(entityType string, entityID int64) string {
	return fmt.Sprintf("%s:%d", entityType, entityID)
}

func (s *InMemoryStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entityKey(record.EntityType, record.EntityID)
	s.records[key] = append(s.records[key], record)
	return nil
}

// ListByEntity returns a copy so callers can't mutate the trail.
func (s *InMemoryStore) ListByEntity(_ context.Context, entityType string, entityID int64) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.records[entityKey(entityType, entityID)]
	records := make([]Record, len(stored))
	copy(records, stored)
	return records, nil
}
