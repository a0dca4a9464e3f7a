//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"trastienda/internal/audit"
	"trastienda/internal/diff"
	"trastienda/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *audit.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = audit.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestAppendAndListRoundTrip() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC)

	record := audit.Record{
		ID:         uuid.New(),
		EntityType: "employee",
		EntityID:   42,
		Action:     audit.ActionUpdate,
		Diffs: []diff.Entry{
			{Field: "city", Old: "La Paz", New: "Cochabamba"},
			{Field: "salary", Old: float64(3000), New: float64(3500)},
		},
		Actor:      &audit.Actor{ID: "usr-9", DisplayName: "Ana Quispe"},
		OccurredAt: occurred,
		Client:     audit.ClientContext{IPAddress: "10.0.0.7", UserAgent: "Mozilla/5.0"},
	}
	s.Require().NoError(s.store.Append(ctx, record))

	records, err := s.store.ListByEntity(ctx, "employee", 42)
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	got := records[0]
	s.Equal(record.ID, got.ID)
	s.Equal(audit.ActionUpdate, got.Action)
	s.Equal(record.Diffs, got.Diffs)
	s.Require().NotNil(got.Actor)
	s.Equal("Ana Quispe", got.Actor.DisplayName)
	s.Equal("10.0.0.7", got.Client.IPAddress)
	s.True(occurred.Equal(got.OccurredAt))
}

func (s *RedisStoreSuite) TestActorlessRecordRoundTripsAsNil() {
	ctx := context.Background()

	record := audit.Record{
		ID:         uuid.New(),
		EntityType: "employee",
		EntityID:   7,
		Action:     audit.ActionCreate,
		Diffs:      []diff.Entry{{Field: "name", Old: nil, New: "Carla"}},
		OccurredAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.Append(ctx, record))

	records, err := s.store.ListByEntity(ctx, "employee", 7)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Nil(records[0].Actor)
}

func (s *RedisStoreSuite) TestListPreservesAppendOrder() {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// The list is append-only, so append order is chronological order for
	// the recorder's write pattern.
	for i := 0; i < 3; i++ {
		record := audit.Record{
			ID:         uuid.New(),
			EntityType: "contract",
			EntityID:   1,
			Action:     audit.ActionUpdate,
			Diffs:      []diff.Entry{},
			OccurredAt: base.Add(time.Duration(i) * time.Hour),
		}
		s.Require().NoError(s.store.Append(ctx, record))
	}

	records, err := s.store.ListByEntity(ctx, "contract", 1)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.True(records[0].OccurredAt.Before(records[1].OccurredAt))
	s.True(records[1].OccurredAt.Before(records[2].OccurredAt))
}

func (s *RedisStoreSuite) TestEntityIsolation() {
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		record := audit.Record{
			ID:         uuid.New(),
			EntityType: "employee",
			EntityID:   i,
			Action:     audit.ActionCreate,
			Diffs:      []diff.Entry{},
			OccurredAt: time.Now().UTC(),
		}
		s.Require().NoError(s.store.Append(ctx, record))
	}

	records, err := s.store.ListByEntity(ctx, "employee", 2)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(int64(2), records[0].EntityID)
}

func (s *RedisStoreSuite) TestUnknownEntityListsEmpty() {
	records, err := s.store.ListByEntity(context.Background(), "employee", 999)
	s.Require().NoError(err)
	s.Empty(records)
}
