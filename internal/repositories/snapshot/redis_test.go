package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/emberfall/ascent/internal/domain/hero"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	now        time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: &fixedTimeProvider{now: s.now},
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testSnapshot() *Snapshot {
	return &Snapshot{
		ID:             "hero-1",
		Hero:           &hero.State{ID: "hero-1", Name: "Wren", Level: 1},
		CurrentSceneID: "plaza",
		VisitedScenes:  map[string]int{"plaza": 1},
	}
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	snap := s.testSnapshot()

	expected := *snap
	expected.SavedAt = s.now
	expectedData, err := json.Marshal(&expected)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectSet("snapshot:hero-1", string(expectedData), 0).SetVal("OK")
	s.NoError(s.repo.Save(ctx, snap))
	s.Equal(s.now, snap.SavedAt)

	// Dependency error
	s.mock.ExpectSet("snapshot:hero-1", string(expectedData), 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.Save(ctx, snap))

	// Input validation
	s.Error(s.repo.Save(ctx, nil))
	s.Error(s.repo.Save(ctx, &Snapshot{}))
}

func (s *RedisRepoTestSuite) TestLoad() {
	ctx := context.Background()
	snap := s.testSnapshot()
	snap.SavedAt = s.now
	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("snapshot:hero-1").SetVal(string(data))
	loaded, err := s.repo.Load(ctx, "hero-1")
	s.NoError(err)
	s.Require().NotNil(loaded)
	s.Equal("plaza", loaded.CurrentSceneID)
	s.Equal("Wren", loaded.Hero.Name)

	// Missing key resolves to a fresh start
	s.mock.ExpectGet("snapshot:hero-1").RedisNil()
	loaded, err = s.repo.Load(ctx, "hero-1")
	s.NoError(err)
	s.Nil(loaded)

	// Corrupt document is tolerated the same way
	s.mock.ExpectGet("snapshot:hero-1").SetVal("{not json")
	loaded, err = s.repo.Load(ctx, "hero-1")
	s.NoError(err)
	s.Nil(loaded)

	// Dependency error
	s.mock.ExpectGet("snapshot:hero-1").SetErr(errors.New("redis error"))
	_, err = s.repo.Load(ctx, "hero-1")
	s.Error(err)

	// Input validation
	_, err = s.repo.Load(ctx, "")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestClear() {
	ctx := context.Background()

	s.mock.ExpectDel("snapshot:hero-1").SetVal(1)
	s.NoError(s.repo.Clear(ctx, "hero-1"))

	s.mock.ExpectDel("snapshot:hero-1").SetErr(errors.New("redis error"))
	s.Error(s.repo.Clear(ctx, "hero-1"))

	s.Error(s.repo.Clear(ctx, ""))
}
