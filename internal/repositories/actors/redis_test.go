package actors

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	apperr "github.com/KirkDiggler/arm5e-effects/internal/errors"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/actors/mocks"
	"github.com/KirkDiggler/arm5e-effects/internal/testutils"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedis(s.mockClient, s.timeProvider)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) marshal(entity *entities.Entity) string {
	jsonData, err := json.Marshal(entity)
	s.Require().NoError(err)
	return string(jsonData)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	magus := testutils.CreateTestMagus("magus-1", "user-1", "Tytalus")

	expected := magus.Clone()
	expected.CreatedAt = now
	expected.UpdatedAt = now

	s.mock.ExpectExists("actor:magus-1").SetVal(0)
	s.mock.ExpectSet("actor:magus-1", s.marshal(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("user:user-1:actors", "magus-1").SetVal(1)

	err := s.repo.Create(ctx, magus)
	s.NoError(err)
	s.Equal(now, magus.CreatedAt)

	// Already exists
	s.mock.ExpectExists("actor:magus-1").SetVal(1)

	err = s.repo.Create(ctx, magus)
	s.True(apperr.IsAlreadyExists(err))

	// Input validation
	s.Error(s.repo.Create(ctx, nil))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	magus := testutils.CreateTestMagus("magus-1", "user-1", "Tytalus")

	// Happy path
	s.mock.ExpectGet("actor:magus-1").SetVal(s.marshal(magus))

	got, err := s.repo.Get(ctx, "magus-1")
	s.Require().NoError(err)
	s.Equal("Tytalus", got.Name)
	s.Equal(10, got.Arts["cr"])

	// Not found
	s.mock.ExpectGet("actor:missing").RedisNil()

	_, err = s.repo.Get(ctx, "missing")
	s.True(apperr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("actor:magus-1").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "magus-1")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	magus := testutils.CreateTestMagus("magus-1", "user-1", "Tytalus")
	magus.CreatedAt = now.Add(-time.Hour)

	expected := magus.Clone()
	expected.UpdatedAt = now

	s.mock.ExpectSet("actor:magus-1", s.marshal(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("user:user-1:actors", "magus-1").SetVal(1)

	err := s.repo.Update(ctx, magus)
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	magus := testutils.CreateTestMagus("magus-1", "user-1", "Tytalus")

	s.mock.ExpectGet("actor:magus-1").SetVal(s.marshal(magus))
	s.mock.ExpectDel("actor:magus-1").SetVal(1)
	s.mock.ExpectSRem("user:user-1:actors", "magus-1").SetVal(1)

	err := s.repo.Delete(ctx, "magus-1")
	s.NoError(err)

	// Dependency error
	s.mock.ExpectGet("actor:magus-1").SetErr(errors.New("redis error"))

	err = s.repo.Delete(ctx, "magus-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	ctx := context.Background()
	first := testutils.CreateTestMagus("magus-1", "user-1", "Tytalus")
	second := testutils.CreateTestMagus("magus-2", "user-1", "Bonisagus")

	s.mock.ExpectSMembers("user:user-1:actors").SetVal([]string{"magus-2", "magus-1"})
	s.mock.ExpectMGet("actor:magus-1", "actor:magus-2").
		SetVal([]interface{}{s.marshal(first), s.marshal(second)})

	list, err := s.repo.ListByOwner(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("magus-1", list[0].ID)
	s.Equal("magus-2", list[1].ID)

	// Dependency error
	s.mock.ExpectSMembers("user:user-1:actors").SetErr(errors.New("redis error"))

	_, err = s.repo.ListByOwner(ctx, "user-1")
	s.Error(err)

	// Input validation
	_, err = s.repo.ListByOwner(ctx, "")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestResolve() {
	ctx := context.Background()
	magus := testutils.CreateTestMagus("magus-1", "user-1", "Tytalus")

	// Actor reference
	s.mock.ExpectGet("actor:magus-1").SetVal(s.marshal(magus))

	got, err := s.repo.Resolve(ctx, "Actor.magus-1")
	s.Require().NoError(err)
	s.Equal("magus-1", got.ID)

	// Owned item reference
	s.mock.ExpectGet("actor:magus-1").SetVal(s.marshal(magus))

	got, err = s.repo.Resolve(ctx, "Actor.magus-1.Item.talisman")
	s.Require().NoError(err)
	s.Equal("magus-1", got.ID)

	// Unknown item
	s.mock.ExpectGet("actor:magus-1").SetVal(s.marshal(magus))

	_, err = s.repo.Resolve(ctx, "Actor.magus-1.Item.lost")
	s.True(apperr.IsNotFound(err))

	// Malformed reference never reaches redis
	_, err = s.repo.Resolve(ctx, "magus-1")
	s.True(apperr.IsInvalidArgument(err))
}
