package dataset_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
	mockclock "github.com/KirkDiggler/rpg-legality/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/experience"
	redisclient "github.com/KirkDiggler/rpg-legality/internal/redis"
	"github.com/KirkDiggler/rpg-legality/internal/repositories/dataset"
	"github.com/KirkDiggler/rpg-legality/internal/testutils"
	"github.com/KirkDiggler/rpg-legality/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	client    redisclient.Client
	cleanup   func()
	repo      dataset.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.client, s.cleanup = testutils.NewTestRedis(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	repo, err := dataset.NewRedisRepository(&dataset.Config{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) fixture() *learnset.Dataset {
	return builders.NewDatasetBuilder().
		WithTable(game.SWSH, 898).
		WithSpecies(25, builders.Learn(84, 1), builders.Learn(98, 4)).
		WithGrowth(25, experience.MediumFast).
		WithTable(game.RB, 151).
		WithSpecies(25, builders.Learn(84, 1)).
		WithBaseMoves(25, 84, 45, 0, 0).
		Build()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository() {
	s.Run("nil config", func() {
		repo, err := dataset.NewRedisRepository(nil)
		s.Error(err)
		s.Nil(repo)
	})

	s.Run("missing client", func() {
		repo, err := dataset.NewRedisRepository(&dataset.Config{Clock: s.mockClock})
		s.Error(err)
		s.Nil(repo)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing clock", func() {
		repo, err := dataset.NewRedisRepository(&dataset.Config{Client: s.client})
		s.Error(err)
		s.Nil(repo)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	s.mockClock.EXPECT().Now().Return(s.now)

	out, err := s.repo.Save(s.ctx, dataset.SaveInput{Dataset: s.fixture()})
	s.Require().NoError(err)
	s.Equal(2, out.TablesWritten)
	s.Equal(0, out.TablesRemoved)

	loaded, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Require().NoError(err)
	s.Equal(s.now, loaded.SeededAt)
	s.Require().Len(loaded.Dataset.Tables, 2)

	// Tables come back in release order
	s.Equal(game.RB, loaded.Dataset.Tables[0].Version)
	s.Equal(game.SWSH, loaded.Dataset.Tables[1].Version)

	swsh, ok := loaded.Dataset.Find(game.SWSH)
	s.Require().True(ok)
	expected, _ := s.fixture().Find(game.SWSH)
	s.Equal(*expected, *swsh)

	reg, err := learnset.NewRegistry(loaded.Dataset)
	s.Require().NoError(err)
	s.Equal(2, reg.Len())
}

func (s *RedisRepositoryTestSuite) TestLoadFiltersVersions() {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, dataset.SaveInput{Dataset: s.fixture()})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, dataset.LoadInput{Versions: []game.Version{game.RB}})
	s.Require().NoError(err)
	s.Require().Len(loaded.Dataset.Tables, 1)
	s.Equal(game.RB, loaded.Dataset.Tables[0].Version)
}

func (s *RedisRepositoryTestSuite) TestSaveRemovesStaleTables() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)

	_, err := s.repo.Save(s.ctx, dataset.SaveInput{Dataset: s.fixture()})
	s.Require().NoError(err)

	smaller := builders.NewDatasetBuilder().
		WithTable(game.SWSH, 898).
		WithSpecies(25, builders.Learn(84, 1)).
		Build()
	out, err := s.repo.Save(s.ctx, dataset.SaveInput{Dataset: smaller})
	s.Require().NoError(err)
	s.Equal(1, out.TablesWritten)
	s.Equal(1, out.TablesRemoved)

	exists, err := s.client.Exists(s.ctx, "learnset:table:RB").Result()
	s.Require().NoError(err)
	s.Zero(exists)

	loaded, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Require().NoError(err)
	s.Len(loaded.Dataset.Tables, 1)
}

func (s *RedisRepositoryTestSuite) TestSaveRequiresDataset() {
	out, err := s.repo.Save(s.ctx, dataset.SaveInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestLoadEmpty() {
	out, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptData() {
	client, cleanup := testutils.NewSeededTestRedis(s.T(), func(mr *miniredis.Miniredis) {
		_, _ = mr.SAdd("learnset:tables", "XY")
		s.Require().NoError(mr.Set("learnset:table:XY", "{not json"))
	})
	defer cleanup()

	repo, err := dataset.NewRedisRepository(&dataset.Config{Client: client, Clock: s.mockClock})
	s.Require().NoError(err)

	out, err := repo.Load(s.ctx, dataset.LoadInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestLoadIndexedButMissing() {
	client, cleanup := testutils.NewSeededTestRedis(s.T(), func(mr *miniredis.Miniredis) {
		_, _ = mr.SAdd("learnset:tables", "XY")
	})
	defer cleanup()

	repo, err := dataset.NewRedisRepository(&dataset.Config{Client: client, Clock: s.mockClock, KeyPrefix: "learnset"})
	s.Require().NoError(err)

	out, err := repo.Load(s.ctx, dataset.LoadInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestKeyPrefix() {
	repo, err := dataset.NewRedisRepository(&dataset.Config{Client: s.client, Clock: s.mockClock, KeyPrefix: "staging"})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.now)
	_, err = repo.Save(s.ctx, dataset.SaveInput{Dataset: s.fixture()})
	s.Require().NoError(err)

	members, err := s.client.SMembers(s.ctx, "staging:tables").Result()
	s.Require().NoError(err)
	s.ElementsMatch([]string{"RB", "SWSH"}, members)

	_, err = s.repo.Load(s.ctx, dataset.LoadInput{})
	s.True(errors.IsNotFound(err))
}
