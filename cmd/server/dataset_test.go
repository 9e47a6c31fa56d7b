package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-legality/internal/config"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/repositories/dataset"
	datasetmock "github.com/KirkDiggler/rpg-legality/internal/repositories/dataset/mock"
	"github.com/KirkDiggler/rpg-legality/internal/testutils/builders"
)

type DatasetWiringTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *datasetmock.MockRepository
	ctx      context.Context
}

func TestDatasetWiringTestSuite(t *testing.T) {
	suite.Run(t, new(DatasetWiringTestSuite))
}

func (s *DatasetWiringTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = datasetmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
}

func (s *DatasetWiringTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DatasetWiringTestSuite) TestLoadRegistry() {
	s.Run("builds the registry from the loaded dataset", func() {
		ds := builders.NewDatasetBuilder().
			WithTable(game.RS, 386).WithSpecies(1, builders.Learn(33, 1)).
			WithTable(game.SWSH, 898).WithSpecies(1, builders.Learn(33, 1)).
			Build()
		s.mockRepo.EXPECT().
			Load(s.ctx, dataset.LoadInput{}).
			Return(&dataset.LoadOutput{Dataset: ds}, nil)

		reg, err := loadRegistry(s.ctx, s.mockRepo)
		s.Require().NoError(err)
		s.Equal(2, reg.Len())
	})

	s.Run("load failure", func() {
		s.mockRepo.EXPECT().
			Load(s.ctx, dataset.LoadInput{}).
			Return(nil, errors.NotFound("no learnset tables stored"))

		reg, err := loadRegistry(s.ctx, s.mockRepo)
		s.Error(err)
		s.Nil(reg)
		s.True(errors.IsNotFound(err))
	})

	s.Run("dataset rejected by the registry", func() {
		ds := builders.NewDatasetBuilder().
			WithTable(game.RB, 151).WithSpecies(152).
			Build()
		s.mockRepo.EXPECT().
			Load(s.ctx, dataset.LoadInput{}).
			Return(&dataset.LoadOutput{Dataset: ds}, nil)

		reg, err := loadRegistry(s.ctx, s.mockRepo)
		s.Error(err)
		s.Nil(reg)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *DatasetWiringTestSuite) TestNewDatasetRepository() {
	s.Run("file source", func() {
		cfg := config.Default()
		cfg.Data.Path = filepath.Join(s.T().TempDir(), "learnsets.yaml")

		repo, cleanup, err := newDatasetRepository(cfg)
		s.Require().NoError(err)
		defer cleanup()
		s.NotNil(repo)
	})

	s.Run("file source without a path", func() {
		cfg := config.Default()
		cfg.Data.Path = ""

		repo, cleanup, err := newDatasetRepository(cfg)
		s.Error(err)
		s.Nil(repo)
		s.Nil(cleanup)
	})

	s.Run("redis source", func() {
		cfg := config.Default()
		cfg.Data.Source = config.SourceRedis
		cfg.Redis.Endpoint = "localhost:0"

		repo, cleanup, err := newDatasetRepository(cfg)
		s.Require().NoError(err)
		defer cleanup()
		s.NotNil(repo)
	})
}
