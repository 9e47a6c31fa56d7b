package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/repositories/dataset"
	"github.com/KirkDiggler/rpg-legality/internal/testutils/builders"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo dataset.Repository
	ctx  context.Context
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "learnsets.yaml")
	s.ctx = context.Background()

	repo, err := dataset.NewFileRepository(&dataset.FileConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) TestNewFileRepository() {
	repo, err := dataset.NewFileRepository(&dataset.FileConfig{})
	s.Error(err)
	s.Nil(repo)
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveAndLoad() {
	ds := builders.NewDatasetBuilder().
		WithTable(game.GS, 251).
		WithSpecies(152, builders.Learn(33, 1), builders.Learn(45, 1), builders.Learn(75, 8)).
		WithTable(game.C, 251).
		WithSpecies(152, builders.Learn(33, 1)).
		Build()

	out, err := s.repo.Save(s.ctx, dataset.SaveInput{Dataset: ds})
	s.Require().NoError(err)
	s.Equal(2, out.TablesWritten)

	loaded, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Require().NoError(err)
	s.Equal(ds, loaded.Dataset)
	s.True(loaded.SeededAt.IsZero())

	filtered, err := s.repo.Load(s.ctx, dataset.LoadInput{Versions: []game.Version{game.C}})
	s.Require().NoError(err)
	s.Require().Len(filtered.Dataset.Tables, 1)
	s.Equal(game.C, filtered.Dataset.Tables[0].Version)
}

func (s *FileRepositoryTestSuite) TestLoadReadsVersionNames() {
	doc := `tables:
  - version: usum
    max_species_id: 807
    personal:
      - species: 25
        form_count: 1
        exp_growth: 0
    learnsets:
      - species: 25
        entries:
          - move: 84
            level: 1
`
	s.Require().NoError(os.WriteFile(s.path, []byte(doc), 0o600))

	loaded, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Require().NoError(err)
	s.Require().Len(loaded.Dataset.Tables, 1)
	s.Equal(game.USUM, loaded.Dataset.Tables[0].Version)
	s.Equal(807, loaded.Dataset.Tables[0].MaxSpeciesID)
}

func (s *FileRepositoryTestSuite) TestLoadMissingFile() {
	out, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestLoadInvalidYAML() {
	s.Require().NoError(os.WriteFile(s.path, []byte("tables: [version: nope"), 0o600))

	out, err := s.repo.Load(s.ctx, dataset.LoadInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveRequiresDataset() {
	out, err := s.repo.Save(s.ctx, dataset.SaveInput{})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}
