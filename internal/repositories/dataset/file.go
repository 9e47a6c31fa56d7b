package dataset

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// FileConfig holds the configuration for the YAML file repository
type FileConfig struct {
	Path string
}

// Validate ensures all required fields are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", c.Path, vb)
	return vb.Build()
}

type fileRepository struct {
	path string
}

// NewFileRepository creates a repository reading and writing one YAML file
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &fileRepository{path: cfg.Path}, nil
}

var _ Repository = (*fileRepository)(nil)

// Load reads the dataset file
func (r *fileRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("dataset file %s not found", r.path)
		}
		return nil, errors.Wrapf(err, "failed to read dataset file %s", r.path)
	}

	var ds learnset.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse dataset file")
	}

	if len(input.Versions) > 0 {
		tables := ds.Tables[:0]
		for _, td := range ds.Tables {
			if wanted(input.Versions, td.Version) {
				tables = append(tables, td)
			}
		}
		ds.Tables = tables
	}

	return &LoadOutput{Dataset: &ds}, nil
}

// Save writes the dataset file, replacing any previous content
func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Dataset == nil {
		return nil, errors.InvalidArgument("dataset is required")
	}

	data, err := yaml.Marshal(input.Dataset)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal dataset")
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return nil, errors.Wrapf(err, "failed to write dataset file %s", r.path)
	}

	return &SaveOutput{TablesWritten: len(input.Dataset.Tables)}, nil
}
