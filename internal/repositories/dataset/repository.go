// Package dataset provides storage for the learnset dataset the registry is
// built from: a YAML file on disk or a set of keys in Redis.
package dataset

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=datasetmock github.com/KirkDiggler/rpg-legality/internal/repositories/dataset Repository

// LoadInput contains parameters for loading a dataset
type LoadInput struct {
	// Versions restricts the load to these tables. Empty loads every table.
	Versions []game.Version
}

// LoadOutput contains the loaded dataset
type LoadOutput struct {
	Dataset *learnset.Dataset

	// SeededAt is when the stored dataset was written, zero when unknown
	SeededAt time.Time
}

// SaveInput contains the dataset to store
type SaveInput struct {
	Dataset *learnset.Dataset
}

// SaveOutput contains the result of storing a dataset
type SaveOutput struct {
	TablesWritten int
	TablesRemoved int
}

// Repository defines the interface for learnset dataset storage
type Repository interface {
	// Load reads the stored dataset
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save replaces the stored dataset
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// wanted reports whether version passes the load filter
func wanted(filter []game.Version, version game.Version) bool {
	if len(filter) == 0 {
		return true
	}
	for _, v := range filter {
		if v == version {
			return true
		}
	}
	return false
}
