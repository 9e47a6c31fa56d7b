package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-legality/internal/config"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-legality/internal/redis"
	"github.com/KirkDiggler/rpg-legality/internal/repositories/dataset"
)

// newRedisClient connects with the URL when one is configured, otherwise
// with the endpoint.
func newRedisClient(cfg config.RedisConfig) (redis.Client, error) {
	opts := &redis.Options{
		PoolSize: cfg.PoolSize,
		UseTLS:   cfg.UseTLS,
	}
	if cfg.URL != "" {
		return redis.NewClientFromURL(cfg.URL, opts)
	}
	return redis.NewClient(cfg.Endpoint, opts)
}

// newDatasetRepository builds the repository the configured source reads
// from. The returned cleanup releases any connection it opened.
func newDatasetRepository(cfg *config.Config) (dataset.Repository, func(), error) {
	switch cfg.Data.Source {
	case config.SourceRedis:
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		repo, err := dataset.NewRedisRepository(&dataset.Config{
			Client:    client,
			Clock:     clock.New(),
			KeyPrefix: cfg.Data.KeyPrefix,
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis dataset repository: %w", err)
		}
		return repo, func() { _ = client.Close() }, nil
	default:
		repo, err := dataset.NewFileRepository(&dataset.FileConfig{Path: cfg.Data.Path})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file dataset repository: %w", err)
		}
		return repo, func() {}, nil
	}
}

// loadRegistry reads the dataset and builds the immutable registry
func loadRegistry(ctx context.Context, repo dataset.Repository) (*learnset.Registry, error) {
	out, err := repo.Load(ctx, dataset.LoadInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load learnset dataset: %w", err)
	}

	reg, err := learnset.NewRegistry(out.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to build learnset registry: %w", err)
	}
	return reg, nil
}
