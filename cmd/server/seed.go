package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-legality/internal/config"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
	"github.com/KirkDiggler/rpg-legality/internal/logger"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-legality/internal/repositories/dataset"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a learnset dataset file into Redis",
	Long: `Seed validates a YAML learnset dataset and replaces the tables stored in
Redis with it, so servers can start with data.source set to redis.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML dataset file")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON})

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	source, err := dataset.NewFileRepository(&dataset.FileConfig{Path: seedFile})
	if err != nil {
		return err
	}
	loaded, err := source.Load(ctx, dataset.LoadInput{})
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	// Refuse to store data the server would reject at startup
	reg, err := learnset.NewRegistry(loaded.Dataset)
	if err != nil {
		return fmt.Errorf("dataset is invalid: %w", err)
	}

	client, err := newRedisClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	target, err := dataset.NewRedisRepository(&dataset.Config{
		Client:    client,
		Clock:     clock.New(),
		KeyPrefix: cfg.Data.KeyPrefix,
	})
	if err != nil {
		return err
	}

	out, err := target.Save(ctx, dataset.SaveInput{Dataset: loaded.Dataset})
	if err != nil {
		return fmt.Errorf("failed to seed redis: %w", err)
	}

	slog.Info("Seeded learnset dataset",
		"file", seedFile,
		"tables", reg.Len(),
		"written", out.TablesWritten,
		"removed", out.TablesRemoved)
	return nil
}
