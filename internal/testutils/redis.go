// Package testutils holds shared test helpers: a miniredis-backed client and
// the dataset and creature builders.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-legality/internal/redis"
)

// NewTestRedis returns a client connected to a fresh in-memory server
func NewTestRedis(t *testing.T) (redis.Client, func()) {
	return NewSeededTestRedis(t, nil)
}

// NewSeededTestRedis returns a client connected to an in-memory server that
// seed has written raw keys into. Use it to plant data the repositories would
// never write themselves.
func NewSeededTestRedis(t *testing.T, seed func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	if seed != nil {
		seed(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}
