package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-legality/internal/redis"
)

const (
	defaultKeyPrefix = "learnset"

	// Error messages
	errMsgFailedToMarshal   = "failed to marshal table %s"
	errMsgFailedToUnmarshal = "failed to unmarshal table %s"
	errMsgFailedToSave      = "failed to save dataset"
	errMsgFailedToIndex     = "failed to read table index"
	errMsgNoTables          = "no learnset tables stored"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// KeyPrefix namespaces every key, defaults to "learnset"
	KeyPrefix string
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	prefix string
}

// NewRedisRepository creates a repository storing one JSON document per table
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		prefix: prefix,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) tableKey(version string) string {
	return fmt.Sprintf("%s:table:%s", r.prefix, version)
}

func (r *redisRepository) indexKey() string {
	return r.prefix + ":tables"
}

func (r *redisRepository) seededAtKey() string {
	return r.prefix + ":seeded_at"
}

// Load reads the indexed tables, ordered by release
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	members, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, errMsgFailedToIndex)
	}
	if len(members) == 0 {
		return nil, errors.NotFound(errMsgNoTables)
	}

	versions := make([]game.Version, 0, len(members))
	for _, m := range members {
		v, err := game.ParseVersion(m)
		if err != nil {
			return nil, errors.Internalf("table index holds unknown version %q", m)
		}
		if wanted(input.Versions, v) {
			versions = append(versions, v)
		}
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(versions))
	for i, v := range versions {
		cmds[i] = pipe.Get(ctx, r.tableKey(v.String()))
	}
	seeded := pipe.Get(ctx, r.seededAtKey())
	// Missing keys surface per command below
	_, _ = pipe.Exec(ctx)

	ds := &learnset.Dataset{Tables: make([]learnset.TableData, 0, len(versions))}
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err == redis.Nil {
			return nil, errors.NotFoundf("table %s is indexed but not stored", versions[i])
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get table %s", versions[i])
		}

		var td learnset.TableData
		if err := json.Unmarshal(data, &td); err != nil {
			return nil, errors.Internalf(errMsgFailedToUnmarshal+": %v", versions[i], err)
		}
		ds.Tables = append(ds.Tables, td)
	}

	output := &LoadOutput{Dataset: ds}
	if raw, err := seeded.Result(); err == nil {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			output.SeededAt = t
		}
	}

	return output, nil
}

// Save writes every table and the index in one transaction. Tables absent
// from the new dataset are removed.
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Dataset == nil {
		return nil, errors.InvalidArgument("dataset is required")
	}

	previous, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, errMsgFailedToIndex)
	}

	current := make(map[string]struct{}, len(input.Dataset.Tables))
	payloads := make(map[string][]byte, len(input.Dataset.Tables))
	for _, td := range input.Dataset.Tables {
		name := td.Version.String()
		data, err := json.Marshal(td)
		if err != nil {
			return nil, errors.Internalf(errMsgFailedToMarshal+": %v", name, err)
		}
		current[name] = struct{}{}
		payloads[name] = data
	}

	pipe := r.client.TxPipeline()

	removed := 0
	for _, name := range previous {
		if _, ok := current[name]; ok {
			continue
		}
		pipe.Del(ctx, r.tableKey(name))
		removed++
	}
	pipe.Del(ctx, r.indexKey())

	for name, data := range payloads {
		pipe.Set(ctx, r.tableKey(name), data, 0)
		pipe.SAdd(ctx, r.indexKey(), name)
	}
	pipe.Set(ctx, r.seededAtKey(), r.clock.Now().UTC().Format(time.RFC3339), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errMsgFailedToSave)
	}

	return &SaveOutput{
		TablesWritten: len(payloads),
		TablesRemoved: removed,
	}, nil
}
