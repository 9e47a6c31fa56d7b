package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface the learnset store depends on. Standalone and
// URL-configured clients both satisfy it, and miniredis backs it in tests.
type Client interface {
	redis.UniversalClient
}
