package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "storefront:resp:"
	tagPrefix = "storefront:tag:"

	// tagTTL bounds the lifetime of tag index sets. It is refreshed on every
	// write and always exceeds the lifetime of the entries it indexes.
	tagTTL = 24 * time.Hour
)

// Cache tags. They match the tags carried by content.changed events.
const (
	TagGlobal      = "global"
	TagLandingPage = "landing-page"
	TagProducts    = "products"
)

var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_cache_lookups_total",
		Help: "Response cache lookups by tag and result (hit, miss, error)",
	},
	[]string{"tag", "result"},
)

// Store caches upstream response bodies under tags that can be invalidated
// together.
type Store interface {
	Get(ctx context.Context, tag, key string) ([]byte, bool)
	Set(ctx context.Context, tag, key string, value []byte, ttl time.Duration)
	InvalidateTags(ctx context.Context, tags ...string) (int, error)
}

// RedisCache implements Store on Redis. Each tag keeps a set of the keys
// written under it.
type RedisCache struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed response cache.
func NewRedisCache(client redis.UniversalClient, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

// Get returns the cached value for key. Redis errors are logged and reported
// as a miss.
func (c *RedisCache) Get(ctx context.Context, tag, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	switch {
	case err == nil:
		cacheLookups.WithLabelValues(tag, "hit").Inc()
		return data, true
	case errors.Is(err, redis.Nil):
		cacheLookups.WithLabelValues(tag, "miss").Inc()
		return nil, false
	default:
		cacheLookups.WithLabelValues(tag, "error").Inc()
		c.logger.WarnContext(ctx, "response cache read failed",
			slog.String("tag", tag),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
}

// Set stores value under key for ttl and indexes key under tag. Failures are
// logged and otherwise ignored.
func (c *RedisCache) Set(ctx context.Context, tag, key string, value []byte, ttl time.Duration) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+key, value, ttl)
		pipe.SAdd(ctx, tagPrefix+tag, key)
		pipe.Expire(ctx, tagPrefix+tag, tagTTL)
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "response cache write failed",
			slog.String("tag", tag),
			slog.String("error", err.Error()),
		)
	}
}

// InvalidateTags deletes every entry indexed under tags and returns how many
// entries were removed. Only the keys read from the index are unlinked from
// it, so entries written concurrently stay indexed.
func (c *RedisCache) InvalidateTags(ctx context.Context, tags ...string) (int, error) {
	removed := 0
	for _, tag := range tags {
		keys, err := c.client.SMembers(ctx, tagPrefix+tag).Result()
		if err != nil {
			return removed, fmt.Errorf("read tag %s: %w", tag, err)
		}
		if len(keys) == 0 {
			continue
		}

		entries := make([]string, 0, len(keys))
		members := make([]any, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, keyPrefix+k)
			members = append(members, k)
		}

		var del *redis.IntCmd
		_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			del = pipe.Del(ctx, entries...)
			pipe.SRem(ctx, tagPrefix+tag, members...)
			return nil
		})
		if err != nil {
			return removed, fmt.Errorf("invalidate tag %s: %w", tag, err)
		}
		removed += int(del.Val())
	}
	return removed, nil
}

// Noop is a Store that never caches. It is used when caching is disabled.
type Noop struct{}

func (Noop) Get(context.Context, string, string) ([]byte, bool) { return nil, false }

func (Noop) Set(context.Context, string, string, []byte, time.Duration) {}

func (Noop) InvalidateTags(context.Context, ...string) (int, error) { return 0, nil }
