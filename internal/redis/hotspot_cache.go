package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"greenKudi/internal/domain"
	"greenKudi/internal/metrics"

	goredis "github.com/redis/go-redis/v9"
)

const (
	snapshotVersionKey = "hotspots:snapshot:version"
	snapshotKeyPrefix  = "hotspots:snapshot:"
)

// HotspotSource is the store being cached.
type HotspotSource interface {
	Enumerate(ctx context.Context) ([]domain.Hotspot, error)
	Append(ctx context.Context, hotspot domain.Hotspot) error
}

// CachedStore serves Enumerate from a Redis snapshot keyed by a version counter.
// Append bumps the version after the write reaches the inner store, so a snapshot
// taken before the write lives under an old key and is never read again.
type CachedStore struct {
	inner  HotspotSource
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedStore(inner HotspotSource, r *Redis, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{
		inner:  inner,
		client: r.Client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedStore) Enumerate(ctx context.Context) ([]domain.Hotspot, error) {
	version, err := c.client.Get(ctx, snapshotVersionKey).Int64()
	if err != nil && !errors.Is(err, goredis.Nil) {
		c.logger.Warn("snapshot version read failed", slog.Any("error", err))
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return c.inner.Enumerate(ctx)
	}
	key := snapshotKeyPrefix + strconv.FormatInt(version, 10)

	hotspots, err := c.get(ctx, key)
	switch {
	case err == nil:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return hotspots, nil
	case errors.Is(err, goredis.Nil):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	default:
		c.logger.Warn("snapshot read failed", slog.String("key", key), slog.Any("error", err))
		metrics.CacheLookups.WithLabelValues("error").Inc()
	}

	hotspots, err = c.inner.Enumerate(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.set(ctx, key, hotspots); err != nil {
		c.logger.Warn("snapshot write failed", slog.String("key", key), slog.Any("error", err))
	}
	return hotspots, nil
}

func (c *CachedStore) Append(ctx context.Context, hotspot domain.Hotspot) error {
	if err := c.inner.Append(ctx, hotspot); err != nil {
		return err
	}
	// A failed bump leaves the old snapshot visible until its TTL runs out.
	if err := c.client.Incr(ctx, snapshotVersionKey).Err(); err != nil {
		c.logger.Error("snapshot version bump failed", slog.String("id", hotspot.ID), slog.Any("error", err))
	}
	return nil
}

func (c *CachedStore) get(ctx context.Context, key string) ([]domain.Hotspot, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var hotspots []domain.Hotspot
	if err := json.Unmarshal(data, &hotspots); err != nil {
		return nil, err
	}
	return hotspots, nil
}

func (c *CachedStore) set(ctx context.Context, key string, hotspots []domain.Hotspot) error {
	b, err := json.Marshal(hotspots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, c.ttl).Err()
}
