package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

const hotspotListKey = "hotspots:list"

// HotspotStore keeps hotspots as JSON entries of one Redis list. RPUSH and
// LRANGE are single commands, so readers never see a partial append.
type HotspotStore struct {
	client *goredis.Client
	key    string
	logger *slog.Logger
}

func NewHotspotStore(r *Redis, logger *slog.Logger) *HotspotStore {
	return &HotspotStore{
		client: r.Client,
		key:    hotspotListKey,
		logger: logger,
	}
}

func (s *HotspotStore) Append(ctx context.Context, hotspot domain.Hotspot) error {
	const op = "redis.Hotspot.Append"

	b, err := json.Marshal(hotspot)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err := s.client.RPush(ctx, s.key, b).Err(); err != nil {
		s.logger.Error("redis rpush failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (s *HotspotStore) Enumerate(ctx context.Context) ([]domain.Hotspot, error) {
	const op = "redis.Hotspot.Enumerate"

	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		s.logger.Error("redis lrange failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	hotspots := make([]domain.Hotspot, 0, len(items))
	for _, item := range items {
		var h domain.Hotspot
		if err := json.Unmarshal([]byte(item), &h); err != nil {
			s.logger.Error("corrupt hotspot entry", slog.String("op", op), slog.Any("error", err))
			return nil, e.Wrap(op, err)
		}
		hotspots = append(hotspots, h)
	}
	return hotspots, nil
}
