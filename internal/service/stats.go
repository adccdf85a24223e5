package service

import (
	"context"
	"fmt"
	"time"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"
)

type statsService struct {
	store HotspotStore
	now   func() time.Time
}

func NewStatsService(store HotspotStore) StatsService {
	return &statsService{store: store, now: time.Now}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.HotspotStats, error) {
	const op = "service.Stats.GetStats"

	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}
	if minutes < 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	hotspots, err := s.store.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	since := s.now().Add(-time.Duration(minutes) * time.Minute).UnixMilli()
	stats := &domain.HotspotStats{
		Total:   int64(len(hotspots)),
		Minutes: minutes,
	}
	for _, h := range hotspots {
		if h.CreatedAt >= since {
			stats.Recent++
		}
		if h.Note != nil && *h.Note != "" {
			stats.WithNotes++
		}
	}
	return stats, nil
}
