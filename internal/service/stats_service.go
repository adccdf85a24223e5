package service

import (
	"context"

	"greenKudi/internal/domain"
)

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.HotspotStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
