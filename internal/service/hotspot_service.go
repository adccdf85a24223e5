package service

import (
	"context"

	"greenKudi/internal/domain"
)

func (s *Service) Enumerate(ctx context.Context) ([]domain.Hotspot, error) {
	return s.HotspotService.Enumerate(ctx)
}

func (s *Service) Append(ctx context.Context, req domain.CreateHotspotRequest) (*domain.Hotspot, error) {
	return s.HotspotService.Append(ctx, req)
}

func (s *Service) Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyHotspot, error) {
	return s.HotspotService.Nearby(ctx, req)
}
