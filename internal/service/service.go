package service

import (
	"context"

	"greenKudi/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type HotspotService interface {
	Enumerate(ctx context.Context) ([]domain.Hotspot, error)
	Append(ctx context.Context, req domain.CreateHotspotRequest) (*domain.Hotspot, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyHotspot, error)
}

// HotspotStore holds hotspots in insertion order. Append must be atomic with
// respect to Enumerate.
type HotspotStore interface {
	Enumerate(ctx context.Context) ([]domain.Hotspot, error)
	Append(ctx context.Context, hotspot domain.Hotspot) error
}

// NearbyFinder is implemented by stores that can answer radius queries natively.
type NearbyFinder interface {
	FindNearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyHotspot, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.HotspotEvent) error
}

type IDGenerator interface {
	Next() (id string, createdAtMs int64)
}

// Статистика
type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.HotspotStats, error)
}

type Service struct {
	HotspotService HotspotService
	StatsService   StatsService
}

func NewService(hotspotService HotspotService, statsService StatsService) *Service {
	return &Service{
		HotspotService: hotspotService,
		StatsService:   statsService,
	}
}
