package postgres

import (
	"context"

	"greenKudi/internal/domain"
)

type HotspotRepository interface {
	Enumerate(ctx context.Context) ([]domain.Hotspot, error)
	Append(ctx context.Context, hotspot domain.Hotspot) error
}

type GeoRepository interface {
	FindNearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyHotspot, error)
}

func (p *Postgres) HotspotRepo() HotspotRepository { return p.Hotspots }
func (p *Postgres) Geo() GeoRepository             { return p.Hotspots }
