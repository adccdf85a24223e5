package service

import (
	"context"
	"log/slog"

	"greenKudi/internal/domain"
)

func demoHotspots() []domain.CreateHotspotRequest {
	f := func(v float64) *float64 { return &v }
	s := func(v string) *string { return &v }
	return []domain.CreateHotspotRequest{
		{Lat: f(6.5255), Lng: f(3.3679), Note: s("Community dump")},
		{Lat: f(6.5122), Lng: f(3.3928), Note: s("Plastic buildup")},
	}
}

// SeedDemo appends the demo hotspots when the service has none yet.
func SeedDemo(ctx context.Context, svc HotspotService, logger *slog.Logger) error {
	existing, err := svc.Enumerate(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, store not empty", slog.Int("hotspots", len(existing)))
		return nil
	}
	for _, req := range demoHotspots() {
		if _, err := svc.Append(ctx, req); err != nil {
			return err
		}
	}
	logger.Info("demo hotspots seeded", slog.Int("count", len(demoHotspots())))
	return nil
}
