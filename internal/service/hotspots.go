package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"greenKudi/internal/domain"
	"greenKudi/internal/metrics"
	"greenKudi/pkg/e"
	"greenKudi/pkg/validator"
)

const defaultRadiusKm = 1.0

type hotspotService struct {
	store     HotspotStore
	finder    NearbyFinder
	publisher EventPublisher
	ids       IDGenerator
	logger    *slog.Logger
}

// NewHotspotService wires the store contract. finder and publisher may be nil:
// without a finder, Nearby filters an Enumerate snapshot; without a publisher no
// events are emitted.
func NewHotspotService(
	store HotspotStore,
	finder NearbyFinder,
	publisher EventPublisher,
	ids IDGenerator,
	logger *slog.Logger,
) HotspotService {
	return &hotspotService{
		store:     store,
		finder:    finder,
		publisher: publisher,
		ids:       ids,
		logger:    logger,
	}
}

func (s *hotspotService) Enumerate(ctx context.Context) ([]domain.Hotspot, error) {
	hotspots, err := s.store.Enumerate(ctx)
	if err != nil {
		s.logger.Error("store.Enumerate failed", slog.Any("error", err))
		return nil, err
	}
	if hotspots == nil {
		hotspots = []domain.Hotspot{}
	}
	return hotspots, nil
}

func (s *hotspotService) Append(ctx context.Context, req domain.CreateHotspotRequest) (*domain.Hotspot, error) {
	const op = "service.Hotspot.Append"

	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("hotspot rejected", slog.String("op", op), slog.String("reason", err.Error()))
		metrics.HotspotsRejected.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%s: %w: %v", op, e.ErrValidation, err)
	}

	id, createdAt := s.ids.Next()
	hotspot := domain.Hotspot{
		ID:        id,
		Lat:       *req.Lat,
		Lng:       *req.Lng,
		CreatedAt: createdAt,
	}
	if req.Note != nil {
		note := domain.TruncateNote(*req.Note)
		hotspot.Note = &note
	}

	if err := s.store.Append(ctx, hotspot); err != nil {
		s.logger.Error("store.Append failed", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}
	metrics.HotspotsCreated.Inc()

	s.logger.Info("hotspot created",
		slog.String("id", hotspot.ID),
		slog.Float64("lat", hotspot.Lat),
		slog.Float64("lng", hotspot.Lng),
	)

	s.publish(ctx, hotspot)

	return &hotspot, nil
}

// publish never fails the append: the hotspot is already stored.
func (s *hotspotService) publish(ctx context.Context, hotspot domain.Hotspot) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, domain.NewHotspotCreated(hotspot)); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		s.logger.Error("publish hotspot event failed", slog.String("id", hotspot.ID), slog.Any("error", err))
		return
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
	s.logger.Debug("hotspot event published", slog.String("id", hotspot.ID))
}

func (s *hotspotService) Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyHotspot, error) {
	const op = "service.Hotspot.Nearby"

	if req.RadiusKM == 0 {
		req.RadiusKM = defaultRadiusKm
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, e.ErrValidation, err)
	}

	if s.finder != nil {
		nearby, err := s.finder.FindNearby(ctx, req.Lat, req.Lng, req.RadiusKM)
		if err != nil {
			s.logger.Error("finder.FindNearby failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}
		if nearby == nil {
			nearby = []domain.NearbyHotspot{}
		}
		return nearby, nil
	}

	hotspots, err := s.store.Enumerate(ctx)
	if err != nil {
		s.logger.Error("store.Enumerate failed", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}

	nearby := filterNearby(hotspots, req.Lat, req.Lng, req.RadiusKM)
	s.logger.Debug("haversine filter done",
		slog.Int("total", len(hotspots)),
		slog.Int("nearby", len(nearby)),
	)
	return nearby, nil
}

func filterNearby(hotspots []domain.Hotspot, lat, lng, radiusKm float64) []domain.NearbyHotspot {
	nearby := make([]domain.NearbyHotspot, 0)
	for _, h := range hotspots {
		if !validCoordinates(h.Lat, h.Lng) {
			continue
		}
		dist := haversine(lat, lng, h.Lat, h.Lng)
		if dist <= radiusKm {
			nearby = append(nearby, domain.NearbyHotspot{Hotspot: h, DistanceKM: dist})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})
	return nearby
}
