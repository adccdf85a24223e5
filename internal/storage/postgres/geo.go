package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"
)

func (p *HotspotStore) FindNearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyHotspot, error) {
	const op = "postgres.Hotspot.FindNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusKm <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geography so that distances come back in metres; rows with coordinates
	// outside the WGS84 range cannot be cast and are skipped.
	const query = `
WITH here AS (
  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
), pts AS MATERIALIZED (
  SELECT seq, id, lat, lng, note, created_at,
         ST_SetSRID(ST_MakePoint(lng, lat), 4326)::geography AS g
  FROM hotspots
  WHERE lat BETWEEN -90 AND 90
    AND lng BETWEEN -180 AND 180
)
SELECT pts.id, pts.lat, pts.lng, pts.note, pts.created_at,
       ST_Distance(pts.g, here.g) / 1000 AS distance_km
FROM pts, here
WHERE ST_DWithin(pts.g, here.g, $3 * 1000)
ORDER BY distance_km, pts.seq
`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusKm)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	nearby := make([]domain.NearbyHotspot, 0, 8)
	for rows.Next() {
		var n domain.NearbyHotspot
		if err := rows.Scan(&n.ID, &n.Lat, &n.Lng, &n.Note, &n.CreatedAt, &n.DistanceKM); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		nearby = append(nearby, n)
	}

	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return nearby, nil
}
