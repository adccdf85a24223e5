package postgres

import (
	"context"
	"log/slog"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HotspotStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHotspotStore(pool *pgxpool.Pool, logger *slog.Logger) *HotspotStore {
	return &HotspotStore{pool: pool, logger: logger}
}

func (p *HotspotStore) Append(ctx context.Context, hotspot domain.Hotspot) error {
	const op = "postgres.Hotspot.Append"

	const query = `
		INSERT INTO hotspots (id, lat, lng, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		hotspot.ID,
		hotspot.Lat,
		hotspot.Lng,
		hotspot.Note,
		hotspot.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("id", hotspot.ID),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *HotspotStore) Enumerate(ctx context.Context) ([]domain.Hotspot, error) {
	const op = "postgres.Hotspot.Enumerate"

	const query = `
		SELECT id, lat, lng, note, created_at
		FROM hotspots
		ORDER BY seq
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	hotspots := make([]domain.Hotspot, 0, 16)
	for rows.Next() {
		var h domain.Hotspot
		if err := rows.Scan(&h.ID, &h.Lat, &h.Lng, &h.Note, &h.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return hotspots, nil
}
