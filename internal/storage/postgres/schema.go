package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seq keeps insertion order independent of id format; lat/lng are kept as plain
// doubles so any finite coordinate round-trips exactly.
const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS hotspots (
	seq        bigserial PRIMARY KEY,
	id         text NOT NULL UNIQUE,
	lat        double precision NOT NULL,
	lng        double precision NOT NULL,
	note       text,
	created_at bigint NOT NULL
);
`

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
