// Package store archives finished recaps in Postgres, one row per player
// and year. Unlike the Redis cache these rows never expire; they back the
// "compare with last year" view and keep recaps around after cache eviction.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecapArchive reads and writes archived recap rows.
type RecapArchive struct {
	pool *pgxpool.Pool
}

// NewRecapArchive builds an archive over the given pool.
func NewRecapArchive(pool *pgxpool.Pool) *RecapArchive {
	return &RecapArchive{pool: pool}
}

// Migrate creates the recaps table if it does not exist yet.
func (a *RecapArchive) Migrate(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS recaps (
			puuid      TEXT        NOT NULL,
			year       INT         NOT NULL,
			recap      JSONB       NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (puuid, year)
		)`)
	if err != nil {
		return fmt.Errorf("create recaps table: %w", err)
	}
	return nil
}

// Save upserts the serialized recap for a player and year. Rebuilding a
// recap overwrites the previous row; the archive keeps the latest only.
func (a *RecapArchive) Save(ctx context.Context, puuid string, year int, payload []byte) error {
	now := time.Now().UTC()
	_, err := a.pool.Exec(ctx, `
		INSERT INTO recaps (puuid, year, recap, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (puuid, year)
		DO UPDATE SET recap = EXCLUDED.recap, updated_at = EXCLUDED.updated_at`,
		puuid, year, payload, now)
	if err != nil {
		return fmt.Errorf("save recap %s/%d: %w", puuid, year, err)
	}
	return nil
}

// Load returns the archived recap payload, or (nil, false, nil) when the
// player has no archived recap for that year.
func (a *RecapArchive) Load(ctx context.Context, puuid string, year int) ([]byte, bool, error) {
	var payload []byte
	err := a.pool.QueryRow(ctx,
		`SELECT recap FROM recaps WHERE puuid = $1 AND year = $2`,
		puuid, year).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load recap %s/%d: %w", puuid, year, err)
	}
	return payload, true, nil
}
