package cafes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PGCache stores search results in the cafe_search_cache table. Expired rows
// are deleted on read.
type PGCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewPGCache(db *sql.DB, ttl time.Duration) *PGCache {
	return &PGCache{db: db, ttl: ttl, now: time.Now}
}

func (c *PGCache) Get(ctx context.Context, lat, lng float64, radius int) (SearchResult, bool, error) {
	const q = `
        SELECT id, response, created_at
        FROM cafe_search_cache
        WHERE lat = $1 AND lng = $2 AND radius = $3`
	var (
		id        string
		response  []byte
		createdAt time.Time
	)
	err := c.db.QueryRowContext(ctx, q, roundCoord(lat), roundCoord(lng), radius).Scan(&id, &response, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SearchResult{}, false, nil
	}
	if err != nil {
		return SearchResult{}, false, fmt.Errorf("read cafe cache: %w", err)
	}

	if c.now().Sub(createdAt) > c.ttl {
		if _, err := c.db.ExecContext(ctx, `DELETE FROM cafe_search_cache WHERE id = $1`, id); err != nil {
			return SearchResult{}, false, fmt.Errorf("delete expired cafe cache row: %w", err)
		}
		return SearchResult{}, false, nil
	}

	var result SearchResult
	if err := json.Unmarshal(response, &result); err != nil {
		return SearchResult{}, false, fmt.Errorf("unmarshal cached cafe result: %w", err)
	}
	return result, true, nil
}

func (c *PGCache) Put(ctx context.Context, lat, lng float64, radius int, query string, result SearchResult) error {
	response, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cafe result: %w", err)
	}

	const q = `
        INSERT INTO cafe_search_cache (id, lat, lng, radius, query, response, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (lat, lng, radius)
        DO UPDATE SET query = EXCLUDED.query, response = EXCLUDED.response, created_at = EXCLUDED.created_at`
	_, err = c.db.ExecContext(ctx, q, uuid.NewString(), roundCoord(lat), roundCoord(lng), radius, query, response, c.now().UTC())
	if err != nil {
		return fmt.Errorf("write cafe cache: %w", err)
	}
	return nil
}

func (c *PGCache) CleanupExpired(ctx context.Context) (int, error) {
	cutoff := c.now().UTC().Add(-c.ttl)
	res, err := c.db.ExecContext(ctx, `DELETE FROM cafe_search_cache WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup cafe cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup cafe cache rows affected: %w", err)
	}
	return int(n), nil
}
