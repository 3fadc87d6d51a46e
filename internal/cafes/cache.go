package cafes

import (
	"context"
	"math"
)

// Cache stores recent search results keyed by rounded center and radius.
// Entries older than the configured TTL count as misses.
type Cache interface {
	Get(ctx context.Context, lat, lng float64, radius int) (SearchResult, bool, error)
	Put(ctx context.Context, lat, lng float64, radius int, query string, result SearchResult) error
	CleanupExpired(ctx context.Context) (int, error)
}

// roundCoord rounds a coordinate to 3 decimals (about 110m) so nearby
// searches share a cache entry.
func roundCoord(coord float64) float64 {
	return math.Round(coord*1000) / 1000
}
