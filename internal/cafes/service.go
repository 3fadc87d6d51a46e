package cafes

import (
	"context"
	"time"

	"coffee-backend/internal/shared/metrics"
	"coffee-backend/internal/shared/telemetry"
)

// Service coordinates provider searches with the read-through cache.
// Provider failures degrade to an empty result rather than failing the
// request.
type Service struct {
	provider Provider
	cache    Cache
}

func NewService(provider Provider, cache Cache) *Service {
	return &Service{provider: provider, cache: cache}
}

// ProviderName identifies the active provider, for health and logging.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Search returns cafes near the given point, consulting the cache first.
// Only non-empty provider results are cached.
func (s *Service) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	params = params.withDefaults()
	metrics.IncCafeSearch()

	if cached, ok, err := s.cache.Get(ctx, params.Lat, params.Lng, params.Radius); err != nil {
		telemetry.Error("cafes.cache_read_failed", map[string]any{"error": err.Error()})
	} else if ok {
		metrics.IncCafeCacheHit()
		return cached, nil
	} else {
		metrics.IncCafeCacheMiss()
	}

	start := time.Now()
	result, err := s.provider.SearchCafes(ctx, params)
	metrics.ObserveCafeSearchDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		telemetry.Error("cafes.provider_search_failed", map[string]any{
			"provider": s.provider.Name(),
			"error":    err.Error(),
		})
		return emptyResult(params), nil
	}

	if len(result.Cafes) > 0 {
		if err := s.cache.Put(ctx, params.Lat, params.Lng, params.Radius, params.Query, result); err != nil {
			telemetry.Error("cafes.cache_write_failed", map[string]any{"error": err.Error()})
		}
	}
	return result, nil
}

// GeocodeCity resolves a city name via the active provider. Returns nil when
// the place is unknown.
func (s *Service) GeocodeCity(ctx context.Context, city string) (*GeocodingResult, error) {
	return s.provider.GeocodeCity(ctx, city)
}

// CleanupExpiredCache removes stale cache rows. Intended for periodic runs.
func (s *Service) CleanupExpiredCache(ctx context.Context) (int, error) {
	return s.cache.CleanupExpired(ctx)
}
