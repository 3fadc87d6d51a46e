package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	CORSAllowOrigin    []string
	AdminPassword      string
	CafeProvider       string
	GooglePlacesAPIKey string
	CafeCacheTTL       time.Duration
	CafeSearchRate     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	// The rate feeds a token bucket; zero or negative would reject everything.
	cafeRate := getEnvInt("CAFE_SEARCH_RATE_LIMIT", 30)
	if cafeRate < 1 {
		log.Printf("config CAFE_SEARCH_RATE_LIMIT must be at least 1, got %d; using 1", cafeRate)
		cafeRate = 1
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		DatabaseURL:        dbURL,
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		CafeProvider:       normalizeProvider(getEnv("CAFE_PROVIDER", "")),
		GooglePlacesAPIKey: getEnv("GOOGLE_PLACES_API_KEY", ""),
		CafeCacheTTL:       getEnvSeconds("CAFE_CACHE_DURATION", 3600),
		CafeSearchRate:     cafeRate,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvSeconds(key string, defSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defSeconds)) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "google":
		return "google"
	case "osm":
		return "osm"
	default:
		// Empty means auto: Google Places when a key is configured, OSM otherwise.
		return ""
	}
}
