package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"coffee-backend/internal/analytics"
	"coffee-backend/internal/cafes"
	"coffee-backend/internal/recommendation"
	"coffee-backend/internal/results"
	"coffee-backend/internal/shared/config"
	"coffee-backend/internal/shared/server"
	"coffee-backend/internal/shared/storage/db"
)

// App holds shared dependencies for the API server.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Catalog          *recommendation.Catalog
	Engine           *recommendation.Engine
	ResultsRepo      results.Repo
	AnalyticsStore   analytics.Store
	CafeProvider     cafes.Provider
	CafeCache        cafes.Cache
	ResultsService   *results.Service
	AnalyticsService *analytics.Service
	CafesService     *cafes.Service
	ResultsHandler   *results.Handler
	AnalyticsHandler *analytics.Handler
	CafesHandler     *cafes.Handler
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalog := recommendation.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("coffee catalog: %w", err)
	}
	engine := recommendation.NewEngine(catalog, recommendation.DefaultWeights())

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Catalog: catalog,
		Engine:  engine,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		ResultsHandler:   app.ResultsHandler,
		CafesHandler:     app.CafesHandler,
		AnalyticsHandler: app.AnalyticsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory storage")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory storage: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory storage: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResultsRepo = results.NewPGRepo(app.DB)
		app.AnalyticsStore = analytics.NewPGStore(app.DB)
		app.CafeCache = cafes.NewPGCache(app.DB, app.Config.CafeCacheTTL)
	} else {
		app.ResultsRepo = results.NewMemoryRepo()
		app.AnalyticsStore = analytics.NewMemoryStore()
		app.CafeCache = cafes.NewMemoryCache(app.Config.CafeCacheTTL)
	}

	app.CafeProvider = buildCafeProvider(app.Config)

	app.AnalyticsService = analytics.NewService(app.AnalyticsStore, app.ResultsRepo)
	app.ResultsService = results.NewService(app.ResultsRepo, app.Engine, app.AnalyticsService)
	app.CafesService = cafes.NewService(app.CafeProvider, app.CafeCache)

	app.ResultsHandler = results.NewHandler(app.ResultsService)
	app.AnalyticsHandler = analytics.NewHandler(app.AnalyticsService)
	app.CafesHandler = cafes.NewHandler(app.CafesService, app.AnalyticsService)
}

// buildCafeProvider picks the configured provider; unset means Google Places
// when a key is present, OSM otherwise.
func buildCafeProvider(cfg config.Config) cafes.Provider {
	switch cfg.CafeProvider {
	case "google":
		return cafes.NewGooglePlacesProvider(cfg.GooglePlacesAPIKey)
	case "osm":
		return cafes.NewOSMProvider()
	default:
		if cfg.GooglePlacesAPIKey != "" {
			return cafes.NewGooglePlacesProvider(cfg.GooglePlacesAPIKey)
		}
		return cafes.NewOSMProvider()
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
