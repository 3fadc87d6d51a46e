package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-backend/internal/analytics"
	"coffee-backend/internal/cafes"
	"coffee-backend/internal/results"
	"coffee-backend/internal/shared/config"
	"coffee-backend/internal/shared/metrics"
	"coffee-backend/internal/shared/server/middleware"
	"coffee-backend/internal/shared/server/respond"
)

const cafeRateGroup = "cafes"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	ResultsHandler   *results.Handler
	CafesHandler     *cafes.Handler
	AnalyticsHandler *analytics.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.ResultsHandler.RegisterRoutes(api)
	deps.AnalyticsHandler.RegisterRoutes(api)

	// Cafe searches hit external providers, so they get their own per-IP
	// budget. The configured rate is requests per minute.
	cafeGroup := api.Group("")
	cafeGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: cafeRateGroup,
		Rules: map[string]middleware.RateLimitRule{
			cafeRateGroup: {
				Rate:  float64(deps.Config.CafeSearchRate) / 60.0,
				Burst: deps.Config.CafeSearchRate,
			},
		},
	}))
	deps.CafesHandler.RegisterRoutes(cafeGroup)

	admin := api.Group("")
	admin.Use(middleware.AdminAuth(deps.Config.AdminPassword))
	deps.AnalyticsHandler.RegisterAdminRoutes(admin)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
