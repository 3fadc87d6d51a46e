package cafes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffee-backend/internal/analytics"
	"coffee-backend/internal/shared/server/respond"
)

// Handler exposes the cafe search endpoint.
type Handler struct {
	Svc       *Service
	Analytics *analytics.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, analyticsSvc *analytics.Service) *Handler {
	return &Handler{Svc: svc, Analytics: analyticsSvc}
}

// RegisterRoutes attaches cafe routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cafes", h.search)
}

type searchQuery struct {
	lat      *float64
	lng      *float64
	city     string
	radius   int
	limit    int
	problems map[string]string
}

func parseSearchQuery(c *gin.Context) searchQuery {
	q := searchQuery{radius: DefaultRadius, limit: DefaultLimit, problems: map[string]string{}}

	parseFloat := func(name string, min, max float64) *float64 {
		raw := c.Query(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < min || v > max {
			q.problems[name] = "must be a number between " + strconv.FormatFloat(min, 'f', -1, 64) + " and " + strconv.FormatFloat(max, 'f', -1, 64)
			return nil
		}
		return &v
	}
	parseInt := func(name string, def, min, max int) int {
		raw := c.Query(name)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < min || v > max {
			q.problems[name] = "must be an integer between " + strconv.Itoa(min) + " and " + strconv.Itoa(max)
			return def
		}
		return v
	}

	q.lat = parseFloat("lat", -90, 90)
	q.lng = parseFloat("lng", -180, 180)
	q.city = c.Query("city")
	if len(q.city) > 100 {
		q.problems["city"] = "must be at most 100 characters"
	}
	q.radius = parseInt("radius", DefaultRadius, 100, 50000)
	q.limit = parseInt("limit", DefaultLimit, 1, 20)
	return q
}

func (h *Handler) search(c *gin.Context) {
	q := parseSearchQuery(c)
	if len(q.problems) > 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_params", "invalid search parameters", q.problems)
		return
	}

	hasCoords := q.lat != nil && q.lng != nil
	if !hasCoords && q.city == "" {
		respond.Error(c, http.StatusBadRequest, "missing_location", "provide either lat/lng coordinates or a city name", nil)
		return
	}

	var searchLat, searchLng float64
	if hasCoords {
		searchLat, searchLng = *q.lat, *q.lng
	} else {
		geo, err := h.Svc.GeocodeCity(c.Request.Context(), q.city)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search for cafes", nil)
			return
		}
		if geo == nil {
			respond.Error(c, http.StatusNotFound, "location_not_found", "Could not find location: "+q.city, nil)
			return
		}
		searchLat, searchLng = geo.Lat, geo.Lng
	}

	result, err := h.Svc.Search(c.Request.Context(), SearchParams{
		Lat:    searchLat,
		Lng:    searchLng,
		Radius: q.radius,
		Limit:  q.limit,
		Query:  q.city,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search for cafes", nil)
		return
	}

	if h.Analytics != nil {
		payload := map[string]any{
			"hasLocation": hasCoords,
			"resultCount": len(result.Cafes),
		}
		if q.city != "" {
			payload["city"] = q.city
		}
		h.Analytics.TrackAsync(c.Request.Context(), analytics.EventCafeSearch, payload)
	}

	respond.OK(c, gin.H{
		"success":    true,
		"cafes":      result.Cafes,
		"query":      result.Query,
		"center":     result.Center,
		"radius":     result.Radius,
		"totalFound": result.TotalFound,
	})
}
