package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffee-backend/internal/shared/server/respond"
)

// Handler exposes analytics endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches public analytics routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analytics/track", h.track)
}

// RegisterAdminRoutes attaches password-protected admin routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/analytics", h.report)
}

type trackRequest struct {
	EventType string         `json:"eventType"`
	Payload   map[string]any `json:"payload"`
}

func (h *Handler) track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}
	eventType := EventType(req.EventType)
	if !ValidEventType(eventType) {
		respond.Error(c, http.StatusBadRequest, "invalid_event_type", "unknown event type", gin.H{"eventType": req.EventType})
		return
	}

	if err := h.Svc.Track(c.Request.Context(), eventType, req.Payload); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record event", nil)
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{"tracked": true})
}

func (h *Handler) report(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respond.Error(c, http.StatusBadRequest, "invalid_days", "days must be a positive integer", nil)
			return
		}
		days = parsed
	}

	report, err := h.Svc.Aggregate(c.Request.Context(), days)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build analytics report", nil)
		return
	}

	respond.OK(c, report)
}
