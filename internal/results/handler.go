package results

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"coffee-backend/internal/recommendation"
	"coffee-backend/internal/shared/server/respond"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]{10}$`)

// Handler exposes quiz submission and shared-result endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches quiz and result routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quiz/submit", h.submit)
	rg.GET("/results/:slug", h.getBySlug)
}

func (h *Handler) submit(c *gin.Context) {
	var answers recommendation.QuizAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}
	if problems := validateAnswers(answers); len(problems) > 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_answers", "quiz answers failed validation", problems)
		return
	}

	result, err := h.Svc.Submit(c.Request.Context(), answers)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save result", nil)
		return
	}

	c.Set("recommendationId", result.Recommendation.BestMatch.ID)
	respond.JSON(c, http.StatusCreated, submitResponse{
		ID:             result.ID,
		ShareSlug:      result.ShareSlug,
		ShareURL:       "/results/" + result.ShareSlug,
		Summary:        recommendation.Summary(result.Recommendation),
		Recommendation: result.Recommendation,
		CreatedAt:      result.CreatedAt,
	})
}

func (h *Handler) getBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if !slugPattern.MatchString(slug) {
		respond.Error(c, http.StatusBadRequest, "invalid_slug", "share slug must be 10 lowercase base36 characters", nil)
		return
	}

	result, err := h.Svc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no result for this link", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load result", nil)
		return
	}

	c.Set("shareSlug", slug)
	respond.OK(c, resultResponse{
		ID:             result.ID,
		ShareSlug:      result.ShareSlug,
		Summary:        recommendation.Summary(result.Recommendation),
		Answers:        result.Answers,
		Recommendation: result.Recommendation,
		CreatedAt:      result.CreatedAt,
	})
}
