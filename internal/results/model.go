package results

import (
	"time"

	"coffee-backend/internal/recommendation"
)

// Result is one saved quiz outcome, addressable by its share slug.
type Result struct {
	ID             string                     `json:"id"`
	ShareSlug      string                     `json:"shareSlug"`
	Answers        recommendation.QuizAnswers `json:"answers"`
	Recommendation recommendation.Output      `json:"recommendation"`
	CreatedAt      time.Time                  `json:"createdAt"`
}
