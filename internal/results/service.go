package results

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coffee-backend/internal/analytics"
	"coffee-backend/internal/recommendation"
	"coffee-backend/internal/shared/metrics"
	"coffee-backend/internal/shared/util"
)

// slug collisions are vanishingly rare at 36^10; five attempts is plenty.
const maxSlugAttempts = 5

// Service runs the recommendation engine and persists shareable results.
type Service struct {
	repo      Repo
	engine    *recommendation.Engine
	analytics *analytics.Service
	now       func() time.Time
	newSlug   func() string
}

func NewService(repo Repo, engine *recommendation.Engine, analyticsSvc *analytics.Service) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		analytics: analyticsSvc,
		now:       time.Now,
		newSlug:   util.GenerateShareSlug,
	}
}

// Submit scores the quiz, stores the result under a fresh share slug, and
// records the completion event.
func (s *Service) Submit(ctx context.Context, answers recommendation.QuizAnswers) (Result, error) {
	output := s.engine.Generate(answers)

	result := Result{
		ID:             uuid.NewString(),
		Answers:        answers,
		Recommendation: output,
		CreatedAt:      s.now().UTC(),
	}

	var err error
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		result.ShareSlug = s.newSlug()
		err = s.repo.Create(ctx, result)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrSlugTaken) {
			return Result{}, err
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("allocate share slug: %w", err)
	}

	metrics.IncQuizSubmitted()
	if s.analytics != nil {
		s.analytics.TrackAsync(ctx, analytics.EventQuizComplete, map[string]any{
			"milkPreference":   string(answers.MilkPreference),
			"temperature":      string(answers.Temperature),
			"flavorPreference": string(answers.FlavorPreference),
			"coffeeContext":    string(answers.CoffeeContext),
			"equipment":        string(answers.Equipment),
			"recommendationId": output.BestMatch.ID,
			"alternativeId":    output.Alternative.ID,
		})
		s.analytics.TrackAsync(ctx, analytics.EventShareLinkCreated, map[string]any{
			"shareSlug": result.ShareSlug,
		})
	}

	return result, nil
}

// GetBySlug loads a shared result and records the view.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Result, error) {
	result, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Result{}, err
	}

	metrics.IncResultViewed()
	if s.analytics != nil {
		s.analytics.TrackAsync(ctx, analytics.EventShareLinkViewed, map[string]any{
			"shareSlug":        slug,
			"recommendationId": result.Recommendation.BestMatch.ID,
		})
	}
	return result, nil
}
