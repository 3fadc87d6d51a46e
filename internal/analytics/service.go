package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"coffee-backend/internal/shared/metrics"
	"coffee-backend/internal/shared/telemetry"
)

// Service records events and produces the admin aggregation report.
type Service struct {
	store   Store
	results ResultCounter
	now     func() time.Time
}

func NewService(store Store, results ResultCounter) *Service {
	return &Service{
		store:   store,
		results: results,
		now:     time.Now,
	}
}

// Track validates and stores one event. Payload may be nil.
func (s *Service) Track(ctx context.Context, eventType EventType, payload map[string]any) error {
	if !ValidEventType(eventType) {
		return fmt.Errorf("unknown event type %q", eventType)
	}
	raw := json.RawMessage("{}")
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal event payload: %w", err)
		}
		raw = data
	}
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Payload:   raw,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Insert(ctx, event); err != nil {
		return err
	}
	metrics.IncAnalyticsEvent()
	return nil
}

// TrackAsync records an event without failing the caller's request.
// Tracking is best-effort; a storage error is logged and swallowed.
func (s *Service) TrackAsync(ctx context.Context, eventType EventType, payload map[string]any) {
	if err := s.Track(ctx, eventType, payload); err != nil {
		telemetry.Error("analytics.track_failed", map[string]any{
			"event_type": string(eventType),
			"error":      err.Error(),
		})
	}
}

// Aggregate builds the admin report over the trailing window of days.
func (s *Service) Aggregate(ctx context.Context, days int) (Report, error) {
	if days < 1 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	since := s.now().UTC().AddDate(0, 0, -days)

	events, err := s.store.ListSince(ctx, since)
	if err != nil {
		return Report{}, err
	}

	var report Report
	flavors := map[string]int{}
	equipment := map[string]int{}
	recommendations := map[string]int{}
	daily := map[string]*DailyActivity{}

	for _, e := range events {
		day := e.CreatedAt.UTC().Format("2006-01-02")
		if daily[day] == nil {
			daily[day] = &DailyActivity{Date: day}
		}
		switch e.Type {
		case EventQuizStart:
			report.Summary.QuizStarts++
			daily[day].Starts++
		case EventQuizComplete:
			report.Summary.QuizCompletions++
			daily[day].Completions++

			var p struct {
				FlavorPreference string `json:"flavorPreference"`
				Equipment        string `json:"equipment"`
				RecommendationID string `json:"recommendationId"`
			}
			if err := json.Unmarshal(e.Payload, &p); err != nil {
				continue
			}
			if p.FlavorPreference != "" {
				flavors[p.FlavorPreference]++
			}
			if p.Equipment == "" {
				p.Equipment = "not-specified"
			}
			equipment[p.Equipment]++
			if p.RecommendationID != "" {
				recommendations[p.RecommendationID]++
			}
		case EventCafeSearch:
			report.Summary.CafeSearches++
		}
	}

	if report.Summary.QuizStarts > 0 {
		rate := float64(report.Summary.QuizCompletions) / float64(report.Summary.QuizStarts) * 100
		report.Summary.ConversionRate = math.Round(rate*10) / 10
	}

	if s.results != nil {
		total, err := s.results.CountResults(ctx)
		if err != nil {
			telemetry.Error("analytics.count_results_failed", map[string]any{"error": err.Error()})
		} else {
			report.Summary.TotalResults = total
		}
	}

	report.FlavorPreferences = sortedCounts(flavors, 0)
	report.Equipment = sortedCounts(equipment, 0)
	report.TopRecommendations = sortedCounts(recommendations, 5)

	report.DailyActivity = make([]DailyActivity, 0, len(daily))
	for _, d := range daily {
		report.DailyActivity = append(report.DailyActivity, *d)
	}
	sort.Slice(report.DailyActivity, func(i, j int) bool {
		return report.DailyActivity[i].Date < report.DailyActivity[j].Date
	})

	return report, nil
}

// sortedCounts flattens a counter map, ordered by count descending with the
// name as tie-breaker. limit of 0 keeps all buckets.
func sortedCounts(m map[string]int, limit int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, count := range m {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
