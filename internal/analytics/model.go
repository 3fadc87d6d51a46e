package analytics

import (
	"encoding/json"
	"time"
)

// EventType enumerates the tracked analytics events.
type EventType string

const (
	EventQuizStart          EventType = "quiz_start"
	EventQuizComplete       EventType = "quiz_complete"
	EventRecommendationView EventType = "recommendation_view"
	EventCafeSearch         EventType = "cafe_search"
	EventShareLinkCreated   EventType = "share_link_created"
	EventShareLinkViewed    EventType = "share_link_viewed"
)

// ValidEventType reports whether t is one of the declared event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventQuizStart, EventQuizComplete, EventRecommendationView,
		EventCafeSearch, EventShareLinkCreated, EventShareLinkViewed:
		return true
	default:
		return false
	}
}

// Event is one stored analytics event. Payload is an opaque JSON object.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Report is the admin aggregation over a date range.
type Report struct {
	Summary            Summary         `json:"summary"`
	FlavorPreferences  []NameCount     `json:"flavorPreferences"`
	Equipment          []NameCount     `json:"equipment"`
	TopRecommendations []NameCount     `json:"topRecommendations"`
	DailyActivity      []DailyActivity `json:"dailyActivity"`
}

// Summary holds headline counters for the admin dashboard.
type Summary struct {
	QuizStarts      int     `json:"quizStarts"`
	QuizCompletions int     `json:"quizCompletions"`
	ConversionRate  float64 `json:"conversionRate"`
	CafeSearches    int     `json:"cafeSearches"`
	TotalResults    int     `json:"totalResults"`
}

// NameCount is one bucket of a distribution, sorted by count descending.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyActivity is per-day quiz funnel activity.
type DailyActivity struct {
	Date        string `json:"date"`
	Starts      int    `json:"starts"`
	Completions int    `json:"completions"`
}
