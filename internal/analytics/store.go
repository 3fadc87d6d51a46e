package analytics

import (
	"context"
	"time"
)

// Store defines persistence operations for analytics events.
type Store interface {
	Insert(ctx context.Context, event Event) error
	ListSince(ctx context.Context, since time.Time) ([]Event, error)
}

// ResultCounter reports how many quiz results exist. Implemented by the
// results repository; wired in bootstrap.
type ResultCounter interface {
	CountResults(ctx context.Context) (int, error)
}
