package results

import "context"

// Repo defines persistence operations for quiz results.
type Repo interface {
	Create(ctx context.Context, result Result) error
	GetBySlug(ctx context.Context, slug string) (Result, error)
	CountResults(ctx context.Context) (int, error)
}
