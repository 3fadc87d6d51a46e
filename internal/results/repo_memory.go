package results

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used in development and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	bySlug map[string]Result
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{bySlug: make(map[string]Result)}
}

func (r *MemoryRepo) Create(_ context.Context, result Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bySlug[result.ShareSlug]; exists {
		return ErrSlugTaken
	}
	r.bySlug[result.ShareSlug] = result
	return nil
}

func (r *MemoryRepo) GetBySlug(_ context.Context, slug string) (Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.bySlug[slug]
	if !ok {
		return Result{}, ErrNotFound
	}
	return result, nil
}

func (r *MemoryRepo) CountResults(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySlug), nil
}
