package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"coffee-backend/internal/recommendation"
)

// PGRepo persists quiz results in Postgres. Answers and the recommendation
// are stored as JSONB documents.
type PGRepo struct {
	db *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{db: db}
}

func (r *PGRepo) Create(ctx context.Context, result Result) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	rec, err := json.Marshal(result.Recommendation)
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}

	const q = `
        INSERT INTO results (id, share_slug, answers, recommendation, created_at)
        VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, q, result.ID, result.ShareSlug, answers, rec, result.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (Result, error) {
	const q = `
        SELECT id, share_slug, answers, recommendation, created_at
        FROM results
        WHERE share_slug = $1`
	var (
		result  Result
		answers []byte
		rec     []byte
	)
	err := r.db.QueryRowContext(ctx, q, slug).Scan(&result.ID, &result.ShareSlug, &answers, &rec, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	if err != nil {
		return Result{}, fmt.Errorf("get result by slug: %w", err)
	}
	if err := json.Unmarshal(answers, &result.Answers); err != nil {
		return Result{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	var out recommendation.Output
	if err := json.Unmarshal(rec, &out); err != nil {
		return Result{}, fmt.Errorf("unmarshal recommendation: %w", err)
	}
	result.Recommendation = out
	return result, nil
}

func (r *PGRepo) CountResults(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM results`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
