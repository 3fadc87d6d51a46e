package results

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"coffee-backend/internal/recommendation"
)

func sampleResult() Result {
	return Result{
		ID:        "result-1",
		ShareSlug: "abc123def4",
		Answers: recommendation.QuizAnswers{
			MilkPreference:   recommendation.MilkWithMilk,
			Temperature:      recommendation.TempHot,
			FlavorPreference: recommendation.FlavorNutty,
			CoffeeContext:    recommendation.ContextHome,
		},
		Recommendation: recommendation.Output{
			BestMatch:   recommendation.CoffeeProfile{ID: "brazilian-medium", Name: "Brazilian Medium Roast"},
			Alternative: recommendation.CoffeeProfile{ID: "colombian-classic", Name: "Colombian Classic"},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	result := sampleResult()

	mock.ExpectExec("INSERT INTO results").
		WithArgs(result.ID, result.ShareSlug, sqlmock.AnyArg(), sqlmock.AnyArg(), result.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), result); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateSlugCollision(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	mock.ExpectExec("INSERT INTO results").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "results_share_slug_key"})

	err = repo.Create(context.Background(), sampleResult())
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestPGRepoGetBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	want := sampleResult()
	answers, _ := json.Marshal(want.Answers)
	rec, _ := json.Marshal(want.Recommendation)

	rows := sqlmock.NewRows([]string{"id", "share_slug", "answers", "recommendation", "created_at"}).
		AddRow(want.ID, want.ShareSlug, answers, rec, want.CreatedAt)
	mock.ExpectQuery("SELECT id, share_slug, answers, recommendation, created_at").
		WithArgs(want.ShareSlug).
		WillReturnRows(rows)

	got, err := repo.GetBySlug(context.Background(), want.ShareSlug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Recommendation.BestMatch.ID != "brazilian-medium" {
		t.Errorf("BestMatch.ID = %q", got.Recommendation.BestMatch.ID)
	}
	if got.Answers.FlavorPreference != recommendation.FlavorNutty {
		t.Errorf("FlavorPreference = %q", got.Answers.FlavorPreference)
	}
}

func TestPGRepoGetBySlugNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	mock.ExpectQuery("SELECT id, share_slug, answers, recommendation, created_at").
		WithArgs("zzzzzzzzzz").
		WillReturnRows(sqlmock.NewRows([]string{"id", "share_slug", "answers", "recommendation", "created_at"}))

	_, err = repo.GetBySlug(context.Background(), "zzzzzzzzzz")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoCountResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

	n, err := repo.CountResults(context.Background())
	if err != nil {
		t.Fatalf("CountResults: %v", err)
	}
	if n != 17 {
		t.Errorf("count = %d, want 17", n)
	}
}
