package main

// Seed the database with sample results and a week of analytics events:
//   go run ./cmd/seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"coffee-backend/internal/analytics"
	"coffee-backend/internal/recommendation"
	"coffee-backend/internal/results"
	"coffee-backend/internal/shared/config"
	"coffee-backend/internal/shared/storage/db"
	"coffee-backend/internal/shared/util"
)

var sampleQuizzes = []recommendation.QuizAnswers{
	{
		MilkPreference:   recommendation.MilkBlack,
		Temperature:      recommendation.TempHot,
		FlavorPreference: recommendation.FlavorChocolatey,
		CoffeeContext:    recommendation.ContextHome,
		Equipment:        recommendation.EquipmentFrenchPress,
	},
	{
		MilkPreference:   recommendation.MilkWithMilk,
		Temperature:      recommendation.TempIced,
		FlavorPreference: recommendation.FlavorFruity,
		CoffeeContext:    recommendation.ContextCafe,
	},
	{
		MilkPreference:   recommendation.MilkSweetened,
		Temperature:      recommendation.TempHot,
		FlavorPreference: recommendation.FlavorBalanced,
		CoffeeContext:    recommendation.ContextBoth,
		Equipment:        recommendation.EquipmentDrip,
	},
	{
		MilkPreference:   recommendation.MilkBlack,
		Temperature:      recommendation.TempHot,
		FlavorPreference: recommendation.FlavorFruity,
		CoffeeContext:    recommendation.ContextHome,
		Equipment:        recommendation.EquipmentPourOver,
	},
	{
		MilkPreference:   recommendation.MilkWithMilk,
		Temperature:      recommendation.TempHot,
		FlavorPreference: recommendation.FlavorChocolatey,
		CoffeeContext:    recommendation.ContextHome,
		Equipment:        recommendation.EquipmentPods,
	},
}

var sampleEvents = []struct {
	eventType analytics.EventType
	payload   map[string]any
}{
	{analytics.EventQuizStart, map[string]any{}},
	{analytics.EventQuizStart, map[string]any{}},
	{analytics.EventQuizStart, map[string]any{}},
	{analytics.EventQuizComplete, map[string]any{
		"milkPreference":   "black",
		"temperature":      "hot",
		"flavorPreference": "chocolatey",
		"coffeeContext":    "home",
		"equipment":        "french-press",
		"recommendationId": "brazilian-medium",
		"alternativeId":    "sumatra-dark",
	}},
	{analytics.EventQuizComplete, map[string]any{
		"milkPreference":   "with-milk",
		"temperature":      "iced",
		"flavorPreference": "fruity",
		"coffeeContext":    "cafe",
		"recommendationId": "ethiopian-light",
		"alternativeId":    "kenyan-medium",
	}},
	{analytics.EventCafeSearch, map[string]any{
		"hasLocation": true,
		"city":        "Seattle",
		"resultCount": 8,
	}},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	log.Printf("Seeding database...")
	if err := clearData(ctx, sqlDB); err != nil {
		log.Printf("failed to clear existing data: %v", err)
		os.Exit(1)
	}
	log.Printf("Cleared existing data")

	if err := seedResults(ctx, sqlDB); err != nil {
		log.Printf("failed to seed results: %v", err)
		os.Exit(1)
	}
	if err := seedEvents(ctx, sqlDB); err != nil {
		log.Printf("failed to seed analytics events: %v", err)
		os.Exit(1)
	}
	log.Printf("Seeding complete")
}

func clearData(ctx context.Context, sqlDB *sql.DB) error {
	for _, table := range []string{"analytics_events", "results", "cafe_search_cache"} {
		if _, err := sqlDB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func seedResults(ctx context.Context, sqlDB *sql.DB) error {
	catalog := recommendation.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		return err
	}
	engine := recommendation.NewEngine(catalog, recommendation.DefaultWeights())
	repo := results.NewPGRepo(sqlDB)

	for _, answers := range sampleQuizzes {
		slug := util.GenerateShareSlug()
		err := repo.Create(ctx, results.Result{
			ID:             uuid.NewString(),
			ShareSlug:      slug,
			Answers:        answers,
			Recommendation: engine.Generate(answers),
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		log.Printf("Created result with slug: %s", slug)
	}
	return nil
}

func seedEvents(ctx context.Context, sqlDB *sql.DB) error {
	store := analytics.NewPGStore(sqlDB)
	now := time.Now().UTC()

	for day := 0; day < 7; day++ {
		eventsPerDay := rand.Intn(5) + 3
		for i := 0; i < eventsPerDay; i++ {
			template := sampleEvents[rand.Intn(len(sampleEvents))]
			payload, err := json.Marshal(template.payload)
			if err != nil {
				return err
			}
			at := now.AddDate(0, 0, -day)
			at = time.Date(at.Year(), at.Month(), at.Day(), rand.Intn(24), rand.Intn(60), 0, 0, time.UTC)
			err = store.Insert(ctx, analytics.Event{
				ID:        uuid.NewString(),
				Type:      template.eventType,
				Payload:   payload,
				CreatedAt: at,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
