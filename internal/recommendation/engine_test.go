package recommendation

import (
	"strings"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog := DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("catalog validate: %v", err)
	}
	return NewEngine(catalog, DefaultWeights())
}

func TestGenerateReturnsDistinctBestAndAlternative(t *testing.T) {
	engine := newTestEngine(t)

	answers := QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
	}

	out := engine.Generate(answers)

	if out.BestMatch.ID == "" || out.Alternative.ID == "" {
		t.Fatalf("expected both best match and alternative, got %+v", out)
	}
	if out.BestMatch.ID == out.Alternative.ID {
		t.Fatalf("best match and alternative must differ, both %q", out.BestMatch.ID)
	}
}

func TestGenerateMatchesFlavorPreference(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name       string
		preference FlavorPreference
		accepted   []FlavorProfile
	}{
		{
			name:       "chocolatey",
			preference: FlavorChocolatey,
			accepted:   []FlavorProfile{ProfileChocolateyNutty, ProfileSweetDessert, ProfileBoldSmoky},
		},
		{
			name:       "fruity",
			preference: FlavorFruity,
			accepted:   []FlavorProfile{ProfileFruityBright, ProfileBalancedMild},
		},
		{
			name:       "nutty",
			preference: FlavorNutty,
			accepted:   []FlavorProfile{ProfileChocolateyNutty, ProfileCaramelSmooth, ProfileBalancedMild},
		},
		{
			name:       "balanced",
			preference: FlavorBalanced,
			accepted:   []FlavorProfile{ProfileBalancedMild, ProfileCaramelSmooth, ProfileChocolateyNutty},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := engine.Generate(QuizAnswers{
				MilkPreference:   MilkBlack,
				Temperature:      TempHot,
				FlavorPreference: tc.preference,
				CoffeeContext:    ContextHome,
			})
			for _, accepted := range tc.accepted {
				if out.BestMatch.FlavorProfile == accepted {
					return
				}
			}
			t.Fatalf("best match flavor %q not in accepted set %v", out.BestMatch.FlavorProfile, tc.accepted)
		})
	}
}

func TestGenerateHonorsLowAcidityTolerance(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkWithMilk,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
		AcidityTolerance: AcidityLowTolerance,
	})

	if out.BestMatch.AcidityLevel != AcidityLow {
		t.Fatalf("expected low acidity best match, got %q (%s)", out.BestMatch.AcidityLevel, out.BestMatch.ID)
	}
}

func TestGeneratePodUsersGetPodCompatibleCoffee(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkWithMilk,
		Temperature:      TempHot,
		FlavorPreference: FlavorBalanced,
		CoffeeContext:    ContextHome,
		Equipment:        EquipmentPods,
	})

	if !out.BestMatch.SupportsBrewMethod(BrewPods) {
		t.Fatalf("expected pod-compatible best match, got %s %v", out.BestMatch.ID, out.BestMatch.SuggestedBrewMethods)
	}
}

func TestGenerateIcedWithoutEquipmentUsesColdBrew(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkWithMilk,
		Temperature:      TempIced,
		FlavorPreference: FlavorBalanced,
		CoffeeContext:    ContextCafe,
	})

	if out.BrewTips.Method != BrewColdBrew {
		t.Fatalf("expected cold-brew tips, got %q", out.BrewTips.Method)
	}
	lower := strings.ToLower(out.CafeOrderScript)
	if !strings.Contains(lower, "iced") {
		t.Fatalf("order script should mention iced: %q", out.CafeOrderScript)
	}
	if !strings.HasSuffix(out.CafeOrderScript, "?") {
		t.Fatalf("order script should end with ?: %q", out.CafeOrderScript)
	}
}

func TestGenerateFrenchPressBrewTips(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
		Equipment:        EquipmentFrenchPress,
	})

	if out.BrewTips.Method != BrewFrenchPress {
		t.Fatalf("expected french-press tips, got %q", out.BrewTips.Method)
	}
	if !strings.Contains(strings.ToLower(out.BrewTips.GrindSize), "coarse") {
		t.Fatalf("french press grind should be coarse: %q", out.BrewTips.GrindSize)
	}
}

func TestGenerateUpgradeSuggestionForPodUsers(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
		Equipment:        EquipmentPods,
	})

	if out.UpgradePathSuggestion == "" {
		t.Fatal("expected an upgrade suggestion for pod users")
	}
	if !strings.Contains(strings.ToLower(out.UpgradePathSuggestion), "pour-over") {
		t.Fatalf("pod upgrade should mention pour-over: %q", out.UpgradePathSuggestion)
	}
}

func TestGenerateNoUpgradeSuggestionForManualBrewers(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorFruity,
		CoffeeContext:    ContextHome,
		Equipment:        EquipmentAeropress,
	})

	if out.UpgradePathSuggestion != "" {
		t.Fatalf("expected no upgrade suggestion, got %q", out.UpgradePathSuggestion)
	}
}

func TestGenerateExplanationAndConfidence(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
	})

	if len(out.Explanation) <= 20 {
		t.Fatalf("explanation too short: %q", out.Explanation)
	}
	if !strings.HasPrefix(out.Explanation, "We recommend this because ") {
		t.Fatalf("unexpected explanation framing: %q", out.Explanation)
	}
	if !strings.Contains(out.ConfidenceStatement, "match") && !strings.Contains(out.ConfidenceStatement, "fit") && !strings.Contains(out.ConfidenceStatement, "trying") {
		t.Fatalf("unexpected confidence statement: %q", out.ConfidenceStatement)
	}
}

func TestGenerateMilkDrinkersGetFullerBody(t *testing.T) {
	engine := newTestEngine(t)

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkSweetened,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextCafe,
	})

	if out.BestMatch.BodyLevel != BodyMedium && out.BestMatch.BodyLevel != BodyFull {
		t.Fatalf("expected medium or full body for milk drinkers, got %q", out.BestMatch.BodyLevel)
	}
}

func TestGenerateAlternativeDiffersInFlavorOrRoast(t *testing.T) {
	engine := newTestEngine(t)

	answers := QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
	}
	out := engine.Generate(answers)

	if out.BestMatch.FlavorProfile == out.Alternative.FlavorProfile &&
		out.BestMatch.RoastLevel == out.Alternative.RoastLevel {
		t.Fatalf("alternative %s too similar to best match %s", out.Alternative.ID, out.BestMatch.ID)
	}
}

func TestScoreProfileIsDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	answers := QuizAnswers{
		MilkPreference:   MilkWithMilk,
		Temperature:      TempIced,
		FlavorPreference: FlavorNutty,
		CoffeeContext:    ContextBoth,
		Equipment:        EquipmentAeropress,
		AcidityTolerance: AcidityLowTolerance,
	}

	for _, profile := range engine.catalog.ListProfiles() {
		first := engine.ScoreProfile(profile, answers)
		for i := 0; i < 10; i++ {
			if got := engine.ScoreProfile(profile, answers); got != first {
				t.Fatalf("score for %s changed between calls: %d then %d", profile.ID, first, got)
			}
		}
		if first < 0 || first > 100 {
			t.Fatalf("score for %s out of range: %d", profile.ID, first)
		}
	}
}

func TestScoreProfileComponentValues(t *testing.T) {
	engine := newTestEngine(t)
	catalog := engine.catalog

	brazilian, _ := catalog.GetProfile("brazilian-medium")
	sumatra, _ := catalog.GetProfile("sumatra-dark")

	tests := []struct {
		name    string
		profile CoffeeProfile
		answers QuizAnswers
		want    int
	}{
		{
			// Flavor 40 (primary) + acidity 17.5 (low under normal) +
			// brew 20 (drip supported) + milk 15 (medium body, black).
			name:    "brazilian black hot no equipment",
			profile: brazilian,
			answers: QuizAnswers{
				MilkPreference:   MilkBlack,
				Temperature:      TempHot,
				FlavorPreference: FlavorChocolatey,
				CoffeeContext:    ContextHome,
			},
			want: 93,
		},
		{
			// Flavor 20 (rank 3) + acidity 25 (low tolerance, low acid) +
			// brew 10 (4 methods, no drip) + milk 15 (full body).
			name:    "sumatra milk low-acidity",
			profile: sumatra,
			answers: QuizAnswers{
				MilkPreference:   MilkWithMilk,
				Temperature:      TempHot,
				FlavorPreference: FlavorChocolatey,
				CoffeeContext:    ContextHome,
				AcidityTolerance: AcidityLowTolerance,
			},
			want: 70,
		},
		{
			// Iced + cold-brew support adds the +5 synergy bonus.
			name:    "brazilian iced bonus",
			profile: brazilian,
			answers: QuizAnswers{
				MilkPreference:   MilkBlack,
				Temperature:      TempIced,
				FlavorPreference: FlavorChocolatey,
				CoffeeContext:    ContextHome,
				Equipment:        EquipmentFrenchPress,
			},
			want: 98,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := engine.ScoreProfile(tc.profile, tc.answers); got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreProfileCapsAtHundred(t *testing.T) {
	catalog := DefaultCatalog()
	// Inflate the weights so raw sums exceed 100.
	engine := NewEngine(catalog, Weights{FlavorMatch: 80, AcidityMatch: 50, BrewMethodMatch: 40, MilkCompat: 30})

	answers := QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorChocolatey,
		CoffeeContext:    ContextHome,
	}
	for _, profile := range catalog.ListProfiles() {
		if got := engine.ScoreProfile(profile, answers); got > 100 {
			t.Fatalf("score for %s exceeds cap: %d", profile.ID, got)
		}
	}
}

func TestScoreProfileFloorsAtZero(t *testing.T) {
	catalog := DefaultCatalog()
	// With zero weights a secondary flavor match contributes -10 raw, which
	// must floor to 0 rather than go negative.
	engine := NewEngine(catalog, Weights{})

	answers := QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorFruity,
		CoffeeContext:    ContextHome,
		Equipment:        EquipmentEspresso,
	}

	house, ok := catalog.GetProfile("house-blend-medium")
	if !ok {
		t.Fatal("house-blend-medium missing from catalog")
	}
	if got := engine.ScoreProfile(house, answers); got != 0 {
		t.Fatalf("score for secondary flavor match under zero weights = %d, want 0", got)
	}
	for _, profile := range catalog.ListProfiles() {
		if got := engine.ScoreProfile(profile, answers); got < 0 || got > 100 {
			t.Fatalf("score for %s out of range: %d", profile.ID, got)
		}
	}
}

func TestScoreAllBreaksTiesByCatalogOrder(t *testing.T) {
	catalog := DefaultCatalog()
	// Zero weights force an all-tie ranking so catalog order must win.
	engine := NewEngine(catalog, Weights{})

	scored := engine.ScoreAll(QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorFruity,
		CoffeeContext:    ContextHome,
		Equipment:        EquipmentEspresso,
	})

	profiles := catalog.ListProfiles()
	for i, sp := range scored {
		if sp.Profile.ID != profiles[i].ID {
			t.Fatalf("tie order broken at rank %d: got %s, want %s", i, sp.Profile.ID, profiles[i].ID)
		}
	}
}

func TestGenerateWithInjectedWeights(t *testing.T) {
	catalog := DefaultCatalog()
	// Acidity-only scoring: low-acidity tolerance should surface a low-acid
	// coffee regardless of flavor.
	engine := NewEngine(catalog, Weights{AcidityMatch: 25})

	out := engine.Generate(QuizAnswers{
		MilkPreference:   MilkBlack,
		Temperature:      TempHot,
		FlavorPreference: FlavorFruity,
		CoffeeContext:    ContextHome,
		AcidityTolerance: AcidityLowTolerance,
	})

	if out.BestMatch.AcidityLevel != AcidityLow {
		t.Fatalf("expected low-acid best match under acidity-only weights, got %q", out.BestMatch.AcidityLevel)
	}
}
