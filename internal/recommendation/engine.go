package recommendation

import (
	"math"
	"sort"
)

// Weights holds the per-criterion maximum contributions of the scoring model.
// They are injected rather than hard-coded so tests can substitute their own.
type Weights struct {
	FlavorMatch     float64
	AcidityMatch    float64
	BrewMethodMatch float64
	MilkCompat      float64
}

// DefaultWeights returns the production scoring weights.
func DefaultWeights() Weights {
	return Weights{
		FlavorMatch:     40,
		AcidityMatch:    25,
		BrewMethodMatch: 20,
		MilkCompat:      15,
	}
}

// flavorPreferenceMapping maps a stated preference to acceptable flavor
// profiles in order. The primary match earns full flavor points, each later
// position 10 fewer.
var flavorPreferenceMapping = map[FlavorPreference][]FlavorProfile{
	FlavorChocolatey: {ProfileChocolateyNutty, ProfileSweetDessert, ProfileBoldSmoky},
	FlavorFruity:     {ProfileFruityBright, ProfileBalancedMild},
	FlavorNutty:      {ProfileChocolateyNutty, ProfileCaramelSmooth, ProfileBalancedMild},
	FlavorBalanced:   {ProfileBalancedMild, ProfileCaramelSmooth, ProfileChocolateyNutty},
}

// Engine scores quiz answers against a catalog and assembles recommendations.
// It is pure and safe for concurrent use: the catalog and weights are
// read-only and every call allocates only local results.
type Engine struct {
	catalog *Catalog
	weights Weights
}

// NewEngine constructs an engine over the given catalog and weights.
func NewEngine(catalog *Catalog, weights Weights) *Engine {
	return &Engine{catalog: catalog, weights: weights}
}

// ScoreProfile computes the 0-100 suitability score of one profile for the
// given answers. Deterministic: identical inputs always produce the same
// integer.
func (e *Engine) ScoreProfile(profile CoffeeProfile, answers QuizAnswers) int {
	var score float64

	// Flavor match.
	preferred := flavorPreferenceMapping[answers.FlavorPreference]
	for i, flavor := range preferred {
		if flavor == profile.FlavorProfile {
			score += e.weights.FlavorMatch - float64(i)*10
			break
		}
	}

	// Acidity match.
	if answers.AcidityTolerance == AcidityLowTolerance {
		switch profile.AcidityLevel {
		case AcidityLow:
			score += e.weights.AcidityMatch
		case AcidityMedium:
			score += e.weights.AcidityMatch * 0.5
		}
	} else {
		// Normal tolerance leans slightly toward medium acidity.
		if profile.AcidityLevel == AcidityMedium {
			score += e.weights.AcidityMatch
		} else {
			score += e.weights.AcidityMatch * 0.7
		}
	}

	// Brew method match. Versatile coffees get partial credit.
	userMethod := SuggestBrewMethod(answers.Equipment, answers.Temperature)
	if profile.SupportsBrewMethod(userMethod) {
		score += e.weights.BrewMethodMatch
	} else if len(profile.SuggestedBrewMethods) > 3 {
		score += e.weights.BrewMethodMatch * 0.5
	}

	// Milk compatibility.
	if answers.MilkPreference == MilkWithMilk || answers.MilkPreference == MilkSweetened {
		switch {
		case profile.BodyLevel == BodyFull || profile.RoastLevel == RoastDark:
			score += e.weights.MilkCompat
		case profile.BodyLevel == BodyMedium:
			score += e.weights.MilkCompat * 0.7
		default:
			score += e.weights.MilkCompat * 0.4
		}
	} else {
		// Black coffee drinkers care more about flavor clarity.
		if profile.BodyLevel == BodyLight || profile.BodyLevel == BodyMedium {
			score += e.weights.MilkCompat
		} else {
			score += e.weights.MilkCompat * 0.6
		}
	}

	// Iced drinkers pair naturally with cold-brew friendly coffees.
	if answers.Temperature == TempIced && profile.SupportsBrewMethod(BrewColdBrew) {
		score += 5
	}

	// Pod users strongly prefer pod-compatible coffees.
	if answers.Equipment == EquipmentPods && profile.SupportsBrewMethod(BrewPods) {
		score += 10
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// ScoreAll scores every catalog profile, sorted descending. The sort is
// stable so catalog order breaks ties.
func (e *Engine) ScoreAll(answers QuizAnswers) []ScoredProfile {
	scored := make([]ScoredProfile, 0, e.catalog.Len())
	for _, profile := range e.catalog.ListProfiles() {
		scored = append(scored, ScoredProfile{
			Profile: profile,
			Score:   e.ScoreProfile(profile, answers),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Generate runs the full pipeline: score, select best and a diversified
// alternative, resolve brew tips, and synthesize the narrative text.
func (e *Engine) Generate(answers QuizAnswers) Output {
	scored := e.ScoreAll(answers)

	best := scored[0]

	// Look for an alternative within ranks 2-5 that differs in flavor
	// profile or roast level; fall back to rank 2 unconditionally.
	alternative := scored[1]
	limit := len(scored)
	if limit > 5 {
		limit = 5
	}
	for i := 1; i < limit; i++ {
		candidate := scored[i]
		if candidate.Profile.FlavorProfile != best.Profile.FlavorProfile ||
			candidate.Profile.RoastLevel != best.Profile.RoastLevel {
			alternative = candidate
			break
		}
	}

	method := SuggestBrewMethod(answers.Equipment, answers.Temperature)

	return Output{
		BestMatch:             best.Profile,
		Alternative:           alternative.Profile,
		Explanation:           buildExplanation(best.Profile, answers),
		ConfidenceStatement:   buildConfidenceStatement(best.Score, best.Profile),
		BrewTips:              BrewTipsFor(method),
		CafeOrderScript:       buildCafeOrderScript(best.Profile, answers),
		UpgradePathSuggestion: buildUpgradeSuggestion(answers),
	}
}

// Summary returns a short shareable line for an output.
func Summary(out Output) string {
	desc := out.BestMatch.Description
	if len(desc) > 100 {
		desc = desc[:100]
	}
	return out.BestMatch.Name + " - " + desc + "..."
}
