package results

import (
	"time"

	"coffee-backend/internal/recommendation"
)

// submitResponse is the payload returned after a quiz submission.
type submitResponse struct {
	ID             string                `json:"id"`
	ShareSlug      string                `json:"shareSlug"`
	ShareURL       string                `json:"shareUrl"`
	Summary        string                `json:"summary"`
	Recommendation recommendation.Output `json:"recommendation"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// resultResponse is the payload for a shared result lookup.
type resultResponse struct {
	ID             string                     `json:"id"`
	ShareSlug      string                     `json:"shareSlug"`
	Summary        string                     `json:"summary"`
	Answers        recommendation.QuizAnswers `json:"answers"`
	Recommendation recommendation.Output      `json:"recommendation"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

var (
	validMilk = map[recommendation.MilkPreference]bool{
		recommendation.MilkBlack:     true,
		recommendation.MilkWithMilk:  true,
		recommendation.MilkSweetened: true,
	}
	validTemperature = map[recommendation.Temperature]bool{
		recommendation.TempHot:  true,
		recommendation.TempIced: true,
		recommendation.TempBoth: true,
	}
	validFlavor = map[recommendation.FlavorPreference]bool{
		recommendation.FlavorChocolatey: true,
		recommendation.FlavorFruity:     true,
		recommendation.FlavorNutty:      true,
		recommendation.FlavorBalanced:   true,
	}
	validContext = map[recommendation.CoffeeContext]bool{
		recommendation.ContextHome: true,
		recommendation.ContextCafe: true,
		recommendation.ContextBoth: true,
	}
	validEquipment = map[recommendation.Equipment]bool{
		recommendation.EquipmentNone:        true,
		recommendation.EquipmentDrip:        true,
		recommendation.EquipmentFrenchPress: true,
		recommendation.EquipmentPourOver:    true,
		recommendation.EquipmentAeropress:   true,
		recommendation.EquipmentMokaPot:     true,
		recommendation.EquipmentEspresso:    true,
		recommendation.EquipmentPods:        true,
	}
	validAcidity = map[recommendation.AcidityTolerance]bool{
		recommendation.AcidityNormal:       true,
		recommendation.AcidityLowTolerance: true,
	}
)

// validateAnswers checks required answers and enum membership. It returns a
// field-to-message map, empty when the answers are valid.
func validateAnswers(a recommendation.QuizAnswers) map[string]string {
	problems := make(map[string]string)

	switch {
	case a.MilkPreference == "":
		problems["milkPreference"] = "required"
	case !validMilk[a.MilkPreference]:
		problems["milkPreference"] = "must be black, with-milk, or sweetened"
	}
	switch {
	case a.Temperature == "":
		problems["temperature"] = "required"
	case !validTemperature[a.Temperature]:
		problems["temperature"] = "must be hot, iced, or both"
	}
	switch {
	case a.FlavorPreference == "":
		problems["flavorPreference"] = "required"
	case !validFlavor[a.FlavorPreference]:
		problems["flavorPreference"] = "must be chocolatey, fruity, nutty, or balanced"
	}
	switch {
	case a.CoffeeContext == "":
		problems["coffeeContext"] = "required"
	case !validContext[a.CoffeeContext]:
		problems["coffeeContext"] = "must be home, cafe, or both"
	}

	if a.Equipment != "" && !validEquipment[a.Equipment] {
		problems["equipment"] = "unknown equipment"
	}
	if a.AcidityTolerance != "" && !validAcidity[a.AcidityTolerance] {
		problems["acidityTolerance"] = "must be normal or low-acidity"
	}
	if a.Location != nil {
		if (a.Location.Lat == nil) != (a.Location.Lng == nil) {
			problems["location"] = "lat and lng must be provided together"
		}
		if a.Location.Lat != nil && (*a.Location.Lat < -90 || *a.Location.Lat > 90) {
			problems["location"] = "lat must be between -90 and 90"
		}
		if a.Location.Lng != nil && (*a.Location.Lng < -180 || *a.Location.Lng > 180) {
			problems["location"] = "lng must be between -180 and 180"
		}
	}

	return problems
}
