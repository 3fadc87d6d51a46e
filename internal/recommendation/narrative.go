package recommendation

import "strings"

// buildExplanation assembles up to two canned justification fragments into a
// single sentence, falling back to a generic one when no rule fires.
func buildExplanation(profile CoffeeProfile, answers QuizAnswers) string {
	var parts []string

	switch answers.FlavorPreference {
	case FlavorChocolatey:
		if profile.FlavorProfile == ProfileChocolateyNutty || profile.FlavorProfile == ProfileSweetDessert {
			parts = append(parts, "its rich chocolate and caramel notes match your taste perfectly")
		}
	case FlavorFruity:
		if profile.FlavorProfile == ProfileFruityBright {
			parts = append(parts, "its bright, fruity character is exactly what you're looking for")
		}
	case FlavorBalanced:
		parts = append(parts, "its well-rounded flavor profile offers something for everyone")
	}

	if answers.MilkPreference == MilkWithMilk && profile.BodyLevel == BodyFull {
		parts = append(parts, "its full body stands up beautifully to milk")
	} else if answers.MilkPreference == MilkBlack && profile.AcidityLevel != AcidityHigh {
		parts = append(parts, "its smooth character shines when enjoyed black")
	}

	if answers.AcidityTolerance == AcidityLowTolerance && profile.AcidityLevel == AcidityLow {
		parts = append(parts, "it's gentle on the stomach with low acidity")
	}

	if answers.Equipment == EquipmentPods {
		parts = append(parts, "quality pod options make this convenient without sacrificing taste")
	}

	if len(parts) == 0 {
		parts = append(parts, "its balanced profile works well with your preferences")
	}

	explanation := parts[0]
	if len(parts) > 1 {
		explanation = strings.Join(parts[:2], ", and ")
	}

	return "We recommend this because " + explanation + "."
}

// buildConfidenceStatement frames the match strength in three tiers by score.
func buildConfidenceStatement(score int, profile CoffeeProfile) string {
	switch {
	case score >= 80:
		tags := profile.Tags
		if len(tags) > 2 {
			tags = tags[:2]
		}
		return "This is a strong match if you like " + strings.Join(tags, ", ") + " coffees."
	case score >= 60:
		return "This is a good fit for your preferences - " + profile.Tags[0] + " and approachable."
	default:
		return "This is worth trying - it might introduce you to new flavors you'll enjoy."
	}
}

// buildCafeOrderScript produces a sentence the user can read aloud when
// ordering. Always ends with a question mark.
func buildCafeOrderScript(profile CoffeeProfile, answers QuizAnswers) string {
	parts := []string{"Can I get", "a medium"}

	if answers.Temperature == TempIced {
		parts = append(parts, "iced")
	}

	if answers.CoffeeContext == ContextCafe || answers.CoffeeContext == ContextBoth {
		if answers.Equipment == EquipmentEspresso || profile.RoastLevel == RoastDark {
			switch answers.MilkPreference {
			case MilkWithMilk:
				parts = append(parts, "latte")
			case MilkSweetened:
				parts = append(parts, "vanilla latte")
			default:
				parts = append(parts, "americano")
			}
		} else {
			if answers.Temperature == TempIced {
				parts = append(parts, "cold brew")
			} else {
				parts = append(parts, "drip coffee")
			}
		}
	} else {
		// Home drinkers ordering out keep it simple.
		parts = append(parts, "drip coffee")
	}

	switch answers.MilkPreference {
	case MilkWithMilk:
		parts = append(parts, "with a splash of oat milk")
	case MilkSweetened:
		parts = append(parts, "with oat milk and a pump of vanilla")
	case MilkBlack:
		parts = append(parts, "black")
	}

	if answers.MilkPreference == MilkBlack && answers.Temperature == TempHot {
		parts = append(parts, "- no room needed")
	}

	return strings.Join(parts, " ") + "?"
}

// buildUpgradeSuggestion nudges convenience-equipment users toward a better
// setup. Empty means no suggestion applies.
func buildUpgradeSuggestion(answers QuizAnswers) string {
	switch answers.Equipment {
	case EquipmentPods:
		return "When you're ready to level up: try a simple pour-over setup (about $30). Same convenience, more flavor control, and your coffee will taste noticeably fresher."
	case EquipmentNone:
		return "Want to start making great coffee at home? A French press ($20-30) is foolproof and makes excellent coffee with minimal effort."
	case EquipmentDrip:
		return "Upgrade tip: buying whole beans and grinding them fresh makes your drip coffee taste dramatically better. A basic burr grinder costs around $30-50."
	default:
		return ""
	}
}
