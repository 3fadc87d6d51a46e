package recommendation

// SuggestBrewMethod resolves the brew method a user will actually use.
// Iced drinkers with no device get cold brew; otherwise equipment maps to
// the same-named method, defaulting to drip.
func SuggestBrewMethod(equipment Equipment, temperature Temperature) BrewMethod {
	if temperature == TempIced {
		if equipment == "" || equipment == EquipmentNone {
			return BrewColdBrew
		}
	}

	switch equipment {
	case EquipmentDrip:
		return BrewDrip
	case EquipmentFrenchPress:
		return BrewFrenchPress
	case EquipmentPourOver:
		return BrewPourOver
	case EquipmentAeropress:
		return BrewAeropress
	case EquipmentMokaPot:
		return BrewMokaPot
	case EquipmentEspresso:
		return BrewEspresso
	case EquipmentPods:
		return BrewPods
	default:
		return BrewDrip
	}
}

// BrewTipsFor returns the brewing guide for a method. The table covers every
// declared method; Catalog.Validate enforces that at startup.
func BrewTipsFor(method BrewMethod) BrewTips {
	return brewTipsTable[method]
}

// QuickTip returns just the practical tip line for a method.
func QuickTip(method BrewMethod) string {
	return brewTipsTable[method].Tip
}

// Ratios are coffee:water, e.g. 1:15 means 1g coffee per 15g water.
var brewTipsTable = map[BrewMethod]BrewTips{
	BrewDrip: {
		Method:      BrewDrip,
		Ratio:       "1:15 to 1:17 (about 2 tablespoons per 6oz cup)",
		GrindSize:   "Medium - like coarse sand",
		Temperature: "195-205°F (90-96°C)",
		BrewTime:    "4-6 minutes",
		Tip:         "Use filtered water and clean your machine monthly with vinegar. Fresh beans make the biggest difference.",
	},
	BrewFrenchPress: {
		Method:      BrewFrenchPress,
		Ratio:       "1:12 to 1:15 (about 2 tablespoons per 6oz cup)",
		GrindSize:   "Coarse - like sea salt",
		Temperature: "200°F (93°C) - just off boiling",
		BrewTime:    "4 minutes steep, then press slowly",
		Tip:         "Don't press too hard or fast - let the grounds settle and press gently to avoid bitter sediment.",
	},
	BrewPourOver: {
		Method:      BrewPourOver,
		Ratio:       "1:15 to 1:17 (about 22g coffee for 350ml water)",
		GrindSize:   "Medium-fine - like table salt",
		Temperature: "200-205°F (93-96°C)",
		BrewTime:    "2:30-3:30 total",
		Tip:         "Start with a 30-second bloom (wet grounds, wait) before your main pour. Pour in slow circles.",
	},
	BrewAeropress: {
		Method:      BrewAeropress,
		Ratio:       "1:12 to 1:15 (about 15-18g for one cup)",
		GrindSize:   "Fine to medium-fine",
		Temperature: "175-185°F (80-85°C) for a smoother cup",
		BrewTime:    "1-2 minutes total",
		Tip:         "The AeroPress is very forgiving. Experiment with inverted method and different steep times to find your taste.",
	},
	BrewMokaPot: {
		Method:      BrewMokaPot,
		Ratio:       "Fill the basket loosely, don't tamp",
		GrindSize:   "Fine - but not espresso fine",
		Temperature: "Start with pre-heated water for less bitterness",
		BrewTime:    "4-5 minutes on medium-low heat",
		Tip:         "Remove from heat as soon as you hear gurgling. Cooling the bottom under cold water stops extraction and prevents bitterness.",
	},
	BrewEspresso: {
		Method:      BrewEspresso,
		Ratio:       "1:2 (18g in, 36g out is a good start)",
		GrindSize:   "Very fine - like powdered sugar",
		Temperature: "200-205°F (93-96°C)",
		BrewTime:    "25-30 seconds for the shot",
		Tip:         "If your shot runs too fast, grind finer. Too slow and bitter? Grind coarser. Small adjustments make big differences.",
	},
	BrewColdBrew: {
		Method:      BrewColdBrew,
		Ratio:       "1:8 for concentrate (dilute 1:1), 1:15 for ready-to-drink",
		GrindSize:   "Very coarse - like raw sugar",
		Temperature: "Room temp or refrigerated",
		BrewTime:    "12-24 hours",
		Tip:         "Longer isn't always better. 12-16 hours gives you smooth sweetness without over-extraction.",
	},
	BrewPods: {
		Method:    BrewPods,
		Ratio:     "Pre-measured - one pod per cup",
		GrindSize: "Pre-ground in the pod",
		Tip:       "Look for pods from specialty roasters (Nespresso compatible or quality K-cups). Store pods in a cool, dark place and check roast dates.",
	},
}
