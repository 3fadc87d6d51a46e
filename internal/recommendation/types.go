package recommendation

// MilkPreference is how the user takes their coffee.
type MilkPreference string

const (
	MilkBlack     MilkPreference = "black"
	MilkWithMilk  MilkPreference = "with-milk"
	MilkSweetened MilkPreference = "sweetened"
)

// Temperature is the user's preferred serving temperature.
type Temperature string

const (
	TempHot  Temperature = "hot"
	TempIced Temperature = "iced"
	TempBoth Temperature = "both"
)

// FlavorPreference is the user's stated taste direction.
type FlavorPreference string

const (
	FlavorChocolatey FlavorPreference = "chocolatey"
	FlavorFruity     FlavorPreference = "fruity"
	FlavorNutty      FlavorPreference = "nutty"
	FlavorBalanced   FlavorPreference = "balanced"
)

// CoffeeContext is where the user usually drinks coffee.
type CoffeeContext string

const (
	ContextHome CoffeeContext = "home"
	ContextCafe CoffeeContext = "cafe"
	ContextBoth CoffeeContext = "both"
)

// Equipment is a brewing device the user owns. Empty means not answered.
type Equipment string

const (
	EquipmentNone        Equipment = "none"
	EquipmentDrip        Equipment = "drip"
	EquipmentFrenchPress Equipment = "french-press"
	EquipmentPourOver    Equipment = "pour-over"
	EquipmentAeropress   Equipment = "aeropress"
	EquipmentMokaPot     Equipment = "moka-pot"
	EquipmentEspresso    Equipment = "espresso"
	EquipmentPods        Equipment = "pods"
)

// AcidityTolerance is the user's sensitivity to acidic coffee.
type AcidityTolerance string

const (
	AcidityNormal       AcidityTolerance = "normal"
	AcidityLowTolerance AcidityTolerance = "low-acidity"
)

// FlavorProfile is one of the six curated taste categories a coffee belongs to.
type FlavorProfile string

const (
	ProfileChocolateyNutty FlavorProfile = "chocolatey-nutty"
	ProfileCaramelSmooth   FlavorProfile = "caramel-smooth"
	ProfileFruityBright    FlavorProfile = "fruity-bright"
	ProfileBoldSmoky       FlavorProfile = "bold-smoky"
	ProfileSweetDessert    FlavorProfile = "sweet-dessert"
	ProfileBalancedMild    FlavorProfile = "balanced-mild"
)

// RoastLevel is how dark the beans are roasted.
type RoastLevel string

const (
	RoastLight      RoastLevel = "light"
	RoastMedium     RoastLevel = "medium"
	RoastMediumDark RoastLevel = "medium-dark"
	RoastDark       RoastLevel = "dark"
)

// OriginStyle groups coffees by growing region or blend style.
type OriginStyle string

const (
	OriginLatinAmerica OriginStyle = "latin-america"
	OriginEastAfrica   OriginStyle = "east-africa"
	OriginIndonesia    OriginStyle = "indonesia"
	OriginBlend        OriginStyle = "blend"
	OriginSingle       OriginStyle = "single-origin"
)

// BrewMethod is a physical preparation technique.
type BrewMethod string

const (
	BrewDrip        BrewMethod = "drip"
	BrewFrenchPress BrewMethod = "french-press"
	BrewPourOver    BrewMethod = "pour-over"
	BrewAeropress   BrewMethod = "aeropress"
	BrewMokaPot     BrewMethod = "moka-pot"
	BrewEspresso    BrewMethod = "espresso"
	BrewColdBrew    BrewMethod = "cold-brew"
	BrewPods        BrewMethod = "pods"
)

// AllBrewMethods lists every brew method. Order is stable.
var AllBrewMethods = []BrewMethod{
	BrewDrip,
	BrewFrenchPress,
	BrewPourOver,
	BrewAeropress,
	BrewMokaPot,
	BrewEspresso,
	BrewColdBrew,
	BrewPods,
}

// AcidityLevel is a coffee's acidity on a 3-point scale.
type AcidityLevel string

const (
	AcidityLow    AcidityLevel = "low"
	AcidityMedium AcidityLevel = "medium"
	AcidityHigh   AcidityLevel = "high"
)

// BodyLevel is a coffee's mouthfeel on a 3-point scale.
type BodyLevel string

const (
	BodyLight  BodyLevel = "light"
	BodyMedium BodyLevel = "medium"
	BodyFull   BodyLevel = "full"
)

// Location is an optional free-form place answer, either a city name or coordinates.
type Location struct {
	City string   `json:"city,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// QuizAnswers is the validated input to the engine. Immutable once constructed.
type QuizAnswers struct {
	MilkPreference       MilkPreference   `json:"milkPreference"`
	Temperature          Temperature      `json:"temperature"`
	FlavorPreference     FlavorPreference `json:"flavorPreference"`
	CoffeeContext        CoffeeContext    `json:"coffeeContext"`
	Equipment            Equipment        `json:"equipment,omitempty"`
	AcidityTolerance     AcidityTolerance `json:"acidityTolerance,omitempty"`
	Location             *Location        `json:"location,omitempty"`
	WantsCafeSuggestions bool             `json:"wantsCafeSuggestions,omitempty"`
	CurrentOrder         string           `json:"currentOrder,omitempty"`
}

// CoffeeProfile is one curated catalog entry.
type CoffeeProfile struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	FlavorProfile        FlavorProfile   `json:"flavorProfile"`
	RoastLevel           RoastLevel      `json:"roastLevel"`
	OriginStyle          OriginStyle     `json:"originStyle"`
	SuggestedBrewMethods []BrewMethod    `json:"suggestedBrewMethods"`
	Tags                 []string        `json:"tags"`
	AcidityLevel         AcidityLevel    `json:"acidityLevel"`
	BodyLevel            BodyLevel       `json:"bodyLevel"`
	PopularBrands        []string        `json:"popularBrands,omitempty"`
}

// SupportsBrewMethod reports whether the profile lists the given method.
func (p CoffeeProfile) SupportsBrewMethod(method BrewMethod) bool {
	for _, m := range p.SuggestedBrewMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ScoredProfile pairs a profile with its suitability score for one quiz.
type ScoredProfile struct {
	Profile CoffeeProfile `json:"profile"`
	Score   int           `json:"score"`
}

// BrewTips is the static brewing guide for one method.
type BrewTips struct {
	Method      BrewMethod `json:"method"`
	Ratio       string     `json:"ratio"`
	GrindSize   string     `json:"grindSize"`
	Temperature string     `json:"temperature,omitempty"`
	BrewTime    string     `json:"brewTime,omitempty"`
	Tip         string     `json:"tip"`
}

// Output is the full result of a recommendation run.
type Output struct {
	BestMatch             CoffeeProfile `json:"bestMatch"`
	Alternative           CoffeeProfile `json:"alternative"`
	Explanation           string        `json:"explanation"`
	ConfidenceStatement   string        `json:"confidenceStatement"`
	BrewTips              BrewTips      `json:"brewTips"`
	CafeOrderScript       string        `json:"cafeOrderScript"`
	UpgradePathSuggestion string        `json:"upgradePathSuggestion,omitempty"`
}
