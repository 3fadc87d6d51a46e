package recommendation

import "fmt"

// Catalog is the fixed set of coffee profiles the engine scores against.
// It is built once at startup and read-only afterwards.
type Catalog struct {
	profiles []CoffeeProfile
	byID     map[string]int
}

// NewCatalog builds a catalog from profiles, preserving order.
func NewCatalog(profiles []CoffeeProfile) *Catalog {
	byID := make(map[string]int, len(profiles))
	for i, p := range profiles {
		if _, exists := byID[p.ID]; !exists {
			byID[p.ID] = i
		}
	}
	return &Catalog{profiles: profiles, byID: byID}
}

// DefaultCatalog returns the curated catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultProfiles)
}

// ListProfiles returns all profiles in catalog order.
func (c *Catalog) ListProfiles() []CoffeeProfile {
	out := make([]CoffeeProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// GetProfile looks up a profile by id.
func (c *Catalog) GetProfile(id string) (CoffeeProfile, bool) {
	i, ok := c.byID[id]
	if !ok {
		return CoffeeProfile{}, false
	}
	return c.profiles[i], true
}

// FilterByFlavor returns profiles with the given flavor profile.
func (c *Catalog) FilterByFlavor(flavor FlavorProfile) []CoffeeProfile {
	var out []CoffeeProfile
	for _, p := range c.profiles {
		if p.FlavorProfile == flavor {
			out = append(out, p)
		}
	}
	return out
}

// FilterByAcidity returns profiles with the given acidity level.
func (c *Catalog) FilterByAcidity(level AcidityLevel) []CoffeeProfile {
	var out []CoffeeProfile
	for _, p := range c.profiles {
		if p.AcidityLevel == level {
			out = append(out, p)
		}
	}
	return out
}

// FilterByRoast returns profiles with the given roast level.
func (c *Catalog) FilterByRoast(level RoastLevel) []CoffeeProfile {
	var out []CoffeeProfile
	for _, p := range c.profiles {
		if p.RoastLevel == level {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the configuration invariants the engine relies on: a
// non-empty catalog, unique ids, non-empty brew method lists, and a brew
// tips entry for every declared method. A failure here is a programmer
// error and should abort startup.
func (c *Catalog) Validate() error {
	if len(c.profiles) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]bool, len(c.profiles))
	for _, p := range c.profiles {
		if p.ID == "" {
			return fmt.Errorf("catalog profile %q has empty id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("catalog has duplicate id %q", p.ID)
		}
		seen[p.ID] = true
		if len(p.SuggestedBrewMethods) == 0 {
			return fmt.Errorf("catalog profile %q has no brew methods", p.ID)
		}
	}
	for _, method := range AllBrewMethods {
		if _, ok := brewTipsTable[method]; !ok {
			return fmt.Errorf("brew tips table missing entry for %q", method)
		}
	}
	return nil
}

// defaultProfiles is the hand-curated catalog. Every flavor profile and roast
// level appears at least once; ordering matters because ties are broken by
// position.
var defaultProfiles = []CoffeeProfile{
	{
		ID:                   "brazilian-medium",
		Name:                 "Brazilian Medium Roast",
		Description:          "A smooth, approachable coffee with notes of chocolate, hazelnut, and a hint of caramel. Perfect for those who enjoy a comforting, classic coffee experience.",
		FlavorProfile:        ProfileChocolateyNutty,
		RoastLevel:           RoastMedium,
		OriginStyle:          OriginLatinAmerica,
		SuggestedBrewMethods: []BrewMethod{BrewDrip, BrewFrenchPress, BrewPourOver, BrewColdBrew},
		Tags:                 []string{"smooth", "nutty", "beginner-friendly", "versatile"},
		AcidityLevel:         AcidityLow,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Lavazza", "Illy", "Peet's"},
	},
	{
		ID:                   "colombian-classic",
		Name:                 "Colombian Classic",
		Description:          "Well-balanced with sweet caramel notes and a clean finish. Colombia's high altitude produces consistently excellent coffee that works beautifully with or without milk.",
		FlavorProfile:        ProfileCaramelSmooth,
		RoastLevel:           RoastMedium,
		OriginStyle:          OriginLatinAmerica,
		SuggestedBrewMethods: []BrewMethod{BrewDrip, BrewPourOver, BrewAeropress, BrewEspresso},
		Tags:                 []string{"balanced", "sweet", "versatile", "crowd-pleaser"},
		AcidityLevel:         AcidityMedium,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Juan Valdez", "Starbucks Colombia", "Counter Culture"},
	},
	{
		ID:                   "sumatra-dark",
		Name:                 "Sumatran Dark Roast",
		Description:          "Earthy, full-bodied, and bold with low acidity. Notes of dark chocolate, cedar, and a syrupy mouthfeel. Ideal for those who want their coffee strong and robust.",
		FlavorProfile:        ProfileBoldSmoky,
		RoastLevel:           RoastDark,
		OriginStyle:          OriginIndonesia,
		SuggestedBrewMethods: []BrewMethod{BrewFrenchPress, BrewMokaPot, BrewEspresso, BrewColdBrew},
		Tags:                 []string{"bold", "earthy", "low-acid", "intense"},
		AcidityLevel:         AcidityLow,
		BodyLevel:            BodyFull,
		PopularBrands:        []string{"Starbucks Sumatra", "Peet's Sumatra", "Blue Bottle"},
	},
	{
		ID:                   "ethiopian-light",
		Name:                 "Ethiopian Light Roast",
		Description:          "Vibrant and complex with berry notes, floral aromatics, and a tea-like body. Ethiopia is the birthplace of coffee, and its natural processing creates uniquely fruity flavors.",
		FlavorProfile:        ProfileFruityBright,
		RoastLevel:           RoastLight,
		OriginStyle:          OriginEastAfrica,
		SuggestedBrewMethods: []BrewMethod{BrewPourOver, BrewAeropress, BrewDrip},
		Tags:                 []string{"fruity", "floral", "complex", "specialty"},
		AcidityLevel:         AcidityHigh,
		BodyLevel:            BodyLight,
		PopularBrands:        []string{"Intelligentsia", "Stumptown", "Counter Culture"},
	},
	{
		ID:                   "kenyan-medium",
		Name:                 "Kenyan Medium Roast",
		Description:          "Bright and juicy with notes of blackcurrant, citrus, and a wine-like acidity. Kenyan coffees are prized for their bold, complex fruit character.",
		FlavorProfile:        ProfileFruityBright,
		RoastLevel:           RoastMedium,
		OriginStyle:          OriginEastAfrica,
		SuggestedBrewMethods: []BrewMethod{BrewPourOver, BrewAeropress, BrewDrip},
		Tags:                 []string{"bright", "complex", "citrus", "specialty"},
		AcidityLevel:         AcidityHigh,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Blue Bottle", "Verve", "Onyx Coffee Lab"},
	},
	{
		ID:                   "guatemalan-medium-dark",
		Name:                 "Guatemalan Medium-Dark",
		Description:          "Sweet and rich with notes of brown sugar, cocoa, and a hint of spice. The volcanic soil of Guatemala creates coffees with exceptional sweetness.",
		FlavorProfile:        ProfileSweetDessert,
		RoastLevel:           RoastMediumDark,
		OriginStyle:          OriginLatinAmerica,
		SuggestedBrewMethods: []BrewMethod{BrewDrip, BrewFrenchPress, BrewEspresso, BrewMokaPot},
		Tags:                 []string{"sweet", "rich", "dessert-like", "comforting"},
		AcidityLevel:         AcidityLow,
		BodyLevel:            BodyFull,
		PopularBrands:        []string{"Starbucks Guatemala", "La Colombe", "Intelligentsia"},
	},
	{
		ID:                   "costa-rican-honey",
		Name:                 "Costa Rican Honey Process",
		Description:          "Naturally sweet with honey-like sweetness, stone fruit notes, and a silky body. Honey processing leaves some fruit on the bean during drying, creating extra sweetness.",
		FlavorProfile:        ProfileSweetDessert,
		RoastLevel:           RoastMedium,
		OriginStyle:          OriginLatinAmerica,
		SuggestedBrewMethods: []BrewMethod{BrewPourOver, BrewAeropress, BrewDrip},
		Tags:                 []string{"sweet", "honey", "fruity", "smooth"},
		AcidityLevel:         AcidityMedium,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Onyx", "Heart Coffee", "Camber"},
	},
	{
		ID:                   "italian-espresso-blend",
		Name:                 "Italian Espresso Blend",
		Description:          "Dark and bold with notes of dark chocolate, roasted nuts, and a pleasant bitterness. Designed specifically for espresso but works great in milk drinks.",
		FlavorProfile:        ProfileBoldSmoky,
		RoastLevel:           RoastDark,
		OriginStyle:          OriginBlend,
		SuggestedBrewMethods: []BrewMethod{BrewEspresso, BrewMokaPot, BrewFrenchPress},
		Tags:                 []string{"bold", "espresso", "milk-friendly", "classic"},
		AcidityLevel:         AcidityLow,
		BodyLevel:            BodyFull,
		PopularBrands:        []string{"Lavazza", "Illy", "Segafredo"},
	},
	{
		ID:                   "french-roast",
		Name:                 "French Roast",
		Description:          "Deeply roasted with smoky, bittersweet chocolate notes and minimal acidity. A classic choice for those who prefer their coffee dark and intense.",
		FlavorProfile:        ProfileBoldSmoky,
		RoastLevel:           RoastDark,
		OriginStyle:          OriginBlend,
		SuggestedBrewMethods: []BrewMethod{BrewFrenchPress, BrewDrip, BrewColdBrew},
		Tags:                 []string{"smoky", "bold", "dark", "intense"},
		AcidityLevel:         AcidityLow,
		BodyLevel:            BodyFull,
		PopularBrands:        []string{"Peet's", "Starbucks French Roast", "Community Coffee"},
	},
	{
		ID:                   "house-blend-medium",
		Name:                 "Classic House Blend",
		Description:          "A well-rounded everyday coffee that hits all the right notes. Balanced sweetness, mild acidity, and approachable flavor make this perfect for any time of day.",
		FlavorProfile:        ProfileBalancedMild,
		RoastLevel:           RoastMedium,
		OriginStyle:          OriginBlend,
		SuggestedBrewMethods: []BrewMethod{BrewDrip, BrewPourOver, BrewFrenchPress, BrewColdBrew, BrewPods},
		Tags:                 []string{"balanced", "everyday", "approachable", "versatile"},
		AcidityLevel:         AcidityMedium,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Starbucks Pike Place", "Dunkin' Original", "Folgers"},
	},
	{
		ID:                   "breakfast-blend",
		Name:                 "Light Breakfast Blend",
		Description:          "Bright and lively with a lighter body - perfect for mornings. Clean citrus notes with a mild sweetness that wakes you up without overwhelming your palate.",
		FlavorProfile:        ProfileBalancedMild,
		RoastLevel:           RoastLight,
		OriginStyle:          OriginBlend,
		SuggestedBrewMethods: []BrewMethod{BrewDrip, BrewPourOver, BrewAeropress},
		Tags:                 []string{"light", "morning", "bright", "clean"},
		AcidityLevel:         AcidityMedium,
		BodyLevel:            BodyLight,
		PopularBrands:        []string{"Green Mountain", "Starbucks Blonde", "Peet's"},
	},
	{
		ID:                   "cold-brew-concentrate",
		Name:                 "Cold Brew Blend",
		Description:          "Specially selected for cold brewing - smooth, sweet, and never bitter. Low acidity and chocolatey notes shine when brewed cold for 12-24 hours.",
		FlavorProfile:        ProfileChocolateyNutty,
		RoastLevel:           RoastMediumDark,
		OriginStyle:          OriginBlend,
		SuggestedBrewMethods: []BrewMethod{BrewColdBrew},
		Tags:                 []string{"cold-brew", "smooth", "low-acid", "sweet"},
		AcidityLevel:         AcidityLow,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Stumptown Cold Brew", "Chameleon", "La Colombe"},
	},
	{
		ID:                   "premium-pod-blend",
		Name:                 "Premium Pod Selection",
		Description:          "Quality coffee in convenient pod form. Look for pods from specialty roasters that use freshly roasted beans. Nespresso Original and Keurig K-cups both have excellent options.",
		FlavorProfile:        ProfileBalancedMild,
		RoastLevel:           RoastMedium,
		OriginStyle:          OriginBlend,
		SuggestedBrewMethods: []BrewMethod{BrewPods},
		Tags:                 []string{"convenient", "pods", "quick", "consistent"},
		AcidityLevel:         AcidityMedium,
		BodyLevel:            BodyMedium,
		PopularBrands:        []string{"Nespresso", "Peet's K-Cups", "Lavazza Pods"},
	},
}
