package factors

// MealType is the dominant menu style served.
type MealType string

// Recognized meal types.
const (
	MealVegan       MealType = "vegan"
	MealVegetarian  MealType = "vegetarian"
	MealPescatarian MealType = "pescatarian"
	MealMixed       MealType = "mixed"
	MealMeatHeavy   MealType = "meat-heavy"
)

// MealTypes lists every meal type in declaration order.
func MealTypes() []MealType {
	return []MealType{MealVegan, MealVegetarian, MealPescatarian, MealMixed, MealMeatHeavy}
}

// MealFactor returns kg CO2e per meal served.
func MealFactor(m MealType) (float64, bool) {
	switch m {
	case MealVegan:
		return 1.5, true
	case MealVegetarian:
		return 2.0, true
	case MealPescatarian:
		return 2.8, true
	case MealMixed:
		return 3.6, true
	case MealMeatHeavy:
		return 7.0, true
	default:
		return 0, false
	}
}

// BeverageTier is the level of beverage service.
type BeverageTier string

// Recognized beverage tiers.
const (
	BeverageNone     BeverageTier = "none"
	BeverageBasic    BeverageTier = "basic"
	BeverageStandard BeverageTier = "standard"
	BeveragePremium  BeverageTier = "premium"
)

// BeverageTiers lists every beverage tier in declaration order.
func BeverageTiers() []BeverageTier {
	return []BeverageTier{BeverageNone, BeverageBasic, BeverageStandard, BeveragePremium}
}

// BeverageFactor returns kg CO2e per guest per day.
func BeverageFactor(b BeverageTier) (float64, bool) {
	switch b {
	case BeverageNone:
		return 0, true
	case BeverageBasic:
		return 0.2, true
	case BeverageStandard:
		return 0.5, true
	case BeveragePremium:
		return 1.2, true
	default:
		return 0, false
	}
}

// Catering reduction ceilings. Local sourcing and organic content reduce catering
// emissions linearly up to these fractions at 100% adoption.
const (
	LocalSourcingMaxReduction = 0.20
	OrganicMaxReduction       = 0.10
	DefaultMealsPerDay        = 2
)
