package factors

// Region is a pricing and incentive jurisdiction.
type Region string

// Recognized regions.
const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
	RegionUK Region = "uk"
	RegionCA Region = "ca"
	RegionAU Region = "au"
)

// Regions lists every region in declaration order.
func Regions() []Region {
	return []Region{RegionUS, RegionEU, RegionUK, RegionCA, RegionAU}
}

// RegionalPricing holds the per-unit environmental prices of a region.
type RegionalPricing struct {
	Currency      string  `json:"currency"`
	CarbonPerKg   float64 `json:"carbon_per_kg"`
	WaterPerLiter float64 `json:"water_per_liter"`
	WastePerKg    float64 `json:"waste_per_kg"`
}

// PricingFor returns the environmental prices for a region.
func PricingFor(r Region) (RegionalPricing, bool) {
	switch r {
	case RegionUS:
		return RegionalPricing{Currency: "USD", CarbonPerKg: 0.030, WaterPerLiter: 0.002, WastePerKg: 0.10}, true
	case RegionEU:
		return RegionalPricing{Currency: "EUR", CarbonPerKg: 0.085, WaterPerLiter: 0.003, WastePerKg: 0.15}, true
	case RegionUK:
		return RegionalPricing{Currency: "GBP", CarbonPerKg: 0.075, WaterPerLiter: 0.0025, WastePerKg: 0.14}, true
	case RegionCA:
		return RegionalPricing{Currency: "CAD", CarbonPerKg: 0.050, WaterPerLiter: 0.0018, WastePerKg: 0.12}, true
	case RegionAU:
		return RegionalPricing{Currency: "AUD", CarbonPerKg: 0.025, WaterPerLiter: 0.0022, WastePerKg: 0.13}, true
	default:
		return RegionalPricing{}, false
	}
}

// SocialCostOfCarbon is added to every regional carbon price, per kg CO2e.
const SocialCostOfCarbon = 0.051

// AdoptionTier is how thoroughly sustainable practices are adopted.
type AdoptionTier string

// Recognized adoption tiers.
const (
	AdoptionBasic         AdoptionTier = "basic"
	AdoptionModerate      AdoptionTier = "moderate"
	AdoptionAdvanced      AdoptionTier = "advanced"
	AdoptionComprehensive AdoptionTier = "comprehensive"
)

// AdoptionTiers lists every tier in declaration order.
func AdoptionTiers() []AdoptionTier {
	return []AdoptionTier{AdoptionBasic, AdoptionModerate, AdoptionAdvanced, AdoptionComprehensive}
}

// AdoptionMultiplier returns the share of a category's potential that is realized.
func AdoptionMultiplier(a AdoptionTier) (float64, bool) {
	switch a {
	case AdoptionBasic:
		return 0.4, true
	case AdoptionModerate:
		return 0.7, true
	case AdoptionAdvanced:
		return 0.9, true
	case AdoptionComprehensive:
		return 1.0, true
	default:
		return 0, false
	}
}

// CostCategory is one of the six monetary cost lines of an event.
type CostCategory string

// Cost categories in declaration order.
const (
	CostVenue         CostCategory = "venue"
	CostEnergy        CostCategory = "energy"
	CostCatering      CostCategory = "catering"
	CostTransport     CostCategory = "transport"
	CostMaterials     CostCategory = "materials"
	CostWasteDisposal CostCategory = "waste-disposal"
)

// CostCategories lists every cost category in declaration order.
func CostCategories() []CostCategory {
	return []CostCategory{CostVenue, CostEnergy, CostCatering, CostTransport, CostMaterials, CostWasteDisposal}
}

// ReductionCeiling returns the maximum achievable cost reduction fraction per category.
// Every ceiling is below 1 so a sustainable cost never reaches zero.
func ReductionCeiling(c CostCategory) (float64, bool) {
	switch c {
	case CostVenue:
		return 0.30, true
	case CostEnergy:
		return 0.50, true
	case CostCatering:
		return 0.40, true
	case CostTransport:
		return 0.45, true
	case CostMaterials:
		return 0.80, true
	case CostWasteDisposal:
		return 0.60, true
	default:
		return 0, false
	}
}

// Base reduction potential per category plus the signal increments that raise it.
const (
	VenueBasePotential          = 0.05
	VenueGreenBuildingPotential = 0.10
	VenueLowImpactTypePotential = 0.05

	EnergyBasePotential      = 0.05
	EnergyRenewablePotential = 0.25
	EnergyMixedPotential     = 0.10
	EnergyLEDPotential       = 0.10
	EnergyHVACPotential      = 0.10

	CateringBasePotential        = 0.05
	CateringVeganPotential       = 0.25
	CateringVegetarianPotential  = 0.15
	CateringPescatarianPotential = 0.10
	CateringLocalPotential       = 0.10

	TransportBasePotential      = 0.05
	TransportShuttlePotential   = 0.15
	TransportLowCarbonPotential = 0.15
	TransportActivePotential    = 0.25

	MaterialsBasePotential        = 0.10
	MaterialsDigitalPotential     = 0.40
	MaterialsNoSwagPotential      = 0.15
	MaterialsMinimalDecoPotential = 0.10

	WasteBasePotential       = 0.05
	WasteRecyclingPotential  = 0.15
	WasteCompostingPotential = 0.25
	WasteZeroWastePotential  = 0.45
)

// Financial model assumptions.
const (
	ImplementationCostFraction = 0.10
	BrandValueMultiplier       = 0.02
	RiskMitigationMultiplier   = 0.01
	DiscountRate               = 0.05
	NPVYears                   = 3
	MonthsPerYear              = 12.0
	MinPaybackMonths           = 1.0
)

// TaxIncentiveProgram is a named credit or grant available in a region.
type TaxIncentiveProgram struct {
	Name     string       `json:"name"`
	Region   Region       `json:"region"`
	Category CostCategory `json:"category"`
	RatePct  float64      `json:"rate_pct"`
	Cap      float64      `json:"cap"`
}

// TaxIncentivePrograms returns the programmes available in a region.
func TaxIncentivePrograms(r Region) ([]TaxIncentiveProgram, bool) {
	switch r {
	case RegionUS:
		return []TaxIncentiveProgram{
			{Name: "Clean Energy Investment Credit", Region: r, Category: CostEnergy, RatePct: 30, Cap: 50000},
			{Name: "Energy Efficient Commercial Buildings Deduction", Region: r, Category: CostVenue, RatePct: 10, Cap: 15000},
			{Name: "Alternative Fuel Refueling Property Credit", Region: r, Category: CostTransport, RatePct: 30, Cap: 100000},
		}, true
	case RegionEU:
		return []TaxIncentiveProgram{
			{Name: "Green Deal Sustainable Events Grant", Region: r, Category: CostVenue, RatePct: 20, Cap: 40000},
			{Name: "Circular Economy Materials Relief", Region: r, Category: CostMaterials, RatePct: 15, Cap: 10000},
		}, true
	case RegionUK:
		return []TaxIncentiveProgram{
			{Name: "Climate Change Levy Relief", Region: r, Category: CostEnergy, RatePct: 25, Cap: 20000},
			{Name: "Landfill Tax Diversion Credit", Region: r, Category: CostWasteDisposal, RatePct: 10, Cap: 5000},
		}, true
	case RegionCA:
		return []TaxIncentiveProgram{
			{Name: "Clean Technology Investment Tax Credit", Region: r, Category: CostEnergy, RatePct: 30, Cap: 60000},
		}, true
	case RegionAU:
		return []TaxIncentiveProgram{
			{Name: "Emissions Reduction Fund Credit", Region: r, Category: CostTransport, RatePct: 15, Cap: 25000},
			{Name: "Instant Asset Write-Off for Efficient Equipment", Region: r, Category: CostEnergy, RatePct: 20, Cap: 20000},
		}, true
	default:
		return nil, false
	}
}

// Incentive tier thresholds on the green score and their fractions of the cap.
const (
	IncentiveHighScore    = 80.0
	IncentiveMediumScore  = 60.0
	IncentiveHighFraction = 1.0
	IncentiveMidFraction  = 0.7
	IncentiveLowFraction  = 0.4
)
