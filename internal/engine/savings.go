package engine

import (
	"math"

	"github.com/rshade/greenevent/internal/factors"
)

// CostInputs are the traditional (unimproved) costs of an event.
type CostInputs struct {
	Venue         float64              `json:"venue"          yaml:"venue"`
	Energy        float64              `json:"energy"         yaml:"energy"`
	Catering      float64              `json:"catering"       yaml:"catering"`
	Transport     float64              `json:"transport"      yaml:"transport"`
	Materials     float64              `json:"materials"      yaml:"materials"`
	WasteDisposal float64              `json:"waste_disposal" yaml:"waste_disposal"`
	Region        factors.Region       `json:"region"         yaml:"region"`
	Attendees     int                  `json:"attendees"      yaml:"attendees"`
	Days          int                  `json:"days"           yaml:"days"`
	Adoption      factors.AdoptionTier `json:"adoption"       yaml:"adoption"`
}

// Cost returns the traditional cost of a category.
func (c CostInputs) Cost(cat factors.CostCategory) float64 {
	switch cat {
	case factors.CostVenue:
		return c.Venue
	case factors.CostEnergy:
		return c.Energy
	case factors.CostCatering:
		return c.Catering
	case factors.CostTransport:
		return c.Transport
	case factors.CostMaterials:
		return c.Materials
	case factors.CostWasteDisposal:
		return c.WasteDisposal
	default:
		return 0
	}
}

// Total sums every traditional cost.
func (c CostInputs) Total() float64 {
	var total float64
	for _, cat := range factors.CostCategories() {
		total += c.Cost(cat)
	}
	return total
}

// CategorySavings is the traditional and sustainable cost of one category.
type CategorySavings struct {
	Category          factors.CostCategory `json:"category"`
	Traditional       float64              `json:"traditional"`
	Sustainable       float64              `json:"sustainable"`
	Savings           float64              `json:"savings"`
	ReductionFraction float64              `json:"reduction_fraction"`
}

// EnvironmentalValue prices the avoided carbon, saved water and diverted waste.
type EnvironmentalValue struct {
	CarbonAvoidedKg float64 `json:"carbon_avoided_kg"`
	CarbonValue     float64 `json:"carbon_value"`
	WaterSavedL     float64 `json:"water_saved_l"`
	WaterValue      float64 `json:"water_value"`
	WasteDivertedKg float64 `json:"waste_diverted_kg"`
	WasteValue      float64 `json:"waste_value"`
	Total           float64 `json:"total"`
}

// FinancialMetrics evaluates the sustainable plan as an investment.
type FinancialMetrics struct {
	ImplementationCost float64 `json:"implementation_cost"`
	AnnualBenefit      float64 `json:"annual_benefit"`
	BrandValue         float64 `json:"brand_value"`
	RiskMitigation     float64 `json:"risk_mitigation"`
	ROIPct             float64 `json:"roi_pct"`
	PaybackMonths      float64 `json:"payback_months"`
	NPV                float64 `json:"npv"`
	// IRRPct is a simplified benefit-to-cost approximation, not a true internal
	// rate of return.
	IRRPct float64 `json:"irr_pct"`
}

// CostSavingsResult is the output of the cost-savings model. Categories follow
// factors.CostCategories order.
type CostSavingsResult struct {
	Categories         [6]CategorySavings `json:"categories"`
	TraditionalTotal   float64            `json:"traditional_total"`
	SustainableTotal   float64            `json:"sustainable_total"`
	TotalSavings       float64            `json:"total_savings"`
	SavingsPct         float64            `json:"savings_pct"`
	Environmental      EnvironmentalValue `json:"environmental"`
	Financials         FinancialMetrics   `json:"financials"`
	PerAttendeeSavings float64            `json:"per_attendee_savings"`
	Currency           string             `json:"currency"`
}

func (c CostInputs) validate() (factors.RegionalPricing, float64, error) {
	pricing, ok := factors.PricingFor(c.Region)
	if !ok {
		return factors.RegionalPricing{}, 0, unknownValue("costs.region", c.Region)
	}
	adoption, ok := factors.AdoptionMultiplier(c.Adoption)
	if !ok {
		return factors.RegionalPricing{}, 0, unknownValue("costs.adoption", c.Adoption)
	}
	for _, cat := range factors.CostCategories() {
		if err := checkNonNegative("costs."+string(cat), c.Cost(cat)); err != nil {
			return factors.RegionalPricing{}, 0, err
		}
	}
	if err := firstError(
		checkCount("costs.attendees", c.Attendees),
		checkCount("costs.days", c.Days),
	); err != nil {
		return factors.RegionalPricing{}, 0, err
	}
	if c.Total() <= 0 {
		return factors.RegionalPricing{}, 0, invalid("costs", c.Total(), "traditional total must be greater than zero")
	}
	return pricing, adoption, nil
}

// reductionPotential is the raw reduction potential of a cost category given the
// sustainability signals of the configuration.
func reductionPotential(cat factors.CostCategory, c EventConfiguration) float64 {
	switch cat {
	case factors.CostVenue:
		p := factors.VenueBasePotential
		if c.Venue.Certifications.GreenBuilding {
			p += factors.VenueGreenBuildingPotential
		}
		if c.Venue.Type == factors.VenueOutdoor || c.Venue.Type == factors.VenueHybridSpace {
			p += factors.VenueLowImpactTypePotential
		}
		return p
	case factors.CostEnergy:
		p := factors.EnergyBasePotential
		switch {
		case factors.IsRenewable(c.Venue.EnergySource):
			p += factors.EnergyRenewablePotential
		case c.Venue.EnergySource == factors.EnergyMixed:
			p += factors.EnergyMixedPotential
		}
		if c.Venue.Certifications.LEDLighting {
			p += factors.EnergyLEDPotential
		}
		if c.Venue.Certifications.EfficientHVAC {
			p += factors.EnergyHVACPotential
		}
		return p
	case factors.CostCatering:
		p := factors.CateringBasePotential
		switch c.Catering.MealType {
		case factors.MealVegan:
			p += factors.CateringVeganPotential
		case factors.MealVegetarian:
			p += factors.CateringVegetarianPotential
		case factors.MealPescatarian:
			p += factors.CateringPescatarianPotential
		}
		return p + c.Catering.LocalSourcingPct/100*factors.CateringLocalPotential
	case factors.CostTransport:
		p := factors.TransportBasePotential
		if c.Transport.Shuttle {
			p += factors.TransportShuttlePotential
		}
		switch {
		case factors.IsActiveMode(c.Transport.Mode):
			p += factors.TransportActivePotential
		case factors.IsLowCarbonMode(c.Transport.Mode):
			p += factors.TransportLowCarbonPotential
		}
		return p
	case factors.CostMaterials:
		p := factors.MaterialsBasePotential
		if c.Materials.DigitalAlternatives {
			p += factors.MaterialsDigitalPotential
		}
		if !c.Materials.Swag {
			p += factors.MaterialsNoSwagPotential
		}
		if c.Materials.Decoration == factors.DecorationMinimal {
			p += factors.MaterialsMinimalDecoPotential
		}
		return p
	case factors.CostWasteDisposal:
		p := factors.WasteBasePotential
		switch c.Materials.WasteManagement {
		case factors.WasteRecycling:
			p += factors.WasteRecyclingPotential
		case factors.WasteComposting:
			p += factors.WasteCompostingPotential
		case factors.WasteZeroWaste:
			p += factors.WasteZeroWastePotential
		}
		return p
	default:
		return 0
	}
}

// CalculateCostSavings estimates the sustainable cost of every category, the
// monetary value of the environmental improvement and the investment metrics of
// adopting the sustainable plan. The footprint must be the one computed for cfg.
func CalculateCostSavings(cfg EventConfiguration, fp FootprintResult, in CostInputs) (CostSavingsResult, error) {
	if err := cfg.Validate(); err != nil {
		return CostSavingsResult{}, err
	}
	pricing, adoption, err := in.validate()
	if err != nil {
		return CostSavingsResult{}, err
	}
	if err := firstError(
		checkNonNegative("footprint.total_water_l", fp.TotalWaterL),
		checkNonNegative("footprint.total_waste_kg", fp.TotalWasteKg),
	); err != nil {
		return CostSavingsResult{}, err
	}
	for _, c := range Categories() {
		if err := checkNonNegative("footprint.breakdown."+string(c), fp.Breakdown.Get(c)); err != nil {
			return CostSavingsResult{}, err
		}
	}

	out := CostSavingsResult{Currency: pricing.Currency}
	fractions := make(map[factors.CostCategory]float64, len(out.Categories))
	for i, cat := range factors.CostCategories() {
		ceiling, _ := factors.ReductionCeiling(cat)
		frac := clamp(reductionPotential(cat, cfg)*adoption, 0, ceiling)
		fractions[cat] = frac
		traditional := in.Cost(cat)
		sustainable := traditional * (1 - frac)
		out.Categories[i] = CategorySavings{
			Category:          cat,
			Traditional:       traditional,
			Sustainable:       sustainable,
			Savings:           traditional - sustainable,
			ReductionFraction: frac,
		}
		out.TraditionalTotal += traditional
		out.SustainableTotal += sustainable
	}
	out.TotalSavings = out.TraditionalTotal - out.SustainableTotal
	ratio := out.TotalSavings / out.TraditionalTotal
	out.SavingsPct = ratio * 100
	out.PerAttendeeSavings = out.TotalSavings / float64(in.Attendees)

	env := EnvironmentalValue{
		CarbonAvoidedKg: fp.Breakdown.Venue*(fractions[factors.CostVenue]+fractions[factors.CostEnergy])/2 +
			fp.Breakdown.FoodBeverage*fractions[factors.CostCatering] +
			fp.Breakdown.Transport*fractions[factors.CostTransport] +
			fp.Breakdown.Materials*fractions[factors.CostMaterials],
		WaterSavedL:     fp.TotalWaterL * ratio,
		WasteDivertedKg: fp.TotalWasteKg * fractions[factors.CostWasteDisposal],
	}
	env.CarbonValue = env.CarbonAvoidedKg * (pricing.CarbonPerKg + factors.SocialCostOfCarbon)
	env.WaterValue = env.WaterSavedL * pricing.WaterPerLiter
	env.WasteValue = env.WasteDivertedKg * pricing.WastePerKg
	env.Total = env.CarbonValue + env.WaterValue + env.WasteValue
	out.Environmental = env

	out.Financials = financialMetrics(out.TraditionalTotal, out.SustainableTotal, out.TotalSavings, env.Total)
	return out, nil
}

func financialMetrics(traditional, sustainable, savings, environmental float64) FinancialMetrics {
	m := FinancialMetrics{
		ImplementationCost: sustainable * factors.ImplementationCostFraction,
		BrandValue:         traditional * factors.BrandValueMultiplier,
		RiskMitigation:     traditional * factors.RiskMitigationMultiplier,
	}
	m.AnnualBenefit = savings + environmental + m.BrandValue + m.RiskMitigation

	m.NPV = -m.ImplementationCost
	for year := 1; year <= factors.NPVYears; year++ {
		m.NPV += m.AnnualBenefit / math.Pow(1+factors.DiscountRate, float64(year))
	}

	if m.ImplementationCost <= 0 {
		m.PaybackMonths = factors.MinPaybackMonths
		return m
	}
	m.ROIPct = m.AnnualBenefit / m.ImplementationCost * 100
	m.IRRPct = (m.AnnualBenefit/m.ImplementationCost - 1) * 100
	m.PaybackMonths = factors.MinPaybackMonths
	if m.AnnualBenefit > 0 {
		m.PaybackMonths = math.Max(factors.MinPaybackMonths, m.ImplementationCost/(m.AnnualBenefit/factors.MonthsPerYear))
	}
	return m
}
