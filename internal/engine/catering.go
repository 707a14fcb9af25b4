package engine

import "github.com/rshade/greenevent/internal/factors"

// CateringEmissions returns food and beverage emissions in kg CO2e. Local sourcing
// and organic shares reduce meal emissions linearly up to their ceilings; beverages
// are charged per guest per day.
func CateringEmissions(p CateringProfile) (float64, error) {
	mealFactor, ok := factors.MealFactor(p.MealType)
	if !ok {
		return 0, unknownValue("catering.meal_type", p.MealType)
	}
	beverageFactor, ok := factors.BeverageFactor(p.Beverages)
	if !ok {
		return 0, unknownValue("catering.beverages", p.Beverages)
	}
	if err := firstError(
		checkCount("catering.attendees", p.Attendees),
		checkCount("catering.days", p.Days),
		checkPercent("catering.local_sourcing_pct", p.LocalSourcingPct),
		checkPercent("catering.organic_pct", p.OrganicPct),
	); err != nil {
		return 0, err
	}
	if p.MealsPerDay < 0 {
		return 0, invalid("catering.meals_per_day", p.MealsPerDay, "must not be negative")
	}
	meals := p.MealsPerDay
	if meals == 0 {
		meals = factors.DefaultMealsPerDay
	}

	guests := float64(p.Attendees)
	days := float64(p.Days)
	food := guests * float64(meals) * days * mealFactor *
		(1 - p.LocalSourcingPct/100*factors.LocalSourcingMaxReduction) *
		(1 - p.OrganicPct/100*factors.OrganicMaxReduction)
	return food + guests*days*beverageFactor, nil
}
