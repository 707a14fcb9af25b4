package engine

import (
	"math"

	"github.com/rshade/greenevent/internal/factors"
)

// FormatComparisonResult scores one delivery format.
type FormatComparisonResult struct {
	Format         factors.EventFormat `json:"format"`
	TotalCarbonKg  float64             `json:"total_carbon_kg"`
	PerAttendeeKg  float64             `json:"per_attendee_kg"`
	CostPerPerson  float64             `json:"cost_per_attendee"`
	CostIndex      float64             `json:"cost_index"`
	Engagement     float64             `json:"engagement"`
	Accessibility  float64             `json:"accessibility"`
	Networking     float64             `json:"networking"`
	CompositeScore float64             `json:"composite_score"`
	Recommended    bool                `json:"recommended"`
}

// FormatComparison holds the scored formats in comparison order and the winner.
type FormatComparison struct {
	Attendees     int                      `json:"attendees"`
	AvgTravelKm   float64                  `json:"avg_travel_km"`
	Days          int                      `json:"days"`
	InPersonShare float64                  `json:"in_person_share"`
	Results       []FormatComparisonResult `json:"results"`
	Recommended   factors.EventFormat      `json:"recommended"`
}

// CompareFormats compares in-person, virtual and hybrid delivery with a hybrid
// in-person share of one half.
func CompareFormats(attendees int, avgTravelKm float64, days int) (FormatComparison, error) {
	return CompareFormatsWithShare(attendees, avgTravelKm, days, factors.DefaultInPersonShare)
}

// CompareFormatsWithShare compares the three formats, where inPersonShare is the
// fraction of hybrid attendees on site. The highest composite score is
// recommended; ties keep the comparison order.
func CompareFormatsWithShare(attendees int, avgTravelKm float64, days int, inPersonShare float64) (FormatComparison, error) {
	if err := firstError(
		checkCount("attendees", attendees),
		checkNonNegative("avg_travel_km", avgTravelKm),
		checkCount("days", days),
		checkNonNegative("in_person_share", inPersonShare),
	); err != nil {
		return FormatComparison{}, err
	}
	if inPersonShare > 1 {
		return FormatComparison{}, invalid("in_person_share", inPersonShare, "must be between 0 and 1")
	}

	n := float64(attendees)
	d := float64(days)
	nights := math.Max(d-1, 0)

	// In-person components, kg CO2e for all attendees.
	travel := n * factors.RoundTrip * avgTravelKm * factors.MixedTravelFactor
	grid, _ := factors.EmissionFactor(factors.EnergyGridStandard)
	venue := n * factors.VenueKWhPerAttendeeDay * d * grid
	catering, err := CateringEmissions(CateringProfile{
		Attendees:   attendees,
		MealsPerDay: factors.ComparisonMealsPerDay,
		Days:        days,
		MealType:    factors.MealMixed,
		Beverages:   factors.BeverageNone,
	})
	if err != nil {
		return FormatComparison{}, err
	}
	accommodation := n * nights * factors.AccommodationFactor

	virtual, err := DigitalEmissions(DigitalProfile{
		Attendees:      attendees,
		StreamingHours: factors.ComparisonStreamingHoursPerDay * d,
		Platform:       factors.PlatformStandardVideo,
	})
	if err != nil {
		return FormatComparison{}, err
	}

	s := inPersonShare
	carbon := map[factors.EventFormat]float64{
		factors.FormatInPerson: travel + venue + catering + accommodation,
		factors.FormatVirtual:  virtual,
		factors.FormatHybrid: s*(travel+catering+accommodation) +
			venue*factors.HybridVenueDampening +
			(1-s)*virtual,
	}

	inPersonCost := factors.RoundTrip*avgTravelKm*factors.TravelCostPerKm +
		d*(factors.VenueCostPerAttendeeDay+factors.CateringCostPerAttendeeDay) +
		nights*factors.AccommodationCostPerNight
	virtualCost := d * factors.VirtualCostPerAttendeeDay
	cost := map[factors.EventFormat]float64{
		factors.FormatInPerson: inPersonCost,
		factors.FormatVirtual:  virtualCost,
		factors.FormatHybrid:   s*inPersonCost + (1-s)*virtualCost + d*factors.HybridProductionPerAttendeeDay,
	}

	out := FormatComparison{
		Attendees:     attendees,
		AvgTravelKm:   avgTravelKm,
		Days:          days,
		InPersonShare: s,
	}
	for _, f := range factors.EventFormats() {
		exp, _ := factors.FormatExperience(f)
		perAttendee := carbon[f] / n
		costIndex := cost[f] / inPersonCost
		r := FormatComparisonResult{
			Format:        f,
			TotalCarbonKg: carbon[f],
			PerAttendeeKg: perAttendee,
			CostPerPerson: cost[f],
			CostIndex:     costIndex,
			Engagement:    exp.Engagement,
			Accessibility: exp.Accessibility,
			Networking:    exp.Networking,
			CompositeScore: (100 - perAttendee/factors.CompositeCarbonDivisor) +
				(100 - costIndex*100) +
				exp.Engagement + exp.Accessibility,
		}
		out.Results = append(out.Results, r)
	}
	best := bestFormat(out.Results)
	out.Results[best].Recommended = true
	out.Recommended = out.Results[best].Format
	return out, nil
}

// bestFormat returns the index of the highest composite score. Ties keep the
// earliest result, so equal scores favor in-person, then virtual.
func bestFormat(results []FormatComparisonResult) int {
	best := 0
	for i, r := range results {
		if r.CompositeScore > results[best].CompositeScore {
			best = i
		}
	}
	return best
}
