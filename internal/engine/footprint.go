package engine

import "github.com/rshade/greenevent/internal/factors"

// Validate checks every invariant of the configuration without computing anything.
func (c EventConfiguration) Validate() error {
	_, err := c.profiles()
	return err
}

// configProfiles are the calculator inputs derived from an EventConfiguration.
type configProfiles struct {
	venue     VenueProfile
	travel    AttendeeTravelProfile
	catering  CateringProfile
	materials MaterialsProfile
}

func (c EventConfiguration) profiles() (configProfiles, error) {
	v, t, m := c.Venue, c.Transport, c.Materials
	area, ok := factors.FloorArea(v.Size)
	if !ok {
		return configProfiles{}, unknownValue("venue.size", v.Size)
	}
	if _, ok := factors.TransitScore(v.TransitAccess); !ok {
		return configProfiles{}, unknownValue("venue.transit_access", v.TransitAccess)
	}
	if _, ok := factors.TravelFactor(t.Mode); !ok {
		return configProfiles{}, unknownValue("transport.mode", t.Mode)
	}
	if _, ok := factors.EnergyIntensity(v.Type); !ok {
		return configProfiles{}, unknownValue("venue.type", v.Type)
	}
	if _, ok := factors.EmissionFactor(v.EnergySource); !ok {
		return configProfiles{}, unknownValue("venue.energy_source", v.EnergySource)
	}
	if _, ok := factors.MealFactor(c.Catering.MealType); !ok {
		return configProfiles{}, unknownValue("catering.meal_type", c.Catering.MealType)
	}
	if _, ok := factors.BeverageFactor(c.Catering.Beverages); !ok {
		return configProfiles{}, unknownValue("catering.beverages", c.Catering.Beverages)
	}
	if _, ok := factors.MaterialsWaste(m.Printed); !ok {
		return configProfiles{}, unknownValue("materials.printed", m.Printed)
	}
	if _, ok := factors.DecorationMultiplier(m.Decoration); !ok {
		return configProfiles{}, unknownValue("materials.decoration", m.Decoration)
	}
	if _, ok := factors.WasteReduction(m.WasteManagement); !ok {
		return configProfiles{}, unknownValue("materials.waste_management", m.WasteManagement)
	}
	if c.Catering.MealsPerDay < 0 {
		return configProfiles{}, invalid("catering.meals_per_day", c.Catering.MealsPerDay, "must not be negative")
	}
	if err := firstError(
		checkPercent("catering.local_sourcing_pct", c.Catering.LocalSourcingPct),
		checkPercent("catering.organic_pct", c.Catering.OrganicPct),
		checkCount("venue.days", v.Days),
		checkPositive("venue.hours_per_day", v.HoursPerDay),
		checkCount("catering.guests", c.Catering.Guests),
		checkCount("transport.attendees", t.Attendees),
		checkNonNegative("transport.avg_distance_km", t.AvgDistanceKm),
	); err != nil {
		return configProfiles{}, err
	}
	if t.AccommodationNights < 0 {
		return configProfiles{}, invalid("transport.accommodation_nights", t.AccommodationNights, "must not be negative")
	}

	p := configProfiles{
		venue: VenueProfile{
			Type:           v.Type,
			EnergySource:   v.EnergySource,
			AreaM2:         area,
			DurationHours:  float64(v.Days) * v.HoursPerDay,
			Certifications: v.Certifications,
			TransitAccess:  v.TransitAccess,
		},
		travel: AttendeeTravelProfile{
			Attendees: t.Attendees,
			Cohorts: []TravelCohort{{
				Region:        CohortForDistance(t.AvgDistanceKm),
				SharePct:      100,
				AvgDistanceKm: t.AvgDistanceKm,
				Mode:          t.Mode,
			}},
			AccommodationNights: t.AccommodationNights,
		},
		catering: CateringProfile{
			Attendees:        c.Catering.Guests,
			MealsPerDay:      c.Catering.MealsPerDay,
			Days:             v.Days,
			MealType:         c.Catering.MealType,
			Beverages:        c.Catering.Beverages,
			LocalSourcingPct: c.Catering.LocalSourcingPct,
			OrganicPct:       c.Catering.OrganicPct,
		},
		materials: MaterialsProfile{
			Attendees:           t.Attendees,
			Printed:             m.Printed,
			Swag:                m.Swag,
			ExhibitorMaterials:  m.ExhibitorMaterials,
			Decoration:          m.Decoration,
			DigitalAlternatives: m.DigitalAlternatives,
			WasteManagement:     m.WasteManagement,
		},
	}
	return p, nil
}

// CalculateFootprint computes the full footprint of an event configuration.
func CalculateFootprint(c EventConfiguration) (FootprintResult, error) {
	p, err := c.profiles()
	if err != nil {
		return FootprintResult{}, err
	}

	venueKg, err := VenueEmissions(p.venue)
	if err != nil {
		return FootprintResult{}, err
	}
	// A configured average distance of zero means attendees do not travel; it is
	// not a request for the cohort default.
	travel, err := travelEmissions(p.travel, TravelOptions{Policy: DistributionReject}, false)
	if err != nil {
		return FootprintResult{}, err
	}
	transportKg := travel.TotalKg
	if c.Transport.Shuttle {
		transportKg *= 1 - factors.ShuttleReduction
	}
	foodKg, err := CateringEmissions(p.catering)
	if err != nil {
		return FootprintResult{}, err
	}
	materials, err := MaterialsEmissions(p.materials)
	if err != nil {
		return FootprintResult{}, err
	}
	score, err := GreenScore(p.venue)
	if err != nil {
		return FootprintResult{}, err
	}

	days := float64(c.Venue.Days)
	attendees := float64(c.Transport.Attendees)
	guests := float64(c.Catering.Guests)
	return aggregate(footprintParts{
		breakdown: Breakdown{
			Venue:        venueKg,
			FoodBeverage: foodKg,
			Transport:    transportKg,
			Materials:    materials.CarbonKg,
		},
		waterL: attendees*days*(factors.VenueWaterPerAttendeeDay+factors.MaterialsWaterPerAttendeeDay) +
			guests*days*factors.FoodBeverageWaterPerAttendeeDay,
		wasteKg: attendees*days*factors.VenueWastePerAttendeeDay +
			guests*days*factors.FoodBeverageWastePerAttendeeDay +
			materials.WasteKg,
		attendees: c.Transport.Attendees,
		score:     score,
		warnings:  travel.Warnings,
	}), nil
}

// CalculateDetailedFootprint computes the footprint from full profiles. Digital
// streaming emissions, when present, are attributed to the venue category.
func CalculateDetailedFootprint(e DetailedEvent, opts TravelOptions) (FootprintResult, error) {
	if err := checkCount("days", e.Days); err != nil {
		return FootprintResult{}, err
	}
	venueKg, err := VenueEmissions(e.Venue)
	if err != nil {
		return FootprintResult{}, err
	}
	if e.Digital != nil {
		digitalKg, err := DigitalEmissions(*e.Digital)
		if err != nil {
			return FootprintResult{}, err
		}
		venueKg += digitalKg
	}
	travel, err := TravelEmissions(e.Travel, opts)
	if err != nil {
		return FootprintResult{}, err
	}
	foodKg, err := CateringEmissions(e.Catering)
	if err != nil {
		return FootprintResult{}, err
	}
	materials, err := MaterialsEmissions(e.Materials)
	if err != nil {
		return FootprintResult{}, err
	}
	score, err := GreenScore(e.Venue)
	if err != nil {
		return FootprintResult{}, err
	}

	days := float64(e.Days)
	onSite := travel.InPersonAttendees
	guests := float64(e.Catering.Attendees)
	return aggregate(footprintParts{
		breakdown: Breakdown{
			Venue:        venueKg,
			FoodBeverage: foodKg,
			Transport:    travel.TotalKg,
			Materials:    materials.CarbonKg,
		},
		waterL: onSite*days*factors.VenueWaterPerAttendeeDay +
			float64(e.Materials.Attendees)*days*factors.MaterialsWaterPerAttendeeDay +
			guests*days*factors.FoodBeverageWaterPerAttendeeDay,
		wasteKg: onSite*days*factors.VenueWastePerAttendeeDay +
			guests*days*factors.FoodBeverageWastePerAttendeeDay +
			materials.WasteKg,
		attendees: e.Travel.Attendees,
		score:     score,
		warnings:  travel.Warnings,
	}), nil
}

type footprintParts struct {
	breakdown Breakdown
	waterL    float64
	wasteKg   float64
	attendees int
	score     float64
	warnings  []string
}

func aggregate(p footprintParts) FootprintResult {
	total := p.breakdown.Total()
	return FootprintResult{
		TotalCarbonKg: total,
		TotalWaterL:   p.waterL,
		TotalWasteKg:  p.wasteKg,
		Breakdown:     p.breakdown,
		GreenScore:    p.score,
		Grade:         GradeFor(p.score),
		PerAttendeeKg: total / float64(p.attendees),
		Attendees:     p.attendees,
		Warnings:      p.warnings,
	}
}
