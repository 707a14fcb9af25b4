// Package engine computes event footprints, scores, format comparisons, cost savings
// and recommendations from validated configurations.
//
// Every exported function is synchronous and pure: inputs are plain value types, results
// are constructed fresh per call, and identical inputs always produce identical outputs.
package engine

import "github.com/rshade/greenevent/internal/factors"

// Certifications are the green building certifications and programs of a venue.
type Certifications struct {
	GreenBuilding     bool `json:"green_building"     yaml:"green_building"`
	EfficientHVAC     bool `json:"efficient_hvac"     yaml:"efficient_hvac"`
	LEDLighting       bool `json:"led_lighting"       yaml:"led_lighting"`
	WaterConservation bool `json:"water_conservation" yaml:"water_conservation"`
	WasteProgram      bool `json:"waste_program"      yaml:"waste_program"`
}

// VenueConfig is the coarse venue section of an EventConfiguration.
type VenueConfig struct {
	Type           factors.VenueType     `json:"type"            yaml:"type"`
	Size           factors.SizeClass     `json:"size"            yaml:"size"`
	Days           int                   `json:"days"            yaml:"days"`
	HoursPerDay    float64               `json:"hours_per_day"   yaml:"hours_per_day"`
	EnergySource   factors.EnergySource  `json:"energy_source"   yaml:"energy_source"`
	Certifications Certifications        `json:"certifications"  yaml:"certifications"`
	TransitAccess  factors.TransitAccess `json:"transit_access"  yaml:"transit_access"`
}

// CateringConfig is the catering section of an EventConfiguration.
type CateringConfig struct {
	Guests           int                  `json:"guests"             yaml:"guests"`
	MealType         factors.MealType     `json:"meal_type"          yaml:"meal_type"`
	Beverages        factors.BeverageTier `json:"beverages"          yaml:"beverages"`
	MealsPerDay      int                  `json:"meals_per_day"      yaml:"meals_per_day"`
	LocalSourcingPct float64              `json:"local_sourcing_pct" yaml:"local_sourcing_pct"`
	OrganicPct       float64              `json:"organic_pct"        yaml:"organic_pct"`
}

// TransportConfig is the transport section of an EventConfiguration.
type TransportConfig struct {
	Attendees           int                `json:"attendees"            yaml:"attendees"`
	AvgDistanceKm       float64            `json:"avg_distance_km"      yaml:"avg_distance_km"`
	Mode                factors.TravelMode `json:"mode"                 yaml:"mode"`
	Shuttle             bool               `json:"shuttle"              yaml:"shuttle"`
	AccommodationNights int                `json:"accommodation_nights" yaml:"accommodation_nights"`
}

// MaterialsConfig is the materials section of an EventConfiguration.
type MaterialsConfig struct {
	Printed             factors.MaterialsTier   `json:"printed"              yaml:"printed"`
	Swag                bool                    `json:"swag"                 yaml:"swag"`
	ExhibitorMaterials  bool                    `json:"exhibitor_materials"  yaml:"exhibitor_materials"`
	Decoration          factors.DecorationLevel `json:"decoration"           yaml:"decoration"`
	DigitalAlternatives bool                    `json:"digital_alternatives" yaml:"digital_alternatives"`
	WasteManagement     factors.WasteManagement `json:"waste_management"     yaml:"waste_management"`
}

// EventConfiguration is the complete description of one planned event.
type EventConfiguration struct {
	Venue     VenueConfig     `json:"venue"     yaml:"venue"`
	Catering  CateringConfig  `json:"catering"  yaml:"catering"`
	Transport TransportConfig `json:"transport" yaml:"transport"`
	Materials MaterialsConfig `json:"materials" yaml:"materials"`
}

// Category is one of the four footprint categories.
type Category string

// Footprint categories in declaration order.
const (
	CategoryVenue        Category = "venue"
	CategoryFoodBeverage Category = "food-beverage"
	CategoryTransport    Category = "transport"
	CategoryMaterials    Category = "materials"
)

// Categories lists every footprint category in declaration order.
func Categories() []Category {
	return []Category{CategoryVenue, CategoryFoodBeverage, CategoryTransport, CategoryMaterials}
}

// Breakdown is the carbon footprint split by category, in kg CO2e.
type Breakdown struct {
	Venue        float64 `json:"venue"         yaml:"venue"`
	FoodBeverage float64 `json:"food_beverage" yaml:"food_beverage"`
	Transport    float64 `json:"transport"     yaml:"transport"`
	Materials    float64 `json:"materials"     yaml:"materials"`
}

// Get returns the value of a category, or zero for an unknown category.
func (b Breakdown) Get(c Category) float64 {
	switch c {
	case CategoryVenue:
		return b.Venue
	case CategoryFoodBeverage:
		return b.FoodBeverage
	case CategoryTransport:
		return b.Transport
	case CategoryMaterials:
		return b.Materials
	default:
		return 0
	}
}

// Total sums the four categories.
func (b Breakdown) Total() float64 {
	return b.Venue + b.FoodBeverage + b.Transport + b.Materials
}

// Grade is the letter grade derived from a green score.
type Grade string

// Grades from best to worst.
const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// FootprintResult is the aggregated environmental footprint of an event.
type FootprintResult struct {
	TotalCarbonKg float64   `json:"total_carbon_kg"`
	TotalWaterL   float64   `json:"total_water_l"`
	TotalWasteKg  float64   `json:"total_waste_kg"`
	Breakdown     Breakdown `json:"breakdown"`
	GreenScore    float64   `json:"green_score"`
	Grade         Grade     `json:"grade"`
	PerAttendeeKg float64   `json:"per_attendee_kg"`
	Attendees     int       `json:"attendees"`
	Warnings      []string  `json:"warnings,omitempty"`
}

// VenueProfile is the detailed venue input of the venue calculator and the green score.
type VenueProfile struct {
	Type           factors.VenueType    `json:"type"            yaml:"type"`
	EnergySource   factors.EnergySource `json:"energy_source"   yaml:"energy_source"`
	AreaM2         float64              `json:"area_m2"         yaml:"area_m2"`
	DurationHours  float64              `json:"duration_hours"  yaml:"duration_hours"`
	Certifications Certifications       `json:"certifications"  yaml:"certifications"`
	// DistanceFromCenterKm is carried for presentation; no formula consumes it.
	DistanceFromCenterKm float64               `json:"distance_from_center_km" yaml:"distance_from_center_km"`
	TransitAccess        factors.TransitAccess `json:"transit_access"          yaml:"transit_access"`
}

// TravelCohort is a group of attendees sharing an origin region and travel mode.
type TravelCohort struct {
	Region   factors.CohortRegion `json:"region"          yaml:"region"`
	SharePct float64              `json:"share_pct"       yaml:"share_pct"`
	// AvgDistanceKm is one way; zero selects the region default.
	AvgDistanceKm float64            `json:"avg_distance_km" yaml:"avg_distance_km"`
	Mode          factors.TravelMode `json:"mode"            yaml:"mode"`
}

// AttendeeTravelProfile is the detailed input of the travel calculator.
type AttendeeTravelProfile struct {
	Attendees           int            `json:"attendees"            yaml:"attendees"`
	Cohorts             []TravelCohort `json:"cohorts"              yaml:"cohorts"`
	VirtualPct          float64        `json:"virtual_pct"          yaml:"virtual_pct"`
	AccommodationNights int            `json:"accommodation_nights" yaml:"accommodation_nights"`
}

// CateringProfile is the detailed input of the catering calculator.
type CateringProfile struct {
	Attendees        int                  `json:"attendees"          yaml:"attendees"`
	MealsPerDay      int                  `json:"meals_per_day"      yaml:"meals_per_day"`
	Days             int                  `json:"days"               yaml:"days"`
	MealType         factors.MealType     `json:"meal_type"          yaml:"meal_type"`
	Beverages        factors.BeverageTier `json:"beverages"          yaml:"beverages"`
	LocalSourcingPct float64              `json:"local_sourcing_pct" yaml:"local_sourcing_pct"`
	OrganicPct       float64              `json:"organic_pct"        yaml:"organic_pct"`
}

// MaterialsProfile is the detailed input of the materials calculator.
type MaterialsProfile struct {
	Attendees           int                     `json:"attendees"            yaml:"attendees"`
	Printed             factors.MaterialsTier   `json:"printed"              yaml:"printed"`
	Swag                bool                    `json:"swag"                 yaml:"swag"`
	ExhibitorMaterials  bool                    `json:"exhibitor_materials"  yaml:"exhibitor_materials"`
	Decoration          factors.DecorationLevel `json:"decoration"           yaml:"decoration"`
	DigitalAlternatives bool                    `json:"digital_alternatives" yaml:"digital_alternatives"`
	WasteManagement     factors.WasteManagement `json:"waste_management"     yaml:"waste_management"`
}

// DigitalProfile is the input of the digital (streaming) calculator.
type DigitalProfile struct {
	Attendees      int                       `json:"attendees"       yaml:"attendees"`
	StreamingHours float64                   `json:"streaming_hours" yaml:"streaming_hours"`
	Platform       factors.StreamingPlatform `json:"platform"        yaml:"platform"`
	Recording      bool                      `json:"recording"       yaml:"recording"`
	Interactive    bool                      `json:"interactive"     yaml:"interactive"`
}

// DetailedEvent combines the full profiles of an event. Digital is optional.
type DetailedEvent struct {
	Venue     VenueProfile          `json:"venue"             yaml:"venue"`
	Travel    AttendeeTravelProfile `json:"travel"            yaml:"travel"`
	Catering  CateringProfile       `json:"catering"          yaml:"catering"`
	Materials MaterialsProfile      `json:"materials"         yaml:"materials"`
	Digital   *DigitalProfile       `json:"digital,omitempty" yaml:"digital,omitempty"`
	Days      int                   `json:"days"              yaml:"days"`
}

// EventProfile is the coarse description used for early estimates.
type EventProfile struct {
	EventType     factors.EventType      `json:"event_type"    yaml:"event_type"`
	Format        factors.EventFormat    `json:"format"        yaml:"format"`
	Attendees     int                    `json:"attendees"     yaml:"attendees"`
	Days          int                    `json:"days"          yaml:"days"`
	HoursPerDay   float64                `json:"hours_per_day" yaml:"hours_per_day"`
	Sector        factors.IndustrySector `json:"sector"        yaml:"sector"`
	International bool                   `json:"international" yaml:"international"`
}
