// Package factors holds the constant reference data used by the estimation engine.
//
// Every categorical input is a closed string enumeration. Lookups are exhaustive
// switches that return (value, ok); an unknown key always reports ok == false and
// never a silent zero, so callers can surface a configuration error.
package factors

// VenueType identifies the kind of venue hosting an event.
type VenueType string

// Recognized venue types.
const (
	VenueConventionCenter VenueType = "convention-center"
	VenueHotel            VenueType = "hotel"
	VenueConferenceCenter VenueType = "conference-center"
	VenueStadium          VenueType = "stadium"
	VenueRestaurant       VenueType = "restaurant"
	VenueUniversity       VenueType = "university"
	VenueCoworking        VenueType = "coworking"
	VenueOutdoor          VenueType = "outdoor"
	VenueHybridSpace      VenueType = "hybrid-space"
)

// VenueTypes lists every venue type in declaration order.
func VenueTypes() []VenueType {
	return []VenueType{
		VenueConventionCenter, VenueHotel, VenueConferenceCenter, VenueStadium,
		VenueRestaurant, VenueUniversity, VenueCoworking, VenueOutdoor, VenueHybridSpace,
	}
}

// EnergyIntensity returns the venue's energy use in kWh per square metre per hour.
func EnergyIntensity(t VenueType) (float64, bool) {
	switch t {
	case VenueConventionCenter:
		return 0.08, true
	case VenueHotel:
		return 0.10, true
	case VenueConferenceCenter:
		return 0.07, true
	case VenueStadium:
		return 0.12, true
	case VenueRestaurant:
		return 0.15, true
	case VenueUniversity:
		return 0.06, true
	case VenueCoworking:
		return 0.05, true
	case VenueOutdoor:
		return 0.01, true
	case VenueHybridSpace:
		return 0.04, true
	default:
		return 0, false
	}
}

// VenueBonusPoints returns the fixed green-score bonus for a venue type.
// Only outdoor and hybrid-space venues earn a bonus.
func VenueBonusPoints(t VenueType) (float64, bool) {
	switch t {
	case VenueOutdoor, VenueHybridSpace:
		return 5, true
	case VenueConventionCenter, VenueHotel, VenueConferenceCenter, VenueStadium,
		VenueRestaurant, VenueUniversity, VenueCoworking:
		return 0, true
	default:
		return 0, false
	}
}

// SizeClass is a coarse venue size used when the floor area is not known.
type SizeClass string

// Recognized size classes.
const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeXLarge SizeClass = "xlarge"
)

// SizeClasses lists every size class in declaration order.
func SizeClasses() []SizeClass {
	return []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}
}

// FloorArea returns the representative floor area in square metres for a size class.
func FloorArea(s SizeClass) (float64, bool) {
	switch s {
	case SizeSmall:
		return 150, true
	case SizeMedium:
		return 500, true
	case SizeLarge:
		return 1500, true
	case SizeXLarge:
		return 5000, true
	default:
		return 0, false
	}
}

// EnergySource is the electricity supply of a venue.
type EnergySource string

// Recognized energy sources.
const (
	EnergyRenewable       EnergySource = "renewable"
	EnergySolar           EnergySource = "solar"
	EnergyWind            EnergySource = "wind"
	EnergyHydro           EnergySource = "hydro"
	EnergyMixed           EnergySource = "mixed"
	EnergyGridStandard    EnergySource = "grid-standard"
	EnergyNaturalGas      EnergySource = "natural-gas"
	EnergyDieselGenerator EnergySource = "diesel-generator"
)

// EnergySources lists every energy source in declaration order.
func EnergySources() []EnergySource {
	return []EnergySource{
		EnergyRenewable, EnergySolar, EnergyWind, EnergyHydro,
		EnergyMixed, EnergyGridStandard, EnergyNaturalGas, EnergyDieselGenerator,
	}
}

// EmissionFactor returns kg CO2e per kWh for an energy source.
func EmissionFactor(s EnergySource) (float64, bool) {
	switch s {
	case EnergyRenewable:
		return 0.02, true
	case EnergySolar:
		return 0.041, true
	case EnergyWind:
		return 0.011, true
	case EnergyHydro:
		return 0.024, true
	case EnergyMixed:
		return 0.25, true
	case EnergyGridStandard:
		return 0.42, true
	case EnergyNaturalGas:
		return 0.49, true
	case EnergyDieselGenerator:
		return WorstEnergyFactor, true
	default:
		return 0, false
	}
}

// WorstEnergyFactor is the highest energy emission factor in the table and the
// reference point for the energy component of the green score.
const WorstEnergyFactor = 0.82

// IsRenewable reports whether the source belongs to the renewable family.
func IsRenewable(s EnergySource) bool {
	switch s {
	case EnergyRenewable, EnergySolar, EnergyWind, EnergyHydro:
		return true
	case EnergyMixed, EnergyGridStandard, EnergyNaturalGas, EnergyDieselGenerator:
		return false
	default:
		return false
	}
}

// TransitAccess is the public transport access tier of a venue.
type TransitAccess string

// Recognized transit access tiers.
const (
	TransitNone      TransitAccess = "none"
	TransitLimited   TransitAccess = "limited"
	TransitModerate  TransitAccess = "moderate"
	TransitExcellent TransitAccess = "excellent"
)

// TransitAccessTiers lists every tier in declaration order.
func TransitAccessTiers() []TransitAccess {
	return []TransitAccess{TransitNone, TransitLimited, TransitModerate, TransitExcellent}
}

// TransitScore maps an access tier onto a 0-100 transit score.
func TransitScore(t TransitAccess) (float64, bool) {
	switch t {
	case TransitNone:
		return 0, true
	case TransitLimited:
		return 30, true
	case TransitModerate:
		return 60, true
	case TransitExcellent:
		return 90, true
	default:
		return 0, false
	}
}

// Certification fractional reductions, applied multiplicatively in this order:
// green building, efficient HVAC, LED lighting, water conservation, waste program.
const (
	GreenBuildingReduction     = 0.20
	EfficientHVACReduction     = 0.10
	LEDLightingReduction       = 0.05
	WaterConservationReduction = 0.03
	WasteProgramReduction      = 0.02
)

// Green-score points per active certification or program.
const (
	GreenBuildingPoints     = 15.0
	EfficientHVACPoints     = 5.0
	LEDLightingPoints       = 5.0
	WaterConservationPoints = 5.0
	WasteProgramPoints      = 5.0
)

// Green score composition.
const (
	ScoreBaseline        = 50.0
	EnergyScoreMaxPoints = 20.0
	TransitScoreDivisor  = 10.0
	ScoreMin             = 0.0
	ScoreMax             = 100.0
)
