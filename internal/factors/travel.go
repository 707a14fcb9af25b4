package factors

// TravelMode is how attendees reach the event.
type TravelMode string

// Recognized travel modes.
const (
	TravelWalkBike      TravelMode = "walk-bike"
	TravelPublicTransit TravelMode = "public-transit"
	TravelTrain         TravelMode = "train"
	TravelBus           TravelMode = "bus"
	TravelElectricCar   TravelMode = "electric-car"
	TravelCarpool       TravelMode = "carpool"
	TravelCar           TravelMode = "car"
	TravelFlightShort   TravelMode = "flight-short"
	TravelFlightLong    TravelMode = "flight-long"
)

// TravelModes lists every travel mode in declaration order.
func TravelModes() []TravelMode {
	return []TravelMode{
		TravelWalkBike, TravelPublicTransit, TravelTrain, TravelBus, TravelElectricCar,
		TravelCarpool, TravelCar, TravelFlightShort, TravelFlightLong,
	}
}

// TravelFactor returns kg CO2e per passenger-kilometre.
func TravelFactor(m TravelMode) (float64, bool) {
	switch m {
	case TravelWalkBike:
		return 0, true
	case TravelPublicTransit:
		return 0.089, true
	case TravelTrain:
		return 0.041, true
	case TravelBus:
		return 0.105, true
	case TravelElectricCar:
		return 0.053, true
	case TravelCarpool:
		return 0.086, true
	case TravelCar:
		return 0.171, true
	case TravelFlightShort:
		return 0.255, true
	case TravelFlightLong:
		return 0.195, true
	default:
		return 0, false
	}
}

// IsLowCarbonMode reports whether a mode qualifies for the low-carbon transport
// savings signal. Walking and cycling are reported separately by IsActiveMode.
func IsLowCarbonMode(m TravelMode) bool {
	switch m {
	case TravelPublicTransit, TravelTrain, TravelBus, TravelElectricCar, TravelCarpool:
		return true
	case TravelWalkBike, TravelCar, TravelFlightShort, TravelFlightLong:
		return false
	default:
		return false
	}
}

// IsActiveMode reports whether a mode is human powered.
func IsActiveMode(m TravelMode) bool {
	return m == TravelWalkBike
}

// CohortRegion groups attendees by how far they travel.
type CohortRegion string

// Recognized cohort regions.
const (
	CohortLocal         CohortRegion = "local"
	CohortDomestic      CohortRegion = "domestic"
	CohortContinental   CohortRegion = "continental"
	CohortInternational CohortRegion = "international"
)

// CohortRegions lists every cohort region in declaration order.
func CohortRegions() []CohortRegion {
	return []CohortRegion{CohortLocal, CohortDomestic, CohortContinental, CohortInternational}
}

// CohortDefaultDistance returns the one-way distance in km assumed for a cohort
// when the caller leaves it at zero.
func CohortDefaultDistance(r CohortRegion) (float64, bool) {
	switch r {
	case CohortLocal:
		return 15, true
	case CohortDomestic:
		return 300, true
	case CohortContinental:
		return 1500, true
	case CohortInternational:
		return 6000, true
	default:
		return 0, false
	}
}

const (
	// AccommodationFactor is kg CO2e per attendee per hotel night.
	AccommodationFactor = 15.2

	// ShuttleReduction is the fractional transport reduction when a shuttle service runs.
	ShuttleReduction = 0.15

	// RoundTrip converts a one-way distance into a round trip.
	RoundTrip = 2.0

	// DefaultDistributionTolerance is the allowed deviation, in percentage points,
	// of cohort shares from 100.
	DefaultDistributionTolerance = 1.0
)
