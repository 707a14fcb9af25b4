package factors

// EventType is the category of event, used for benchmarking.
type EventType string

// Recognized event types.
const (
	EventConference       EventType = "conference"
	EventTradeShow        EventType = "trade-show"
	EventCorporateMeeting EventType = "corporate-meeting"
	EventWorkshop         EventType = "workshop"
	EventWedding          EventType = "wedding"
	EventGala             EventType = "gala"
	EventFestival         EventType = "festival"
	EventConcert          EventType = "concert"
)

// EventTypes lists every event type in declaration order.
func EventTypes() []EventType {
	return []EventType{
		EventConference, EventTradeShow, EventCorporateMeeting, EventWorkshop,
		EventWedding, EventGala, EventFestival, EventConcert,
	}
}

// Benchmark is an industry reference range of kg CO2e per attendee.
type Benchmark struct {
	Best    float64 `json:"best"    yaml:"best"`
	Average float64 `json:"average" yaml:"average"`
	Worst   float64 `json:"worst"   yaml:"worst"`
}

// BenchmarkFor returns the per-attendee benchmark range for an event type.
func BenchmarkFor(t EventType) (Benchmark, bool) {
	switch t {
	case EventConference:
		return Benchmark{Best: 50, Average: 150, Worst: 400}, true
	case EventTradeShow:
		return Benchmark{Best: 80, Average: 220, Worst: 550}, true
	case EventCorporateMeeting:
		return Benchmark{Best: 15, Average: 60, Worst: 180}, true
	case EventWorkshop:
		return Benchmark{Best: 10, Average: 40, Worst: 120}, true
	case EventWedding:
		return Benchmark{Best: 30, Average: 95, Worst: 250}, true
	case EventGala:
		return Benchmark{Best: 40, Average: 120, Worst: 300}, true
	case EventFestival:
		return Benchmark{Best: 20, Average: 75, Worst: 220}, true
	case EventConcert:
		return Benchmark{Best: 15, Average: 55, Worst: 160}, true
	default:
		return Benchmark{}, false
	}
}

// Percentile bounds for benchmark ranking.
const (
	PercentileTop    = 95.0
	PercentileBottom = 5.0
	PercentileSpan   = PercentileTop - PercentileBottom
)

// EventFormat is how an event is delivered.
type EventFormat string

// Recognized formats, in comparison order.
const (
	FormatInPerson EventFormat = "in-person"
	FormatVirtual  EventFormat = "virtual"
	FormatHybrid   EventFormat = "hybrid"
)

// EventFormats lists every format in comparison order. Ties in format ranking
// are broken by this order.
func EventFormats() []EventFormat {
	return []EventFormat{FormatInPerson, FormatVirtual, FormatHybrid}
}

// Experience holds the fixed 0-100 experience scores of a delivery format.
// These are industry-consensus constants, not model outputs.
type Experience struct {
	Engagement    float64 `json:"engagement"`
	Accessibility float64 `json:"accessibility"`
	Networking    float64 `json:"networking"`
}

// FormatExperience returns the experience scores for a format.
func FormatExperience(f EventFormat) (Experience, bool) {
	switch f {
	case FormatInPerson:
		return Experience{Engagement: 90, Accessibility: 60, Networking: 95}, true
	case FormatVirtual:
		return Experience{Engagement: 60, Accessibility: 95, Networking: 40}, true
	case FormatHybrid:
		return Experience{Engagement: 80, Accessibility: 85, Networking: 75}, true
	default:
		return Experience{}, false
	}
}

// FormatCarbonMultiplier scales the benchmark average for early estimates.
func FormatCarbonMultiplier(f EventFormat) (float64, bool) {
	switch f {
	case FormatInPerson:
		return 1.0, true
	case FormatVirtual:
		return 0.1, true
	case FormatHybrid:
		return 0.6, true
	default:
		return 0, false
	}
}

// Format comparison model parameters.
const (
	DefaultInPersonShare           = 0.5
	HybridVenueDampening           = 0.6
	MixedTravelFactor              = 0.15
	VenueKWhPerAttendeeDay         = 8.0
	ComparisonMealsPerDay          = 2
	ComparisonStreamingHoursPerDay = 6.0

	TravelCostPerKm                = 0.25
	VenueCostPerAttendeeDay        = 50.0
	CateringCostPerAttendeeDay     = 40.0
	AccommodationCostPerNight      = 150.0
	VirtualCostPerAttendeeDay      = 15.0
	HybridProductionPerAttendeeDay = 10.0

	CompositeCarbonDivisor = 20.0
)

// IndustrySector is the organiser's sector, used for early estimates.
type IndustrySector string

// Recognized industry sectors.
const (
	SectorTechnology    IndustrySector = "technology"
	SectorFinance       IndustrySector = "finance"
	SectorHealthcare    IndustrySector = "healthcare"
	SectorManufacturing IndustrySector = "manufacturing"
	SectorEducation     IndustrySector = "education"
	SectorNonprofit     IndustrySector = "nonprofit"
	SectorGovernment    IndustrySector = "government"
	SectorOther         IndustrySector = "other"
)

// IndustrySectors lists every sector in declaration order.
func IndustrySectors() []IndustrySector {
	return []IndustrySector{
		SectorTechnology, SectorFinance, SectorHealthcare, SectorManufacturing,
		SectorEducation, SectorNonprofit, SectorGovernment, SectorOther,
	}
}

// SectorMultiplier scales early estimates by sector travel and hospitality habits.
func SectorMultiplier(s IndustrySector) (float64, bool) {
	switch s {
	case SectorTechnology:
		return 0.9, true
	case SectorFinance:
		return 1.0, true
	case SectorHealthcare:
		return 1.1, true
	case SectorManufacturing:
		return 1.2, true
	case SectorEducation:
		return 0.85, true
	case SectorNonprofit:
		return 0.8, true
	case SectorGovernment, SectorOther:
		return 1.0, true
	default:
		return 0, false
	}
}

// InternationalMultiplier applies to early estimates of international events.
const InternationalMultiplier = 1.8
