package engine

import (
	"math"

	"github.com/rshade/greenevent/internal/factors"
)

// Percentile ranks a per-attendee footprint against a benchmark range. At or below
// the best value it returns 95, at or above the worst value 5, and interpolates
// linearly between. NaN ranks as the worst value.
func Percentile(value float64, b factors.Benchmark) float64 {
	switch {
	case math.IsNaN(value):
		return factors.PercentileBottom
	case value <= b.Best:
		return factors.PercentileTop
	case value >= b.Worst:
		return factors.PercentileBottom
	}
	p := factors.PercentileTop - (value-b.Best)/(b.Worst-b.Best)*factors.PercentileSpan
	return clamp(p, 0, 100)
}

// Rating is a coarse label of how a footprint compares with its industry.
type Rating string

// Ratings from best to worst.
const (
	RatingExcellent    Rating = "excellent"
	RatingGood         Rating = "good"
	RatingAverage      Rating = "average"
	RatingBelowAverage Rating = "below-average"
	RatingPoor         Rating = "poor"
)

func ratingFor(percentile float64) Rating {
	switch {
	case percentile >= 80:
		return RatingExcellent
	case percentile >= 60:
		return RatingGood
	case percentile >= 40:
		return RatingAverage
	case percentile >= 20:
		return RatingBelowAverage
	default:
		return RatingPoor
	}
}

// BenchmarkResult compares a footprint with the industry range of its event type.
type BenchmarkResult struct {
	EventType       factors.EventType `json:"event_type"`
	PerAttendeeKg   float64           `json:"per_attendee_kg"`
	Benchmark       factors.Benchmark `json:"benchmark"`
	Percentile      float64           `json:"percentile"`
	VsAveragePct    float64           `json:"vs_average_pct"`
	Rating          Rating            `json:"rating"`
	BetterThanAvg   bool              `json:"better_than_average"`
	AverageEventKg  float64           `json:"average_event_kg"`
	PotentialSaving float64           `json:"potential_saving_kg"`
}

// BenchmarkFootprint ranks a footprint against its event type. VsAveragePct is
// negative when the event beats the industry average. PotentialSaving is the
// reduction needed to reach the best-practice value, never negative.
func BenchmarkFootprint(fp FootprintResult, attendees int, t factors.EventType) (BenchmarkResult, error) {
	b, ok := factors.BenchmarkFor(t)
	if !ok {
		return BenchmarkResult{}, unknownValue("event_type", t)
	}
	if err := firstError(
		checkCount("attendees", attendees),
		checkNonNegative("total_carbon_kg", fp.TotalCarbonKg),
	); err != nil {
		return BenchmarkResult{}, err
	}

	n := float64(attendees)
	perAttendee := fp.TotalCarbonKg / n
	pct := Percentile(perAttendee, b)
	saving := (perAttendee - b.Best) * n
	if saving < 0 {
		saving = 0
	}
	return BenchmarkResult{
		EventType:       t,
		PerAttendeeKg:   perAttendee,
		Benchmark:       b,
		Percentile:      pct,
		VsAveragePct:    (perAttendee - b.Average) / b.Average * 100,
		Rating:          ratingFor(pct),
		BetterThanAvg:   perAttendee < b.Average,
		AverageEventKg:  b.Average * n,
		PotentialSaving: saving,
	}, nil
}

// EarlyEstimate is a coarse footprint derived from an EventProfile before any
// venue, catering or travel details are known.
type EarlyEstimate struct {
	PerAttendeeKg float64           `json:"per_attendee_kg"`
	TotalCarbonKg float64           `json:"total_carbon_kg"`
	Breakdown     Breakdown         `json:"breakdown"`
	Benchmark     factors.Benchmark `json:"benchmark"`
	Percentile    float64           `json:"percentile"`
	Confidence    string            `json:"confidence"`
}

// Expected category split of an early estimate, per format. Shares sum to 1.
var formatSplits = map[factors.EventFormat]Breakdown{
	factors.FormatInPerson: {Venue: 0.15, FoodBeverage: 0.20, Transport: 0.60, Materials: 0.05},
	factors.FormatHybrid:   {Venue: 0.25, FoodBeverage: 0.20, Transport: 0.50, Materials: 0.05},
	factors.FormatVirtual:  {Venue: 0.90, FoodBeverage: 0.00, Transport: 0.00, Materials: 0.10},
}

// PreAssess produces an early estimate: the benchmark average per attendee scaled by
// format, duration in days, industry sector and an international multiplier.
func PreAssess(p EventProfile) (EarlyEstimate, error) {
	b, ok := factors.BenchmarkFor(p.EventType)
	if !ok {
		return EarlyEstimate{}, unknownValue("event_type", p.EventType)
	}
	formatMult, ok := factors.FormatCarbonMultiplier(p.Format)
	if !ok {
		return EarlyEstimate{}, unknownValue("format", p.Format)
	}
	sector, ok := factors.SectorMultiplier(p.Sector)
	if !ok {
		return EarlyEstimate{}, unknownValue("sector", p.Sector)
	}
	if err := firstError(
		checkCount("attendees", p.Attendees),
		checkCount("days", p.Days),
		checkNonNegative("hours_per_day", p.HoursPerDay),
	); err != nil {
		return EarlyEstimate{}, err
	}

	perAttendee := b.Average * formatMult * float64(p.Days) * sector
	if p.International {
		perAttendee *= factors.InternationalMultiplier
	}
	total := perAttendee * float64(p.Attendees)
	split := formatSplits[p.Format]
	return EarlyEstimate{
		PerAttendeeKg: perAttendee,
		TotalCarbonKg: total,
		Breakdown: Breakdown{
			Venue:        total * split.Venue,
			FoodBeverage: total * split.FoodBeverage,
			Transport:    total * split.Transport,
			Materials:    total * split.Materials,
		},
		Benchmark:  b,
		Percentile: Percentile(perAttendee, b),
		Confidence: "low",
	}, nil
}
