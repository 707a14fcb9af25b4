package engine

import (
	"fmt"
	"math"

	"github.com/rshade/greenevent/internal/factors"
)

// DistributionPolicy decides what happens when cohort shares do not sum to 100.
type DistributionPolicy string

// Distribution policies.
const (
	// DistributionWarn computes with the raw shares and attaches a warning.
	DistributionWarn DistributionPolicy = "warn"
	// DistributionReject fails with ErrDistribution.
	DistributionReject DistributionPolicy = "reject"
	// DistributionNormalize rescales the shares to sum to 100 and attaches a warning.
	DistributionNormalize DistributionPolicy = "normalize"
)

// DistributionPolicies lists every policy; the first is the default.
func DistributionPolicies() []DistributionPolicy {
	return []DistributionPolicy{DistributionWarn, DistributionReject, DistributionNormalize}
}

// ParseDistributionPolicy resolves a policy name. The empty string selects warn.
func ParseDistributionPolicy(s string) (DistributionPolicy, error) {
	switch p := DistributionPolicy(s); p {
	case "":
		return DistributionWarn, nil
	case DistributionWarn, DistributionReject, DistributionNormalize:
		return p, nil
	default:
		return "", unknownValue("distribution_policy", p)
	}
}

// TravelOptions tunes cohort distribution checking. The zero value warns with the
// default tolerance.
type TravelOptions struct {
	Policy DistributionPolicy `json:"policy"    yaml:"policy"`
	// Tolerance is in percentage points; zero selects the default of 1.0.
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// TravelResult is the output of the travel calculator.
type TravelResult struct {
	TravelKg          float64  `json:"travel_kg"`
	AccommodationKg   float64  `json:"accommodation_kg"`
	TotalKg           float64  `json:"total_kg"`
	InPersonAttendees float64  `json:"in_person_attendees"`
	ShareSumPct       float64  `json:"share_sum_pct"`
	Normalized        bool     `json:"normalized"`
	Warnings          []string `json:"warnings,omitempty"`
}

// TravelEmissions returns attendee travel and accommodation emissions. Only the
// in-person fraction of attendees travels; each cohort contributes a round trip at
// its distance and mode factor.
func TravelEmissions(p AttendeeTravelProfile, opts TravelOptions) (TravelResult, error) {
	return travelEmissions(p, opts, true)
}

// travelEmissions substitutes cohort default distances for zero distances only when
// useDefaults is set.
func travelEmissions(p AttendeeTravelProfile, opts TravelOptions, useDefaults bool) (TravelResult, error) {
	policy, err := ParseDistributionPolicy(string(opts.Policy))
	if err != nil {
		return TravelResult{}, err
	}
	tolerance := opts.Tolerance
	if tolerance == 0 {
		tolerance = factors.DefaultDistributionTolerance
	}
	if err := firstError(
		checkNonNegative("travel.tolerance", tolerance),
		checkCount("travel.attendees", p.Attendees),
		checkPercent("travel.virtual_pct", p.VirtualPct),
	); err != nil {
		return TravelResult{}, err
	}
	if p.AccommodationNights < 0 {
		return TravelResult{}, invalid("travel.accommodation_nights", p.AccommodationNights, "must not be negative")
	}

	type resolved struct {
		share, distance, factor float64
	}
	cohorts := make([]resolved, 0, len(p.Cohorts))
	var shareSum float64
	for i, c := range p.Cohorts {
		field := fmt.Sprintf("travel.cohorts[%d]", i)
		def, ok := factors.CohortDefaultDistance(c.Region)
		if !ok {
			return TravelResult{}, unknownValue(field+".region", c.Region)
		}
		factor, ok := factors.TravelFactor(c.Mode)
		if !ok {
			return TravelResult{}, unknownValue(field+".mode", c.Mode)
		}
		if err := firstError(
			checkPercent(field+".share_pct", c.SharePct),
			checkNonNegative(field+".avg_distance_km", c.AvgDistanceKm),
		); err != nil {
			return TravelResult{}, err
		}
		distance := c.AvgDistanceKm
		if distance == 0 && useDefaults {
			distance = def
		}
		shareSum += c.SharePct
		cohorts = append(cohorts, resolved{share: c.SharePct, distance: distance, factor: factor})
	}

	inPerson := float64(p.Attendees) * (1 - p.VirtualPct/100)
	result := TravelResult{InPersonAttendees: inPerson, ShareSumPct: shareSum}

	if inPerson > 0 && math.Abs(shareSum-100) > tolerance {
		switch policy {
		case DistributionReject:
			return TravelResult{}, &ValidationError{
				Field:  "travel.cohorts",
				Value:  shareSum,
				Reason: fmt.Sprintf("shares must sum to 100 within %.1f points", tolerance),
				Kind:   ErrDistribution,
			}
		case DistributionNormalize:
			if shareSum == 0 {
				return TravelResult{}, &ValidationError{
					Field:  "travel.cohorts",
					Value:  shareSum,
					Reason: "shares sum to zero and cannot be normalized",
					Kind:   ErrDistribution,
				}
			}
			for i := range cohorts {
				cohorts[i].share = cohorts[i].share / shareSum * 100
			}
			result.Normalized = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("travel cohort shares summed to %.1f%% and were normalized to 100%%", shareSum))
		case DistributionWarn:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("travel cohort shares sum to %.1f%%, not 100%%; travel emissions use the shares as given", shareSum))
		}
	}

	for _, c := range cohorts {
		result.TravelKg += inPerson * c.share / 100 * factors.RoundTrip * c.distance * c.factor
	}
	result.AccommodationKg = inPerson * float64(p.AccommodationNights) * factors.AccommodationFactor
	result.TotalKg = result.TravelKg + result.AccommodationKg
	return result, nil
}

// CohortForDistance classifies a one-way distance into the cohort region whose
// default distance it is closest to in scale.
func CohortForDistance(km float64) factors.CohortRegion {
	switch {
	case km <= 50:
		return factors.CohortLocal
	case km <= 800:
		return factors.CohortDomestic
	case km <= 3000:
		return factors.CohortContinental
	default:
		return factors.CohortInternational
	}
}
