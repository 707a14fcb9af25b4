package engine

import (
	"math"

	"github.com/rshade/greenevent/internal/factors"
)

// TaxIncentive is a regional programme with its value estimated from the green score.
type TaxIncentive struct {
	Name           string               `json:"name"`
	Region         factors.Region       `json:"region"`
	Category       factors.CostCategory `json:"category"`
	RatePct        float64              `json:"rate_pct"`
	Cap            float64              `json:"cap"`
	TierFraction   float64              `json:"tier_fraction"`
	EstimatedValue float64              `json:"estimated_value"`
	Currency       string               `json:"currency"`
}

// IncentiveTierFraction maps a green score onto the fraction of each programme cap
// an event can expect to claim.
func IncentiveTierFraction(score float64) float64 {
	switch {
	case score >= factors.IncentiveHighScore:
		return factors.IncentiveHighFraction
	case score >= factors.IncentiveMediumScore:
		return factors.IncentiveMidFraction
	default:
		return factors.IncentiveLowFraction
	}
}

// ApplicableTaxIncentives lists the programmes of a region with their estimated
// value, min(cap, cap × tier fraction).
func ApplicableTaxIncentives(region factors.Region, fp FootprintResult) ([]TaxIncentive, error) {
	programs, ok := factors.TaxIncentivePrograms(region)
	if !ok {
		return nil, unknownValue("region", region)
	}
	pricing, _ := factors.PricingFor(region)
	if err := checkNonNegative("green_score", fp.GreenScore); err != nil {
		return nil, err
	}
	if fp.GreenScore > factors.ScoreMax {
		return nil, invalid("green_score", fp.GreenScore, "must be between 0 and 100")
	}

	tier := IncentiveTierFraction(fp.GreenScore)
	out := make([]TaxIncentive, 0, len(programs))
	for _, p := range programs {
		out = append(out, TaxIncentive{
			Name:           p.Name,
			Region:         p.Region,
			Category:       p.Category,
			RatePct:        p.RatePct,
			Cap:            p.Cap,
			TierFraction:   tier,
			EstimatedValue: math.Min(p.Cap, p.Cap*tier),
			Currency:       pricing.Currency,
		})
	}
	return out, nil
}
