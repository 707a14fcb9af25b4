package engine

import (
	"fmt"
	"sort"

	"github.com/rshade/greenevent/internal/factors"
)

// Recommendation is one ranked improvement action.
type Recommendation struct {
	Category           Category `json:"category"`
	Action             string   `json:"action"`
	Description        string   `json:"description"`
	EstimatedSavingsKg float64  `json:"estimated_savings_kg"`
	PotentialFraction  float64  `json:"potential_fraction"`
	// Effort is 1 (low) to 3 (high).
	Effort   int     `json:"effort"`
	Priority float64 `json:"priority"`
	Rank     int     `json:"rank"`
}

type recommendationTemplate struct {
	category Category
	action   string
	fraction float64
	effort   int
}

// Templates in category declaration order.
var recommendationTemplates = []recommendationTemplate{
	{CategoryVenue, "Switch to a certified venue on renewable energy", 0.30, 2},
	{CategoryFoodBeverage, "Serve a plant-forward menu", 0.35, 1},
	{CategoryTransport, "Provide shuttles and promote low-carbon travel", 0.40, 2},
	{CategoryMaterials, "Go digital-first for printed materials and swag", 0.80, 1},
}

// GenerateRecommendations ranks improvement actions by estimated savings per unit of
// effort, highest first. Categories with no emissions produce no recommendation;
// equal priorities keep category declaration order. The event type and format only
// shape the description text.
func GenerateRecommendations(b Breakdown, t factors.EventType, f factors.EventFormat) ([]Recommendation, error) {
	if _, ok := factors.BenchmarkFor(t); !ok {
		return nil, unknownValue("event_type", t)
	}
	if _, ok := factors.FormatExperience(f); !ok {
		return nil, unknownValue("format", f)
	}
	for _, c := range Categories() {
		if err := checkNonNegative("breakdown."+string(c), b.Get(c)); err != nil {
			return nil, err
		}
	}

	recs := make([]Recommendation, 0, len(recommendationTemplates))
	for _, tpl := range recommendationTemplates {
		savings := b.Get(tpl.category) * tpl.fraction
		if savings <= 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Category:           tpl.category,
			Action:             tpl.action,
			Description:        describe(tpl, t, f, savings),
			EstimatedSavingsKg: savings,
			PotentialFraction:  tpl.fraction,
			Effort:             tpl.effort,
			Priority:           savings / float64(tpl.effort),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	for i := range recs {
		recs[i].Rank = i + 1
	}
	return recs, nil
}

func describe(tpl recommendationTemplate, t factors.EventType, f factors.EventFormat, savings float64) string {
	var detail string
	switch tpl.category {
	case CategoryVenue:
		detail = "Choose a venue with green building certification, LED lighting and a renewable supply contract"
		if f == factors.FormatVirtual || f == factors.FormatHybrid {
			detail = "Produce streams from a renewable-powered studio and right-size the physical space"
		}
	case CategoryFoodBeverage:
		detail = "Make vegetarian or vegan dishes the default and source ingredients locally"
	case CategoryTransport:
		detail = "Run shuttles from transit hubs and encourage rail over short flights"
		if f == factors.FormatHybrid {
			detail = "Run shuttles from transit hubs and invite long-distance attendees to join remotely"
		}
	case CategoryMaterials:
		detail = "Replace printed programmes with an event app and drop single-use giveaways"
	}
	return fmt.Sprintf("%s for this %s %s. Estimated reduction %.0f kg CO2e (%.0f%% of the category).",
		detail, f, t, savings, tpl.fraction*100)
}
