package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/factors"
)

func sampleCosts() CostInputs {
	return CostInputs{
		Venue: 1000, Energy: 1000, Catering: 1000,
		Transport: 1000, Materials: 1000, WasteDisposal: 1000,
		Region: factors.RegionUS, Attendees: 100, Days: 1,
		Adoption: factors.AdoptionComprehensive,
	}
}

func TestCalculateCostSavings(t *testing.T) {
	cfg := sampleConfiguration()
	fp, err := CalculateFootprint(cfg)
	require.NoError(t, err)

	got, err := CalculateCostSavings(cfg, fp, sampleCosts())
	require.NoError(t, err)

	wantFractions := map[factors.CostCategory]float64{
		factors.CostVenue:         0.05,
		factors.CostEnergy:        0.05,
		factors.CostCatering:      0.30, // vegan
		factors.CostTransport:     0.05,
		factors.CostMaterials:     0.35, // no swag, minimal decoration
		factors.CostWasteDisposal: 0.05,
	}
	for i, cat := range factors.CostCategories() {
		c := got.Categories[i]
		assert.Equal(t, cat, c.Category)
		assert.InDelta(t, wantFractions[cat], c.ReductionFraction, delta, "%s", cat)
		assert.InDelta(t, 1000*(1-wantFractions[cat]), c.Sustainable, 1e-6, "%s", cat)
	}
	assert.InDelta(t, 6000.0, got.TraditionalTotal, delta)
	assert.InDelta(t, 5150.0, got.SustainableTotal, 1e-6)
	assert.InDelta(t, 850.0, got.TotalSavings, 1e-6)
	assert.InDelta(t, 850.0/6000*100, got.SavingsPct, 1e-6)
	assert.InDelta(t, 8.5, got.PerAttendeeSavings, 1e-6)
	assert.Equal(t, "USD", got.Currency)

	env := got.Environmental
	wantAvoided := fp.Breakdown.Venue*0.05 + fp.Breakdown.FoodBeverage*0.30 +
		fp.Breakdown.Transport*0.05 + fp.Breakdown.Materials*0.35
	assert.InDelta(t, wantAvoided, env.CarbonAvoidedKg, 1e-6)
	assert.InDelta(t, wantAvoided*(0.030+0.051), env.CarbonValue, 1e-6)
	assert.InDelta(t, fp.TotalWaterL*850/6000, env.WaterSavedL, 1e-6)
	assert.InDelta(t, fp.TotalWasteKg*0.05, env.WasteDivertedKg, 1e-6)
	assert.InDelta(t, env.CarbonValue+env.WaterValue+env.WasteValue, env.Total, 1e-9)

	fin := got.Financials
	assert.InDelta(t, 515.0, fin.ImplementationCost, 1e-6)
	assert.InDelta(t, 120.0, fin.BrandValue, 1e-9)
	assert.InDelta(t, 60.0, fin.RiskMitigation, 1e-9)
	benefit := 850 + env.Total + 120 + 60
	assert.InDelta(t, benefit, fin.AnnualBenefit, 1e-6)
	assert.InDelta(t, benefit/515*100, fin.ROIPct, 1e-6)
	assert.InDelta(t, fin.ROIPct-100, fin.IRRPct, 1e-6)
	assert.InDelta(t, math.Max(1, 515/(benefit/12)), fin.PaybackMonths, 1e-6)
	wantNPV := -515 + benefit/1.05 + benefit/(1.05*1.05) + benefit/(1.05*1.05*1.05)
	assert.InDelta(t, wantNPV, fin.NPV, 1e-6)
}

func TestCalculateCostSavings_SustainableNeverExceedsTraditional(t *testing.T) {
	green := sampleConfiguration()
	green.Venue.Type = factors.VenueOutdoor
	green.Venue.EnergySource = factors.EnergySolar
	green.Venue.Certifications = Certifications{true, true, true, true, true}
	green.Catering.LocalSourcingPct = 100
	green.Transport.Shuttle = true
	green.Transport.Mode = factors.TravelWalkBike
	green.Materials.DigitalAlternatives = true
	green.Materials.WasteManagement = factors.WasteZeroWaste

	for _, cfg := range []EventConfiguration{sampleConfiguration(), green} {
		fp, err := CalculateFootprint(cfg)
		require.NoError(t, err)
		for _, tier := range factors.AdoptionTiers() {
			in := sampleCosts()
			in.Adoption = tier
			got, err := CalculateCostSavings(cfg, fp, in)
			require.NoError(t, err)
			for _, c := range got.Categories {
				ceiling, _ := factors.ReductionCeiling(c.Category)
				assert.LessOrEqual(t, c.Sustainable, c.Traditional, "%s/%s", tier, c.Category)
				assert.LessOrEqual(t, c.ReductionFraction, ceiling, "%s/%s", tier, c.Category)
				assert.Positive(t, c.Sustainable, "%s/%s", tier, c.Category)
			}
			assert.GreaterOrEqual(t, got.Financials.PaybackMonths, 1.0)
		}
	}
}

func TestCalculateCostSavings_AdoptionScalesSavings(t *testing.T) {
	cfg := sampleConfiguration()
	fp, err := CalculateFootprint(cfg)
	require.NoError(t, err)

	prev := -1.0
	for _, tier := range factors.AdoptionTiers() {
		in := sampleCosts()
		in.Adoption = tier
		got, err := CalculateCostSavings(cfg, fp, in)
		require.NoError(t, err)
		assert.Greater(t, got.TotalSavings, prev, "%s", tier)
		prev = got.TotalSavings
	}
}

func TestCalculateCostSavings_Invalid(t *testing.T) {
	cfg := sampleConfiguration()
	fp, err := CalculateFootprint(cfg)
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(c *CostInputs)
	}{
		{"all costs zero", func(c *CostInputs) { *c = CostInputs{Region: factors.RegionUS, Attendees: 1, Days: 1, Adoption: factors.AdoptionBasic} }},
		{"negative cost", func(c *CostInputs) { c.Catering = -5 }},
		{"unknown region", func(c *CostInputs) { c.Region = "atlantis" }},
		{"missing adoption", func(c *CostInputs) { c.Adoption = "" }},
		{"zero attendees", func(c *CostInputs) { c.Attendees = 0 }},
		{"zero days", func(c *CostInputs) { c.Days = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleCosts()
			tt.modify(&in)
			_, err := CalculateCostSavings(cfg, fp, in)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}

	bad := cfg
	bad.Venue.Size = "enormous"
	_, err = CalculateCostSavings(bad, fp, sampleCosts())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	t.Run("negative breakdown", func(t *testing.T) {
		handBuilt := fp
		handBuilt.Breakdown.Transport = -1
		_, err := CalculateCostSavings(cfg, handBuilt, sampleCosts())
		require.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "footprint.breakdown.transport")
	})
}

func TestApplicableTaxIncentives(t *testing.T) {
	programs, ok := factors.TaxIncentivePrograms(factors.RegionUS)
	require.True(t, ok)

	tests := []struct {
		score float64
		tier  float64
	}{
		{85, 1.0},
		{80, 1.0},
		{65, 0.7},
		{60, 0.7},
		{59.9, 0.4},
		{0, 0.4},
	}
	for _, tt := range tests {
		got, err := ApplicableTaxIncentives(factors.RegionUS, FootprintResult{TotalCarbonKg: 1000, GreenScore: tt.score})
		require.NoError(t, err)
		require.Len(t, got, len(programs))
		for i, inc := range got {
			assert.Equal(t, programs[i].Name, inc.Name)
			assert.InDelta(t, tt.tier, inc.TierFraction, delta)
			assert.InDelta(t, programs[i].Cap*tt.tier, inc.EstimatedValue, 1e-6, "score %.1f", tt.score)
			assert.LessOrEqual(t, inc.EstimatedValue, inc.Cap)
			assert.Equal(t, "USD", inc.Currency)
		}
	}

	_, err := ApplicableTaxIncentives("atlantis", FootprintResult{GreenScore: 50})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = ApplicableTaxIncentives(factors.RegionEU, FootprintResult{GreenScore: 140})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
