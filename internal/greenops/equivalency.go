package greenops

import (
	"fmt"
	"math"

	"github.com/rshade/greenevent/internal/engine"
)

// equivalencyDef describes one equivalency in display order.
type equivalencyDef struct {
	typ    EquivalencyType
	factor float64
	label  string
	short  string
}

//nolint:gochecknoglobals // Compile-time constant lookup table.
var equivalencyDefs = []equivalencyDef{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven", "mi"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged", "phones"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years", "trees"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of home electricity", "home-days"},
}

// Calculate converts a carbon quantity to kilograms and computes every
// equivalency. Quantities below MinEquivalencyThresholdKg yield an empty output
// with InputKg set and no error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencyDefs))
	for _, d := range equivalencyDefs {
		v := kg / d.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           d.typ,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          d.label,
		})
	}

	miles, phones, trees := results[0].FormattedValue, results[1].FormattedValue, results[2].FormattedValue
	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			miles, phones),
		CompactText: fmt.Sprintf("(≈ %s %s, %s %s)", miles, equivalencyDefs[0].short,
			trees, equivalencyDefs[2].short),
	}, nil
}

// ForFootprint computes equivalencies for the total carbon of a footprint.
func ForFootprint(fp engine.FootprintResult) (EquivalencyOutput, error) {
	return Calculate(CarbonInput{Value: fp.TotalCarbonKg, Unit: "kg"})
}

// ForSavings computes equivalencies for the carbon avoided by a savings plan.
func ForSavings(res engine.CostSavingsResult) (EquivalencyOutput, error) {
	return Calculate(CarbonInput{Value: res.Environmental.CarbonAvoidedKg, Unit: "kg"})
}

// formatEquivalencyValue scales values of a million or more and rounds the rest
// to a comma-separated integer.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
