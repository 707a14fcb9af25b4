package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/engine"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		input       CarbonInput
		wantMiles   float64
		wantTrees   float64
		wantIsEmpty bool
		wantErr     error
	}{
		{name: "150 kg", input: CarbonInput{Value: 150, Unit: "kg"}, wantMiles: 781.25, wantTrees: 2.5},
		{name: "grams", input: CarbonInput{Value: 150000, Unit: "g"}, wantMiles: 781.25, wantTrees: 2.5},
		{name: "tonnes", input: CarbonInput{Value: 0.15, Unit: "tCO2e"}, wantMiles: 781.25, wantTrees: 2.5},
		{name: "below threshold", input: CarbonInput{Value: 0.5, Unit: "kg"}, wantIsEmpty: true},
		{name: "zero", input: CarbonInput{Value: 0, Unit: "kg"}, wantIsEmpty: true},
		{name: "negative", input: CarbonInput{Value: -1, Unit: "kg"}, wantIsEmpty: true, wantErr: ErrNegativeValue},
		{name: "bad unit", input: CarbonInput{Value: 10, Unit: "oz"}, wantIsEmpty: true, wantErr: ErrInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Calculate(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, out.IsEmpty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsEmpty, out.IsEmpty)
			if tt.wantIsEmpty {
				assert.Empty(t, out.Results)
				return
			}
			require.Len(t, out.Results, 4)
			miles, ok := out.Get(EquivalencyMilesDriven)
			require.True(t, ok)
			assert.InDelta(t, tt.wantMiles, miles.Value, 0.01)
			trees, ok := out.Get(EquivalencyTreeSeedlings)
			require.True(t, ok)
			assert.InDelta(t, tt.wantTrees, trees.Value, 0.01)
		})
	}
}

func TestCalculate_Text(t *testing.T) {
	out, err := Calculate(CarbonInput{Value: 150, Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "Equivalent to driving ~781 miles or charging ~18,248 smartphones", out.DisplayText)
	assert.Equal(t, "(≈ 781 mi, 3 trees)", out.CompactText)

	homeDays, ok := out.Get(EquivalencyHomeDays)
	require.True(t, ok)
	assert.Equal(t, "8", homeDays.FormattedValue)
}

func TestCalculate_LargeValues(t *testing.T) {
	out, err := Calculate(CarbonInput{Value: 200, Unit: "t"})
	require.NoError(t, err)
	phones, ok := out.Get(EquivalencySmartphonesCharged)
	require.True(t, ok)
	assert.Equal(t, "~24.3 million", phones.FormattedValue)
}

func TestForFootprintAndSavings(t *testing.T) {
	out, err := ForFootprint(engine.FootprintResult{TotalCarbonKg: 1920})
	require.NoError(t, err)
	miles, _ := out.Get(EquivalencyMilesDriven)
	assert.InDelta(t, 10000, miles.Value, 1e-6)

	out, err = ForSavings(engine.CostSavingsResult{
		Environmental: engine.EnvironmentalValue{CarbonAvoidedKg: 0.2},
	})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "TreeSeedlings", EquivalencyTreeSeedlings.String())
	assert.Equal(t, "EquivalencyType(9)", EquivalencyType(9).String())
	text, err := EquivalencyHomeDays.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "HomeDays", string(text))
}
