package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "-1,000,000", FormatNumber(-1000000))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1,234.57", FormatFloat(1234.567, 2))
	assert.Equal(t, "134.40", FormatFloat(134.4, 2))
	assert.Equal(t, "1,235", FormatFloat(1234.5, 0))
	assert.Equal(t, "0.500", FormatFloat(0.5, 3))
}

func TestFormatCurrency(t *testing.T) {
	got, err := FormatCurrency(1234.5, "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD 1,234.50", got)

	_, err = FormatCurrency(1, "dollars")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "134.40 kg", FormatKg(134.4, 2))
	assert.Equal(t, "18.63 t", FormatKg(18632, 2))
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999,999", FormatLarge(999999))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~2.0 billion", FormatLarge(2_000_000_000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.3%", FormatPercent(12.345))
}

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		value   float64
		unit    string
		want    float64
		wantErr error
	}{
		{1500, "g", 1.5, nil},
		{2, "KG", 2, nil},
		{1, "t", 1000, nil},
		{10, "lbCO2e", 4.53592, nil},
		{1, "oz", 0, ErrInvalidUnit},
		{-1, "kg", 0, ErrNegativeValue},
		{math.Inf(1), "kg", 0, ErrCalculationOverflow},
		{math.NaN(), "kg", 0, ErrCalculationOverflow},
		{math.MaxFloat64, "t", 0, ErrCalculationOverflow},
	}
	for _, tt := range tests {
		got, err := NormalizeToKg(tt.value, tt.unit)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "%v %s", tt.value, tt.unit)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}
