package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/factors"
)

func TestCompareFormats(t *testing.T) {
	got, err := CompareFormats(100, 500, 2)
	require.NoError(t, err)
	require.Len(t, got.Results, 3)

	inPerson, virtual, hybrid := got.Results[0], got.Results[1], got.Results[2]
	assert.Equal(t, factors.FormatInPerson, inPerson.Format)
	assert.Equal(t, factors.FormatVirtual, virtual.Format)
	assert.Equal(t, factors.FormatHybrid, hybrid.Format)
	assert.InDelta(t, 0.5, got.InPersonShare, delta)

	// travel 150 + venue 6.72 + catering 14.4 + one night 15.2
	assert.InDelta(t, 186.32, inPerson.PerAttendeeKg, 1e-6)
	// 6 h/day × 2 days × 0.086
	assert.InDelta(t, 1.032, virtual.PerAttendeeKg, 1e-6)
	assert.InDelta(t, 0.5*(150+14.4+15.2)+6.72*0.6+0.5*1.032, hybrid.PerAttendeeKg, 1e-6)

	assert.InDelta(t, 580.0, inPerson.CostPerPerson, 1e-6)
	assert.InDelta(t, 1.0, inPerson.CostIndex, delta)
	assert.InDelta(t, 30.0/580.0, virtual.CostIndex, 1e-9)
	assert.InDelta(t, 325.0/580.0, hybrid.CostIndex, 1e-9)

	assert.InDelta(t, (100-186.32/20)+0+90+60, inPerson.CompositeScore, 1e-6)
	assert.InDelta(t, 90.0, inPerson.Engagement, delta)
	assert.InDelta(t, 40.0, virtual.Networking, delta)

	assert.Equal(t, factors.FormatVirtual, got.Recommended)
	recommended := 0
	for _, r := range got.Results {
		if r.Recommended {
			recommended++
			assert.Equal(t, got.Recommended, r.Format)
		}
	}
	assert.Equal(t, 1, recommended)
}

func TestCompareFormats_VirtualAlwaysBelowInPerson(t *testing.T) {
	for _, attendees := range []int{1, 50, 5000} {
		for _, km := range []float64{0, 10, 800, 9000} {
			for _, days := range []int{1, 3} {
				got, err := CompareFormats(attendees, km, days)
				require.NoError(t, err)
				assert.Less(t, got.Results[1].TotalCarbonKg, got.Results[0].TotalCarbonKg,
					"attendees=%d km=%.0f days=%d", attendees, km, days)
			}
		}
	}
}

func TestCompareFormatsWithShare(t *testing.T) {
	allRemote, err := CompareFormatsWithShare(100, 300, 1, 0)
	require.NoError(t, err)
	allOnSite, err := CompareFormatsWithShare(100, 300, 1, 1)
	require.NoError(t, err)
	assert.Less(t, allRemote.Results[2].TotalCarbonKg, allOnSite.Results[2].TotalCarbonKg)

	for _, share := range []float64{-0.1, 1.5} {
		_, err := CompareFormatsWithShare(100, 300, 1, share)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
	_, err = CompareFormats(0, 100, 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = CompareFormats(10, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = CompareFormats(10, 100, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBestFormat(t *testing.T) {
	results := func(scores ...float64) []FormatComparisonResult {
		out := make([]FormatComparisonResult, len(scores))
		for i, s := range scores {
			out[i] = FormatComparisonResult{Format: factors.EventFormats()[i], CompositeScore: s}
		}
		return out
	}

	tests := []struct {
		name   string
		scores []float64
		want   factors.EventFormat
	}{
		{"three-way tie keeps in-person", []float64{200, 200, 200}, factors.FormatInPerson},
		{"virtual and hybrid tie keeps virtual", []float64{100, 250, 250}, factors.FormatVirtual},
		{"in-person and hybrid tie keeps in-person", []float64{250, 100, 250}, factors.FormatInPerson},
		{"strictly higher hybrid wins", []float64{200, 200, 200.5}, factors.FormatHybrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := results(tt.scores...)
			assert.Equal(t, tt.want, got[bestFormat(got)].Format)
		})
	}
}
