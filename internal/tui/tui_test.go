package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/greenops"
)

func sampleRecommendations(t *testing.T) []engine.Recommendation {
	t.Helper()
	recs, err := engine.GenerateRecommendations(
		engine.Breakdown{Venue: 400, FoodBeverage: 300, Transport: 3000, Materials: 50},
		factors.EventConference, factors.FormatInPerson)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	return recs
}

func TestResolveOutputMode(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}
	none := env(nil)

	assert.Equal(t, OutputModePlain, ResolveOutputMode(false, true, false, none))
	assert.Equal(t, OutputModePlain, ResolveOutputMode(true, true, true, none))
	assert.Equal(t, OutputModePlain, ResolveOutputMode(true, false, false, env(map[string]string{"NO_COLOR": "1"})))
	assert.Equal(t, OutputModePlain, ResolveOutputMode(true, true, false, env(map[string]string{"CI": "true"})))
	assert.Equal(t, OutputModePlain, ResolveOutputMode(true, false, false, env(map[string]string{"TERM": "dumb"})))
	assert.Equal(t, OutputModeStyled, ResolveOutputMode(true, false, false, none))
	assert.Equal(t, OutputModeInteractive, ResolveOutputMode(true, true, false, none))
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}

func TestRecommendationsViewModel_SortAndFilter(t *testing.T) {
	m := NewRecommendationsViewModel(sampleRecommendations(t))
	require.Len(t, m.Visible(), 4)
	assert.Equal(t, 1, m.Visible()[0].Rank)
	assert.Equal(t, SortByRank, m.SortField())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, SortBySavings, m.SortField())
	assert.Equal(t, engine.CategoryTransport, m.Visible()[0].Category)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, SortByEffort, m.SortField())
	assert.Equal(t, 1, m.Visible()[0].Effort)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "transport" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, engine.CategoryTransport, m.Visible()[0].Category)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.Visible(), 4)
}

func TestRecommendationsViewModel_DetailAndQuit(t *testing.T) {
	m := NewRecommendationsViewModel(sampleRecommendations(t))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateDetail, m.State())
	assert.Contains(t, m.View(), "#2")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewStateList, m.State())
	assert.Contains(t, m.View(), "REDUCTION OPPORTUNITIES")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, ViewStateQuitting, m.State())
	assert.Empty(t, m.View())
}

func TestRecommendationsViewModel_Empty(t *testing.T) {
	m := NewRecommendationsViewModel(nil)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateList, m.State())
	assert.Contains(t, m.View(), "No recommendations")
}

func TestNewRecommendationsSummary(t *testing.T) {
	recs := sampleRecommendations(t)
	s := NewRecommendationsSummary(recs)
	assert.Equal(t, 4, s.TotalCount)

	var total float64
	for _, r := range recs {
		total += r.EstimatedSavingsKg
	}
	assert.InDelta(t, total, s.TotalSavingsKg, 1e-9)
	assert.False(t, s.Equivalencies.IsEmpty)
	assert.Contains(t, RenderRecommendationsSummary(s), "transport")
}

func TestRenderFootprintSummary(t *testing.T) {
	fp := engine.FootprintResult{
		TotalCarbonKg: 2000,
		PerAttendeeKg: 20,
		Breakdown:     engine.Breakdown{Venue: 500, FoodBeverage: 500, Transport: 900, Materials: 100},
		GreenScore:    64,
		Grade:         engine.GradeC,
		Warnings:      []string{"cohort shares sum to 90"},
	}
	bench := &engine.BenchmarkResult{Percentile: 92, Rating: engine.RatingExcellent, VsAveragePct: -86.7}
	eq, err := greenops.ForFootprint(fp)
	require.NoError(t, err)

	out := RenderFootprintSummary("Summit", fp, bench, &eq, 2)
	for _, want := range []string{"Summit", "2.00 t", "20.00 kg", "C", "excellent", "45.0%", "cohort shares"} {
		assert.True(t, strings.Contains(out, want), "missing %q", want)
	}
}

func TestRenderFormatComparison(t *testing.T) {
	cmp, err := engine.CompareFormats(100, 500, 2)
	require.NoError(t, err)
	out := RenderFormatComparison(cmp, 1)
	assert.Contains(t, out, "Recommended")
	assert.Contains(t, out, string(cmp.Recommended))
}
