package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/greenops"
)

// Colour palette.
const (
	colorGood    = lipgloss.Color("42")
	colorFair    = lipgloss.Color("214")
	colorPoor    = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("240")
	colorAccent  = lipgloss.Color("57")
	colorOnAccent = lipgloss.Color("229")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	LabelStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	SelectedStyle = lipgloss.NewStyle().Foreground(colorOnAccent).Background(colorAccent)
	HeaderStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			BorderBottom(true).
			Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(colorFair)
)

// GradeStyle colours a grade: A+ to B green, C and D amber, F red.
func GradeStyle(g engine.Grade) lipgloss.Style {
	switch g {
	case engine.GradeAPlus, engine.GradeA, engine.GradeB:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	case engine.GradeC, engine.GradeD:
		return lipgloss.NewStyle().Bold(true).Foreground(colorFair)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorPoor)
	}
}

// RatingStyle colours a benchmark rating.
func RatingStyle(r engine.Rating) lipgloss.Style {
	switch r {
	case engine.RatingExcellent, engine.RatingGood:
		return lipgloss.NewStyle().Foreground(colorGood)
	case engine.RatingAverage:
		return lipgloss.NewStyle().Foreground(colorFair)
	default:
		return lipgloss.NewStyle().Foreground(colorPoor)
	}
}

// RenderFootprintSummary renders a boxed footprint summary. bench and eq may be nil.
func RenderFootprintSummary(name string, fp engine.FootprintResult, bench *engine.BenchmarkResult,
	eq *greenops.EquivalencyOutput, precision int,
) string {
	var sb strings.Builder
	title := "EVENT FOOTPRINT"
	if name != "" {
		title += ": " + name
	}
	sb.WriteString(TitleStyle.Render(title) + "\n\n")

	row := func(label, value string) {
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-16s", label)) + value + "\n")
	}
	row("Total carbon", greenops.FormatKg(fp.TotalCarbonKg, precision))
	row("Per attendee", greenops.FormatKg(fp.PerAttendeeKg, precision))
	row("Water", greenops.FormatFloat(fp.TotalWaterL, precision)+" L")
	row("Waste", greenops.FormatKg(fp.TotalWasteKg, precision))
	row("Green score", fmt.Sprintf("%s (%s)",
		greenops.FormatFloat(fp.GreenScore, 1), GradeStyle(fp.Grade).Render(string(fp.Grade))))

	sb.WriteString("\n")
	for _, c := range engine.Categories() {
		v := fp.Breakdown.Get(c)
		share := 0.0
		if fp.TotalCarbonKg > 0 {
			share = v / fp.TotalCarbonKg * 100
		}
		row("  "+string(c), fmt.Sprintf("%s  %s", greenops.FormatKg(v, precision), greenops.FormatPercent(share)))
	}

	if bench != nil {
		sb.WriteString("\n")
		row("Benchmark", fmt.Sprintf("%s percentile, %s",
			greenops.FormatFloat(bench.Percentile, 0), RatingStyle(bench.Rating).Render(string(bench.Rating))))
		row("vs average", greenops.FormatPercent(bench.VsAveragePct))
	}
	if eq != nil && !eq.IsEmpty {
		sb.WriteString("\n" + LabelStyle.Render(eq.DisplayText) + "\n")
	}
	for _, w := range fp.Warnings {
		sb.WriteString(WarningStyle.Render("! "+w) + "\n")
	}

	return BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderFormatComparison renders the format comparison with the winner highlighted.
func RenderFormatComparison(cmp engine.FormatComparison, precision int) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("FORMAT COMPARISON") + "\n\n")
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%-10s %14s %12s %8s %9s", "Format", "Per attendee", "Cost index",
		"Engage", "Composite")) + "\n")
	for _, r := range cmp.Results {
		line := fmt.Sprintf("%-10s %14s %12s %8s %9s", r.Format,
			greenops.FormatKg(r.PerAttendeeKg, precision), greenops.FormatFloat(r.CostIndex, 2),
			greenops.FormatFloat(r.Engagement, 0), greenops.FormatFloat(r.CompositeScore, 1))
		if r.Recommended {
			line = SelectedStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\nRecommended: " + TitleStyle.Render(string(cmp.Recommended)))
	return BoxStyle.Render(sb.String())
}
