package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/greenops"
	"github.com/rshade/greenevent/internal/tui"
)

type footprintParams struct {
	file          string
	output        string
	equivalencies bool
	detailed      bool
}

// FootprintReport is the data of a footprint report.
type FootprintReport struct {
	Footprint     engine.FootprintResult      `json:"footprint"`
	Benchmark     engine.BenchmarkResult      `json:"benchmark"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
}

// categoryLine is one ndjson line of a footprint.
type categoryLine struct {
	Category engine.Category `json:"category"`
	CarbonKg float64         `json:"carbon_kg"`
	SharePct float64         `json:"share_pct"`
}

// NewFootprintCmd creates the footprint command.
func NewFootprintCmd() *cobra.Command {
	var params footprintParams

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Calculate the carbon, water and waste footprint of an event",
		Long: `Calculates the footprint of an event document: carbon per category, water,
waste, the green score and grade, and how the event compares with its type.

Documents with a detailed section can be calculated from the full profiles with
--detailed; the configured distribution policy then applies to travel cohorts.`,
		Example: `  # Footprint as a table
  greenevent footprint -f event.yaml

  # Include everyday equivalents
  greenevent footprint -f event.yaml --equivalencies

  # Use the detailed profiles
  greenevent footprint -f event.yaml --detailed --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("equivalencies") {
				params.equivalencies = config.GetGlobalConfig().Output.Equivalencies
			}
			return executeFootprint(cmd, params)
		},
	}

	addFileFlag(cmd, &params.file, "event document (YAML or JSON)")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().BoolVar(&params.equivalencies, "equivalencies", false, "show everyday carbon equivalents")
	cmd.Flags().BoolVar(&params.detailed, "detailed", false, "calculate from the detailed section")

	return cmd
}

func executeFootprint(cmd *cobra.Command, params footprintParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, params.file)
	if err != nil {
		return err
	}
	fp, err := computeFootprint(ctx, doc, params.detailed)
	if err != nil {
		return err
	}
	bench, err := engine.BenchmarkFootprint(fp, fp.Attendees, doc.EventType)
	if err != nil {
		return fmt.Errorf("benchmarking footprint: %w", err)
	}

	report := FootprintReport{Footprint: fp, Benchmark: bench}
	if params.equivalencies {
		eq, eqErr := greenops.ForFootprint(fp)
		if eqErr != nil {
			return fmt.Errorf("calculating equivalencies: %w", eqErr)
		}
		report.Equivalencies = &eq
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "footprint", doc.Name, report))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "footprint.category", footprintLines(fp))
	}

	precision := config.GetOutputPrecision()
	if outputMode(cmd, false) == tui.OutputModeStyled {
		fmt.Fprintln(out, tui.RenderFootprintSummary(doc.Name, fp, &report.Benchmark, report.Equivalencies, precision))
		return nil
	}
	return renderFootprintTable(out, doc.Name, report, precision)
}

func footprintLines(fp engine.FootprintResult) []categoryLine {
	lines := make([]categoryLine, 0, len(engine.Categories()))
	for _, c := range engine.Categories() {
		v := fp.Breakdown.Get(c)
		lines = append(lines, categoryLine{Category: c, CarbonKg: v, SharePct: sharePct(v, fp.TotalCarbonKg)})
	}
	return lines
}

func sharePct(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

func renderFootprintTable(w io.Writer, name string, r FootprintReport, precision int) error {
	fp := r.Footprint
	if name != "" {
		fmt.Fprintf(w, "EVENT FOOTPRINT: %s\n\n", name)
	} else {
		fmt.Fprint(w, "EVENT FOOTPRINT\n\n")
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CATEGORY\tCARBON\tSHARE")
	fmt.Fprintln(tw, "--------\t------\t-----")
	for _, line := range footprintLines(fp) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", line.Category,
			greenops.FormatKg(line.CarbonKg, precision), greenops.FormatPercent(line.SharePct))
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t\n", greenops.FormatKg(fp.TotalCarbonKg, precision))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Per attendee: %s CO2e (%d attendees)\n", greenops.FormatKg(fp.PerAttendeeKg, precision), fp.Attendees)
	fmt.Fprintf(w, "Water:        %s L\n", greenops.FormatFloat(fp.TotalWaterL, precision))
	fmt.Fprintf(w, "Waste:        %s\n", greenops.FormatKg(fp.TotalWasteKg, precision))
	fmt.Fprintf(w, "Green score:  %s (%s)\n", greenops.FormatFloat(fp.GreenScore, 1), fp.Grade)
	fmt.Fprintf(w, "Benchmark:    %s percentile, %s (%s vs %s average)\n",
		greenops.FormatFloat(r.Benchmark.Percentile, 0), r.Benchmark.Rating,
		greenops.FormatPercent(r.Benchmark.VsAveragePct), r.Benchmark.EventType)

	if r.Equivalencies != nil && !r.Equivalencies.IsEmpty {
		fmt.Fprintf(w, "\n%s\n", r.Equivalencies.DisplayText)
	}
	for _, warning := range fp.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return nil
}
