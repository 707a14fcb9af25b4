package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/greenops"
	"github.com/rshade/greenevent/internal/tui"
)

type benchmarkParams struct {
	file      string
	output    string
	eventType string
	detailed  bool
}

// NewBenchmarkCmd creates the benchmark command.
func NewBenchmarkCmd() *cobra.Command {
	var params benchmarkParams

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Compare an event's per-attendee carbon with industry reference data",
		Long: `Ranks the per-attendee footprint of an event against the best-practice,
average and worst-case values of its event type. --event-type benchmarks the
same event against another type.`,
		Example: `  # Benchmark against the document's own event type
  greenevent benchmark -f event.yaml

  # Benchmark as a trade show instead
  greenevent benchmark -f event.yaml --event-type trade-show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBenchmark(cmd, params)
		},
	}

	addFileFlag(cmd, &params.file, "event document (YAML or JSON)")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().StringVar(&params.eventType, "event-type", "", "event type to benchmark against (default: the document's)")
	cmd.Flags().BoolVar(&params.detailed, "detailed", false, "calculate from the detailed section")

	return cmd
}

func executeBenchmark(cmd *cobra.Command, params benchmarkParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, params.file)
	if err != nil {
		return err
	}
	eventType := doc.EventType
	if params.eventType != "" {
		eventType = factors.EventType(params.eventType)
	}

	fp, err := computeFootprint(ctx, doc, params.detailed)
	if err != nil {
		return err
	}
	bench, err := engine.BenchmarkFootprint(fp, fp.Attendees, eventType)
	if err != nil {
		return fmt.Errorf("benchmarking footprint: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "benchmark", doc.Name, bench))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "benchmark", []engine.BenchmarkResult{bench})
	}
	return renderBenchmarkTable(out, bench, config.GetOutputPrecision(), outputMode(cmd, false) == tui.OutputModeStyled)
}

func renderBenchmarkTable(w io.Writer, b engine.BenchmarkResult, precision int, styled bool) error {
	rating := string(b.Rating)
	if styled {
		rating = tui.RatingStyle(b.Rating).Render(rating)
	}
	fmt.Fprintf(w, "BENCHMARK: %s\n\n", b.EventType)

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Per attendee\t%s\n", greenops.FormatKg(b.PerAttendeeKg, precision))
	fmt.Fprintf(tw, "Best practice\t%s\n", greenops.FormatKg(b.Benchmark.Best, precision))
	fmt.Fprintf(tw, "Industry average\t%s\n", greenops.FormatKg(b.Benchmark.Average, precision))
	fmt.Fprintf(tw, "Worst case\t%s\n", greenops.FormatKg(b.Benchmark.Worst, precision))
	fmt.Fprintf(tw, "Percentile\t%s\n", greenops.FormatFloat(b.Percentile, 0))
	fmt.Fprintf(tw, "Rating\t%s\n", rating)
	fmt.Fprintf(tw, "Vs average\t%s\n", greenops.FormatPercent(b.VsAveragePct))
	fmt.Fprintf(tw, "Average event total\t%s\n", greenops.FormatKg(b.AverageEventKg, precision))
	fmt.Fprintf(tw, "Saving to best practice\t%s\n", greenops.FormatKg(b.PotentialSaving, precision))
	return tw.Flush()
}
