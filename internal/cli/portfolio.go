package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine/batch"
	"github.com/rshade/greenevent/internal/eventfile"
	"github.com/rshade/greenevent/internal/greenops"
)

// exitCodePartialFailure is the exit code when some portfolio events failed.
const exitCodePartialFailure = 2

type portfolioParams struct {
	file        string
	output      string
	concurrency int
	chunkSize   int
	progress    bool
}

// PortfolioReport is the data of a portfolio report.
type PortfolioReport struct {
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

// NewPortfolioCmd creates the portfolio command.
func NewPortfolioCmd() *cobra.Command {
	var params portfolioParams

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Evaluate a set of events together",
		Long: `Calculates the footprint, benchmark and recommendations of every event in a
portfolio document concurrently, and summarizes the set. An invalid event fails
only its own row; the command then exits with code 2 after printing the report.`,
		Example: `  greenevent portfolio -f season.yaml
  greenevent portfolio -f season.yaml --concurrency 8 --progress
  greenevent portfolio -f season.yaml --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("concurrency") {
				params.concurrency = cfg.Engine.Concurrency
			}
			if !cmd.Flags().Changed("chunk-size") {
				params.chunkSize = cfg.Engine.ChunkSize
			}
			return executePortfolio(cmd, params)
		},
	}

	addFileFlag(cmd, &params.file, "portfolio document (YAML or JSON)")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().IntVar(&params.concurrency, "concurrency", 0, "events evaluated in parallel (default from config)")
	cmd.Flags().IntVar(&params.chunkSize, "chunk-size", 0, "events per work unit (default from config)")
	cmd.Flags().BoolVar(&params.progress, "progress", false, "report progress on stderr")

	return cmd
}

func executePortfolio(cmd *cobra.Command, params portfolioParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	p, err := eventfile.LoadPortfolio(params.file)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Str("path", params.file).Msg("failed to load portfolio")
		return err
	}

	opts := batch.Options{ChunkSize: params.chunkSize, Concurrency: params.concurrency}
	if params.progress {
		var (
			mu   sync.Mutex
			done bool
		)
		errOut := cmd.ErrOrStderr()
		opts.OnProgress = func(s batch.ProgressSnapshot) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(errOut, "evaluated %d/%d events (%s)\n",
				s.ProcessedItems, s.TotalItems, greenops.FormatPercent(s.PercentComplete))
			if s.Complete && !done {
				done = true
				fmt.Fprintf(errOut, "portfolio evaluated in %s\n", s.Elapsed.Round(time.Millisecond))
			}
		}
	}

	results, summary, err := batch.Evaluate(ctx, p.Entries(config.GetGlobalConfig().TravelOptions()), opts)
	if err != nil {
		return fmt.Errorf("evaluating portfolio: %w", err)
	}
	report := PortfolioReport{Results: results, Summary: summary}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		err = renderJSON(out, newReport(ctx, "portfolio", p.Name, report))
	case config.FormatNDJSON:
		err = renderNDJSON(ctx, out, "portfolio.event", results)
	default:
		err = renderPortfolioTable(out, p.Name, report, config.GetOutputPrecision())
	}
	if err != nil {
		return err
	}

	if summary.Failed > 0 {
		return &ExitError{
			ExitCode: exitCodePartialFailure,
			Reason:   fmt.Sprintf("%d of %d events failed", summary.Failed, summary.Events),
		}
	}
	return nil
}

func renderPortfolioTable(w io.Writer, name string, r PortfolioReport, precision int) error {
	fmt.Fprintf(w, "PORTFOLIO: %s\n\n", name)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "EVENT\tTOTAL\tPER ATTENDEE\tSCORE\tGRADE\tRATING\tERROR")
	fmt.Fprintln(tw, "-----\t-----\t------------\t-----\t-----\t------\t-----")
	for _, res := range r.Results {
		if res.Footprint == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t%s\n", res.Name, res.Error)
			continue
		}
		fp := res.Footprint
		rating := ""
		if res.Benchmark != nil {
			rating = string(res.Benchmark.Rating)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n", res.Name,
			greenops.FormatKg(fp.TotalCarbonKg, precision), greenops.FormatKg(fp.PerAttendeeKg, precision),
			greenops.FormatFloat(fp.GreenScore, 1), fp.Grade, rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary
	fmt.Fprintf(w, "\nEvents:            %d (%d failed)\n", s.Events, s.Failed)
	fmt.Fprintf(w, "Total carbon:      %s\n", greenops.FormatKg(s.TotalCarbonKg, precision))
	fmt.Fprintf(w, "Per attendee:      %s (%s attendees)\n",
		greenops.FormatKg(s.PerAttendeeKg, precision), greenops.FormatNumber(int64(s.TotalAttendees)))
	fmt.Fprintf(w, "Average score:     %s\n", greenops.FormatFloat(s.AverageScore, 1))
	if s.BestEvent != "" {
		fmt.Fprintf(w, "Best / worst:      %s / %s\n", s.BestEvent, s.WorstEvent)
	}
	fmt.Fprintf(w, "Potential savings: %s\n", greenops.FormatKg(s.PotentialSavings, precision))
	return nil
}
