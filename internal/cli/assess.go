package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/greenops"
)

type assessParams struct {
	output        string
	eventType     string
	format        string
	attendees     int
	days          int
	hoursPerDay   float64
	sector        string
	international bool
}

// NewAssessCmd creates the assess command.
func NewAssessCmd() *cobra.Command {
	var params assessParams

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Early footprint estimate from a coarse event profile",
		Long: `Estimates an event's footprint before the venue, menu or travel plan is known,
from its type, format, size, duration and industry sector.`,
		Example: `  greenevent assess --event-type conference --format hybrid --attendees 250 --days 2
  greenevent assess --event-type workshop --attendees 30 --days 1 --sector education --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeAssess(cmd, params)
		},
	}

	addOutputFlag(cmd, &params.output)
	cmd.Flags().StringVar(&params.eventType, "event-type", string(factors.EventConference), "event type")
	cmd.Flags().StringVar(&params.format, "format", string(factors.FormatInPerson), "event format: in-person, virtual or hybrid")
	cmd.Flags().IntVar(&params.attendees, "attendees", 0, "expected attendees")
	cmd.Flags().IntVar(&params.days, "days", 1, "event days")
	cmd.Flags().Float64Var(&params.hoursPerDay, "hours-per-day", 8, "event hours per day")
	cmd.Flags().StringVar(&params.sector, "sector", string(factors.SectorOther), "industry sector")
	cmd.Flags().BoolVar(&params.international, "international", false, "attendees travel internationally")
	_ = cmd.MarkFlagRequired("attendees")

	return cmd
}

func executeAssess(cmd *cobra.Command, params assessParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	profile := engine.EventProfile{
		EventType:     factors.EventType(params.eventType),
		Format:        factors.EventFormat(params.format),
		Attendees:     params.attendees,
		Days:          params.days,
		HoursPerDay:   params.hoursPerDay,
		Sector:        factors.IndustrySector(params.sector),
		International: params.international,
	}
	est, err := engine.PreAssess(profile)
	if err != nil {
		return fmt.Errorf("assessing event: %w", err)
	}
	logger.Debug().Ctx(ctx).
		Float64("total_carbon_kg", est.TotalCarbonKg).
		Str("confidence", est.Confidence).
		Msg("early estimate calculated")

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "assessment", "", est))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "assessment", []engine.EarlyEstimate{est})
	}
	return renderAssessTable(out, profile, est, config.GetOutputPrecision())
}

func renderAssessTable(w io.Writer, p engine.EventProfile, est engine.EarlyEstimate, precision int) error {
	fmt.Fprintf(w, "EARLY ESTIMATE: %s %s, %d attendees over %d day(s)\n\n", p.Format, p.EventType, p.Attendees, p.Days)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CATEGORY\tCARBON")
	fmt.Fprintln(tw, "--------\t------")
	for _, c := range engine.Categories() {
		fmt.Fprintf(tw, "%s\t%s\n", c, greenops.FormatKg(est.Breakdown.Get(c), precision))
	}
	fmt.Fprintf(tw, "TOTAL\t%s\n", greenops.FormatKg(est.TotalCarbonKg, precision))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPer attendee: %s (industry average %s)\n",
		greenops.FormatKg(est.PerAttendeeKg, precision), greenops.FormatKg(est.Benchmark.Average, precision))
	fmt.Fprintf(w, "Percentile:   %s\n", greenops.FormatFloat(est.Percentile, 0))
	fmt.Fprintf(w, "Confidence:   %s\n", est.Confidence)
	return nil
}
