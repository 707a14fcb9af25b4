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

type formatsParams struct {
	output        string
	attendees     int
	distanceKm    float64
	days          int
	inPersonShare float64
}

// NewFormatsCmd creates the formats command.
func NewFormatsCmd() *cobra.Command {
	var params formatsParams

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Compare in-person, virtual and hybrid formats",
		Long: `Compares the carbon, cost and attendee experience of running the same event
in-person, virtual or hybrid, and recommends the format with the best composite score.`,
		Example: `  greenevent formats --attendees 300 --distance-km 800 --days 2
  greenevent formats --attendees 300 --distance-km 800 --days 2 --in-person-share 0.3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("in-person-share") {
				params.inPersonShare = config.GetGlobalConfig().Engine.InPersonShare
			}
			return executeFormats(cmd, params)
		},
	}

	addOutputFlag(cmd, &params.output)
	cmd.Flags().IntVar(&params.attendees, "attendees", 0, "expected attendees")
	cmd.Flags().Float64Var(&params.distanceKm, "distance-km", 0, "average one-way travel distance in km")
	cmd.Flags().IntVar(&params.days, "days", 1, "event days")
	cmd.Flags().Float64Var(&params.inPersonShare, "in-person-share", 0, "share of hybrid attendees on site, 0 to 1 (default from config)")
	_ = cmd.MarkFlagRequired("attendees")

	return cmd
}

func executeFormats(cmd *cobra.Command, params formatsParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	cmp, err := engine.CompareFormatsWithShare(params.attendees, params.distanceKm, params.days, params.inPersonShare)
	if err != nil {
		return fmt.Errorf("comparing formats: %w", err)
	}
	logger.Debug().Ctx(ctx).Str("recommended", string(cmp.Recommended)).Msg("formats compared")

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "format_comparison", "", cmp))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "format_comparison.result", cmp.Results)
	}

	precision := config.GetOutputPrecision()
	if outputMode(cmd, false) == tui.OutputModeStyled {
		fmt.Fprintln(out, tui.RenderFormatComparison(cmp, precision))
		return nil
	}
	return renderFormatsTable(out, cmp, precision)
}

func renderFormatsTable(w io.Writer, cmp engine.FormatComparison, precision int) error {
	fmt.Fprintf(w, "FORMAT COMPARISON: %d attendees, %s km, %d day(s)\n\n",
		cmp.Attendees, greenops.FormatFloat(cmp.AvgTravelKm, 0), cmp.Days)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "FORMAT\tTOTAL\tPER ATTENDEE\tCOST INDEX\tENGAGEMENT\tACCESSIBILITY\tNETWORKING\tSCORE\t")
	fmt.Fprintln(tw, "------\t-----\t------------\t----------\t----------\t-------------\t----------\t-----\t")
	for _, r := range cmp.Results {
		marker := ""
		if r.Recommended {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Format,
			greenops.FormatKg(r.TotalCarbonKg, precision), greenops.FormatKg(r.PerAttendeeKg, precision),
			greenops.FormatFloat(r.CostIndex, 2), greenops.FormatFloat(r.Engagement, 0),
			greenops.FormatFloat(r.Accessibility, 0), greenops.FormatFloat(r.Networking, 0),
			greenops.FormatFloat(r.CompositeScore, 1), marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nRecommended: %s\n", cmp.Recommended)
	return nil
}
