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

type incentivesParams struct {
	file     string
	output   string
	region   string
	detailed bool
}

// IncentivesReport is the data of an incentives report.
type IncentivesReport struct {
	Region     factors.Region        `json:"region"`
	GreenScore float64               `json:"green_score"`
	TierPct    float64               `json:"tier_pct"`
	Incentives []engine.TaxIncentive `json:"incentives"`
	TotalValue float64               `json:"total_value"`
}

// NewIncentivesCmd creates the incentives command.
func NewIncentivesCmd() *cobra.Command {
	var params incentivesParams

	cmd := &cobra.Command{
		Use:   "incentives",
		Short: "List the tax incentives an event can expect to claim",
		Long: `Lists the regional sustainability tax programmes and the share of each
programme cap the event's green score qualifies for.`,
		Example: `  greenevent incentives -f event.yaml
  greenevent incentives -f event.yaml --region eu --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeIncentives(cmd, params)
		},
	}

	addFileFlag(cmd, &params.file, "event document (YAML or JSON)")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().StringVar(&params.region, "region", "", "region: us, eu, uk, ca or au (default: the document's, then config)")
	cmd.Flags().BoolVar(&params.detailed, "detailed", false, "calculate from the detailed section")

	return cmd
}

func executeIncentives(cmd *cobra.Command, params incentivesParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, params.file)
	if err != nil {
		return err
	}
	region := documentRegion(doc)
	if params.region != "" {
		region = factors.Region(params.region)
	}

	fp, err := computeFootprint(ctx, doc, params.detailed)
	if err != nil {
		return err
	}
	incentives, err := engine.ApplicableTaxIncentives(region, fp)
	if err != nil {
		return fmt.Errorf("finding incentives: %w", err)
	}

	report := IncentivesReport{
		Region:     region,
		GreenScore: fp.GreenScore,
		TierPct:    engine.IncentiveTierFraction(fp.GreenScore) * 100,
		Incentives: incentives,
	}
	for _, inc := range incentives {
		report.TotalValue += inc.EstimatedValue
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "incentives", doc.Name, report))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "incentive", incentives)
	}
	return renderIncentivesTable(out, report)
}

func renderIncentivesTable(w io.Writer, r IncentivesReport) error {
	fmt.Fprintf(w, "TAX INCENTIVES: %s (green score %s, %s of caps)\n\n",
		r.Region, greenops.FormatFloat(r.GreenScore, 1), greenops.FormatPercent(r.TierPct))
	if len(r.Incentives) == 0 {
		fmt.Fprintln(w, "No programmes apply.")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "PROGRAMME\tCATEGORY\tRATE\tCAP\tESTIMATED VALUE")
	fmt.Fprintln(tw, "---------\t--------\t----\t---\t---------------")
	currency := ""
	for _, inc := range r.Incentives {
		currency = inc.Currency
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", inc.Name, inc.Category, greenops.FormatPercent(inc.RatePct),
			money(inc.Cap, inc.Currency), money(inc.EstimatedValue, inc.Currency))
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\n", money(r.TotalValue, currency))
	return tw.Flush()
}
