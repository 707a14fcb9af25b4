package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/eventfile"
	"github.com/rshade/greenevent/internal/factors"
	"github.com/rshade/greenevent/internal/greenops"
)

type savingsParams struct {
	file          string
	output        string
	adoption      string
	equivalencies bool
}

// SavingsReport is the data of a savings report.
type SavingsReport struct {
	Savings       engine.CostSavingsResult    `json:"savings"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
}

// NewSavingsCmd creates the savings command.
func NewSavingsCmd() *cobra.Command {
	var params savingsParams

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Estimate the cost savings and return of a sustainable plan",
		Long: `Estimates what each cost category would cost under the sustainable plan,
prices the avoided carbon, saved water and diverted waste, and evaluates the plan
as an investment (ROI, payback, NPV and a simplified IRR).

The document must carry a costs section with the traditional spend per category.`,
		Example: `  greenevent savings -f event.yaml
  greenevent savings -f event.yaml --adoption advanced --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("equivalencies") {
				params.equivalencies = config.GetGlobalConfig().Output.Equivalencies
			}
			return executeSavings(cmd, params)
		},
	}

	addFileFlag(cmd, &params.file, "event document with a costs section (YAML or JSON)")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().StringVar(&params.adoption, "adoption", "",
		"adoption tier: basic, moderate, advanced or comprehensive (default: the document's, then config)")
	cmd.Flags().BoolVar(&params.equivalencies, "equivalencies", false, "show everyday equivalents of the avoided carbon")

	return cmd
}

func executeSavings(cmd *cobra.Command, params savingsParams) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(cmd, params.output)
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, params.file)
	if err != nil {
		return err
	}
	if !doc.HasConfiguration() {
		return fmt.Errorf("%w: savings need a configuration section", eventfile.ErrInvalidDocument)
	}
	if params.adoption != "" {
		doc.Adoption = factors.AdoptionTier(params.adoption)
	}

	cfg := config.GetGlobalConfig()
	in, err := doc.CostInputs(factors.Region(cfg.Engine.Region), factors.AdoptionTier(cfg.Engine.Adoption))
	if err != nil {
		return err
	}
	fp, err := computeFootprint(ctx, doc, false)
	if err != nil {
		return err
	}
	res, err := engine.CalculateCostSavings(doc.Configuration, fp, in)
	if err != nil {
		return fmt.Errorf("calculating savings: %w", err)
	}
	logger.Debug().Ctx(ctx).
		Float64("total_savings", res.TotalSavings).
		Str("currency", res.Currency).
		Msg("cost savings calculated")

	report := SavingsReport{Savings: res}
	if params.equivalencies {
		eq, eqErr := greenops.ForSavings(res)
		if eqErr != nil {
			return fmt.Errorf("calculating equivalencies: %w", eqErr)
		}
		report.Equivalencies = &eq
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "savings", doc.Name, report))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "savings.category", res.Categories[:])
	}
	return renderSavingsTable(out, doc.Name, report)
}

// money formats an amount in the result currency; unknown codes fall back to
// a plain number followed by the code.
func money(amount float64, code string) string {
	s, err := greenops.FormatCurrency(amount, code)
	if err != nil {
		return greenops.FormatFloat(amount, 2) + " " + code
	}
	return s
}

func renderSavingsTable(w io.Writer, name string, r SavingsReport) error {
	res := r.Savings
	cur := res.Currency
	fmt.Fprintf(w, "COST SAVINGS: %s\n\n", name)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CATEGORY\tTRADITIONAL\tSUSTAINABLE\tSAVINGS\tREDUCTION")
	fmt.Fprintln(tw, "--------\t-----------\t-----------\t-------\t---------")
	for _, c := range res.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Category, money(c.Traditional, cur), money(c.Sustainable, cur),
			money(c.Savings, cur), greenops.FormatPercent(c.ReductionFraction*100))
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t%s\t%s\t%s\n", money(res.TraditionalTotal, cur), money(res.SustainableTotal, cur),
		money(res.TotalSavings, cur), greenops.FormatPercent(res.SavingsPct))
	if err := tw.Flush(); err != nil {
		return err
	}

	env := res.Environmental
	fin := res.Financials
	fmt.Fprintf(w, "\nPer attendee savings: %s\n", money(res.PerAttendeeSavings, cur))
	fmt.Fprintln(w, "\nEnvironmental value")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "  Carbon avoided\t%s\t%s\n", greenops.FormatKg(env.CarbonAvoidedKg, 1), money(env.CarbonValue, cur))
	fmt.Fprintf(tw, "  Water saved\t%s L\t%s\n", greenops.FormatFloat(env.WaterSavedL, 0), money(env.WaterValue, cur))
	fmt.Fprintf(tw, "  Waste diverted\t%s\t%s\n", greenops.FormatKg(env.WasteDivertedKg, 1), money(env.WasteValue, cur))
	fmt.Fprintf(tw, "  Total\t\t%s\n", money(env.Total, cur))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nInvestment")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "  Implementation cost\t%s\n", money(fin.ImplementationCost, cur))
	fmt.Fprintf(tw, "  Annual benefit\t%s\n", money(fin.AnnualBenefit, cur))
	fmt.Fprintf(tw, "  ROI\t%s\n", greenops.FormatPercent(fin.ROIPct))
	fmt.Fprintf(tw, "  Payback\t%s months\n", greenops.FormatFloat(fin.PaybackMonths, 1))
	fmt.Fprintf(tw, "  NPV\t%s\n", money(fin.NPV, cur))
	fmt.Fprintf(tw, "  IRR (simplified)\t%s\n", greenops.FormatPercent(fin.IRRPct))
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Equivalencies != nil && !r.Equivalencies.IsEmpty {
		fmt.Fprintf(w, "\nAvoided carbon: %s\n", r.Equivalencies.DisplayText)
	}
	return nil
}
