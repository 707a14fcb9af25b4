package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/greenops"
	"github.com/rshade/greenevent/internal/tui"
)

// maxDescriptionLen is the description width of plain recommendation tables.
const maxDescriptionLen = 60

type recommendParams struct {
	file        string
	output      string
	interactive bool
	detailed    bool
	top         int
}

// NewRecommendCmd creates the recommend command.
func NewRecommendCmd() *cobra.Command {
	var params recommendParams

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank carbon reduction opportunities",
		Long: `Ranks one improvement action per emitting category by estimated savings per
unit of effort. --interactive opens a browser with filtering, sorting and a
detail view when stdout is a terminal.`,
		Example: `  greenevent recommend -f event.yaml
  greenevent recommend -f event.yaml --interactive
  greenevent recommend -f event.yaml --output ndjson | head -n 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRecommend(cmd, params)
		},
	}

	addFileFlag(cmd, &params.file, "event document (YAML or JSON)")
	addOutputFlag(cmd, &params.output)
	cmd.Flags().BoolVarP(&params.interactive, "interactive", "i", false, "browse recommendations interactively")
	cmd.Flags().BoolVar(&params.detailed, "detailed", false, "calculate from the detailed section")
	cmd.Flags().IntVar(&params.top, "top", 0, "show only the top N recommendations (0 = all)")

	return cmd
}

func executeRecommend(cmd *cobra.Command, params recommendParams) error {
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
	recs, err := engine.GenerateRecommendations(fp.Breakdown, doc.EventType, doc.Format)
	if err != nil {
		return fmt.Errorf("generating recommendations: %w", err)
	}
	if params.top > 0 && params.top < len(recs) {
		recs = recs[:params.top]
	}
	logger.Debug().Ctx(ctx).Int("recommendations", len(recs)).Msg("recommendations generated")

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, newReport(ctx, "recommendations", doc.Name, recs))
	case config.FormatNDJSON:
		return renderNDJSON(ctx, out, "recommendation", recs)
	}

	switch outputMode(cmd, params.interactive) {
	case tui.OutputModeInteractive:
		p := tea.NewProgram(tui.NewRecommendationsViewModel(recs),
			tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen())
		if _, runErr := p.Run(); runErr != nil {
			return fmt.Errorf("running interactive recommendations: %w", runErr)
		}
		return nil
	case tui.OutputModeStyled:
		fmt.Fprintln(out, tui.RenderRecommendationsSummary(tui.NewRecommendationsSummary(recs)))
		return renderRecommendationsTable(out, recs)
	case tui.OutputModePlain:
	}
	return renderRecommendationsTable(out, recs)
}

func renderRecommendationsTable(w io.Writer, recs []engine.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations: every category is already at zero.")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "RANK\tCATEGORY\tACTION\tSAVINGS\tEFFORT\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t--------\t------\t-------\t------\t-----------")
	for _, r := range recs {
		desc := r.Description
		if len(desc) > maxDescriptionLen {
			desc = desc[:maxDescriptionLen-3] + "..."
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", r.Rank, r.Category, r.Action,
			greenops.FormatKg(r.EstimatedSavingsKg, 1), r.Effort, desc)
	}
	return tw.Flush()
}
