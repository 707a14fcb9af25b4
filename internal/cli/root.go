// Package cli implements the greenevent command line.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command and wires configuration, logging and
// every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "greenevent",
		Short:         "Event sustainability estimation",
		Long:          "greenevent: estimate the carbon, water and waste footprint of planned events and what it costs to reduce it",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadConfig(cmd)
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("project-dir", "",
		"project directory holding .greenevent/config.yaml (default: search upward from the working directory)")
	cmd.PersistentFlags().Bool("plain", false, "disable colors and interactive views")

	cmd.AddCommand(
		NewFootprintCmd(), NewBenchmarkCmd(), NewAssessCmd(), NewFormatsCmd(),
		NewSavingsCmd(), NewIncentivesCmd(), NewRecommendCmd(), NewPortfolioCmd(),
		NewServeCmd(), newConfigCmd(),
	)
	return cmd
}

// loadConfig resolves the project directory and installs the merged
// configuration as the global one.
func loadConfig(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	flagDir, _ := cmd.Flags().GetString("project-dir")
	wd, _ := os.Getwd()

	projectDir := config.ResolveProjectDir(ctx, flagDir, wd)
	config.SetResolvedProjectDir(projectDir)
	config.SetGlobalConfig(config.NewWithProjectDir(ctx, projectDir))
}

const rootCmdExample = `  # Footprint of an event document, with everyday equivalents
  greenevent footprint -f event.yaml --equivalencies

  # Compare in-person, virtual and hybrid formats
  greenevent formats --attendees 300 --distance-km 800 --days 2

  # Early estimate before venues or menus are known
  greenevent assess --event-type conference --format hybrid --attendees 250 --days 2

  # Browse ranked reduction opportunities
  greenevent recommend -f event.yaml --interactive

  # Evaluate a whole season of events as JSON
  greenevent portfolio -f season.yaml --output json

  # Serve the engine over HTTP
  greenevent serve --addr :8080`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigGetCmd(), NewConfigValidateCmd())
	return cmd
}
