package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the user file, the project file and
GREENEVENT_* environment overrides. Every out-of-range setting is reported.`,
		Example: `  # Validate current configuration
  greenevent config validate

  # Validate and show detailed information
  greenevent config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	if err := checkConfigFiles(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

// checkConfigFiles parses the user and project files strictly. Loading for
// other commands only warns about a malformed file.
func checkConfigFiles() error {
	var paths []string
	if path, err := config.ConfigFilePath(); err == nil {
		paths = append(paths, path)
	}
	if dir := config.GetResolvedProjectDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := config.Default().Load(path); err != nil {
			return err
		}
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project directory: %s\n", dir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Distribution policy: %s (tolerance %.1f)\n",
		cfg.Engine.DistributionPolicy, cfg.Engine.DistributionTolerance)
	cmd.Printf("  Region: %s, adoption: %s\n", cfg.Engine.Region, cfg.Engine.Adoption)
	cmd.Printf("  Portfolio workers: %d (chunk size %d)\n", cfg.Engine.Concurrency, cfg.Engine.ChunkSize)
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)
}
