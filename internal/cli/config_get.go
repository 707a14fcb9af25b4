package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print effective configuration values",
		Long: `Prints the effective value of a dotted configuration key, after the user
file, the project file and GREENEVENT_* environment variables have been applied.
Without a key, prints every key.`,
		Example: `  greenevent config get output.default_format
  greenevent config get`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetGlobalConfig()
			if len(args) == 1 {
				v, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatConfigValue(v))
				return nil
			}

			tw := newTabWriter(cmd.OutOrStdout())
			for _, key := range cfg.Keys() {
				v, err := cfg.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", key, formatConfigValue(v))
			}
			return tw.Flush()
		},
	}
}

func formatConfigValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
