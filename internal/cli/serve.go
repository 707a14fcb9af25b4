package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimation engine as JSON over HTTP",
		Long: `Starts a stateless HTTP server exposing footprint, benchmark, assessment,
format comparison, savings, incentive, recommendation and portfolio endpoints
under /v1, plus /healthz. Stops gracefully on SIGINT or SIGTERM.`,
		Example: `  greenevent serve
  greenevent serve --addr 127.0.0.1:9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info().Ctx(ctx).Str("addr", addr).Msg("starting server")
			return server.New(cfg, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
