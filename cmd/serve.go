package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/karolswdev/nichefinder/internal/config"
	"github.com/karolswdev/nichefinder/internal/server"
)

// newServeCmd creates the serve command
func newServeCmd() *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the nichefinder HTTP API",
		Long: `Starts the HTTP API:

  POST /api/analyze-niche   profile in, recommendations out
  GET  /health              liveness probe
  GET  /swagger/index.html  API documentation

The server stops gracefully on SIGINT or SIGTERM. Without a usable LLM provider
or API key every request is answered from the built-in fallback set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			provider, err := GetProvider(ctx)
			if err != nil {
				Log.Error().Err(err).Msg("Failed to get service provider")
				return fmt.Errorf("failed to initialize services: %w", err)
			}
			defer func() {
				if cerr := provider.Close(); cerr != nil {
					Log.Warn().Err(cerr).Msg("Failed to close LLM client")
				}
			}()

			return serveRunE(ctx, provider.AppConfig, provider.Service, addr)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides server.address (e.g. :8080)")
	return serveCmd
}

// serveRunE serves the API until ctx is cancelled.
func serveRunE(ctx context.Context, cfg *config.AppConfig, svc server.Recommender, addrOverride string) error {
	addr := cfg.Server.Address
	if addrOverride != "" {
		addr = addrOverride
	}

	handler := server.NewRouter(svc, server.Options{MaxBodyBytes: cfg.Server.MaxBodyBytes})

	Log.Info().
		Str("address", addr).
		Str("llm_provider", cfg.LLM.Provider).
		Int64("max_body_bytes", cfg.Server.MaxBodyBytes).
		Msg("Starting nichefinder API")
	return server.Run(ctx, addr, cfg.Server.ShutdownTimeout, handler)
}
