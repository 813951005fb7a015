package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/adapters/httpapi"
	"github.com/example/bpos/internal/config"
	"github.com/example/bpos/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  `Run the bpos HTTP API server. Bearer tokens from the config file's auth_tokens map authenticate requests.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configureWire()
			if cfg == nil {
				cfg = &config.Config{}
			}

			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.Addr()
			}

			if len(cfg.AuthTokens) == 0 {
				slog.Warn("no auth tokens configured, all API requests will be rejected")
			}

			server := httpapi.NewServer(wire.HTTPServices(), cfg.AuthTokens)
			slog.Info("starting HTTP server", "addr", addr)
			if err := server.Router().Run(addr); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, else :8080)")

	return cmd
}
