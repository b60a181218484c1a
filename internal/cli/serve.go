package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/guttosm/invoice-service/config"
	"github.com/guttosm/invoice-service/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.InitializeApp(ctx, cfg)
			if err != nil {
				return err
			}
			return a.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	return cmd
}
