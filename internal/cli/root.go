// Package cli provides the invoice-service command line.
package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:           "invoice-service",
		Short:         "Invoice CRUD API with a cache-aside layer",
		Long:          "invoice-service serves /api/invoice backed by MongoDB, Postgres or SQLite, caching reads in memory or Redis.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())
	cmd.AddCommand(serve)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}
