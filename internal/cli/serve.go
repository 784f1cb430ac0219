package cli

import (
	"github.com/mrlokans/vaultport/internal/config"
	"github.com/mrlokans/vaultport/internal/entrypoint"
	"github.com/mrlokans/vaultport/internal/logging"
	"github.com/spf13/cobra"
)

// NewServeCommand exposes the converters over HTTP.
func NewServeCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converters over HTTP",
		Long: `Serve starts an HTTP server with two endpoints:

  GET  /health
  POST /api/convert/{bitwarden|protonpass}?format=json|csv&output=json|csv

Exports are sent as the raw request body or as the "export_file" field of a
multipart form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfigWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Log)
			return entrypoint.Run(cmd.Context(), cfg, version, logger)
		},
	}

	cmd.Flags().String("host", "0.0.0.0", "Address to listen on")
	cmd.Flags().Int32("port", 8188, "Port to listen on")

	return cmd
}
