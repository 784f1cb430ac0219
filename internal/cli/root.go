package cli

import (
	"fmt"

	"github.com/mrlokans/vaultport/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the vaultport command tree.
func NewRootCommand(version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:           "vaultport",
		Short:         "Normalize password manager exports into canonical records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "text", "Log format: text or json")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vaultport %s (%s)\n", version, commit)
		},
	}

	root.AddCommand(
		NewConvertCommand().Command(),
		NewServeCommand(version),
		versionCmd,
	)
	return root
}
