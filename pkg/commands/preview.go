package commands

import (
	"os"

	"github.com/spf13/cobra"

	"panelstat/pkg/display/console"
	"panelstat/pkg/logging"
)

// NewPreviewCmd creates the preview subcommand.
func NewPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "preview",
		Aliases: []string{"p"},
		Short:   "Run the refresh loop on the terminal",
		Long: `Run the same sampling and refresh loop as the daemon, drawing a
14x6 character emulation of the panel on stdout instead of the PCD8544.

Example:
  panelstat preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(os.Stderr)
			return runPanel(cmd.Context(), console.New(cmd.OutOrStdout()), logger)
		},
	}
}
