// Package commands provides CLI command implementations.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"panelstat/pkg/config"
	"panelstat/pkg/display/pcd8544"
	"panelstat/pkg/logging"
)

// Cfg is the shared, compiled-in configuration.
var Cfg = config.New()

// NewRootCmd creates the root command with all subcommands. The root command
// itself runs the daemon on the attached panel.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "panelstat",
		Short: "Status panel daemon for a PCD8544 display",
		Long: `panelstat samples uptime, load, free memory, CPU temperature, the
eth0/wlan0 addresses and the live audio stream parameters, and shows them on
an 84x48 PCD8544 panel, refreshing every two seconds until killed.

Commands:
  preview    Run the same refresh loop on the terminal
  snapshot   Sample once and print the panel and the raw values`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDaemon,
	}

	root.AddCommand(
		NewPreviewCmd(),
		NewSnapshotCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runDaemon(cmd *cobra.Command, args []string) error {
	logger := logging.New(os.Stderr)
	logger.Info(config.Banner)

	device := pcd8544.New(logger.With("drawer", "pcd8544"))
	defer func() {
		if err := device.Halt(); err != nil {
			logger.Warn("failed to halt panel", "error", err)
		}
	}()

	return runPanel(cmd.Context(), device, logger)
}
