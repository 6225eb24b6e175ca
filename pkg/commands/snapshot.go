package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"panelstat/pkg/config"
	"panelstat/pkg/display"
	"panelstat/pkg/display/console"
	"panelstat/pkg/formatting"
	"panelstat/pkg/logging"
	"panelstat/pkg/metrics"
)

// NewSnapshotCmd creates the snapshot subcommand.
func NewSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"ss"},
		Short:   "Sample once and print the panel",
		Long: `Build a single snapshot, print the panel as it would appear, then the
values behind it, including the uptime line the panel leaves out.

Example:
  panelstat snapshot`,
		Args: cobra.NoArgs,
		RunE: runSnapshot,
	}
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	logger := logging.New(os.Stderr)
	s := newBuilder(logger).Build(cmd.Context())

	out := cmd.OutOrStdout()
	if err := display.NewRenderer(console.New(out), display.DefaultLayout()).Render(s); err != nil {
		return err
	}
	return writeSnapshotDetails(out, s)
}

func writeSnapshotDetails(w io.Writer, s metrics.SystemSnapshot) error {
	uptime := time.Duration(s.UptimeMinutes) * time.Minute
	_, err := fmt.Fprintf(w, `%s (%s)
sampled:     %s
cpu load:    %d%%
cpu temp:    %.2f C
free ram:    %s
eth0:        %s
wlan0:       %s
audio:       %s %s
`,
		formatting.UptimeLine(s.UptimeMinutes), uptime,
		time.Unix(0, s.Timestamp).Format(time.RFC3339),
		s.CPULoadPercent,
		s.CPUTempCelsius,
		humanize.IBytes(s.FreeRAMMegabytes*config.BytesPerMegabyte),
		s.EthernetAddress,
		s.WirelessAddress,
		s.AudioFormatLabel, s.AudioRateLabel,
	)
	return err
}
