// Package formatting turns sampled values into panel text.
package formatting

import (
	"fmt"

	"panelstat/pkg/config"
)

// Line indexes into the slice returned by PanelLines.
const (
	EthernetLine = iota
	WirelessLine
	CPULine
	RAMLine
	AudioFormatLine
	AudioRateLine
	LineCount
)

// Values are the converted readings a panel page is built from.
type Values struct {
	EthernetAddress  string
	WirelessAddress  string
	CPULoadPercent   uint64
	CPUTempCelsius   float64
	FreeRAMMegabytes uint64
	AudioFormatLabel string
	AudioRateLabel   string
}

// PanelLines formats v into the six panel lines, each cut to the panel width.
func PanelLines(v Values) []string {
	lines := make([]string, LineCount)
	lines[EthernetLine] = "E" + v.EthernetAddress
	lines[WirelessLine] = "W" + v.WirelessAddress
	lines[CPULine] = fmt.Sprintf("CPU %d%% %.2f", v.CPULoadPercent, v.CPUTempCelsius)
	lines[RAMLine] = fmt.Sprintf("RAM %d MB", v.FreeRAMMegabytes)
	lines[AudioFormatLine] = v.AudioFormatLabel
	lines[AudioRateLine] = v.AudioRateLabel

	for i, l := range lines {
		lines[i] = Truncate(l, config.PanelColumns)
	}
	return lines
}

// UptimeLine is computed for diagnostics but not placed on the panel.
func UptimeLine(minutes int64) string {
	return fmt.Sprintf("Uptime %d min.", minutes)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
