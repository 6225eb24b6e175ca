// Package metrics defines the sampled values shown on the panel.
package metrics

// Audio label values used when no live stream parameters are known.
const (
	DefaultAudioFormat = "MusicStop"
	DefaultAudioRate   = "0.0"
	CardFailFormat     = "card1 fail"
	CardFailRate       = "R:0.0"
)

// SystemMetrics is the raw output of the system information facility.
type SystemMetrics struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Load1Raw      uint64 `json:"load1Raw"`
	FreeRAMBytes  uint64 `json:"freeRamBytes"`
}

// AudioLabels is the display-ready sample format and rate pair.
type AudioLabels struct {
	Format string `json:"format"`
	Rate   string `json:"rate"`
}

// DefaultAudioLabels returns the labels shown before any stream was seen.
func DefaultAudioLabels() AudioLabels {
	return AudioLabels{Format: DefaultAudioFormat, Rate: DefaultAudioRate}
}

// SystemSnapshot is one fully populated refresh of every sampled value.
type SystemSnapshot struct {
	Timestamp        int64    `json:"timestamp"`
	UptimeMinutes    int64    `json:"uptimeMinutes"`
	CPULoadPercent   uint64   `json:"cpuLoadPercent"`
	CPUTempCelsius   float64  `json:"cpuTempCelsius"`
	FreeRAMMegabytes uint64   `json:"freeRamMegabytes"`
	EthernetAddress  string   `json:"eth0Address"`
	WirelessAddress  string   `json:"wifiAddress"`
	AudioFormatLabel string   `json:"audioFormatLabel"`
	AudioRateLabel   string   `json:"audioRateLabel"`
	Lines            []string `json:"lines"`
}
