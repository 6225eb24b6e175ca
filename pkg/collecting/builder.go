// Package collecting samples the host and peripheral sources shown on the panel.
package collecting

import (
	"context"
	"log/slog"

	"panelstat/pkg/config"
	"panelstat/pkg/formatting"
	"panelstat/pkg/metrics"
	"panelstat/pkg/probing"
)

// Readers bundles the sources a Builder samples.
type Readers struct {
	Thermal ThermalReader
	Network AddressReader
	Audio   AudioReader
	System  SystemReader
}

// DefaultReaders wires the Linux sources named in cfg.
func DefaultReaders(cfg *config.Config, logger *slog.Logger) Readers {
	return Readers{
		Thermal: NewThermal(cfg.ThermalPath, cfg.ReadTimeout, logger.With("reader", "thermal")),
		Network: NewNetwork(cfg.ReadTimeout, logger.With("reader", "network")),
		Audio:   NewAudio(cfg.AudioPath, cfg.ReadTimeout, logger.With("reader", "audio")),
		System:  NewSystem(cfg.ReadTimeout, logger.With("reader", "system")),
	}
}

// Builder assembles one SystemSnapshot per refresh.
type Builder struct {
	readers  Readers
	ethernet string
	wireless string
}

func NewBuilder(cfg *config.Config, readers Readers) *Builder {
	return &Builder{
		readers:  readers,
		ethernet: cfg.EthernetInterface,
		wireless: cfg.WirelessInterface,
	}
}

// Build samples every reader and converts the results. Readers never fail,
// so the snapshot is always complete.
func (b *Builder) Build(ctx context.Context) metrics.SystemSnapshot {
	s := metrics.SystemSnapshot{Timestamp: probing.GetTimestamp()}

	sys := b.readers.System.ReadSystemMetrics(ctx)
	s.UptimeMinutes = sys.UptimeSeconds / config.SecondsPerMinute
	s.CPULoadPercent = sys.Load1Raw / config.LoadScale
	s.FreeRAMMegabytes = sys.FreeRAMBytes / config.BytesPerMegabyte

	s.CPUTempCelsius = b.readers.Thermal.ReadCPUTemperature(ctx)
	s.EthernetAddress = b.readers.Network.ReadIPv4Address(ctx, b.ethernet)
	s.WirelessAddress = b.readers.Network.ReadIPv4Address(ctx, b.wireless)

	audio := b.readers.Audio.ReadAudioStreamParameters(ctx)
	s.AudioFormatLabel = audio.Format
	s.AudioRateLabel = audio.Rate

	s.Lines = formatting.PanelLines(formatting.Values{
		EthernetAddress:  s.EthernetAddress,
		WirelessAddress:  s.WirelessAddress,
		CPULoadPercent:   s.CPULoadPercent,
		CPUTempCelsius:   s.CPUTempCelsius,
		FreeRAMMegabytes: s.FreeRAMMegabytes,
		AudioFormatLabel: s.AudioFormatLabel,
		AudioRateLabel:   s.AudioRateLabel,
	})
	return s
}
