package collecting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"panelstat/pkg/config"
	"panelstat/pkg/probing"
)

// TemperatureUnavailable is returned when the sensor cannot be read.
const TemperatureUnavailable = -1.0

type Thermal struct {
	path    string
	timeout time.Duration
	logger  *slog.Logger
}

func NewThermal(path string, timeout time.Duration, logger *slog.Logger) *Thermal {
	return &Thermal{path: path, timeout: timeout, logger: logger}
}

func (c *Thermal) Name() string { return "Thermal" }

// ReadCPUTemperature returns the sensor reading in degrees Celsius, or
// TemperatureUnavailable.
func (c *Thermal) ReadCPUTemperature(ctx context.Context) float64 {
	data, err := probing.WithTimeout(ctx, c.timeout, func() ([]byte, error) {
		return probing.File(c.path, config.ThermalReadLimit)
	})
	if err != nil {
		c.logger.Warn("failed to read cpu temperature", "error", sourceError(c.path, err))
		return TemperatureUnavailable
	}

	raw, ok := probing.LeadingInt(string(data))
	if !ok {
		c.logger.Warn("failed to parse cpu temperature",
			"error", fmt.Errorf("%w: %s: %q", ErrMalformedData, c.path, data))
		return TemperatureUnavailable
	}
	return float64(raw) / config.MilliCelsiusScale
}
