package collecting

import (
	"context"
	"errors"
	"fmt"

	"panelstat/pkg/metrics"
	"panelstat/pkg/probing"
)

// Failure classes. Readers log these and fall back to a sentinel; none of
// them reach the refresh loop.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedData     = errors.New("malformed data")
	ErrPartialData       = errors.New("partial data")
)

type ThermalReader interface {
	ReadCPUTemperature(ctx context.Context) float64
}

type AddressReader interface {
	ReadIPv4Address(ctx context.Context, ifname string) string
}

type AudioReader interface {
	ReadAudioStreamParameters(ctx context.Context) metrics.AudioLabels
}

type SystemReader interface {
	ReadSystemMetrics(ctx context.Context) metrics.SystemMetrics
}

// sourceError classifies an error from probing.File or the timeout policy.
func sourceError(path string, err error) error {
	if errors.Is(err, probing.ErrOpen) || errors.Is(err, probing.ErrRead) {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
}
