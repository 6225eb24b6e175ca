package collecting

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sys/unix"

	"panelstat/pkg/metrics"
	"panelstat/pkg/probing"
)

type System struct {
	timeout time.Duration
	logger  *slog.Logger
	sysinfo func(*unix.Sysinfo_t) error
}

func NewSystem(timeout time.Duration, logger *slog.Logger) *System {
	return &System{timeout: timeout, logger: logger, sysinfo: unix.Sysinfo}
}

func (c *System) Name() string { return "System" }

// ReadSystemMetrics makes one sysinfo call. A failed call is logged and the
// structure it left behind is used as is.
func (c *System) ReadSystemMetrics(ctx context.Context) metrics.SystemMetrics {
	info, err := probing.WithTimeout(ctx, c.timeout, func() (unix.Sysinfo_t, error) {
		var info unix.Sysinfo_t
		err := c.sysinfo(&info)
		return info, err
	})
	if err != nil {
		c.logger.Error("sysinfo failed", "error", err)
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}

	return metrics.SystemMetrics{
		UptimeSeconds: int64(info.Uptime),
		Load1Raw:      uint64(info.Loads[0]),
		FreeRAMBytes:  uint64(info.Freeram) * unit,
	}
}
