// Package panel runs the refresh loop that keeps the status panel current.
package panel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"panelstat/pkg/config"
	"panelstat/pkg/display"
	"panelstat/pkg/metrics"
)

// State is a step of the refresh loop.
type State int

const (
	StateInit State = iota
	StateShowSplash
	StateRefresh
	StateRender
	StateSleep
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateShowSplash:
		return "splash"
	case StateRefresh:
		return "refresh"
	case StateRender:
		return "render"
	case StateSleep:
		return "sleep"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// SnapshotBuilder produces one complete snapshot per call.
type SnapshotBuilder interface {
	Build(ctx context.Context) metrics.SystemSnapshot
}

// Orchestrator drives Init, ShowSplash and then Refresh, Render, Sleep
// forever. Only a failed Init ends the loop with an error.
type Orchestrator struct {
	cfg      *config.Config
	drawer   display.Drawer
	builder  SnapshotBuilder
	renderer *display.Renderer
	logger   *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
	state State
}

func New(cfg *config.Config, drawer display.Drawer, builder SnapshotBuilder, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		drawer:   drawer,
		builder:  builder,
		renderer: display.NewRenderer(drawer, display.DefaultLayout()),
		logger:   logger,
		sleep:    sleepContext,
	}
}

func (o *Orchestrator) State() State { return o.state }

// Run blocks until ctx is cancelled. It returns an error only when the
// display cannot be initialized.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.state = StateInit
	pins := display.Pins{SPIPort: o.cfg.SPIPort, DC: o.cfg.DCPin, Reset: o.cfg.ResetPin}
	if err := o.drawer.Init(pins, o.cfg.Contrast); err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}

	o.state = StateShowSplash
	o.drawer.Clear()
	o.drawer.ShowLogo()
	if err := o.drawer.Display(); err != nil {
		o.logger.Warn("failed to show splash", "error", err)
	}
	if o.sleep(ctx, o.cfg.SplashHold) != nil {
		return nil
	}

	o.logger.Info("refresh loop started", "interval", o.cfg.RefreshInterval)
	refreshes := 0
	for {
		o.state = StateRefresh
		snapshot := o.builder.Build(ctx)

		o.state = StateRender
		if err := o.renderer.Render(snapshot); err != nil {
			o.logger.Warn("failed to render snapshot", "error", err)
		}

		refreshes++
		if refreshes%100 == 0 {
			o.logger.Debug("panel refreshed", "count", refreshes)
		}

		o.state = StateSleep
		if o.sleep(ctx, o.cfg.RefreshInterval) != nil {
			o.logger.Info("refresh loop stopped", "refreshes", refreshes)
			return nil
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
