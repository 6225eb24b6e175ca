package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"panelstat/pkg/collecting"
	"panelstat/pkg/display"
	"panelstat/pkg/panel"
)

func newBuilder(logger *slog.Logger) *collecting.Builder {
	return collecting.NewBuilder(Cfg, collecting.DefaultReaders(Cfg, logger))
}

// runPanel drives drawer until SIGINT or SIGTERM.
func runPanel(parent context.Context, drawer display.Drawer, logger *slog.Logger) error {
	if err := Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	o := panel.New(Cfg, drawer, newBuilder(logger), logger)
	if err := o.Run(ctx); err != nil {
		logger.Error("panel stopped", "error", err)
		return err
	}
	return nil
}
