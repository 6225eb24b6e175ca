package display

import (
	"fmt"

	"panelstat/pkg/metrics"
)

// Renderer draws snapshots through a Drawer using a fixed layout.
type Renderer struct {
	drawer Drawer
	layout Layout
}

func NewRenderer(drawer Drawer, layout Layout) *Renderer {
	return &Renderer{drawer: drawer, layout: layout}
}

// Render replaces the panel contents with s and flushes it.
func (r *Renderer) Render(s metrics.SystemSnapshot) error {
	r.drawer.Clear()
	for _, p := range r.layout.Fields {
		if p.Line < len(s.Lines) {
			r.drawer.DrawString(p.X, p.Y, s.Lines[p.Line])
		}
	}
	for _, l := range r.layout.Rules {
		r.drawer.DrawLine(l.X0, l.Y0, l.X1, l.Y1, l.Color)
	}

	if err := r.drawer.Display(); err != nil {
		return fmt.Errorf("failed to flush display: %w", err)
	}
	return nil
}
