package display

import (
	"fmt"

	"panelstat/pkg/config"
	"panelstat/pkg/formatting"
)

// Placement puts one snapshot line at a pixel position.
type Placement struct {
	Line int
	X, Y int
}

// Rule is a decorative line drawn after the text.
type Rule struct {
	X0, Y0, X1, Y1 int
	Color          Color
}

// Layout maps snapshot lines to panel coordinates.
type Layout struct {
	Fields []Placement
	Rules  []Rule
}

// DefaultLayout stacks the six lines one character cell apart and separates
// the host block from the audio block with a rule.
func DefaultLayout() Layout {
	return Layout{
		Fields: []Placement{
			{Line: formatting.EthernetLine, X: 0, Y: 0},
			{Line: formatting.WirelessLine, X: 0, Y: 8},
			{Line: formatting.CPULine, X: 0, Y: 16},
			{Line: formatting.RAMLine, X: 0, Y: 24},
			{Line: formatting.AudioFormatLine, X: 0, Y: 32},
			{Line: formatting.AudioRateLine, X: 0, Y: 40},
		},
		Rules: []Rule{
			{X0: 0, Y0: 31, X1: config.PanelWidth - 1, Y1: 31, Color: Black},
		},
	}
}

// Validate checks that every placement starts on the panel and names a line.
func (l Layout) Validate() error {
	for _, p := range l.Fields {
		if p.Line < 0 || p.Line >= formatting.LineCount {
			return fmt.Errorf("unknown line %d", p.Line)
		}
		if p.X < 0 || p.X >= config.PanelWidth || p.Y < 0 || p.Y+LineHeight > config.PanelHeight {
			return fmt.Errorf("line %d at (%d, %d) is off the panel", p.Line, p.X, p.Y)
		}
	}
	return nil
}
