// Package display defines the drawing contract of the status panel and the
// pieces shared by its implementations: a monochrome framebuffer with a 5x7
// font, the field layout table and the renderer that applies it.
package display

// Color of a pixel on the monochrome panel.
type Color uint8

const (
	White Color = iota
	Black
)

// Pins names the bus and control lines a hardware Drawer attaches to.
type Pins struct {
	SPIPort string
	DC      string
	Reset   string
}

// Drawer is the drawing contract consumed by the renderer and the
// orchestrator. Coordinates are panel pixels with the origin top left.
// Nothing reaches the glass until Display is called.
type Drawer interface {
	Init(pins Pins, contrast uint8) error
	Clear()
	DrawString(x, y int, text string)
	DrawLine(x0, y0, x1, y1 int, c Color)
	Display() error
	ShowLogo()
}
