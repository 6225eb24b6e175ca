package display

import "panelstat/pkg/config"

const (
	glyphWidth   = 5
	CharAdvance  = glyphWidth + 1
	LineHeight   = 8
	bankCount    = config.PanelHeight / 8
	bufferLength = config.PanelWidth * bankCount
)

// Framebuffer is the 84x48 pixel memory of the panel in controller order:
// six horizontal banks of 84 column bytes, bit 0 at the top of each bank.
type Framebuffer struct {
	buf [bufferLength]byte
}

func (f *Framebuffer) Clear() {
	f.buf = [bufferLength]byte{}
}

// Bytes returns the buffer in the order the controller expects it.
func (f *Framebuffer) Bytes() []byte {
	return f.buf[:]
}

func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= config.PanelWidth || y < 0 || y >= config.PanelHeight {
		return
	}
	i, bit := x+(y/8)*config.PanelWidth, byte(1)<<(y%8)
	if c == Black {
		f.buf[i] |= bit
	} else {
		f.buf[i] &^= bit
	}
}

func (f *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || x >= config.PanelWidth || y < 0 || y >= config.PanelHeight {
		return White
	}
	if f.buf[x+(y/8)*config.PanelWidth]&(1<<(y%8)) != 0 {
		return Black
	}
	return White
}

// DrawChar draws one glyph in black with its top left corner at (x, y).
// Runes outside printable ASCII are drawn as '?'.
func (f *Framebuffer) DrawChar(x, y int, r rune) {
	glyph := glyphFor(r)
	for col := 0; col < glyphWidth; col++ {
		bits := glyph[col]
		for row := 0; row < LineHeight; row++ {
			if bits&(1<<row) != 0 {
				f.SetPixel(x+col, y+row, Black)
			}
		}
	}
}

// DrawString draws text left to right and clips at the right edge.
func (f *Framebuffer) DrawString(x, y int, text string) {
	for _, r := range text {
		if x+glyphWidth > config.PanelWidth {
			return
		}
		f.DrawChar(x, y, r)
		x += CharAdvance
	}
}

// DrawLine draws a straight line with Bresenham's algorithm, both ends
// included.
func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	e := dx + dy

	for {
		f.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawLogo draws the splash screen: a border with the logo text centered.
func (f *Framebuffer) DrawLogo() {
	last := config.PanelWidth - 1
	bottom := config.PanelHeight - 1
	f.DrawLine(0, 0, last, 0, Black)
	f.DrawLine(0, bottom, last, bottom, Black)
	f.DrawLine(0, 0, 0, bottom, Black)
	f.DrawLine(last, 0, last, bottom, Black)

	top := (config.PanelHeight - len(Logo)*LineHeight) / 2
	for i, line := range Logo {
		x := (config.PanelWidth - len(line)*CharAdvance + 1) / 2
		f.DrawString(x, top+i*LineHeight, line)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
