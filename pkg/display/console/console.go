// Package console emulates the status panel as a 14x6 character grid on a
// terminal or any other writer.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"panelstat/pkg/config"
	"panelstat/pkg/display"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	separator   = "╌"
)

// Console is a display.Drawer that maps pixel coordinates onto character
// cells. Horizontal lines become separator rows below the cell row they
// cross; other lines are not representable and are dropped.
type Console struct {
	out     io.Writer
	repaint bool
	frame   lipgloss.Style

	mu    sync.Mutex
	grid  [config.PanelRows][config.PanelColumns]rune
	rules map[int]bool
	last  string
}

func New(out io.Writer) *Console {
	c := &Console{
		out:   out,
		frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		rules: make(map[int]bool),
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.repaint = true
	}
	c.Clear()
	return c
}

// Init has nothing to attach to.
func (c *Console) Init(display.Pins, uint8) error { return nil }

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for r := range c.grid {
		for col := range c.grid[r] {
			c.grid[r][col] = ' '
		}
	}
	clear(c.rules)
}

func (c *Console) DrawString(x, y int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, col := y/display.LineHeight, x/display.CharAdvance
	if y < 0 || row >= config.PanelRows || x < 0 {
		return
	}
	for _, r := range text {
		if col >= config.PanelColumns {
			return
		}
		c.grid[row][col] = r
		col++
	}
}

func (c *Console) DrawLine(x0, y0, x1, y1 int, _ display.Color) {
	if y0 != y1 || y0 < 0 || y0 >= config.PanelHeight {
		return
	}
	c.mu.Lock()
	c.rules[y0/display.LineHeight] = true
	c.mu.Unlock()
}

func (c *Console) ShowLogo() {
	c.Clear()
	top := (config.PanelRows - len(display.Logo)) / 2
	for i, line := range display.Logo {
		pad := (config.PanelColumns - len(line)) / 2
		c.DrawString(pad*display.CharAdvance, (top+i)*display.LineHeight, line)
	}
}

// Display renders the grid inside a frame and writes it out.
func (c *Console) Display() error {
	c.mu.Lock()
	var b strings.Builder
	for r := range c.grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(c.grid[r][:]))
		if c.rules[r] && r < config.PanelRows-1 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(separator, config.PanelColumns))
		}
	}
	c.last = c.frame.Render(b.String())
	out := c.last
	c.mu.Unlock()

	if c.repaint {
		out = clearScreen + out
	}
	if _, err := fmt.Fprintln(c.out, out); err != nil {
		return fmt.Errorf("failed to write panel: %w", err)
	}
	return nil
}

// Frame returns the text written by the last Display.
func (c *Console) Frame() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
