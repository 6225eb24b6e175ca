package display

import (
	"errors"
	"fmt"
	"testing"

	"panelstat/pkg/metrics"
)

type recordingDrawer struct {
	calls      []string
	displayErr error
}

func (d *recordingDrawer) Init(Pins, uint8) error { return nil }
func (d *recordingDrawer) Clear()                  { d.calls = append(d.calls, "clear") }
func (d *recordingDrawer) ShowLogo()               { d.calls = append(d.calls, "logo") }

func (d *recordingDrawer) DrawString(x, y int, text string) {
	d.calls = append(d.calls, fmt.Sprintf("string %d,%d %s", x, y, text))
}

func (d *recordingDrawer) DrawLine(x0, y0, x1, y1 int, c Color) {
	d.calls = append(d.calls, fmt.Sprintf("line %d,%d %d,%d %d", x0, y0, x1, y1, c))
}

func (d *recordingDrawer) Display() error {
	d.calls = append(d.calls, "display")
	return d.displayErr
}

func TestRenderer_DrawsLayout(t *testing.T) {
	d := &recordingDrawer{}
	r := NewRenderer(d, DefaultLayout())

	err := r.Render(metrics.SystemSnapshot{
		Lines: []string{"E10.0.0.7", "W0.0.0.0", "CPU 0% 47.24", "RAM 100 MB", "MusicStop", "0.0"},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := []string{
		"clear",
		"string 0,0 E10.0.0.7",
		"string 0,8 W0.0.0.0",
		"string 0,16 CPU 0% 47.24",
		"string 0,24 RAM 100 MB",
		"string 0,32 MusicStop",
		"string 0,40 0.0",
		"line 0,31 83,31 1",
		"display",
	}
	if len(d.calls) != len(want) {
		t.Fatalf("calls = %q; want %q", d.calls, want)
	}
	for i := range want {
		if d.calls[i] != want[i] {
			t.Errorf("call %d = %q; want %q", i, d.calls[i], want[i])
		}
	}
}

func TestRenderer_ShortSnapshotSkipsMissingLines(t *testing.T) {
	d := &recordingDrawer{}
	r := NewRenderer(d, DefaultLayout())

	if err := r.Render(metrics.SystemSnapshot{Lines: []string{"only"}}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	strings := 0
	for _, c := range d.calls {
		if len(c) > 6 && c[:6] == "string" {
			strings++
		}
	}
	if strings != 1 {
		t.Errorf("DrawString calls = %d; want 1", strings)
	}
}

func TestRenderer_DisplayError(t *testing.T) {
	flush := errors.New("spi: transfer failed")
	r := NewRenderer(&recordingDrawer{displayErr: flush}, DefaultLayout())

	if err := r.Render(metrics.SystemSnapshot{}); !errors.Is(err, flush) {
		t.Errorf("Render() error = %v; want it to wrap %v", err, flush)
	}
}

func TestDefaultLayout_Validate(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Errorf("DefaultLayout().Validate() = %v; want nil", err)
	}

	rows := map[int]bool{}
	for _, p := range DefaultLayout().Fields {
		if rows[p.Y] {
			t.Errorf("two lines share y=%d", p.Y)
		}
		rows[p.Y] = true
	}
}

func TestLayout_ValidateRejects(t *testing.T) {
	bad := []Layout{
		{Fields: []Placement{{Line: 9}}},
		{Fields: []Placement{{Line: 0, Y: 44}}},
		{Fields: []Placement{{Line: 0, X: -1}}},
	}
	for i, l := range bad {
		if err := l.Validate(); err == nil {
			t.Errorf("layout %d: Validate() = nil; want error", i)
		}
	}
}
