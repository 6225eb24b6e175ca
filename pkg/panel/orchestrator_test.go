package panel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"panelstat/pkg/config"
	"panelstat/pkg/display"
	"panelstat/pkg/metrics"
)

type fakeDrawer struct {
	initErr    error
	displayErr error
	pins       display.Pins
	contrast   uint8
	calls      []string
}

func (d *fakeDrawer) Init(pins display.Pins, contrast uint8) error {
	d.pins, d.contrast = pins, contrast
	d.calls = append(d.calls, "init")
	return d.initErr
}
func (d *fakeDrawer) Clear()                      { d.calls = append(d.calls, "clear") }
func (d *fakeDrawer) ShowLogo()                   { d.calls = append(d.calls, "logo") }
func (d *fakeDrawer) DrawString(int, int, string) { d.calls = append(d.calls, "string") }
func (d *fakeDrawer) DrawLine(int, int, int, int, display.Color) {
	d.calls = append(d.calls, "line")
}
func (d *fakeDrawer) Display() error {
	d.calls = append(d.calls, "display")
	return d.displayErr
}

type countingBuilder struct{ builds int }

func (b *countingBuilder) Build(context.Context) metrics.SystemSnapshot {
	b.builds++
	return metrics.SystemSnapshot{Lines: []string{"E0.0.0.0", "W0.0.0.0", "CPU 0% -1.00", "RAM 0 MB", "MusicStop", "0.0"}}
}

func newTestOrchestrator(d *fakeDrawer, b *countingBuilder) *Orchestrator {
	return New(config.New(), d, b, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// stopAfter returns a sleep that records its durations and reports
// cancellation once it has been called n times.
func stopAfter(o *Orchestrator, n int, slept *[]time.Duration, states *[]State) {
	o.sleep = func(ctx context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		*states = append(*states, o.State())
		if len(*slept) >= n {
			return context.Canceled
		}
		return nil
	}
}

func TestRun_Sequence(t *testing.T) {
	d, b := &fakeDrawer{}, &countingBuilder{}
	o := newTestOrchestrator(d, b)

	var slept []time.Duration
	var states []State
	stopAfter(o, 4, &slept, &states)

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if b.builds != 3 {
		t.Errorf("builds = %d; want 3", b.builds)
	}
	want := []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second, 2 * time.Second}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep %d = %v; want %v", i, slept[i], want[i])
		}
	}
	if states[0] != StateShowSplash || states[1] != StateSleep {
		t.Errorf("states at sleep = %v; want splash then sleep", states)
	}

	prefix := "init clear logo display clear string string string string string string line display"
	if got := strings.Join(d.calls, " "); !strings.HasPrefix(got, prefix) {
		t.Errorf("calls = %q; want prefix %q", got, prefix)
	}
	if d.contrast != 65 || d.pins.SPIPort != "SPI0.0" {
		t.Errorf("Init(%+v, %d); want SPI0.0 and contrast 65", d.pins, d.contrast)
	}
}

func TestRun_InitFailureIsFatal(t *testing.T) {
	hw := errors.New("spi: no such port")
	d, b := &fakeDrawer{initErr: hw}, &countingBuilder{}
	o := newTestOrchestrator(d, b)

	err := o.Run(context.Background())
	if !errors.Is(err, hw) {
		t.Errorf("Run() error = %v; want it to wrap %v", err, hw)
	}
	if b.builds != 0 || len(d.calls) != 1 {
		t.Errorf("after failed init: builds=%d calls=%v; want nothing further", b.builds, d.calls)
	}
	if o.State() != StateInit {
		t.Errorf("State() = %v; want init", o.State())
	}
}

func TestRun_DisplayErrorsDoNotStopLoop(t *testing.T) {
	d, b := &fakeDrawer{displayErr: errors.New("spi: timeout")}, &countingBuilder{}
	o := newTestOrchestrator(d, b)

	var slept []time.Duration
	var states []State
	stopAfter(o, 6, &slept, &states)

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if b.builds != 5 {
		t.Errorf("builds = %d; want 5", b.builds)
	}
}

func TestRun_CancelledDuringSplash(t *testing.T) {
	d, b := &fakeDrawer{}, &countingBuilder{}
	o := newTestOrchestrator(d, b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := o.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if b.builds != 0 {
		t.Errorf("builds = %d; want 0", b.builds)
	}
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepContext() = %v; want nil", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepContext() = %v; want Canceled", err)
	}
}

func TestState_String(t *testing.T) {
	if StateRefresh.String() != "refresh" || State(42).String() != "State(42)" {
		t.Errorf("String() = %q, %q", StateRefresh.String(), State(42).String())
	}
}
