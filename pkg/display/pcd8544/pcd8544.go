// Package pcd8544 drives a PCD8544 (Nokia 5110/3310) 84x48 panel over SPI.
package pcd8544

import (
	"fmt"
	"log/slog"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"panelstat/pkg/display"
)

// Controller instructions.
const (
	cmdFunctionSet    = 0x20
	cmdExtended       = 0x01
	cmdPowerDown      = 0x04
	cmdDisplayControl = 0x08
	cmdDisplayNormal  = 0x04
	cmdSetYAddr       = 0x40
	cmdSetXAddr       = 0x80
	cmdSetTempCoeff   = 0x04
	cmdSetBias        = 0x10
	cmdSetVop         = 0x80

	biasMux48   = 0x04
	maxContrast = 0x7f
	busSpeed    = 4 * physic.MegaHertz
	resetPulse  = 10 * time.Millisecond
)

type transport interface {
	Tx(w, r []byte) error
}

type pin interface {
	Out(l gpio.Level) error
}

// Device is a display.Drawer backed by the panel. Drawing goes to an
// in-memory framebuffer; Display sends it to the controller.
type Device struct {
	fb     display.Framebuffer
	port   spi.PortCloser
	conn   transport
	dc     pin
	reset  pin
	logger *slog.Logger
}

func New(logger *slog.Logger) *Device {
	return &Device{logger: logger}
}

// Init loads the host drivers, opens the bus and control lines named in
// pins, resets the controller and programs the contrast.
func (d *Device) Init(pins display.Pins, contrast uint8) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	port, err := spireg.Open(pins.SPIPort)
	if err != nil {
		return fmt.Errorf("failed to open spi port %q: %w", pins.SPIPort, err)
	}
	conn, err := port.Connect(busSpeed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return fmt.Errorf("failed to configure spi port %q: %w", pins.SPIPort, err)
	}

	dc := gpioreg.ByName(pins.DC)
	if dc == nil {
		port.Close()
		return fmt.Errorf("unknown data/command pin %q", pins.DC)
	}
	reset := gpioreg.ByName(pins.Reset)
	if reset == nil {
		port.Close()
		return fmt.Errorf("unknown reset pin %q", pins.Reset)
	}

	d.port = port
	d.attach(conn, dc, reset)
	if err := d.configure(contrast); err != nil {
		port.Close()
		return err
	}

	d.logger.Info("panel initialized", "spi", pins.SPIPort, "dc", pins.DC, "reset", pins.Reset, "contrast", contrast)
	return nil
}

func (d *Device) attach(conn transport, dc, reset pin) {
	d.conn, d.dc, d.reset = conn, dc, reset
}

// configure pulses reset and sends the power-up sequence.
func (d *Device) configure(contrast uint8) error {
	if contrast > maxContrast {
		return fmt.Errorf("contrast %d out of range", contrast)
	}

	if err := d.reset.Out(gpio.Low); err != nil {
		return fmt.Errorf("failed to assert reset: %w", err)
	}
	time.Sleep(resetPulse)
	if err := d.reset.Out(gpio.High); err != nil {
		return fmt.Errorf("failed to release reset: %w", err)
	}

	err := d.command(
		cmdFunctionSet|cmdExtended,
		cmdSetBias|biasMux48,
		cmdSetVop|contrast,
		cmdSetTempCoeff,
		cmdFunctionSet,
		cmdDisplayControl|cmdDisplayNormal,
	)
	if err != nil {
		return fmt.Errorf("failed to configure controller: %w", err)
	}

	d.fb.Clear()
	return d.Display()
}

func (d *Device) command(cmds ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.conn.Tx(cmds, nil)
}

func (d *Device) Clear() { d.fb.Clear() }

func (d *Device) DrawString(x, y int, text string) { d.fb.DrawString(x, y, text) }

func (d *Device) DrawLine(x0, y0, x1, y1 int, c display.Color) { d.fb.DrawLine(x0, y0, x1, y1, c) }

func (d *Device) ShowLogo() {
	d.fb.Clear()
	d.fb.DrawLogo()
}

// Display writes the whole framebuffer starting at the top left address.
func (d *Device) Display() error {
	if d.conn == nil {
		return fmt.Errorf("panel not initialized")
	}
	if err := d.command(cmdSetXAddr, cmdSetYAddr); err != nil {
		return fmt.Errorf("failed to address panel: %w", err)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("failed to select data mode: %w", err)
	}
	if err := d.conn.Tx(d.fb.Bytes(), nil); err != nil {
		return fmt.Errorf("failed to write framebuffer: %w", err)
	}
	return nil
}

// Halt blanks the panel, powers the controller down and releases the bus.
func (d *Device) Halt() error {
	if d.conn == nil {
		return nil
	}
	d.fb.Clear()
	err := d.Display()
	if err == nil {
		err = d.command(cmdFunctionSet | cmdPowerDown)
	}
	if d.port != nil {
		if cerr := d.port.Close(); err == nil {
			err = cerr
		}
	}
	d.conn = nil
	return err
}
