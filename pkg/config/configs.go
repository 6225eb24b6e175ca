// Package config holds the compiled-in parameters of the panel daemon.
package config

import (
	"fmt"
	"time"
)

// Config holds every tunable of the daemon. Values are fixed at build time;
// nothing is read from flags, files or the environment.
type Config struct {
	// Sources
	ThermalPath       string
	AudioPath         string
	EthernetInterface string
	WirelessInterface string

	// Timing
	SplashHold      time.Duration
	RefreshInterval time.Duration
	ReadTimeout     time.Duration

	// Panel wiring
	SPIPort  string
	DCPin    string
	ResetPin string
	Contrast uint8
}

// Default configuration values.
const (
	DefaultSplashHold      = 2000 * time.Millisecond
	DefaultRefreshInterval = 2000 * time.Millisecond
	DefaultReadTimeout     = 0
	DefaultContrast        = 65
	DefaultSPIPort         = "SPI0.0"
	DefaultDCPin           = "GPIO23"
	DefaultResetPin        = "GPIO24"
	maxContrast            = 0x7f
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		ThermalPath:       ThermalZonePath,
		AudioPath:         AudioHwParamsPath,
		EthernetInterface: EthernetInterface,
		WirelessInterface: WirelessInterface,
		SplashHold:        DefaultSplashHold,
		RefreshInterval:   DefaultRefreshInterval,
		ReadTimeout:       DefaultReadTimeout,
		SPIPort:           DefaultSPIPort,
		DCPin:             DefaultDCPin,
		ResetPin:          DefaultResetPin,
		Contrast:          DefaultContrast,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.RefreshInterval < time.Millisecond {
		return fmt.Errorf("refresh interval must be at least 1ms, got %v", c.RefreshInterval)
	}

	if c.SplashHold < 0 {
		return fmt.Errorf("splash hold cannot be negative, got %v", c.SplashHold)
	}

	if c.ReadTimeout < 0 {
		return fmt.Errorf("read timeout cannot be negative, got %v", c.ReadTimeout)
	}

	if c.Contrast > maxContrast {
		return fmt.Errorf("contrast must be at most %d, got %d", maxContrast, c.Contrast)
	}

	if c.ThermalPath == "" || c.AudioPath == "" {
		return fmt.Errorf("thermal and audio source paths are required")
	}

	if c.EthernetInterface == "" || c.WirelessInterface == "" {
		return fmt.Errorf("interface names are required")
	}

	return nil
}
