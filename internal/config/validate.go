package config

import (
	"errors"
	"fmt"

	"irspec/internal/geometry"
	"irspec/internal/jcamp"
	"irspec/internal/units"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateDecoder(); err != nil {
		return err
	}
	if c.Paths.CatalogDir == "" {
		return errors.New("paths.catalog_dir must be set")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	d := c.Display
	if _, ok := units.ParseYUnits(d.YUnits); !ok {
		return fmt.Errorf("display.y_units: unsupported value %q (want transmittance or absorbance)", d.YUnits)
	}
	if d.WavenumberMin <= 0 {
		return errors.New("display.wavenumber_min must be positive")
	}
	if d.WavenumberMax <= d.WavenumberMin {
		return errors.New("display.wavenumber_max must be greater than display.wavenumber_min")
	}
	if d.GridPoints < 2 {
		return errors.New("display.grid_points must be at least 2")
	}
	if _, err := geometry.ParseOverlayMode(d.OverlayMode); err != nil {
		return fmt.Errorf("display.overlay_mode: %w", err)
	}
	if d.DistributedGap < 0 {
		return errors.New("display.distributed_gap must be non-negative")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return errors.New("display.width and display.height must be positive")
	}
	return nil
}

func (c *Config) validateDecoder() error {
	switch jcamp.DuplicatePolicy(c.Decoder.DuplicateX) {
	case jcamp.KeepLast, jcamp.KeepFirst:
		return nil
	}
	return fmt.Errorf("decoder.duplicate_x: unsupported value %q (want last or first)", c.Decoder.DuplicateX)
}
