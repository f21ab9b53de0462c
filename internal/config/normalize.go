package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDisplay()
	c.normalizeDecoder()
	c.normalizeCatalog()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("IRSPEC_CATALOG_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.CatalogDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.CatalogDir) == "" {
		c.Paths.CatalogDir = defaultCatalogDir
	}
	var err error
	if c.Paths.CatalogDir, err = expandPath(c.Paths.CatalogDir); err != nil {
		return fmt.Errorf("paths.catalog_dir: %w", err)
	}
	if c.Paths.SampleDir, err = expandPath(strings.TrimSpace(c.Paths.SampleDir)); err != nil {
		return fmt.Errorf("paths.sample_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.YUnits = strings.ToLower(strings.TrimSpace(c.Display.YUnits))
	if c.Display.YUnits == "" {
		c.Display.YUnits = defaultYUnits
	}
	c.Display.OverlayMode = strings.ToLower(strings.TrimSpace(c.Display.OverlayMode))
	if c.Display.OverlayMode == "" {
		c.Display.OverlayMode = defaultOverlayMode
	}
	if c.Display.GridPoints == 0 {
		c.Display.GridPoints = defaultGridPoints
	}
	if c.Display.Width == 0 {
		c.Display.Width = defaultPlotWidth
	}
	if c.Display.Height == 0 {
		c.Display.Height = defaultPlotHeight
	}
}

func (c *Config) normalizeDecoder() {
	c.Decoder.DuplicateX = strings.ToLower(strings.TrimSpace(c.Decoder.DuplicateX))
	if c.Decoder.DuplicateX == "" {
		c.Decoder.DuplicateX = defaultDuplicateX
	}
}

func (c *Config) normalizeCatalog() {
	seen := make(map[string]struct{}, len(c.Catalog.Extensions))
	exts := make([]string, 0, len(c.Catalog.Extensions))
	for _, ext := range c.Catalog.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultExtensions...)
	}
	c.Catalog.Extensions = exts
	if c.Catalog.BusyTimeoutMS <= 0 {
		c.Catalog.BusyTimeoutMS = defaultBusyTimeoutMS
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
