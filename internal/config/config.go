package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"irspec/internal/geometry"
	"irspec/internal/jcamp"
	"irspec/internal/units"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	CatalogDir string `toml:"catalog_dir"`
	SampleDir  string `toml:"sample_dir"`
	OutputDir  string `toml:"output_dir"`
	LogDir     string `toml:"log_dir"`
}

// Display contains plotting defaults used by the path, peaks, and ticks
// commands.
type Display struct {
	YUnits         string  `toml:"y_units"`
	Piecewise      bool    `toml:"piecewise"`
	WavenumberMin  float64 `toml:"wavenumber_min"`
	WavenumberMax  float64 `toml:"wavenumber_max"`
	GridPoints     int     `toml:"grid_points"`
	NormalizeY     bool    `toml:"normalize_y"`
	YMinOffset     float64 `toml:"y_min_offset"`
	OverlayMode    string  `toml:"overlay_mode"`
	DistributedGap float64 `toml:"distributed_gap"`
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
}

// Decoder contains JCAMP-DX decoding options.
type Decoder struct {
	// DuplicateX is "last" or "first": which point survives when several
	// share an abscissa.
	DuplicateX string `toml:"duplicate_x"`
}

// Catalog contains sample catalog settings.
type Catalog struct {
	Extensions    []string `toml:"extensions"`
	BusyTimeoutMS int      `toml:"busy_timeout_ms"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for irspec.
//
// Configuration sections by subsystem:
//   - Paths: catalog, sample, output and log directories
//   - Display: plot window, grid density and Y handling
//   - Decoder: duplicate abscissa policy
//   - Catalog: scanned extensions and SQLite busy timeout
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Display Display `toml:"display"`
	Decoder Decoder `toml:"decoder"`
	Catalog Catalog `toml:"catalog"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/irspec/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("irspec.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the catalog and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.CatalogDir, c.Paths.LogDir, c.Paths.OutputDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CatalogPath returns the SQLite database location.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.Paths.CatalogDir, "catalog.db")
}

// CatalogLockPath returns the lock file guarding catalog scans.
func (c *Config) CatalogLockPath() string {
	return filepath.Join(c.Paths.CatalogDir, "scan.lock")
}

// DisplayYUnits returns the configured display ordinate.
func (c *Config) DisplayYUnits() units.YUnits {
	kind, _ := units.ParseYUnits(c.Display.YUnits)
	return kind
}

// OverlayMode returns the configured overlay mode.
func (c *Config) OverlayMode() geometry.OverlayMode {
	mode, err := geometry.ParseOverlayMode(c.Display.OverlayMode)
	if err != nil {
		return geometry.Stacked
	}
	return mode
}

// DecodeOptions returns the decoder options implied by the configuration.
func (c *Config) DecodeOptions() []jcamp.Option {
	return []jcamp.Option{jcamp.WithDuplicatePolicy(jcamp.DuplicatePolicy(c.Decoder.DuplicateX))}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
