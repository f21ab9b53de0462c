package config

const (
	defaultCatalogDir     = "~/.local/share/irspec"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultYUnits         = "transmittance"
	defaultWavenumberMin  = 500.0
	defaultWavenumberMax  = 4000.0
	defaultGridPoints     = 800
	defaultOverlayMode    = "stacked"
	defaultDistributedGap = 40.0
	defaultPlotWidth      = 800.0
	defaultPlotHeight     = 400.0
	defaultDuplicateX     = "last"
	defaultBusyTimeoutMS  = 5000
)

var defaultExtensions = []string{".jdx", ".jcamp", ".dx"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogDir: defaultCatalogDir,
		},
		Display: Display{
			YUnits:         defaultYUnits,
			Piecewise:      true,
			WavenumberMin:  defaultWavenumberMin,
			WavenumberMax:  defaultWavenumberMax,
			GridPoints:     defaultGridPoints,
			OverlayMode:    defaultOverlayMode,
			DistributedGap: defaultDistributedGap,
			Width:          defaultPlotWidth,
			Height:         defaultPlotHeight,
		},
		Decoder: Decoder{
			DuplicateX: defaultDuplicateX,
		},
		Catalog: Catalog{
			Extensions:    append([]string(nil), defaultExtensions...),
			BusyTimeoutMS: defaultBusyTimeoutMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
