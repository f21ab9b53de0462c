package units

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// XUnits identifies the abscissa unit of a spectrum.
type XUnits int

const (
	// Wavenumber is cm⁻¹, the canonical internal abscissa.
	Wavenumber XUnits = iota
	// Micrometers is wavelength in µm.
	Micrometers
	// Nanometers is wavelength in nm.
	Nanometers
	// UnknownX marks a non-empty unit string that matched no synonym set.
	UnknownX
)

func (u XUnits) String() string {
	switch u {
	case Wavenumber:
		return "1/CM"
	case Micrometers:
		return "MICROMETERS"
	case Nanometers:
		return "NANOMETERS"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the unit for JSON and TOML output.
func (u XUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// YUnits identifies the ordinate semantic of a spectrum.
type YUnits int

const (
	// Transmittance is the default ordinate (fraction or percent).
	Transmittance YUnits = iota
	// Absorbance is A = -log10(T).
	Absorbance
)

func (u YUnits) String() string {
	if u == Absorbance {
		return "ABSORBANCE"
	}
	return "TRANSMITTANCE"
}

// MarshalText renders the unit for JSON and TOML output.
func (u YUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

var (
	wavenumberNames    = []string{"1/CM", "CM^-1", "CM-1", "WAVENUMBERS", "WAVENUMBER"}
	micrometerNames    = []string{"MICROMETERS", "MICROMETER", "MICRONS", "MICRON", "UM"}
	nanometerNames     = []string{"NANOMETERS", "NANOMETER", "NM"}
	absorbanceNames    = []string{"ABSORBANCE"}
	transmittanceNames = []string{
		"TRANSMITTANCE",
		"TRANSMISSION",
		"% TRANSMITTANCE",
		"% TRANSMISSION",
		"%TRANSMITTANCE",
		"%TRANSMISSION",
		"%T",
		"PERCENT TRANSMITTANCE",
	}
)

var upper = cases.Upper(language.Und)

// normalize upper-cases and trims a raw unit string.
func normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return upper.String(trimmed)
}

// matchesOneOf reports whether value equals a synonym or starts with one
// followed by a space ("ABSORBANCE UNITS" matches "ABSORBANCE").
func matchesOneOf(value string, names []string) bool {
	if value == "" {
		return false
	}
	for _, name := range names {
		if value == name || strings.HasPrefix(value, name+" ") {
			return true
		}
	}
	return false
}

// ClassifyXUnits resolves a raw ##XUNITS= value. Empty input defaults to
// Wavenumber so unlabeled IR files behave; unmatched non-empty input is
// UnknownX and callers keep the raw values unconverted.
func ClassifyXUnits(raw string) XUnits {
	value := normalize(raw)
	switch {
	case value == "":
		return Wavenumber
	case matchesOneOf(value, wavenumberNames):
		return Wavenumber
	case matchesOneOf(value, micrometerNames):
		return Micrometers
	case matchesOneOf(value, nanometerNames):
		return Nanometers
	default:
		return UnknownX
	}
}

// ToWavenumbers returns a new slice with x converted to cm⁻¹. Wavelengths
// <= 0 map to 0. UnknownX values are copied unchanged.
func ToWavenumbers(x []float64, kind XUnits) []float64 {
	out := make([]float64, len(x))
	switch kind {
	case Micrometers:
		for i, v := range x {
			out[i] = inverse(1e4, v)
		}
	case Nanometers:
		for i, v := range x {
			out[i] = inverse(1e7, v)
		}
	default:
		copy(out, x)
	}
	return out
}

func inverse(scale, v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return scale / v
}

// ResolveYUnits resolves a raw ##YUNITS= value. The boolean reports whether
// the string was recognized; empty input counts as recognized because the
// transmittance default is the documented convention.
func ResolveYUnits(raw string) (YUnits, bool) {
	value := normalize(raw)
	switch {
	case value == "":
		return Transmittance, true
	case matchesOneOf(value, absorbanceNames):
		return Absorbance, true
	case matchesOneOf(value, transmittanceNames):
		return Transmittance, true
	default:
		return Transmittance, false
	}
}

// ClassifyYUnits resolves a raw ##YUNITS= value, defaulting to Transmittance.
func ClassifyYUnits(raw string) YUnits {
	kind, _ := ResolveYUnits(raw)
	return kind
}

// ParseYUnits accepts the lower-case names used in configuration and flags
// ("transmittance", "absorbance") as well as any JCAMP-DX spelling.
func ParseYUnits(name string) (YUnits, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "absorbance", "a":
		return Absorbance, true
	case "transmittance", "t":
		return Transmittance, true
	}
	kind, ok := ResolveYUnits(name)
	if !ok || strings.TrimSpace(name) == "" {
		return Transmittance, false
	}
	return kind, true
}

// AbsorbanceToTransmittance converts A to a 0..1 transmittance.
func AbsorbanceToTransmittance(a float64) float64 {
	if a <= 0 {
		return 1
	}
	return math.Pow(10, -a)
}

// TransmittanceToAbsorbance converts T to absorbance. Values above 1 are
// read as percent; the fraction is clamped to 1e-10 before the logarithm.
func TransmittanceToAbsorbance(t float64) float64 {
	if t > 1 {
		t /= 100
	}
	return -math.Log10(math.Max(1e-10, t))
}

// DisplayY returns y expressed in display units. The input is never
// modified; matching semantics return a copy.
func DisplayY(y []float64, data, display YUnits) []float64 {
	out := make([]float64, len(y))
	switch {
	case data == display:
		copy(out, y)
	case data == Absorbance:
		for i, v := range y {
			out[i] = AbsorbanceToTransmittance(v)
		}
	default:
		for i, v := range y {
			out[i] = TransmittanceToAbsorbance(v)
		}
	}
	return out
}
