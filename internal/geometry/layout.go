package geometry

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"irspec/internal/units"
)

// DefaultGridPoints is the rendering grid density used for paths.
const DefaultGridPoints = 800

// Grid returns n evenly spaced wavenumbers from lo to hi inclusive.
func Grid(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// NiceTicks returns at most about maxTicks round-valued ticks covering
// [lo, hi], stepping by 1, 2 or 5 times a power of ten.
func NiceTicks(lo, hi float64, maxTicks int) []float64 {
	if maxTicks < 2 {
		maxTicks = 2
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	rawStep := math.Abs(span) / float64(maxTicks-1)
	mag := math.Pow(10, math.Floor(math.Log10(rawStep)))
	var step float64
	switch norm := rawStep / mag; {
	case norm <= 1:
		step = mag
	case norm <= 2:
		step = 2 * mag
	case norm <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for k := 0; k < 1000; k++ {
		v := start + float64(k)*step
		if v > hi+step*0.001 {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// Wavenumber axis tick spacing in cm⁻¹.
const (
	MajorTickStep = 500.0
	MinorTickStep = 100.0
)

// AxisTicks returns the major (every 500) and minor (every 100, majors
// excluded) wavenumber ticks inside [lo, hi].
func AxisTicks(lo, hi float64) (major, minor []float64) {
	const eps = 0.001
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi-lo > 1e6 {
		return nil, nil
	}
	for w := math.Ceil(lo/MajorTickStep) * MajorTickStep; w <= hi+eps; w += MajorTickStep {
		major = append(major, w)
	}
	for w := math.Ceil(lo/MinorTickStep) * MinorTickStep; w <= hi+eps; w += MinorTickStep {
		if math.Mod(w, MajorTickStep) != 0 {
			minor = append(minor, w)
		}
	}
	return major, minor
}

// ScaleY stretches y by s. Transmittance is scaled about 1 so stacked
// baselines stay aligned; absorbance is scaled about 0.
func ScaleY(y []float64, s float64, display units.YUnits) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		switch {
		case s == 1:
			out[i] = v
		case display == units.Transmittance:
			out[i] = 1 + (v-1)*s
		default:
			out[i] = v * s
		}
	}
	return out
}

// NormalizeY rescales y onto [0, 1].
func NormalizeY(y []float64) []float64 {
	out := make([]float64, len(y))
	if len(y) == 0 {
		return out
	}
	lo, hi := floats.Min(y), floats.Max(y)
	span := spanOr1(hi - lo)
	for i, v := range y {
		out[i] = (v - lo) / span
	}
	return out
}

// AutoYRange picks the vertical window for ys. The top is at least 1 and
// gains headroom when transmittance exceeds 1; yMinOffset raises the bottom
// but never above top-0.01. zeroBase pins the bottom at 0 before the offset.
func AutoYRange(ys []float64, zeroBase, normalized bool, yMinOffset float64) (float64, float64) {
	lo, hi := 0.0, 1.0
	if len(ys) > 0 {
		lo = floats.Min(ys)
		hi = math.Max(floats.Max(ys), 1)
	}
	if zeroBase {
		lo = 0
	}
	if !normalized && hi > 1 {
		hi += math.Max(0.02, (hi-1)*0.05)
	}
	return math.Min(hi-0.01, lo+yMinOffset), hi
}

// OverlayMode selects how several spectra share the plot.
type OverlayMode string

const (
	// Stacked draws every spectrum in the same rect with a shared Y range.
	Stacked OverlayMode = "stacked"
	// Distributed gives each spectrum its own band separated by a gap.
	Distributed OverlayMode = "distributed"
)

// ParseOverlayMode accepts "stacked" or "distributed", case-insensitively.
func ParseOverlayMode(raw string) (OverlayMode, error) {
	switch mode := OverlayMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case Stacked, Distributed:
		return mode, nil
	}
	return "", fmt.Errorf("overlay mode %q: want stacked or distributed", raw)
}

// Panel is where one spectrum is drawn and the data window it maps.
type Panel struct {
	Rect  Rect      `json:"rect"`
	Range DataRange `json:"range"`
}

// LayoutOptions control Layout.
type LayoutOptions struct {
	Mode       OverlayMode
	Gap        float64
	MinX, MaxX float64
	Normalized bool
	YMinOffset float64
}

// Layout assigns a panel to each spectrum's display Y values.
func Layout(plot Rect, spectraY [][]float64, opts LayoutOptions) []Panel {
	n := len(spectraY)
	if n == 0 {
		return nil
	}
	panels := make([]Panel, n)
	if opts.Mode != Distributed {
		var all []float64
		for _, ys := range spectraY {
			all = append(all, ys...)
		}
		minY, maxY := AutoYRange(all, opts.Normalized, opts.Normalized, opts.YMinOffset)
		for i := range panels {
			panels[i] = Panel{
				Rect:  plot,
				Range: DataRange{MinX: opts.MinX, MaxX: opts.MaxX, MinY: minY, MaxY: maxY},
			}
		}
		return panels
	}

	height := (plot.Height - opts.Gap*float64(n-1)) / float64(n)
	y := plot.Y
	for i, ys := range spectraY {
		minY, maxY := AutoYRange(ys, false, opts.Normalized, opts.YMinOffset)
		panels[i] = Panel{
			Rect:  Rect{X: plot.X, Y: y, Width: plot.Width, Height: height},
			Range: DataRange{MinX: opts.MinX, MaxX: opts.MaxX, MinY: minY, MaxY: maxY},
		}
		y += height + opts.Gap
	}
	return panels
}
