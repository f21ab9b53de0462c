package geometry

import "math"

// IRBreak is the wavenumber (cm⁻¹) at which the piecewise axis splits.
const IRBreak = 2000.0

// Conventional IR display window in cm⁻¹.
const (
	DisplayMinWavenumber = 500.0
	DisplayMaxWavenumber = 4000.0
)

// Rect is a plot area in SVG user units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DataRange is the visible window in data units. Y is in the displayed
// semantic (transmittance or absorbance) after any scaling.
type DataRange struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Point is an SVG coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func usesBreak(minX, maxX float64, piecewise bool) bool {
	return piecewise && minX < IRBreak && maxX > IRBreak
}

func spanOr1(span float64) float64 {
	if span == 0 || math.IsNaN(span) {
		return 1
	}
	return span
}

// clamp01 keeps positions on the plot; NaN lands on the left edge.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// WavenumberToNormX maps w to a horizontal position in [0,1], 0 being the
// high-wavenumber (left) edge. With piecewise set and the window straddling
// IRBreak, [IRBreak, maxX] fills [0, 0.5] and [minX, IRBreak) fills (0.5, 1].
// Otherwise the mapping is linear.
func WavenumberToNormX(w, minX, maxX float64, piecewise bool) float64 {
	if !usesBreak(minX, maxX, piecewise) {
		return clamp01(1 - (w-minX)/spanOr1(maxX-minX))
	}
	if w >= IRBreak {
		span := maxX - IRBreak
		if span == 0 {
			return 0
		}
		return clamp01(0.5 * (maxX - w) / span)
	}
	span := IRBreak - minX
	if span == 0 {
		return 1
	}
	return clamp01(0.5 + 0.5*(IRBreak-w)/span)
}

// NormXToWavenumber is the inverse of WavenumberToNormX, used to turn a
// pointer position back into a wavenumber.
func NormXToWavenumber(normX, minX, maxX float64, piecewise bool) float64 {
	normX = clamp01(normX)
	if !usesBreak(minX, maxX, piecewise) {
		return minX + (1-normX)*spanOr1(maxX-minX)
	}
	if normX <= 0.5 {
		span := maxX - IRBreak
		if span == 0 {
			return maxX
		}
		return maxX - 2*normX*span
	}
	span := IRBreak - minX
	if span == 0 {
		return minX
	}
	return IRBreak - (normX-0.5)*2*span
}

// DataToSVG maps a data point into rect. Y is inverted so larger values sit
// higher on screen.
func DataToSVG(wx, wy float64, rect Rect, r DataRange, piecewise bool) Point {
	normX := WavenumberToNormX(wx, r.MinX, r.MaxX, piecewise)
	normY := (wy - r.MinY) / spanOr1(r.MaxY-r.MinY)
	return Point{
		X: rect.X + normX*rect.Width,
		Y: rect.Y + (1-normY)*rect.Height,
	}
}
