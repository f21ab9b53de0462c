package geometry

import (
	"math"
	"sort"
)

// InterpolateAt returns the linearly interpolated y at targetX. x must be
// ascending. Targets outside the data are clamped to the first or last y;
// empty input yields NaN.
func InterpolateAt(x, y []float64, targetX float64) float64 {
	n := min(len(x), len(y))
	if n == 0 {
		return math.NaN()
	}
	if targetX <= x[0] {
		return y[0]
	}
	if targetX >= x[n-1] {
		return y[n-1]
	}
	// first index with x[i] >= targetX; 1 <= i <= n-1 here
	i := sort.SearchFloat64s(x[:n], targetX)
	x0, x1 := x[i-1], x[i]
	y0, y1 := y[i-1], y[i]
	if x1 == x0 {
		return y1
	}
	t := (targetX - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

// Resample interpolates the signal at every grid wavenumber.
func Resample(x, y, grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, g := range grid {
		out[i] = InterpolateAt(x, y, g)
	}
	return out
}
