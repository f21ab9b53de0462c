package geometry

import "irspec/internal/units"

// Extremum is a detected peak position.
type Extremum struct {
	Wavenumber float64 `json:"wavenumber"`
	Value      float64 `json:"value"`
}

// FindLocalMinima returns interior points no higher than both neighbours with
// a wavenumber in [wMin, wMax]. Plateaus yield every interior point.
func FindLocalMinima(x, y []float64, wMin, wMax float64) []Extremum {
	return findExtrema(x, y, wMin, wMax, func(prev, cur, next float64) bool {
		return cur <= prev && cur <= next
	})
}

// FindLocalMaxima is the mirror of FindLocalMinima.
func FindLocalMaxima(x, y []float64, wMin, wMax float64) []Extremum {
	return findExtrema(x, y, wMin, wMax, func(prev, cur, next float64) bool {
		return cur >= prev && cur >= next
	})
}

// FindPeaks picks absorption peaks for the given ordinate: dips in
// transmittance, maxima in absorbance.
func FindPeaks(x, y []float64, yUnits units.YUnits, wMin, wMax float64) []Extremum {
	if yUnits == units.Absorbance {
		return FindLocalMaxima(x, y, wMin, wMax)
	}
	return FindLocalMinima(x, y, wMin, wMax)
}

func findExtrema(x, y []float64, wMin, wMax float64, keep func(prev, cur, next float64) bool) []Extremum {
	n := min(len(x), len(y))
	if n < 3 {
		return nil
	}
	var out []Extremum
	for i := 1; i < n-1; i++ {
		w := x[i]
		if w < wMin || w > wMax {
			continue
		}
		if keep(y[i-1], y[i], y[i+1]) {
			out = append(out, Extremum{Wavenumber: w, Value: y[i]})
		}
	}
	return out
}
