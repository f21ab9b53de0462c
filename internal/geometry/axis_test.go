package geometry

import (
	"math"
	"testing"
)

func TestWavenumberToNormXBreakIsHalf(t *testing.T) {
	if got := WavenumberToNormX(IRBreak, 500, 4000, true); got != 0.5 {
		t.Fatalf("WavenumberToNormX(2000) = %v, want exactly 0.5", got)
	}
}

func TestWavenumberToNormX(t *testing.T) {
	tests := []struct {
		name      string
		w         float64
		minX      float64
		maxX      float64
		piecewise bool
		want      float64
	}{
		{"left edge", 4000, 500, 4000, true, 0},
		{"right edge", 500, 500, 4000, true, 1},
		{"upper half", 3000, 500, 4000, true, 0.25},
		{"lower half", 1250, 500, 4000, true, 0.75},
		{"linear", 2250, 500, 4000, false, 0.5},
		{"window above break", 2500, 2000, 4000, true, 0.75},
		{"window below break", 1500, 1000, 2000, true, 0.5},
		{"degenerate span", 1000, 1000, 1000, true, 1},
		{"outside clamps", 5000, 500, 4000, true, 0},
		{"nan piecewise", math.NaN(), 500, 4000, true, 0},
		{"nan linear", math.NaN(), 500, 4000, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WavenumberToNormX(tt.w, tt.minX, tt.maxX, tt.piecewise)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestNormXInverseLaw(t *testing.T) {
	windows := [][2]float64{{500, 4000}, {600, 1800}, {1500, 2600}, {2100, 3900}}
	for _, piecewise := range []bool{true, false} {
		for _, win := range windows {
			for w := win[0]; w <= win[1]; w += 7.3 {
				norm := WavenumberToNormX(w, win[0], win[1], piecewise)
				back := NormXToWavenumber(norm, win[0], win[1], piecewise)
				if math.Abs(back-w) > 1e-9*math.Max(1, w) {
					t.Fatalf("inverse mismatch (piecewise=%v, window %v): %v -> %v -> %v", piecewise, win, w, norm, back)
				}
			}
		}
	}
}

func TestDataToSVG(t *testing.T) {
	rect := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	r := DataRange{MinX: 500, MaxX: 4000, MinY: 0, MaxY: 1}

	p := DataToSVG(2000, 1, rect, r, true)
	if p.X != 60 || p.Y != 20 {
		t.Fatalf("unexpected point: %+v", p)
	}
	p = DataToSVG(500, 0, rect, r, true)
	if p.X != 110 || p.Y != 70 {
		t.Fatalf("unexpected point: %+v", p)
	}
}

func TestDataToSVGFlatRange(t *testing.T) {
	p := DataToSVG(1000, 0.5, Rect{Width: 10, Height: 10}, DataRange{MinX: 500, MaxX: 4000, MinY: 0.5, MaxY: 0.5}, true)
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		t.Fatalf("flat Y range should not divide by zero: %+v", p)
	}
}
