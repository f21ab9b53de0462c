package geometry

import (
	"strings"
	"testing"
)

func TestSmoothPathD(t *testing.T) {
	if got := SmoothPathD(nil); got != "" {
		t.Fatalf("empty: got %q", got)
	}
	if got := SmoothPathD([]Point{{X: 1, Y: 2}}); got != "M 1 2" {
		t.Fatalf("single point: got %q", got)
	}
	got := SmoothPathD([]Point{{X: 0, Y: 0}, {X: 6, Y: 6}})
	if got != "M 0 0 C 1 1, 5 5, 6 6" {
		t.Fatalf("two points: got %q", got)
	}
}

func TestSpectrumToPath(t *testing.T) {
	x := []float64{500, 2000, 4000}
	y := []float64{0, 0.5, 1}
	grid := Grid(500, 4000, 50)
	rect := Rect{Width: 200, Height: 100}
	r := DataRange{MinX: 500, MaxX: 4000, MinY: 0, MaxY: 1}

	points := SpectrumToPath(x, y, grid, rect, r, true)
	if len(points) != len(grid) {
		t.Fatalf("unexpected point count: got %d want %d", len(points), len(grid))
	}
	// grid ascends in wavenumber, so plot X must descend
	for i := 1; i < len(points); i++ {
		if points[i].X > points[i-1].X {
			t.Fatalf("plot X should not increase with wavenumber at %d: %v > %v", i, points[i].X, points[i-1].X)
		}
	}
	if d := SmoothPathD(points); !strings.HasPrefix(d, "M 200 100") {
		t.Fatalf("path should start at the right-bottom corner, got %q", d[:20])
	}
}
