package geometry

import (
	"math"
	"testing"

	"irspec/internal/units"
)

func TestGrid(t *testing.T) {
	grid := Grid(DisplayMinWavenumber, DisplayMaxWavenumber, DefaultGridPoints)
	if len(grid) != DefaultGridPoints {
		t.Fatalf("unexpected grid length: %d", len(grid))
	}
	if grid[0] != 500 || math.Abs(grid[len(grid)-1]-4000) > 1e-9 {
		t.Fatalf("unexpected grid ends: %v .. %v", grid[0], grid[len(grid)-1])
	}
	if got := Grid(1, 2, 1); len(got) != 1 || got[0] != 1 {
		t.Fatalf("single-point grid: %v", got)
	}
	if got := Grid(1, 2, 0); got != nil {
		t.Fatalf("empty grid: %v", got)
	}
}

func TestNiceTicks(t *testing.T) {
	got := NiceTicks(0, 100, 6)
	want := []float64{0, 20, 40, 60, 80, 100}
	if len(got) != len(want) {
		t.Fatalf("unexpected ticks: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected ticks: %v", got)
		}
	}
	if got := NiceTicks(0, 1000, 5); len(got) != 3 || got[1] != 500 {
		t.Fatalf("unexpected coarse ticks: %v", got)
	}
}

func TestAxisTicks(t *testing.T) {
	major, minor := AxisTicks(500, 4000)
	if len(major) != 8 || major[0] != 500 || major[7] != 4000 {
		t.Fatalf("unexpected major ticks: %v", major)
	}
	if len(minor) != 28 {
		t.Fatalf("unexpected minor tick count: %d", len(minor))
	}
}

func TestScaleY(t *testing.T) {
	got := ScaleY([]float64{0.9, 1}, 2, units.Transmittance)
	if math.Abs(got[0]-0.8) > 1e-12 || got[1] != 1 {
		t.Fatalf("transmittance scale: %v", got)
	}
	got = ScaleY([]float64{0.5}, 2, units.Absorbance)
	if got[0] != 1 {
		t.Fatalf("absorbance scale: %v", got)
	}
}

func TestNormalizeY(t *testing.T) {
	got := NormalizeY([]float64{2, 4, 6})
	if got[0] != 0 || got[1] != 0.5 || got[2] != 1 {
		t.Fatalf("unexpected normalization: %v", got)
	}
	flat := NormalizeY([]float64{3, 3})
	if flat[0] != 0 || flat[1] != 0 {
		t.Fatalf("flat input: %v", flat)
	}
}

func TestAutoYRange(t *testing.T) {
	lo, hi := AutoYRange([]float64{0.5, 1.2}, false, false, 0)
	if lo != 0.5 || math.Abs(hi-1.22) > 1e-12 {
		t.Fatalf("headroom: got %v..%v", lo, hi)
	}
	lo, hi = AutoYRange([]float64{0.2, 0.6}, false, false, 0)
	if lo != 0.2 || hi != 1 {
		t.Fatalf("top should be at least 1: got %v..%v", lo, hi)
	}
	lo, _ = AutoYRange([]float64{0.5, 1.2}, false, false, 10)
	if math.Abs(lo-1.21) > 1e-12 {
		t.Fatalf("offset should stop below the top: got %v", lo)
	}
}

func TestLayoutDistributed(t *testing.T) {
	panels := Layout(Rect{Width: 100, Height: 100}, [][]float64{{0.5, 1}, {0.2, 0.9}}, LayoutOptions{
		Mode: Distributed,
		Gap:  20,
		MinX: 500,
		MaxX: 4000,
	})
	if len(panels) != 2 {
		t.Fatalf("unexpected panel count: %d", len(panels))
	}
	if panels[0].Rect.Height != 40 || panels[1].Rect.Y != 60 {
		t.Fatalf("unexpected rects: %+v %+v", panels[0].Rect, panels[1].Rect)
	}
	if panels[1].Range.MinY != 0.2 {
		t.Fatalf("distributed panels use their own range: %+v", panels[1].Range)
	}
}

func TestLayoutStackedSharesRange(t *testing.T) {
	panels := Layout(Rect{Width: 100, Height: 100}, [][]float64{{0.5, 1}, {0.2, 0.9}}, LayoutOptions{Mode: Stacked})
	if panels[0].Range != panels[1].Range || panels[0].Range.MinY != 0.2 {
		t.Fatalf("stacked panels should share one range: %+v", panels)
	}
}

func TestParseOverlayMode(t *testing.T) {
	if mode, err := ParseOverlayMode(" Distributed "); err != nil || mode != Distributed {
		t.Fatalf("unexpected result: %v %v", mode, err)
	}
	if _, err := ParseOverlayMode("tiled"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
