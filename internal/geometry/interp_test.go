package geometry

import (
	"math"
	"testing"
)

func TestInterpolateAtClamps(t *testing.T) {
	x := []float64{1000, 2000}
	y := []float64{0.1, 0.9}
	if got := InterpolateAt(x, y, 500); got != 0.1 {
		t.Fatalf("below range: got %v want 0.1", got)
	}
	if got := InterpolateAt(x, y, 2500); got != 0.9 {
		t.Fatalf("above range: got %v want 0.9", got)
	}
	if got := InterpolateAt(x, y, 1500); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("midpoint: got %v want 0.5", got)
	}
}

func TestInterpolateAtExactAndEmpty(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{10, 20, 30, 40}
	if got := InterpolateAt(x, y, 3); got != 30 {
		t.Fatalf("exact sample: got %v want 30", got)
	}
	if got := InterpolateAt(x, y, 3.25); math.Abs(got-32.5) > 1e-12 {
		t.Fatalf("interior: got %v want 32.5", got)
	}
	if got := InterpolateAt(nil, nil, 1); !math.IsNaN(got) {
		t.Fatalf("empty input: got %v want NaN", got)
	}
}

func TestResample(t *testing.T) {
	got := Resample([]float64{0, 10}, []float64{0, 1}, []float64{-5, 5, 15})
	want := []float64{0, 0.5, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Resample()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
