package testutil

import (
	"math"
	"testing"
)

func TestAssertFloatsClose_WithinTolerance(t *testing.T) {
	fakeT := &testing.T{}
	AssertFloatsClose(fakeT, []float64{1, 2, 3}, []float64{1, 2 + 1e-9, 3}, 1e-6)
	if fakeT.Failed() {
		t.Error("expected no failure for values within tolerance")
	}
}

func TestUniformPoints(t *testing.T) {
	t.Parallel()

	extent := [4]float64{-52.5, 52.5, 0, 68}
	x, y := UniformPoints(NewRand(7), 500, extent)
	if len(x) != 500 || len(y) != 500 {
		t.Fatalf("got %d/%d points, want 500", len(x), len(y))
	}
	for i := range x {
		if x[i] < extent[0] || x[i] > extent[1] || math.IsNaN(x[i]) {
			t.Fatalf("x[%d] = %f outside extent", i, x[i])
		}
		if y[i] < extent[2] || y[i] > extent[3] || math.IsNaN(y[i]) {
			t.Fatalf("y[%d] = %f outside extent", i, y[i])
		}
	}

	x2, _ := UniformPoints(NewRand(7), 500, extent)
	if x2[0] != x[0] || x2[499] != x[499] {
		t.Error("expected identical points for identical seeds")
	}
}
