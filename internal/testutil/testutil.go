// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers for the coordinate packages:
// random points on a pitch and tolerant float slice comparison.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

// AssertFloatsClose fails the test unless got and want have the same length
// and every element is within tol (absolute or relative).
func AssertFloatsClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	if floats.EqualApprox(got, want, tol) {
		return
	}
	diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol), cmpopts.EquateNaNs())
	t.Errorf("values differ beyond %g (-want +got):\n%s", tol, diff)
}

// UniformPoints draws n points uniformly over extent [xmin, xmax, ymin, ymax].
func UniformPoints(rng *rand.Rand, n int, extent [4]float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = extent[0] + rng.Float64()*(extent[1]-extent[0])
		y[i] = extent[2] + rng.Float64()*(extent[3]-extent[2])
	}
	return x, y
}

// NewRand returns a deterministic random source so failures are reproducible.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
