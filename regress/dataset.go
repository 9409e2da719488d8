// Package regress ties the fitline stack together for one-variable
// linear regression: synthetic data generation, a gradient-descent
// trainer over the tape-autodiff backend, and a fixed-count training
// loop.
package regress

import (
	"fmt"
	"math/rand"
)

// Generate produces n (x, y) sample pairs for the line
//
//	y = intercept + slope * x
//
// with no added noise. Inputs are drawn uniformly from [0, 1); see
// GenerateOn for an explicit input interval. The returned sequences are
// freshly allocated and fully determined by the given source.
//
// n must be at least 2 for the relationship to be fittable.
func Generate(intercept, slope float64, n int, rng *rand.Rand) (xs, ys []float64, err error) {
	return GenerateOn(intercept, slope, n, 0, 1, rng)
}

// GenerateOn is Generate with inputs drawn uniformly from [lo, hi).
// A nil source falls back to the shared math/rand source.
func GenerateOn(intercept, slope float64, n int, lo, hi float64, rng *rand.Rand) (xs, ys []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	if hi <= lo {
		return nil, nil, fmt.Errorf("invalid input interval [%g, %g)", lo, hi)
	}

	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		x := lo + (hi-lo)*uniform()
		xs[i] = x
		ys[i] = intercept + slope*x
	}
	return xs, ys, nil
}
