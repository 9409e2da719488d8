package regress_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitline-ml/fitline/regress"
)

func TestGenerate_ExactLine(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	xs, ys, err := regress.Generate(3, 5, 100, rng)
	require.NoError(t, err)
	require.Len(t, xs, 100)
	require.Len(t, ys, 100)

	for i := range xs {
		assert.GreaterOrEqual(t, xs[i], 0.0)
		assert.Less(t, xs[i], 1.0)
		assert.InDelta(t, 3+5*xs[i], ys[i], 1e-12, "sample %d", i)
	}
}

func TestGenerate_TwoPointBoundary(t *testing.T) {
	xs, ys, err := regress.Generate(-1, 2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, xs, 2)
	require.Len(t, ys, 2)

	// Two distinct points pin the line exactly.
	require.NotEqual(t, xs[0], xs[1])
	slope := (ys[1] - ys[0]) / (xs[1] - xs[0])
	intercept := ys[0] - slope*xs[0]
	assert.InDelta(t, 2, slope, 1e-9)
	assert.InDelta(t, -1, intercept, 1e-9)
}

func TestGenerate_RejectsTooFewSamples(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		_, _, err := regress.Generate(3, 5, n, nil)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	xs1, ys1, err := regress.Generate(1, 2, 50, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	xs2, ys2, err := regress.Generate(1, 2, 50, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, xs1, xs2)
	assert.Equal(t, ys1, ys2)
}

func TestGenerateOn_Interval(t *testing.T) {
	xs, ys, err := regress.GenerateOn(0, 1, 200, 2, 10, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for i := range xs {
		assert.GreaterOrEqual(t, xs[i], 2.0)
		assert.Less(t, xs[i], 10.0)
		assert.InDelta(t, xs[i], ys[i], 1e-12)
	}
}

func TestGenerateOn_RejectsEmptyInterval(t *testing.T) {
	_, _, err := regress.GenerateOn(0, 1, 10, 5, 5, nil)
	assert.Error(t, err)

	_, _, err = regress.GenerateOn(0, 1, 10, 5, 2, nil)
	assert.Error(t, err)
}
