package regress_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/fitline-ml/fitline/autodiff"
	"github.com/fitline-ml/fitline/backend/cpu"
	"github.com/fitline-ml/fitline/regress"
)

type Backend = *autodiff.Backend[*cpu.CPUBackend]

func newTrainer(seed int64, lr float64) *regress.Trainer[Backend] {
	backend := autodiff.New(cpu.New())
	return regress.New(regress.Config{
		LR:   lr,
		Rand: rand.New(rand.NewSource(seed)),
	}, backend)
}

// closedFormLoss computes mean(0.5*(y - (b0 + b1*x))²).
func closedFormLoss(xs, ys []float64, b0, b1 float64) float64 {
	var sum float64
	for i := range xs {
		r := ys[i] - (b0 + b1*xs[i])
		sum += 0.5 * r * r
	}
	return sum / float64(len(xs))
}

func TestStep_LossAndPredictionsFromPreUpdateParams(t *testing.T) {
	trainer := newTrainer(11, 0.1)

	xs := []float64{0.1, 0.5, 0.9}
	ys := []float64{1, 2, 3}

	b0 := trainer.Intercept()
	b1 := trainer.Slope()

	loss, preds, err := trainer.Step(xs, ys)
	require.NoError(t, err)
	require.Len(t, preds, len(xs))

	assert.InDelta(t, closedFormLoss(xs, ys, b0, b1), loss, 1e-12)
	for i := range xs {
		assert.InDelta(t, b0+b1*xs[i], preds[i], 1e-12, "prediction %d", i)
	}
}

func TestStep_AppliesUpdateRule(t *testing.T) {
	trainer := newTrainer(5, 0.1)

	xs := []float64{0.2, 0.6, 1.0}
	ys := []float64{4, 5, 6}

	b0 := trainer.Intercept()
	b1 := trainer.Slope()

	var g0, g1 float64
	for i := range xs {
		r := ys[i] - (b0 + b1*xs[i])
		g0 += -r
		g1 += -r * xs[i]
	}
	g0 /= float64(len(xs))
	g1 /= float64(len(xs))

	_, _, err := trainer.Step(xs, ys)
	require.NoError(t, err)

	// Both parameters updated simultaneously from pre-update gradients.
	assert.InDelta(t, b0-0.1*g0, trainer.Intercept(), 1e-12)
	assert.InDelta(t, b1-0.1*g1, trainer.Slope(), 1e-12)
}

func TestStep_ParametersPersistAcrossCalls(t *testing.T) {
	trainer := newTrainer(2, 0.1)

	xs, ys, err := regress.Generate(1, 2, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	loss1, _, err := trainer.Step(xs, ys)
	require.NoError(t, err)
	afterFirst := trainer.Intercept()

	loss2, _, err := trainer.Step(xs, ys)
	require.NoError(t, err)

	// The second call starts from the first call's updated parameters.
	assert.NotEqual(t, afterFirst, trainer.Intercept())
	assert.Less(t, loss2, loss1)
}

func TestStep_RejectsInvalidInputs(t *testing.T) {
	trainer := newTrainer(1, 0.1)

	b0, b1 := trainer.Intercept(), trainer.Slope()

	_, _, err := trainer.Step(nil, nil)
	assert.Error(t, err, "empty batch")

	_, _, err = trainer.Step([]float64{1, 2}, []float64{1})
	assert.Error(t, err, "mismatched lengths")

	// Rejected before any parameter mutation.
	assert.Equal(t, b0, trainer.Intercept())
	assert.Equal(t, b1, trainer.Slope())
}

func TestFit_Deterministic(t *testing.T) {
	xs, ys, err := regress.Generate(2, -1, 64, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	a := newTrainer(99, 0.1)
	b := newTrainer(99, 0.1)

	lossesA, err := regress.Fit(a, xs, ys, 200)
	require.NoError(t, err)
	lossesB, err := regress.Fit(b, xs, ys, 200)
	require.NoError(t, err)

	// Bit-identical traces for identical seed, rate, and data.
	assert.Equal(t, lossesA, lossesB)
	assert.Equal(t, a.Intercept(), b.Intercept())
	assert.Equal(t, a.Slope(), b.Slope())
}

func TestFit_RejectsNonPositiveIterations(t *testing.T) {
	trainer := newTrainer(1, 0.1)
	_, err := regress.Fit(trainer, []float64{1, 2}, []float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestFit_Convergence(t *testing.T) {
	xs, ys, err := regress.Generate(3, 5, 1000, rand.New(rand.NewSource(8)))
	require.NoError(t, err)

	trainer := newTrainer(17, 0.1)
	losses, err := regress.Fit(trainer, xs, ys, 5000)
	require.NoError(t, err)
	require.Len(t, losses, 5000)

	assert.Less(t, losses[len(losses)-1], 1e-6)
	assert.InDelta(t, 3, trainer.Intercept(), 1e-3)
	assert.InDelta(t, 5, trainer.Slope(), 1e-3)

	// Gradient descent lands on the same line as the closed form.
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	assert.InDelta(t, alpha, trainer.Intercept(), 1e-3)
	assert.InDelta(t, beta, trainer.Slope(), 1e-3)
}

func TestFit_ConvergenceWideInputRange(t *testing.T) {
	// Inputs on [0, 10) raise the batch second moment to ~33, so the
	// learning rate is rescaled to stay inside the stable region.
	xs, ys, err := regress.GenerateOn(3, 5, 1000, 0, 10, rand.New(rand.NewSource(8)))
	require.NoError(t, err)

	trainer := newTrainer(17, 0.02)
	losses, err := regress.Fit(trainer, xs, ys, 5000)
	require.NoError(t, err)

	assert.Less(t, losses[len(losses)-1], 1e-6)
	assert.InDelta(t, 3, trainer.Intercept(), 1e-3)
	assert.InDelta(t, 5, trainer.Slope(), 1e-3)
}

func TestFit_DivergenceSurfacesInTrace(t *testing.T) {
	// Learning rate far above the stable region for inputs on [0, 10):
	// the run still completes, and the divergence shows up in the trace.
	xs, ys, err := regress.GenerateOn(3, 5, 100, 0, 10, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	trainer := newTrainer(3, 0.1)
	losses, err := regress.Fit(trainer, xs, ys, 50)
	require.NoError(t, err)
	require.Len(t, losses, 50)

	last := losses[len(losses)-1]
	assert.True(t, math.IsNaN(last) || math.IsInf(last, 1) || last > losses[0],
		"expected growing or NaN loss, got first=%g last=%g", losses[0], last)
}
