package regress

import (
	"fmt"
	"math/rand"

	"github.com/fitline-ml/fitline/autodiff"
	"github.com/fitline-ml/fitline/nn"
	"github.com/fitline-ml/fitline/optim"
	"github.com/fitline-ml/fitline/tensor"
)

// Config holds trainer configuration. Zero values select the defaults.
type Config struct {
	LR       float64    // Learning rate (default: 0.1)
	Momentum float64    // SGD momentum (default: 0.0)
	Rand     *rand.Rand // Parameter init source (nil: shared math/rand source)
}

// Trainer owns the affine model, the loss criterion, and the optimizer.
//
// The two model parameters are initialized once at construction and then
// mutated in place by Step: each call reads the values the previous call
// left behind. The trainer is not safe for concurrent use; Step is a
// synchronous, blocking call.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	trainer := regress.New(regress.Config{LR: 0.1}, backend)
//	loss, preds, err := trainer.Step(xs, ys)
type Trainer[B autodiff.BackwardCapable] struct {
	model     *nn.Line[B]
	criterion *nn.HalfMSE[B]
	optimizer *optim.SGD[B]
	backend   B
}

// New creates a trainer with freshly drawn random parameters and a fixed
// learning rate.
func New[B autodiff.BackwardCapable](cfg Config, backend B) *Trainer[B] {
	if cfg.LR == 0 {
		cfg.LR = 0.1
	}

	model := nn.NewLine(cfg.Rand, backend)
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       cfg.LR,
		Momentum: cfg.Momentum,
	})

	return &Trainer[B]{
		model:     model,
		criterion: nn.NewHalfMSE(backend),
		optimizer: optimizer,
		backend:   backend,
	}
}

// Step runs one full-batch gradient-descent iteration:
//
//  1. Record the forward pass on a fresh tape: predictions and the scalar
//     mean half-squared-error loss.
//  2. Walk the tape backwards for the two parameter gradients, both
//     computed from the pre-update parameter values.
//  3. Apply param ← param − lr·grad to both parameters.
//
// Returns the loss and predictions of this call (i.e. computed from the
// parameter values before the update). The updated parameters persist
// inside the trainer for the next call.
//
// xs and ys must be non-empty sequences of equal length.
func (t *Trainer[B]) Step(xs, ys []float64) (float64, []float64, error) {
	if len(xs) == 0 {
		return 0, nil, fmt.Errorf("empty input batch")
	}
	if len(xs) != len(ys) {
		return 0, nil, fmt.Errorf("input length mismatch: %d xs vs %d ys", len(xs), len(ys))
	}

	tape := t.backend.GetTape()
	tape.Clear()
	tape.StartRecording()
	defer tape.StopRecording()

	x, err := tensor.FromSlice(xs, tensor.Shape{len(xs)}, t.backend)
	if err != nil {
		return 0, nil, fmt.Errorf("building input tensor: %w", err)
	}
	y, err := tensor.FromSlice(ys, tensor.Shape{len(ys)}, t.backend)
	if err != nil {
		return 0, nil, fmt.Errorf("building target tensor: %w", err)
	}

	preds := t.model.Forward(x)
	loss := t.criterion.Forward(preds, y)

	grads := autodiff.Backward(loss, t.backend)

	t.optimizer.Step(grads)
	t.optimizer.ZeroGrad()

	// Copy predictions out of the tensor buffer; the caller owns the slice.
	predictions := append([]float64(nil), preds.Data()...)

	return loss.Item(), predictions, nil
}

// Intercept returns the current intercept estimate.
func (t *Trainer[B]) Intercept() float64 {
	return t.model.Intercept().Tensor().Item()
}

// Slope returns the current slope estimate.
func (t *Trainer[B]) Slope() float64 {
	return t.model.Slope().Tensor().Item()
}

// LearningRate returns the fixed learning rate.
func (t *Trainer[B]) LearningRate() float64 {
	return t.optimizer.LearningRate()
}

// Model returns the underlying affine model.
func (t *Trainer[B]) Model() *nn.Line[B] {
	return t.model
}

// Fit runs Step the given number of iterations on the same fixed batch
// (full-batch gradient descent) and returns the recorded loss trace, one
// entry per iteration. A diverging run is returned as data: the trace
// grows or turns NaN instead of raising an error.
func Fit[B autodiff.BackwardCapable](t *Trainer[B], xs, ys []float64, iterations int) ([]float64, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iteration count must be positive, got %d", iterations)
	}

	losses := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		loss, _, err := t.Step(xs, ys)
		if err != nil {
			return losses, err
		}
		losses = append(losses, loss)
	}
	return losses, nil
}
