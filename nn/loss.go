package nn

import (
	"github.com/fitline-ml/fitline/tensor"
)

// HalfMSE computes the mean half-squared-error loss:
//
//	Loss = mean(0.5 * (targets - predictions)²)
//
// The 0.5 factor cancels against the exponent under differentiation, so
// the parameter gradients come out as plain mean residuals.
//
// Unlike a plain metric, Forward builds the loss entirely from backend
// operations: when the backend is an autodiff decorator with its tape
// recording, the returned scalar is a differentiable objective.
//
// Example:
//
//	criterion := nn.NewHalfMSE(backend)
//	loss := criterion.Forward(preds, targets) // shape {1}
type HalfMSE[B tensor.Backend] struct {
	half    *tensor.Tensor[float64, B] // constant 0.5, shape {1}
	backend B
}

// NewHalfMSE creates a new half-MSE criterion.
func NewHalfMSE[B tensor.Backend](backend B) *HalfMSE[B] {
	return &HalfMSE[B]{
		half:    tensor.Full[float64](tensor.Shape{1}, 0.5, backend),
		backend: backend,
	}
}

// Forward computes the loss as a 1-element tensor.
//
// Predictions and targets must have the same shape.
func (h *HalfMSE[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic("HalfMSE: predictions and targets must have the same shape")
	}

	diff := targets.Sub(predictions)
	squared := diff.Mul(diff)
	halved := squared.Mul(h.half)
	return halved.Mean()
}

// Parameters returns an empty slice (the criterion has no trainable
// parameters).
func (h *HalfMSE[B]) Parameters() []*Parameter[B] {
	return nil
}
