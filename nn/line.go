package nn

import (
	"fmt"
	"math/rand"

	"github.com/fitline-ml/fitline/tensor"
)

// Line is the two-parameter affine model:
//
//	prediction_i = intercept + slope * x_i
//
// Both parameters are 1-element tensors initialized to independent random
// values in [0, 1) and broadcast across the input batch, so the whole
// forward pass is expressed through recorded tensor operations and stays
// differentiable.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewLine(rand.New(rand.NewSource(1)), backend)
//	preds := model.Forward(xs) // same shape as xs
type Line[B tensor.Backend] struct {
	intercept *Parameter[B] // shape {1}
	slope     *Parameter[B] // shape {1}
	backend   B
}

// NewLine creates a new affine model with intercept and slope drawn
// independently from [0, 1) using the given source (nil falls back to the
// shared math/rand source).
func NewLine[B tensor.Backend](rng *rand.Rand, backend B) *Line[B] {
	interceptTensor := tensor.Rand[float64](tensor.Shape{1}, rng, backend)
	slopeTensor := tensor.Rand[float64](tensor.Shape{1}, rng, backend)

	return &Line[B]{
		intercept: NewParameter("intercept", interceptTensor),
		slope:     NewParameter("slope", slopeTensor),
		backend:   backend,
	}
}

// Forward computes predictions for a 1-D input batch.
//
// Input shape: [n]. Output shape: [n].
func (l *Line[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	if len(input.Shape()) != 1 {
		panic(fmt.Sprintf("Line.Forward: expected 1D input, got shape %v", input.Shape()))
	}

	// intercept + slope * x, scalar parameters broadcast across the batch
	scaled := l.slope.Tensor().Mul(input)
	return l.intercept.Tensor().Add(scaled)
}

// Parameters returns [intercept, slope].
func (l *Line[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.intercept, l.slope}
}

// Intercept returns the intercept parameter.
func (l *Line[B]) Intercept() *Parameter[B] {
	return l.intercept
}

// Slope returns the slope parameter.
func (l *Line[B]) Slope() *Parameter[B] {
	return l.slope
}
