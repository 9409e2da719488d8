package nn

import (
	"github.com/fitline-ml/fitline/tensor"
)

// Parameter represents a trainable parameter.
//
// Parameters are tensors that receive gradients during training and are
// updated in place by the optimizer: their values persist and accumulate
// updates across training iterations.
//
// Example:
//
//	slope := nn.NewParameter("slope", slopeTensor)
//	s := slope.Tensor()
type Parameter[B tensor.Backend] struct {
	name   string                     // Parameter name (e.g., "intercept")
	tensor *tensor.Tensor[float64, B] // The parameter tensor
	grad   *tensor.Tensor[float64, B] // Gradient (set during backward pass)
}

// NewParameter creates a new trainable parameter.
// The parameter tensor should be initialized before creating the
// Parameter; the gradient slot is filled on the first backward pass.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float64, B] {
	return p.tensor
}

// Grad returns the gradient tensor.
// Returns nil before the first backward pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float64, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float64, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
// Called before each training iteration so gradients from previous
// iterations do not accumulate.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
