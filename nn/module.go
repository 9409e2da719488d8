// Package nn implements model building blocks for fitline:
//   - Module interface: base interface for all model components
//   - Parameter: trainable scalars with gradient tracking
//   - Line: the two-parameter affine model intercept + slope·x
//   - HalfMSE: mean half-squared-error criterion
//
// Design follows the PyTorch nn.Module shape adapted to Go generics.
package nn

import (
	"github.com/fitline-ml/fitline/tensor"
)

// Module is the base interface for all model components.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]

	// Parameters returns all trainable parameters of this module.
	// Modules without trainable parameters return an empty slice.
	Parameters() []*Parameter[B]
}
