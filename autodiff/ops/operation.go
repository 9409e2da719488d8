// Package ops defines operation interfaces and implementations for
// automatic differentiation.
//
// Each operation implements the Operation interface:
//   - Forward pass: computed by the backend, recorded on the tape
//   - Backward pass: computes gradients for inputs given the output gradient
//
// Supported operations:
//   - AddOp: element-wise addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: element-wise subtraction
//   - MulOp: element-wise multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: element-wise division
//   - MeanOp: full mean reduction (d(mean(x))/dx_i = 1/n)
package ops

import "github.com/fitline-ml/fitline/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
