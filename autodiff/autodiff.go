// Package autodiff implements reverse-mode automatic differentiation
// using the decorator pattern.
//
// Backend wraps any tensor.Backend implementation and adds gradient
// tracking through a GradientTape: every forward operation delegates to
// the wrapped backend and, while the tape is recording, appends an
// ops.Operation that knows how to propagate gradients to its inputs.
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float64{2.0}, tensor.Shape{1}, backend)
//	y := x.Mul(x) // y = x²
//
//	grads := autodiff.Backward(y, backend)
//	fmt.Println(grads[x.Raw()].AsFloat64()) // dy/dx = 2x = [4]
package autodiff

import (
	"github.com/fitline-ml/fitline/autodiff/ops"
	"github.com/fitline-ml/fitline/tensor"
)

// Backend wraps a tensor.Backend and adds automatic differentiation.
// It implements the tensor.Backend interface and records operations in a
// GradientTape.
type Backend[B tensor.Backend] struct {
	inner B             // Wrapped backend
	tape  *GradientTape // Records operations for backpropagation
}

// New creates a new autodiff Backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return &Backend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control:
// starting/stopping recording, clearing between iterations, inspection.
func (b *Backend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *Backend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *Backend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *Backend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Add performs element-wise addition and records the operation.
func (b *Backend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	// Prevent inplace modification that would corrupt the recorded graph:
	// a raised refCount makes IsUnique() return false, so the wrapped
	// backend allocates a new result.
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Add(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddOp(a, c, result))
	}

	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *Backend[B]) Sub(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Sub(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubOp(a, c, result))
	}

	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *Backend[B]) Mul(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Mul(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulOp(a, c, result))
	}

	return result
}

// Div performs element-wise division and records the operation.
func (b *Backend[B]) Div(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Div(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivOp(a, c, result))
	}

	return result
}

// Mean reduces to the mean of all elements and records the operation.
func (b *Backend[B]) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Mean(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMeanOp(x, result))
	}

	return result
}
