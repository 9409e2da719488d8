package autodiff

import (
	"fmt"

	"github.com/fitline-ml/fitline/tensor"
)

// BackwardCapable is an interface for backends that support a backward
// pass. Backend implements it.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable).
func (b *Backend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients of t with respect to every tensor on the
// backend's tape, seeding d(t)/d(t) = 1.
//
// Returns a map from RawTensor to its gradient.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	x := tensor.Ones[float64](tensor.Shape{2}, backend)
//	y := x.Mul(x).Mean()
//	gradients := autodiff.Backward(y, backend)
//	grad := gradients[x.Raw()]
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	// Create output gradient: ones with same shape as output
	outputGrad, err := tensor.NewRaw(t.Shape(), t.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create output gradient: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		data := outputGrad.AsFloat32()
		for i := range data {
			data[i] = 1.0
		}
	case tensor.Float64:
		data := outputGrad.AsFloat64()
		for i := range data {
			data[i] = 1.0
		}
	default:
		panic(fmt.Sprintf("backward: unsupported dtype %s", t.DType()))
	}

	return tape.Backward(outputGrad, backend)
}
