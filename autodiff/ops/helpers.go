package ops

import (
	"fmt"

	"github.com/fitline-ml/fitline/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass: a
// 1-element parameter that was broadcast across a batch accumulates the
// sum of the per-sample gradients.
//
// Example:
//
//	Forward: intercept[1] + xs[100] -> out[100]
//	Backward: grad_out[100] -> grad_intercept[1] (sum over the batch)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	// If shapes already match, clone to avoid aliasing issues
	// (prevents inplace operations from modifying shared gradients)
	if gradShape.Equal(targetShape) {
		return grad.Clone()
	}

	if targetShape.NumElements() != 1 {
		panic(fmt.Sprintf("reduceBroadcast: cannot reduce shape %v to %v", gradShape, targetShape))
	}

	return sumAll(grad, backend)
}

// sumAll sums all elements of a tensor into a 1-element tensor.
func sumAll(t *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{1}, t.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("sumAll: failed to create result: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		var sum float32
		for _, v := range data {
			sum += v
		}
		result.AsFloat32()[0] = sum
	case tensor.Float64:
		data := t.AsFloat64()
		var sum float64
		for _, v := range data {
			sum += v
		}
		result.AsFloat64()[0] = sum
	default:
		panic(fmt.Sprintf("sumAll: unsupported dtype %s", t.DType()))
	}

	return result
}

// negateGradient returns a negated copy of a gradient tensor.
func negateGradient(grad *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	result, err := tensor.NewRaw(grad.Shape(), grad.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("negateGradient: failed to create result: %v", err))
	}

	switch grad.DType() {
	case tensor.Float32:
		src := grad.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Float64:
		src := grad.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = -v
		}
	default:
		panic(fmt.Sprintf("negateGradient: unsupported dtype %s", grad.DType()))
	}

	return result
}
