package ops

import (
	"fmt"

	"github.com/fitline-ml/fitline/tensor"
)

// MeanOp represents a full mean reduction: output = mean(x).
//
// Forward:
//
//	y = sum(x) / n
//
// Backward:
//
//	grad_x_i = grad_y / n
//
// Differentiating the mean of the per-sample errors is what turns the
// batch objective into a single scalar; by linearity the resulting
// parameter gradients equal the average of the per-sample gradients.
type MeanOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // mean(x), shape {1}
	n      int                 // number of reduced elements
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(x, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
		n:      x.NumElements(),
	}
}

// Backward computes input gradients for the mean reduction: the scalar
// output gradient is spread uniformly over the input, divided by n.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]

	gradX, err := tensor.NewRaw(x.Shape(), x.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("mean backward: failed to create gradient: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		g := outputGrad.AsFloat32()[0] / float32(op.n)
		dst := gradX.AsFloat32()
		for i := range dst {
			dst[i] = g
		}
	case tensor.Float64:
		g := outputGrad.AsFloat64()[0] / float64(op.n)
		dst := gradX.AsFloat64()
		for i := range dst {
			dst[i] = g
		}
	default:
		panic(fmt.Sprintf("mean backward: unsupported dtype %s", x.DType()))
	}

	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *MeanOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor mean(x).
func (op *MeanOp) Output() *tensor.RawTensor {
	return op.output
}
