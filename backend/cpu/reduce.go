package cpu

import (
	"fmt"

	"github.com/fitline-ml/fitline/tensor"
)

// Mean reduces a tensor to the mean of all its elements (shape {1}).
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{1}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mean: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		var sum float32
		for _, v := range src {
			sum += v
		}
		result.AsFloat32()[0] = sum / float32(len(src))
	case tensor.Float64:
		src := x.AsFloat64()
		var sum float64
		for _, v := range src {
			sum += v
		}
		result.AsFloat64()[0] = sum / float64(len(src))
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %s", x.DType()))
	}

	return result
}
