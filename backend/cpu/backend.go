// Package cpu implements the pure Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/fitline-ml/fitline/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with 1-element broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, addF32, addF64)
}

// Sub performs element-wise subtraction with 1-element broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, subF32, subF64)
}

// Mul performs element-wise multiplication with 1-element broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, mulF32, mulF64)
}

// Div performs element-wise division with 1-element broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, divF32, divF64)
}

// binary dispatches an element-wise binary operation by dtype, resolving
// the output shape through the broadcasting rules.
func (cpu *CPUBackend) binary(
	name string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	// Fast path: same shape and a is the buffer's only reference, so the
	// result can overwrite a. The autodiff decorator blocks this path via
	// ForceNonUnique to keep recorded inputs intact.
	if !needsBroadcast && a.IsUnique() {
		switch a.DType() {
		case tensor.Float32:
			xs, ys := a.AsFloat32(), b.AsFloat32()
			for i := range xs {
				xs[i] = f32(xs[i], ys[i])
			}
			return a
		case tensor.Float64:
			xs, ys := a.AsFloat64(), b.AsFloat64()
			for i := range xs {
				xs[i] = f64(xs[i], ys[i])
			}
			return a
		}
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	n := outShape.NumElements()
	switch a.DType() {
	case tensor.Float32:
		xs, ys := a.AsFloat32(), b.AsFloat32()
		dst := result.AsFloat32()
		xStep, yStep := step(len(xs)), step(len(ys))
		for i := 0; i < n; i++ {
			dst[i] = f32(xs[i*xStep], ys[i*yStep])
		}
	case tensor.Float64:
		xs, ys := a.AsFloat64(), b.AsFloat64()
		dst := result.AsFloat64()
		xStep, yStep := step(len(xs)), step(len(ys))
		for i := 0; i < n; i++ {
			dst[i] = f64(xs[i*xStep], ys[i*yStep])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// step maps an operand length to its iteration stride: 0 pins a
// 1-element operand in place so it broadcasts across the output.
func step(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}

func addF32(x, y float32) float32 { return x + y }
func subF32(x, y float32) float32 { return x - y }
func mulF32(x, y float32) float32 { return x * y }
func divF32(x, y float32) float32 { return x / y }

func addF64(x, y float64) float64 { return x + y }
func subF64(x, y float64) float64 { return x - y }
func mulF64(x, y float64) float64 { return x * y }
func divF64(x, y float64) float64 { return x / y }
