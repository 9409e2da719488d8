package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	half := tensor.Full[float64](Shape{1}, 0.5, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1),
// drawn from the given source. A nil source falls back to the shared
// math/rand source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	t := tensor.Rand[float64](Shape{2}, rng, backend)
func Rand[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(uniform())
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = uniform()
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}
