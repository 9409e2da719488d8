package tensor

// Add performs element-wise addition with 1-element broadcasting.
//
// Example:
//
//	intercept := tensor.Full[float64](Shape{1}, 3.0, backend)
//	xs := tensor.Rand[float64](Shape{100}, nil, backend)
//	out := intercept.Add(xs) // Shape: [100] (intercept broadcast)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with 1-element broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with 1-element broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with 1-element broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mean reduces the tensor to the mean of all its elements (shape {1}).
// The result is the scalar objective that the autodiff backend can
// differentiate.
func (t *Tensor[T, B]) Mean() *Tensor[T, B] {
	result := t.backend.Mean(t.raw)
	return New[T, B](result, t.backend)
}
