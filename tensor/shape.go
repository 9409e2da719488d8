package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes resolves the output shape of a binary operation.
//
// fitline models broadcast scalar parameters across sample batches, so
// only the 1-element case is supported:
//   - Equal shapes are returned as-is.
//   - A 1-element operand broadcasts to the other operand's shape.
//
// Returns the output shape, whether broadcasting is needed, and an error
// for incompatible shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	if a.Equal(b) {
		return a.Clone(), false, nil
	}
	if a.NumElements() == 1 {
		return b.Clone(), true, nil
	}
	if b.NumElements() == 1 {
		return a.Clone(), true, nil
	}
	return nil, false, fmt.Errorf("shapes %v and %v are not broadcast-compatible", a, b)
}
