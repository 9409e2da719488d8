package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go CPU backend
//   - autodiff: decorator over any Backend that records a gradient tape
type Backend interface {
	// Element-wise binary operations (with 1-element broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Reduction operations
	Mean(x *RawTensor) *RawTensor // mean over all elements (scalar result)

	// Metadata
	Name() string
	Device() Device
}
