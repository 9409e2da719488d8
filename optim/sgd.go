package optim

import (
	"github.com/fitline-ml/fitline/nn"
	"github.com/fitline-ml/fitline/tensor"
)

// SGD implements gradient descent with an optional momentum term.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Step reads every gradient before writing any parameter, so all
// parameters of one iteration are updated from pre-update values.
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter[B]][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]][]float64),
	}
}

// Step performs a single optimization step, updating parameters in place.
// Parameters with no gradient in the map are skipped.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			// Parameter didn't participate in the forward pass.
			continue
		}

		paramData := param.Tensor().Data()
		gradData := grad.AsFloat64()

		if s.momentum == 0 {
			for i := range paramData {
				paramData[i] -= s.lr * gradData[i]
			}
			continue
		}

		velocity, ok := s.velocities[param]
		if !ok {
			velocity = make([]float64, len(paramData))
			s.velocities[param] = velocity
		}
		for i := range paramData {
			velocity[i] = s.momentum*velocity[i] + gradData[i]
			paramData[i] -= s.lr * velocity[i]
		}
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LearningRate returns the current learning rate.
func (s *SGD[B]) LearningRate() float64 {
	return s.lr
}

// SetLearningRate updates the learning rate.
func (s *SGD[B]) SetLearningRate(lr float64) {
	s.lr = lr
}
