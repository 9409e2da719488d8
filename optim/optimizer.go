// Package optim implements optimization algorithms for training.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.1,
//	}, backend)
//
//	for i := 0; i < iterations; i++ {
//	    tape.Clear()
//	    tape.StartRecording()
//	    loss := criterion.Forward(model.Forward(xs), ys)
//	    grads := autodiff.Backward(loss, backend)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/fitline-ml/fitline/nn"
	"github.com/fitline-ml/fitline/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
// Optimizers update model parameters in place based on computed gradients.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Takes a gradient map produced by autodiff.Backward and updates
	// parameters in place. Parameters missing from the map did not
	// participate in the forward pass and are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients. Call before the next
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LearningRate returns the current learning rate.
	LearningRate() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// getGradient safely retrieves the gradient for a parameter.
// Returns nil if no gradient is found.
func getGradient[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
