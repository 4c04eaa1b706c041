// Package activations provides activation functions for the network layers.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// sigmoid computes the logistic function.
// Inline for performance
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Sigmoid is the bounded logistic activation, output in (0,1).
// The output neuron's value is read directly as the estimated
// probability of the positive class.
type Sigmoid struct{}

// Activate computes sigmoid(x)
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x))
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}
