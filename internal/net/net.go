// Package net provides the feed-forward network and its training loop.
package net

import (
	"github.com/bankml/campaign/internal/layer"
	"github.com/bankml/campaign/internal/loss"
	"github.com/bankml/campaign/internal/opt"
)

// Network is a chain of layers trained full-batch: gradients accumulate
// over every sample of an epoch and the optimizer moves the flattened
// parameter vector once per epoch. The weight state is owned here and
// only the epoch step mutates it; evaluation reads it through Forward.
type Network struct {
	layers []layer.Layer
	loss   loss.Loss
	opt    opt.Optimizer

	// Pre-allocated buffers for the epoch loop
	lossGradBuf []float64
	paramsBuf   []float64
	gradsBuf    []float64
}

// New creates a network with the given layers, loss and optimizer.
func New(layers []layer.Layer, l loss.Loss, optimizer opt.Optimizer) *Network {
	return &Network{
		layers: layers,
		loss:   l,
		opt:    optimizer,
	}
}

// Forward performs a forward pass through all layers.
func (n *Network) Forward(x []float64) []float64 {
	curr := x
	for i := range n.layers {
		curr = n.layers[i].Forward(curr)
	}
	return curr
}

// Backward performs a backward pass through all layers, accumulating
// per-layer gradients.
func (n *Network) Backward(grad []float64) []float64 {
	curr := grad
	for i := len(n.layers) - 1; i >= 0; i-- {
		curr = n.layers[i].Backward(curr)
	}
	return curr
}

// TrainEpoch runs one full pass over the training set and applies a
// single optimizer step on the gradients averaged over all samples.
// Returns the mean sample error for the epoch.
func (n *Network) TrainEpoch(x, y [][]float64) float64 {
	if len(x) == 0 {
		return 0
	}

	for _, l := range n.layers {
		l.ResetGradients()
	}

	var totalLoss float64
	for i := range x {
		yPred := n.Forward(x[i])
		totalLoss += n.loss.Forward(yPred, y[i])

		if cap(n.lossGradBuf) < len(yPred) {
			n.lossGradBuf = make([]float64, len(yPred))
		}
		grad := n.lossGradBuf[:len(yPred)]

		if inPlace, ok := n.loss.(loss.BackwardInPlacer); ok {
			inPlace.BackwardInPlace(yPred, y[i], grad)
		} else {
			grad = n.loss.Backward(yPred, y[i])
		}

		_ = n.Backward(grad)
	}

	n.step(1 / float64(len(x)))
	return totalLoss / float64(len(x))
}

// step gathers the flattened parameter and gradient vectors, scales the
// gradients, applies one optimizer step and scatters the parameters
// back. Flattening keeps the optimizer's per-weight state aligned across
// layers between epochs.
func (n *Network) step(gradScale float64) {
	total := 0
	for _, l := range n.layers {
		total += len(l.Params())
	}
	if cap(n.paramsBuf) < total {
		n.paramsBuf = make([]float64, total)
		n.gradsBuf = make([]float64, total)
	}
	params := n.paramsBuf[:0]
	grads := n.gradsBuf[:0]
	for _, l := range n.layers {
		params = append(params, l.Params()...)
		grads = append(grads, l.Gradients()...)
	}
	for i := range grads {
		grads[i] *= gradScale
	}

	n.opt.StepInPlace(params, grads)

	offset := 0
	for _, l := range n.layers {
		size := len(l.Params())
		l.SetParams(params[offset : offset+size])
		offset += size
	}
}

// Params returns all network parameters flattened (copy).
func (n *Network) Params() []float64 {
	var params []float64
	for _, l := range n.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// Layers returns the network's layers slice.
func (n *Network) Layers() []layer.Layer {
	return n.layers
}
