package net

import "fmt"

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochEnd(epoch int, err float64, n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                       {}
func (c BaseCallback) OnTrainEnd(n *Network)                         {}
func (c BaseCallback) OnEpochEnd(epoch int, err float64, n *Network) {}

// Logger prints training progress to the console.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, err float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %4d: error = %.4f\n", epoch, err)
	}
}
