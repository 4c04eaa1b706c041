// Package campaign trains and evaluates the term-deposit subscription
// classifier: fixed campaign schema in, confusion-matrix metrics out.
package campaign

import (
	"github.com/bankml/campaign/internal/activations"
	"github.com/bankml/campaign/internal/dataset"
	"github.com/bankml/campaign/internal/encoding"
	"github.com/bankml/campaign/internal/eval"
	"github.com/bankml/campaign/internal/layer"
	"github.com/bankml/campaign/internal/loss"
	"github.com/bankml/campaign/internal/net"
	"github.com/bankml/campaign/internal/opt"
)

// Re-export common types for easier access
type (
	Dataset         = dataset.Dataset
	Scaler          = dataset.Scaler
	ParseError      = dataset.ParseError
	DimensionError  = dataset.DimensionError
	Network         = net.Network
	Trainer         = net.Trainer
	Callback        = net.Callback
	ConfusionMatrix = eval.ConfusionMatrix
)

// Config carries the pipeline policy knobs with their production
// defaults. OversampleFactor and Threshold are deliberate product
// choices, not numerical defaults.
type Config struct {
	OversampleFactor int     // extra copies appended per positive row
	Threshold        float64 // decision threshold on the network output
	ErrorGoal        float64 // mean epoch error that stops training
	MaxEpochs        int     // hard epoch cap
	LogInterval      int     // epochs between progress lines
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		OversampleFactor: 5,
		Threshold:        eval.DefaultThreshold,
		ErrorGoal:        net.DefaultErrorGoal,
		MaxEpochs:        net.DefaultMaxEpochs,
		LogInterval:      50,
	}
}

// NewNetwork builds the fixed architecture: feature-vector input, two
// hidden layers of 16 and 8 sigmoid neurons, one sigmoid output, MSE
// loss, resilient backpropagation.
func NewNetwork() *Network {
	return net.New(
		[]layer.Layer{
			layer.NewDense(FeatureLen(), 16, activations.Sigmoid{}),
			layer.NewDense(16, 8, activations.Sigmoid{}),
			layer.NewDense(8, 1, activations.Sigmoid{}),
		},
		loss.MSE{},
		opt.NewRProp(),
	)
}

// FeatureLen returns the fixed feature vector length.
func FeatureLen() int {
	return dataset.FeatureLen
}

// Load reads a delimiter-separated dataset file.
func Load(path string) (*Dataset, error) {
	return dataset.Load(path)
}

// NewTrainer creates a trainer with the config's stopping conditions
// and a console progress logger.
func NewTrainer(cfg Config, extra ...Callback) *Trainer {
	callbacks := append([]net.Callback{net.Logger{Interval: cfg.LogInterval}}, extra...)
	return &net.Trainer{
		ErrorGoal: cfg.ErrorGoal,
		MaxEpochs: cfg.MaxEpochs,
		Callbacks: callbacks,
	}
}

// HistoryLogger records per-epoch training history to a CSV file.
func HistoryLogger(filename string) Callback {
	return net.NewCSVLogger(filename, false)
}

// Evaluate runs the network over a dataset at the given decision
// threshold.
func Evaluate(n *Network, ds *Dataset, threshold float64) ConfusionMatrix {
	return eval.Evaluate(n, ds.Samples, ds.Labels, threshold)
}

// OneHot encodes a value against an ordered category list.
func OneHot(value string, categories []string) []float64 {
	return encoding.OneHot(value, categories)
}
