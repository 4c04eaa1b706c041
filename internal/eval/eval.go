// Package eval runs inference over a dataset and derives classification
// metrics from a 2x2 confusion matrix.
package eval

import (
	"fmt"
	"strings"

	"github.com/bankml/campaign/internal/net"
)

// DefaultThreshold is deliberately below 0.50: with a rare positive
// class, recall is worth more than precision here.
const DefaultThreshold = 0.30

// eps guards the metric divisions when a class is entirely absent from
// the predictions.
const eps = 1e-9

// ConfusionMatrix holds 2x2 counts indexed by (expected, predicted).
type ConfusionMatrix struct {
	TrueNegative  int
	FalsePositive int
	FalseNegative int
	TruePositive  int
}

// Evaluate runs the network over every sample and classifies positive
// when the output exceeds threshold. The network is only read.
func Evaluate(n *net.Network, samples, labels [][]float64, threshold float64) ConfusionMatrix {
	var m ConfusionMatrix
	for i := range samples {
		predicted := n.Forward(samples[i])[0] > threshold
		expected := labels[i][0] == 1

		switch {
		case expected && predicted:
			m.TruePositive++
		case expected && !predicted:
			m.FalseNegative++
		case !expected && predicted:
			m.FalsePositive++
		default:
			m.TrueNegative++
		}
	}
	return m
}

// Total returns the number of evaluated samples.
func (m ConfusionMatrix) Total() int {
	return m.TrueNegative + m.FalsePositive + m.FalseNegative + m.TruePositive
}

// Accuracy returns the fraction of correct classifications, exactly
// (TN+TP)/total; an empty matrix counts as 0.
func (m ConfusionMatrix) Accuracy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	return float64(m.TrueNegative+m.TruePositive) / float64(total)
}

// Precision returns TP / (TP + FP).
func (m ConfusionMatrix) Precision() float64 {
	return float64(m.TruePositive) / (float64(m.TruePositive+m.FalsePositive) + eps)
}

// Recall returns TP / (TP + FN).
func (m ConfusionMatrix) Recall() float64 {
	return float64(m.TruePositive) / (float64(m.TruePositive+m.FalseNegative) + eps)
}

// F1 returns the harmonic mean of precision and recall.
func (m ConfusionMatrix) F1() float64 {
	p := m.Precision()
	r := m.Recall()
	return 2 * p * r / (p + r + eps)
}

// String renders the labeled matrix, rows expected, columns predicted.
func (m ConfusionMatrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %13s %13s\n", "", "predicted no", "predicted yes")
	fmt.Fprintf(&b, "%-14s %13d %13d\n", "expected no", m.TrueNegative, m.FalsePositive)
	fmt.Fprintf(&b, "%-14s %13d %13d", "expected yes", m.FalseNegative, m.TruePositive)
	return b.String()
}
