// Package activations provides unit tests for the sigmoid activation.
package activations

import (
	"math"
	"testing"
)

// TestSigmoid tests sigmoid values against known points.
func TestSigmoid(t *testing.T) {
	s := Sigmoid{}

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.0, 0.5},
		{1.0, 0.7310585786},
		{-1.0, 0.2689414214},
		{10.0, 0.9999546021},
		{-10.0, 0.0000453979},
	}

	for _, tt := range tests {
		output := s.Activate(tt.input)
		if math.Abs(output-tt.expected) > 1e-9 {
			t.Errorf("Sigmoid(%v) = %v, want %v", tt.input, output, tt.expected)
		}
	}
}

// TestSigmoidBounds tests that outputs stay strictly inside (0,1).
func TestSigmoidBounds(t *testing.T) {
	s := Sigmoid{}

	for _, x := range []float64{-30, -5, 0, 5, 30} {
		out := s.Activate(x)
		if out <= 0 || out >= 1 {
			t.Errorf("Sigmoid(%v) = %v, want in (0,1)", x, out)
		}
	}
}

// TestSigmoidDerivative tests the derivative identity s'(x) = s(x)(1-s(x)).
func TestSigmoidDerivative(t *testing.T) {
	s := Sigmoid{}

	for _, x := range []float64{-2.0, -0.5, 0.0, 0.5, 2.0} {
		sigma := s.Activate(x)
		want := sigma * (1 - sigma)
		if got := s.Derivative(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("Sigmoid.Derivative(%v) = %v, want %v", x, got, want)
		}
	}

	// Derivative peaks at x = 0 with value 0.25.
	if got := s.Derivative(0); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Sigmoid.Derivative(0) = %v, want 0.25", got)
	}
}
