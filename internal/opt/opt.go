// Package opt provides the weight update algorithm.
package opt

// Optimizer updates network parameters based on gradients.
type Optimizer interface {
	// Step computes updated parameters and returns them in a new slice.
	Step(params, gradients []float64) []float64

	// StepInPlace updates params in-place.
	StepInPlace(params, gradients []float64)
}

// RProp default constants.
const (
	DefaultEtaPlus  = 1.2
	DefaultEtaMinus = 0.5
	DefaultStepInit = 0.1
	DefaultStepMax  = 50.0
	DefaultStepMin  = 1e-6
)

// RProp is resilient backpropagation. Every weight carries its own step
// magnitude, adapted from the sign agreement of consecutive gradients;
// gradient magnitude never enters the update. State is kept in flat
// slices aligned with the flattened parameter vector, so the caller must
// pass params and gradients in the same order on every step.
type RProp struct {
	EtaPlus  float64 // step growth on sign agreement
	EtaMinus float64 // step shrink on sign flip
	StepInit float64
	StepMax  float64
	StepMin  float64

	steps []float64
	prev  []float64
}

// NewRProp creates an RProp optimizer with the standard constants.
func NewRProp() *RProp {
	return &RProp{
		EtaPlus:  DefaultEtaPlus,
		EtaMinus: DefaultEtaMinus,
		StepInit: DefaultStepInit,
		StepMax:  DefaultStepMax,
		StepMin:  DefaultStepMin,
	}
}

// Step computes updated parameters and returns them in a new slice.
func (r *RProp) Step(params, gradients []float64) []float64 {
	result := make([]float64, len(params))
	copy(result, params)
	r.StepInPlace(result, gradients)
	return result
}

// StepInPlace applies one resilient update to params.
//
// Sign agreement with the previous call grows the step (capped at
// StepMax) before moving; a sign flip shrinks the step (floored at
// StepMin) and suppresses this update, recording the gradient as zero so
// the next call takes the unchanged-step branch. Otherwise the step is
// left as is. The weight always moves by -sign(gradient) * step.
func (r *RProp) StepInPlace(params, gradients []float64) {
	if len(r.steps) != len(params) {
		r.steps = make([]float64, len(params))
		r.prev = make([]float64, len(params))
		for i := range r.steps {
			r.steps[i] = r.StepInit
		}
	}

	for i, g := range gradients {
		switch prod := r.prev[i] * g; {
		case prod > 0:
			r.steps[i] *= r.EtaPlus
			if r.steps[i] > r.StepMax {
				r.steps[i] = r.StepMax
			}
			params[i] -= sign(g) * r.steps[i]
			r.prev[i] = g
		case prod < 0:
			r.steps[i] *= r.EtaMinus
			if r.steps[i] < r.StepMin {
				r.steps[i] = r.StepMin
			}
			r.prev[i] = 0
		default:
			params[i] -= sign(g) * r.steps[i]
			r.prev[i] = g
		}
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
