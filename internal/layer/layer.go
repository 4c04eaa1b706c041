// Package layer provides the fully connected layer used by the network.
package layer

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/bankml/campaign/internal/activations"
)

// Layer is a network layer.
type Layer interface {
	Forward(x []float64) []float64
	Backward(grad []float64) []float64
	Params() []float64
	SetParams([]float64)
	Gradients() []float64
	ResetGradients()
}

// Dense is a fully connected layer.
// Weights are stored as a row-major contiguous slice; the weight for
// output o, input i is at weights[o*in + i]. Buffers are pre-allocated
// so the epoch loop does not allocate.
type Dense struct {
	weights []float64
	biases  []float64
	act     activations.Activation
	outSize int
	inSize  int

	// Reusable buffers for gradient computation
	inputBuf  []float64
	outputBuf []float64
	preActBuf []float64
	gradWBuf  []float64
	gradBBuf  []float64
	gradInBuf []float64
	dzBuf     []float64
}

// NewDense creates a dense layer with norm-scaled initial weights.
// Each neuron's incoming weight row is drawn uniform and rescaled so its
// Euclidean norm is 0.7 * out^(1/in), which keeps initial activations
// away from sigmoid saturation. Changing this changes what the trainer
// can reach within the epoch cap.
func NewDense(in, out int, act activations.Activation) *Dense {
	weights := make([]float64, out*in)
	biases := make([]float64, out)

	beta := 0.7 * math.Pow(float64(out), 1.0/float64(in))
	for o := 0; o < out; o++ {
		row := weights[o*in : (o+1)*in]
		for i := range row {
			row[i] = rand.Float64() - 0.5
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(beta/norm, row)
		}
		biases[o] = (rand.Float64()*2 - 1) * beta
	}

	return &Dense{
		weights:   weights,
		biases:    biases,
		act:       act,
		outSize:   out,
		inSize:    in,
		inputBuf:  make([]float64, in),
		outputBuf: make([]float64, out),
		preActBuf: make([]float64, out),
		gradWBuf:  make([]float64, out*in),
		gradBBuf:  make([]float64, out),
		gradInBuf: make([]float64, in),
		dzBuf:     make([]float64, out),
	}
}

// Forward computes act(Wx + b) into the layer's output buffer.
func (d *Dense) Forward(x []float64) []float64 {
	copy(d.inputBuf, x)

	outSize := d.outSize
	inSize := d.inSize
	weights := d.weights
	biases := d.biases
	input := d.inputBuf
	preAct := d.preActBuf
	output := d.outputBuf

	for o := 0; o < outSize; o++ {
		sum := biases[o]
		wBase := o * inSize
		for i := 0; i < inSize; i++ {
			sum += weights[wBase+i] * input[i]
		}
		preAct[o] = sum
		output[o] = d.act.Activate(sum)
	}

	return output[:outSize]
}

// Backward accumulates weight and bias gradients for the last forwarded
// sample and returns the gradient w.r.t. the layer input. Gradients sum
// across samples until ResetGradients, which is what full-batch training
// needs: one reset per epoch, one optimizer step per epoch.
func (d *Dense) Backward(grad []float64) []float64 {
	outSize := d.outSize
	inSize := d.inSize
	weights := d.weights
	input := d.inputBuf
	dz := d.dzBuf
	gradW := d.gradWBuf
	gradB := d.gradBBuf
	gradIn := d.gradInBuf

	// dz = dL/d(output) * activation'(z)
	for o := 0; o < outSize; o++ {
		dz[o] = grad[o] * d.act.Derivative(d.preActBuf[o])
		gradB[o] += dz[o]
	}

	// dL/dW[o, i] += dz[o] * input[i]
	for o := 0; o < outSize; o++ {
		dzo := dz[o]
		wBase := o * inSize
		for i := 0; i < inSize; i++ {
			gradW[wBase+i] += dzo * input[i]
		}
	}

	// dL/dx[i] = sum_o(dz[o] * W[o, i])
	for i := 0; i < inSize; i++ {
		sum := 0.0
		for o := 0; o < outSize; o++ {
			sum += dz[o] * weights[o*inSize+i]
		}
		gradIn[i] = sum
	}

	return gradIn[:inSize]
}

// Params returns all layer parameters flattened (copy).
func (d *Dense) Params() []float64 {
	params := make([]float64, 0, len(d.weights)+len(d.biases))
	params = append(params, d.weights...)
	params = append(params, d.biases...)
	return params
}

// SetParams updates weights and biases from a flattened slice (in-place).
func (d *Dense) SetParams(params []float64) {
	copy(d.weights, params[:len(d.weights)])
	copy(d.biases, params[len(d.weights):])
}

// Gradients returns the accumulated gradients flattened (copy).
func (d *Dense) Gradients() []float64 {
	gradients := make([]float64, 0, len(d.gradWBuf)+len(d.gradBBuf))
	gradients = append(gradients, d.gradWBuf...)
	gradients = append(gradients, d.gradBBuf...)
	return gradients
}

// ResetGradients zeroes the accumulated gradient buffers.
func (d *Dense) ResetGradients() {
	for i := range d.gradWBuf {
		d.gradWBuf[i] = 0
	}
	for i := range d.gradBBuf {
		d.gradBBuf[i] = 0
	}
}

// WeightRow returns the incoming weight row of output neuron o.
func (d *Dense) WeightRow(o int) []float64 {
	return d.weights[o*d.inSize : (o+1)*d.inSize]
}

// InSize returns the input size of the layer.
func (d *Dense) InSize() int {
	return d.inSize
}

// OutSize returns the output size of the layer.
func (d *Dense) OutSize() int {
	return d.outSize
}
