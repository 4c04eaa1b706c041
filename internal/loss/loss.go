// Package loss provides the training loss function.
package loss

// Loss computes a scalar error and its gradient w.r.t. the prediction.
type Loss interface {
	// Forward computes the loss value
	Forward(yPred, yTrue []float64) float64

	// Backward computes dL/dy_pred
	Backward(yPred, yTrue []float64) []float64
}

// BackwardInPlacer computes the loss gradient into a caller-owned slice,
// avoiding an allocation per sample in the epoch loop.
type BackwardInPlacer interface {
	BackwardInPlace(yPred, yTrue, grad []float64)
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		sum += diff * diff
	}
	return sum / float64(n)
}

// Backward computes gradient: dL/dy_pred = (2/n) * (y_pred - y_true)
// Note: Returned slice is newly allocated for safety.
func (m MSE) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	grad := make([]float64, n)
	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
	return grad
}

// BackwardInPlace computes gradient and stores it in the grad slice.
func (m MSE) BackwardInPlace(yPred, yTrue, grad []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(grad) {
		panic("MSE: slices must have same length")
	}

	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
}
