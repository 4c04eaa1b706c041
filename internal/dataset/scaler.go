package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// epsStd keeps a constant column from producing a zero divisor.
const epsStd = 1e-9

// DimensionError reports a matrix whose column count does not match the
// fitted statistics.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix has %d columns, scaler was fitted for %d", e.Got, e.Want)
}

// Scaler rescales feature columns to zero mean and unit standard
// deviation. Statistics are computed once, on the training matrix, and
// reapplied verbatim to every other matrix: a held-out set must never
// contribute to the scaling used at training time.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column mean and sample standard deviation over
// samples and transforms the matrix in place. The standard deviation
// gets a small epsilon added so constant columns stay divisible. The
// sample statistic divides by n-1, so at least two rows are required.
func (s *Scaler) Fit(samples [][]float64) error {
	if len(samples) < 2 {
		return errors.New("fit needs at least two rows")
	}

	cols := len(samples[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	col := make([]float64, len(samples))
	for j := 0; j < cols; j++ {
		for i := range samples {
			col[i] = samples[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		s.Mean[j] = mean
		s.Std[j] = std + epsStd
	}

	s.transform(samples)
	return nil
}

// Apply transforms a different matrix in place using the fitted
// statistics. It never recomputes them from the new matrix.
func (s *Scaler) Apply(samples [][]float64) error {
	if len(samples) == 0 {
		return nil
	}
	if len(samples[0]) != len(s.Mean) {
		return &DimensionError{Want: len(s.Mean), Got: len(samples[0])}
	}
	s.transform(samples)
	return nil
}

func (s *Scaler) transform(samples [][]float64) {
	for _, row := range samples {
		for j := range row {
			row[j] = (row[j] - s.Mean[j]) / s.Std[j]
		}
	}
}
