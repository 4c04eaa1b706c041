// Package dataset provides unit tests for the z-score scaler.
package dataset

import (
	"errors"
	"math"
	"testing"
)

// TestScalerFitStatistics tests the reference scenario: a single column
// [2,4,6] must yield mean 4, sample standard deviation 2 and a
// transformed column [-1, 0, 1].
func TestScalerFitStatistics(t *testing.T) {
	matrix := [][]float64{{2.0}, {4.0}, {6.0}}

	var s Scaler
	if err := s.Fit(matrix); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	if math.Abs(s.Mean[0]-4.0) > 1e-9 {
		t.Errorf("Mean[0] = %v, want 4.0", s.Mean[0])
	}
	if math.Abs(s.Std[0]-2.0) > 1e-6 {
		t.Errorf("Std[0] = %v, want 2.0", s.Std[0])
	}

	want := []float64{-1.0, 0.0, 1.0}
	for i, row := range matrix {
		if math.Abs(row[0]-want[i]) > 1e-9 {
			t.Errorf("row %d = %v, want %v", i, row[0], want[i])
		}
	}
}

// TestScalerConstantColumn tests that the epsilon floor keeps a constant
// column's standard deviation strictly positive.
func TestScalerConstantColumn(t *testing.T) {
	matrix := [][]float64{{7.0}, {7.0}, {7.0}}

	var s Scaler
	if err := s.Fit(matrix); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	if s.Std[0] <= 0 {
		t.Errorf("Std[0] = %v, want > 0", s.Std[0])
	}
	for i, row := range matrix {
		if math.IsNaN(row[0]) || math.IsInf(row[0], 0) {
			t.Errorf("row %d = %v after transform, want finite", i, row[0])
		}
	}
}

// TestScalerApplyMatchesFit tests that applying fitted statistics to an
// identical matrix reproduces the fit transform bit for bit.
func TestScalerApplyMatchesFit(t *testing.T) {
	original := [][]float64{
		{2.0, 10.0},
		{4.0, 20.0},
		{6.0, 60.0},
	}

	fitted := copyMatrix(original)
	applied := copyMatrix(original)

	var s Scaler
	if err := s.Fit(fitted); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	if err := s.Apply(applied); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	for i := range fitted {
		for j := range fitted[i] {
			if fitted[i][j] != applied[i][j] {
				t.Errorf("cell (%d,%d): fit %v != apply %v", i, j, fitted[i][j], applied[i][j])
			}
		}
	}
}

// TestScalerApplyUsesStoredStatistics tests the leakage-avoidance
// contract: Apply must use the fitted statistics, never the new
// matrix's own.
func TestScalerApplyUsesStoredStatistics(t *testing.T) {
	train := [][]float64{{2.0}, {4.0}, {6.0}}
	valid := [][]float64{{4.0}}

	var s Scaler
	if err := s.Fit(train); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	if err := s.Apply(valid); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	// (4 - 4) / 2 = 0 under the training statistics; scaling by the
	// validation matrix's own statistics would not be defined at all.
	if math.Abs(valid[0][0]) > 1e-9 {
		t.Errorf("valid[0][0] = %v, want 0", valid[0][0])
	}
}

// TestScalerDimensionError tests that a column-count mismatch fails with
// a DimensionError.
func TestScalerDimensionError(t *testing.T) {
	var s Scaler
	if err := s.Fit([][]float64{{1.0, 2.0}, {3.0, 4.0}}); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	err := s.Apply([][]float64{{1.0, 2.0, 3.0}})
	if err == nil {
		t.Fatal("Apply accepted a 3-column matrix on 2-column statistics")
	}

	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("error type = %T, want *DimensionError", err)
	}
	if dimErr.Want != 2 || dimErr.Got != 3 {
		t.Errorf("DimensionError = %+v, want Want=2 Got=3", dimErr)
	}
}

// TestScalerFitTooFewRows tests that matrices without enough rows for
// a sample standard deviation are rejected instead of producing NaN
// statistics.
func TestScalerFitTooFewRows(t *testing.T) {
	var s Scaler
	if err := s.Fit(nil); err == nil {
		t.Error("Fit accepted an empty matrix")
	}

	row := [][]float64{{1.0, 2.0}}
	if err := s.Fit(row); err == nil {
		t.Error("Fit accepted a single-row matrix")
	}
	want := []float64{1.0, 2.0}
	for j, v := range row[0] {
		if v != want[j] {
			t.Errorf("row[0][%d] = %v, want untouched input %v", j, v, want[j])
		}
	}
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
