// Package campaign provides end-to-end tests for the pipeline facade.
package campaign

import (
	"strings"
	"testing"

	"github.com/bankml/campaign/internal/dataset"
)

// TestDefaultConfig tests the production policy constants.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OversampleFactor != 5 {
		t.Errorf("OversampleFactor = %d, want 5", cfg.OversampleFactor)
	}
	if cfg.Threshold != 0.30 {
		t.Errorf("Threshold = %v, want 0.30", cfg.Threshold)
	}
	if cfg.ErrorGoal != 0.01 {
		t.Errorf("ErrorGoal = %v, want 0.01", cfg.ErrorGoal)
	}
	if cfg.MaxEpochs != 4000 {
		t.Errorf("MaxEpochs = %d, want 4000", cfg.MaxEpochs)
	}
	if cfg.LogInterval != 50 {
		t.Errorf("LogInterval = %d, want 50", cfg.LogInterval)
	}
}

// TestNewNetworkShape tests the fixed architecture end to end: a full
// feature vector in, one probability out.
func TestNewNetworkShape(t *testing.T) {
	n := NewNetwork()

	input := make([]float64, FeatureLen())
	output := n.Forward(input)
	if len(output) != 1 {
		t.Fatalf("output length = %d, want 1", len(output))
	}
	if output[0] <= 0 || output[0] >= 1 {
		t.Errorf("output = %v, want in (0,1)", output[0])
	}
}

// TestFeatureLen tests the fixed vector length of the schema contract.
func TestFeatureLen(t *testing.T) {
	if FeatureLen() != 47 {
		t.Errorf("FeatureLen() = %d, want 47", FeatureLen())
	}
}

// TestPipelineEndToEnd runs the whole flow on a tiny in-memory dataset:
// load, balance, scale, train a few epochs, evaluate.
func TestPipelineEndToEnd(t *testing.T) {
	header := `age;job;marital;education;default;balance;housing;loan;contact;day;month;duration;campaign;pdays;previous;poutcome;y`
	rows := []string{
		header,
		`35;"technician";"single";"tertiary";"no";1000;"yes";"no";"cellular";15;"may";180;1;-1;0;"unknown";"no"`,
		`52;"blue-collar";"married";"primary";"no";-200;"yes";"yes";"unknown";7;"jul";60;3;-1;0;"unknown";"no"`,
		`29;"student";"single";"secondary";"no";4500;"no";"no";"cellular";21;"oct";300;1;90;2;"success";"yes"`,
		`44;"management";"married";"tertiary";"no";800;"no";"no";"telephone";2;"feb";120;2;-1;0;"failure";"no"`,
	}

	train, err := dataset.Read(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	cfg := DefaultConfig()
	train.Oversample(cfg.OversampleFactor)
	if train.PositiveCount() != cfg.OversampleFactor+1 {
		t.Fatalf("PositiveCount() = %d, want %d", train.PositiveCount(), cfg.OversampleFactor+1)
	}

	var scaler Scaler
	if err := scaler.Fit(train.Samples); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	n := NewNetwork()
	trainer := &Trainer{ErrorGoal: cfg.ErrorGoal, MaxEpochs: 50}
	epochs, _ := trainer.Fit(n, train.Samples, train.Labels)
	if epochs < 1 || epochs > 50 {
		t.Fatalf("epochs = %d, want within [1, 50]", epochs)
	}

	matrix := Evaluate(n, train, cfg.Threshold)
	if matrix.Total() != train.Len() {
		t.Errorf("matrix total = %d, want %d", matrix.Total(), train.Len())
	}
}
