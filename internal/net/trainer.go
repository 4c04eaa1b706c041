package net

// Trainer default stopping conditions.
const (
	DefaultErrorGoal = 0.01
	DefaultMaxEpochs = 4000
)

// Trainer runs the epoch loop until the mean epoch error reaches
// ErrorGoal or MaxEpochs epochs have run, whichever comes first. There
// is no other stopping condition; if the cap hits, training is reported
// as-is at whatever error level was reached.
type Trainer struct {
	ErrorGoal float64
	MaxEpochs int
	Callbacks []Callback
}

// NewTrainer creates a trainer with the default stopping conditions.
func NewTrainer(callbacks ...Callback) *Trainer {
	return &Trainer{
		ErrorGoal: DefaultErrorGoal,
		MaxEpochs: DefaultMaxEpochs,
		Callbacks: callbacks,
	}
}

// Fit trains the network on the full training set. Returns the number
// of epochs run and the final mean epoch error.
func (t *Trainer) Fit(n *Network, x, y [][]float64) (int, float64) {
	for _, c := range t.Callbacks {
		c.OnTrainBegin(n)
	}

	epochs := 0
	errValue := 0.0
	for epoch := 1; epoch <= t.MaxEpochs; epoch++ {
		errValue = n.TrainEpoch(x, y)
		epochs = epoch

		for _, c := range t.Callbacks {
			c.OnEpochEnd(epoch, errValue, n)
		}

		if errValue <= t.ErrorGoal {
			break
		}
	}

	for _, c := range t.Callbacks {
		c.OnTrainEnd(n)
	}
	return epochs, errValue
}
