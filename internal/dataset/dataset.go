// Package dataset loads campaign records into feature matrices and
// prepares them for training: minority oversampling and z-score
// normalization with train-fitted statistics.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dataset holds a feature matrix and the matching label matrix. Rows
// are built once at load time; normalization later rescales them in
// place.
type Dataset struct {
	Samples [][]float64
	Labels  [][]float64
}

// Load reads a delimiter-separated dataset file.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	ds, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ds, nil
}

// Read parses records from r. The first line is a header and is
// discarded. Empty lines are skipped silently; lines that fail to parse
// are abandoned and reading continues, so one malformed record never
// loses the load.
func Read(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}
	scanner := bufio.NewScanner(r)

	header := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if header {
			header = false
			continue
		}
		if line == "" {
			continue
		}

		features, label, err := ParseRecord(line)
		if err != nil {
			continue
		}
		ds.Samples = append(ds.Samples, features)
		ds.Labels = append(ds.Labels, []float64{label})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Samples)
}

// PositiveCount returns the number of positive-labeled rows.
func (d *Dataset) PositiveCount() int {
	count := 0
	for _, l := range d.Labels {
		if l[0] == 1 {
			count++
		}
	}
	return count
}

// Oversample appends factor extra copies of every positive row to both
// the sample and label matrices, biasing the effective class prior
// toward the minority class. Copies are deep: normalization mutates
// rows in place afterwards, so an aliased row would be rescaled twice.
// Apply to the training set only.
func (d *Dataset) Oversample(factor int) {
	n := len(d.Samples)
	for i := 0; i < n; i++ {
		if d.Labels[i][0] != 1 {
			continue
		}
		for k := 0; k < factor; k++ {
			sample := make([]float64, len(d.Samples[i]))
			copy(sample, d.Samples[i])
			label := make([]float64, len(d.Labels[i]))
			copy(label, d.Labels[i])
			d.Samples = append(d.Samples, sample)
			d.Labels = append(d.Labels, label)
		}
	}
}
