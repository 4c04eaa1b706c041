package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bankml/campaign/internal/encoding"
)

// Column indexes of the raw campaign schema. Fields are `;` delimited
// and may be double-quoted.
const (
	colAge       = 0
	colJob       = 1
	colMarital   = 2
	colEducation = 3
	colDefault   = 4
	colBalance   = 5
	colHousing   = 6
	colLoan      = 7
	colContact   = 8
	colDay       = 9
	colMonth     = 10
	colDuration  = 11 // not part of the feature vector
	colCampaign  = 12
	colPdays     = 13
	colPrevious  = 14
	colOutcome   = 15
	colTarget    = 16

	numColumns = 17
)

// FeatureLen is the fixed feature vector length: 6 numerics, 3 flags,
// then the six one-hot blocks in schema order.
var FeatureLen = 6 + 3 +
	len(encoding.Jobs) +
	len(encoding.Marital) +
	len(encoding.Education) +
	len(encoding.Contact) +
	len(encoding.Months) +
	len(encoding.Outcomes)

// ParseError reports a field that could not be parsed as its declared
// type.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse field %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRecord parses one raw record into its feature vector and binary
// label (1 when the target field is "yes"). The vector layout is
// append-only and position-significant: numerics, flags, then the
// one-hot blocks for job, marital, education, contact, month and
// previous outcome, in that exact order.
func ParseRecord(line string) ([]float64, float64, error) {
	fields := strings.Split(line, ";")
	if len(fields) != numColumns {
		return nil, 0, fmt.Errorf("record has %d fields, want %d", len(fields), numColumns)
	}
	for i, f := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}

	features := make([]float64, 0, FeatureLen)

	for _, col := range [...]struct {
		name  string
		index int
	}{
		{"age", colAge},
		{"balance", colBalance},
		{"day", colDay},
		{"campaign", colCampaign},
		{"pdays", colPdays},
		{"previous", colPrevious},
	} {
		v, err := strconv.ParseFloat(fields[col.index], 64)
		if err != nil {
			return nil, 0, &ParseError{Field: col.name, Value: fields[col.index], Err: err}
		}
		features = append(features, v)
	}

	features = append(features,
		flag(fields[colDefault]),
		flag(fields[colHousing]),
		flag(fields[colLoan]),
	)

	features = append(features, encoding.OneHot(fields[colJob], encoding.Jobs)...)
	features = append(features, encoding.OneHot(fields[colMarital], encoding.Marital)...)
	features = append(features, encoding.OneHot(fields[colEducation], encoding.Education)...)
	features = append(features, encoding.OneHot(fields[colContact], encoding.Contact)...)
	features = append(features, encoding.OneHot(strings.ToLower(fields[colMonth]), encoding.Months)...)
	features = append(features, encoding.OneHot(fields[colOutcome], encoding.Outcomes)...)

	return features, flag(fields[colTarget]), nil
}

// flag maps a yes/no field to 1/0. Anything that is not "yes" counts
// as no.
func flag(v string) float64 {
	if v == "yes" {
		return 1
	}
	return 0
}
