// Package encoding provides the fixed category tables of the campaign
// schema and one-hot encoding over them.
//
// Table order defines each value's position in its one-hot block and is
// part of the schema contract: weights trained against one order are
// meaningless under any other. The tables are loaded once and must
// never be mutated.
package encoding

// Jobs lists the known job categories, alphabetical.
var Jobs = []string{
	"admin.",
	"blue-collar",
	"entrepreneur",
	"housemaid",
	"management",
	"retired",
	"self-employed",
	"services",
	"student",
	"technician",
	"unemployed",
	"unknown",
}

// Marital lists the known marital statuses.
var Marital = []string{
	"divorced",
	"married",
	"single",
}

// Education lists the known education levels.
var Education = []string{
	"primary",
	"secondary",
	"tertiary",
	"unknown",
}

// Contact lists the known contact methods.
var Contact = []string{
	"cellular",
	"telephone",
	"unknown",
}

// Months lists month abbreviations in calendar order. Matching is done
// against lower-case values.
var Months = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// Outcomes lists the known previous-campaign outcomes.
var Outcomes = []string{
	"failure",
	"other",
	"success",
	"unknown",
}

// OneHot encodes value against an ordered category list: a single 1 at
// the value's index, zeros elsewhere. Unknown values yield an all-zero
// block rather than an error, so records with categories unseen at
// training time still encode at inference time.
func OneHot(value string, categories []string) []float64 {
	vec := make([]float64, len(categories))
	for i, c := range categories {
		if c == value {
			vec[i] = 1
			break
		}
	}
	return vec
}
