package abxcounts

import "strings"

// Column names expected in the input file, after whitespace trimming.
const (
	ColMouseID         = "mouse_ID"
	ColSampleType      = "sample_type"
	ColTreatment       = "treatment"
	ColExperimentalDay = "experimental_day"
	ColCounts          = "counts_live_bacteria_per_wet_g"
)

// RequiredColumns lists the columns every input file must carry.
var RequiredColumns = []string{
	ColMouseID,
	ColSampleType,
	ColTreatment,
	ColExperimentalDay,
	ColCounts,
}

// SampleType is the anatomical site where a sample was collected.
type SampleType string

const (
	Fecal SampleType = "fecal"
	Cecal SampleType = "cecal"
	Ileal SampleType = "ileal"
)

// Title returns the sample type with its first letter capitalized, e.g.
// "Cecal".
func (s SampleType) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Treatment is the arm of the experiment a mouse belongs to.
type Treatment string

const (
	ABX     Treatment = "ABX"
	Placebo Treatment = "placebo"
)

// Label is the human readable name used in legends and titles.
func (t Treatment) Label() string {
	switch t {
	case ABX:
		return "ABX"
	case Placebo:
		return "Placebo"
	}
	return string(t)
}

// Treatments are the two arms, in plotting order.
var Treatments = []Treatment{ABX, Placebo}

// Measurement is one row of the input file: the live bacterial count of a
// single sample.
type Measurement struct {
	MouseID         string     `csv:"mouse_ID"`
	SampleType      SampleType `csv:"sample_type"`
	Treatment       Treatment  `csv:"treatment"`
	ExperimentalDay int        `csv:"experimental_day"`
	Counts          float64    `csv:"counts_live_bacteria_per_wet_g"` // NaN when the cell was empty
}
