package abxcounts

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
)

// GroupSummary describes the counts of one sample type within one treatment
// arm. Fields other than N are only meaningful when N > 0.
type GroupSummary struct {
	SampleType    SampleType
	Treatment     Treatment
	N             int
	Min           float64
	Median        float64
	Max           float64
	GeometricMean float64
}

// Summarize computes one GroupSummary per (sample type, treatment) pair, in
// the order given. Only positive counts are considered, matching what ends up
// on the log-scale plots.
func Summarize(t *Table, sampleTypes ...SampleType) ([]GroupSummary, error) {
	out := make([]GroupSummary, 0, len(sampleTypes)*len(Treatments))

	for _, st := range sampleTypes {
		site := t.BySampleType(st)
		for _, tr := range Treatments {
			summary := GroupSummary{SampleType: st, Treatment: tr}

			data := stats.Float64Data(site.ByTreatment(tr).PositiveCounts())
			summary.N = data.Len()
			if summary.N > 0 {
				var err error
				if summary.Min, err = data.Min(); err != nil {
					return nil, err
				}
				if summary.Median, err = data.Median(); err != nil {
					return nil, err
				}
				if summary.Max, err = data.Max(); err != nil {
					return nil, err
				}
				if summary.GeometricMean, err = geometricMean(data); err != nil {
					return nil, err
				}
			}

			out = append(out, summary)
		}
	}

	return out, nil
}

// geometricMean works in log space: counts run to 1e10 and the product of a
// few dozen of them overflows float64.
func geometricMean(data stats.Float64Data) (float64, error) {
	logs := make(stats.Float64Data, 0, data.Len())
	for _, v := range data {
		logs = append(logs, math.Log(v))
	}

	mean, err := logs.Mean()
	if err != nil {
		return 0, err
	}

	return math.Exp(mean), nil
}

// WriteSummary prints summaries as a tab-delimited table with a header.
func WriteSummary(w io.Writer, summaries []GroupSummary) error {
	if _, err := fmt.Fprintln(w, strings.Join([]string{
		"sample_type",
		"treatment",
		"N",
		"Min",
		"Median",
		"Max",
		"GeometricMean",
	}, "\t")); err != nil {
		return err
	}

	for _, s := range summaries {
		output := []string{string(s.SampleType), string(s.Treatment), fmt.Sprintf("%d", s.N)}

		if s.N < 1 {
			output = append(output, "N/A", "N/A", "N/A", "N/A")
		} else {
			for _, v := range []float64{s.Min, s.Median, s.Max, s.GeometricMean} {
				output = append(output, fmt.Sprintf("%.4g", v))
			}
		}

		if _, err := fmt.Fprintln(w, strings.Join(output, "\t")); err != nil {
			return err
		}
	}

	return nil
}
