package plot

import (
	"io"
	"math"
	"sort"

	"github.com/carbocation/abxcounts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LineChart draws the fecal time course: for every mouse, one thin trace per
// treatment arm of count versus experimental day on a log-scale y axis. The
// PNG is written to w.
func LineChart(w io.Writer, t *abxcounts.Table, opts Options) error {
	opts = opts.withDefaults()

	fecal := t.BySampleType(abxcounts.Fecal)

	series := make([]chart.Series, 0)
	for _, mouseID := range fecal.MouseIDs() {
		mouse := fecal.ByMouse(mouseID)
		for _, tr := range abxcounts.Treatments {
			xs, ys := timeCourse(mouse.ByTreatment(tr))
			if len(xs) == 0 {
				continue
			}

			series = append(series, chart.ContinuousSeries{
				Name:            mouseID + " " + tr.Label(),
				Style:           traceStyle(TreatmentColor(tr), opts.LineWidth),
				XValues:         xs,
				YValues:         ys,
				YValueFormatter: DecadeFormatter,
			})
		}
	}

	xRange := dayRange(fecal)
	yRange := NewLogRange(fecal.PositiveCounts()...)

	// go-chart refuses to render without a visible series. With no fecal
	// rows at all we still want empty axes, so draw one invisible point.
	if len(series) == 0 {
		series = append(series, chart.ContinuousSeries{
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: opts.LineWidth},
			XValues: []float64{xRange.Min},
			YValues: []float64{yRange.Min},
		})
	}

	graph := chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:           "Day",
			Range:          xRange,
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "# Bacteria (log scale)",
			Range:          yRange,
			ValueFormatter: DecadeFormatter,
		},
		Series: series,
	}

	// Per-mouse traces share two colors, so the legend lists the treatments
	// rather than every series on the chart.
	legendKeys := &chart.Chart{Series: legendSeries(opts.LineWidth)}
	graph.Elements = []chart.Renderable{chart.Legend(legendKeys)}

	return graph.Render(chart.PNG, w)
}

// timeCourse returns the days and positive counts of t ordered by day. Rows
// sharing a day keep their file order.
func timeCourse(t *abxcounts.Table) (xs, ys []float64) {
	rows := make([]abxcounts.Measurement, 0, t.Len())
	for _, row := range t.Rows {
		if row.Counts > 0 {
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ExperimentalDay < rows[j].ExperimentalDay })

	xs = make([]float64, 0, len(rows))
	ys = make([]float64, 0, len(rows))
	for _, row := range rows {
		xs = append(xs, float64(row.ExperimentalDay))
		ys = append(ys, row.Counts)
	}

	return xs, ys
}

// dayRange spans the observed days, widened by one day on each side when
// there is only a single day (or none) so the range never collapses.
func dayRange(t *abxcounts.Table) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range t.Rows {
		lo = math.Min(lo, float64(row.ExperimentalDay))
		hi = math.Max(hi, float64(row.ExperimentalDay))
	}

	if math.IsInf(lo, 1) {
		lo, hi = 0, 1
	} else if lo == hi {
		lo, hi = lo-1, hi+1
	}

	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func traceStyle(c drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: width,
	}
}

func legendSeries(lineWidth float64) []chart.Series {
	out := make([]chart.Series, 0, len(abxcounts.Treatments))
	for _, tr := range abxcounts.Treatments {
		out = append(out, chart.ContinuousSeries{
			Name:  tr.Label(),
			Style: traceStyle(TreatmentColor(tr), lineWidth),
		})
	}
	return out
}
