package plot

import (
	"bytes"
	"math"
	"testing"

	"github.com/carbocation/abxcounts"
)

func TestLineChart(t *testing.T) {
	var buf bytes.Buffer
	if err := LineChart(&buf, loadFixture(t), Options{}); err != nil {
		t.Fatal(err)
	}

	checkPNG(t, &buf, DefaultWidth, DefaultHeight)
}

func TestLineChartSize(t *testing.T) {
	var buf bytes.Buffer
	if err := LineChart(&buf, loadFixture(t), Options{Width: 800, Height: 300}); err != nil {
		t.Fatal(err)
	}

	checkPNG(t, &buf, 800, 300)
}

func TestLineChartSparse(t *testing.T) {
	for name, table := range map[string]*abxcounts.Table{
		"empty": {},
		"no fecal rows": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Cecal, Treatment: abxcounts.ABX, ExperimentalDay: 2, Counts: 100},
		}},
		"single day": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Fecal, Treatment: abxcounts.ABX, ExperimentalDay: 0, Counts: 1e8},
			{MouseID: "P1", SampleType: abxcounts.Fecal, Treatment: abxcounts.Placebo, ExperimentalDay: 0, Counts: 3e8},
		}},
		"zero counts": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Fecal, Treatment: abxcounts.ABX, ExperimentalDay: 0, Counts: 0},
			{MouseID: "A1", SampleType: abxcounts.Fecal, Treatment: abxcounts.ABX, ExperimentalDay: 1, Counts: 5e6},
		}},
		"missing counts": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Fecal, Treatment: abxcounts.ABX, ExperimentalDay: 0, Counts: math.NaN()},
			{MouseID: "A1", SampleType: abxcounts.Fecal, Treatment: abxcounts.ABX, ExperimentalDay: 1, Counts: 5e6},
			{MouseID: "P1", SampleType: abxcounts.Fecal, Treatment: abxcounts.Placebo, ExperimentalDay: 1, Counts: math.NaN()},
		}},
	} {
		var buf bytes.Buffer
		if err := LineChart(&buf, table, Options{}); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}

		checkPNG(t, &buf, DefaultWidth, DefaultHeight)
	}
}

func TestTimeCourseOrdersByDay(t *testing.T) {
	table := &abxcounts.Table{Rows: []abxcounts.Measurement{
		{ExperimentalDay: 2, Counts: 30},
		{ExperimentalDay: 0, Counts: 10},
		{ExperimentalDay: 1, Counts: 0},
		{ExperimentalDay: 1, Counts: 20},
		{ExperimentalDay: 3, Counts: math.NaN()},
	}}

	xs, ys := timeCourse(table)

	expectedX := []float64{0, 1, 2}
	expectedY := []float64{10, 20, 30}
	if len(xs) != len(expectedX) {
		t.Fatalf("Expected %d points, got %d", len(expectedX), len(xs))
	}
	for i := range xs {
		if xs[i] != expectedX[i] || ys[i] != expectedY[i] {
			t.Errorf("Point %d: expected (%g, %g), got (%g, %g)", i, expectedX[i], expectedY[i], xs[i], ys[i])
		}
	}
}

func TestDayRange(t *testing.T) {
	for _, v := range []struct {
		Days   []int
		Lo, Hi float64
	}{
		{nil, 0, 1},
		{[]int{3}, 2, 4},
		{[]int{4, 0, 7}, 0, 7},
	} {
		table := &abxcounts.Table{}
		for _, d := range v.Days {
			table.Rows = append(table.Rows, abxcounts.Measurement{ExperimentalDay: d})
		}

		r := dayRange(table)
		if r.Min != v.Lo || r.Max != v.Hi {
			t.Errorf("%v: expected [%g, %g], got [%g, %g]", v.Days, v.Lo, v.Hi, r.Min, r.Max)
		}
	}
}
