package plot

import (
	"bytes"
	"testing"

	"github.com/carbocation/abxcounts"
)

func TestViolin(t *testing.T) {
	table := loadFixture(t)

	for _, site := range []abxcounts.SampleType{abxcounts.Cecal, abxcounts.Ileal} {
		var buf bytes.Buffer
		if err := Violin(&buf, table, site, Options{}); err != nil {
			t.Errorf("%s: %v", site, err)
			continue
		}

		checkPNG(t, &buf, DefaultWidth, DefaultHeight)
	}
}

func TestViolinSparseGroups(t *testing.T) {
	for name, table := range map[string]*abxcounts.Table{
		"empty": {},
		"no ABX rows": {Rows: []abxcounts.Measurement{
			{MouseID: "P1", SampleType: abxcounts.Cecal, Treatment: abxcounts.Placebo, Counts: 7.5e9},
			{MouseID: "P2", SampleType: abxcounts.Cecal, Treatment: abxcounts.Placebo, Counts: 9.1e9},
		}},
		"single value": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Cecal, Treatment: abxcounts.ABX, Counts: 5e4},
			{MouseID: "P1", SampleType: abxcounts.Cecal, Treatment: abxcounts.Placebo, Counts: 7.5e9},
		}},
		"identical values": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Cecal, Treatment: abxcounts.ABX, Counts: 1e3},
			{MouseID: "A2", SampleType: abxcounts.Cecal, Treatment: abxcounts.ABX, Counts: 1e3},
		}},
		"zero counts": {Rows: []abxcounts.Measurement{
			{MouseID: "A1", SampleType: abxcounts.Cecal, Treatment: abxcounts.ABX, Counts: 0},
		}},
	} {
		var buf bytes.Buffer
		if err := Violin(&buf, table, abxcounts.Cecal, Options{}); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}

		checkPNG(t, &buf, DefaultWidth, DefaultHeight)
	}
}

func TestViolinTooSmall(t *testing.T) {
	var buf bytes.Buffer
	if err := Violin(&buf, loadFixture(t), abxcounts.Cecal, Options{Width: 60, Height: 40}); err == nil {
		t.Error("Expected an error for a figure with no room for panels")
	}
}

func TestTreatmentColor(t *testing.T) {
	if TreatmentColor(abxcounts.ABX) != ABXColor || TreatmentColor(abxcounts.Placebo) != PlaceboColor {
		t.Error("Treatment arms did not get their colors")
	}
	if c := TreatmentColor("vehicle"); c == ABXColor || c == PlaceboColor {
		t.Errorf("Unknown arm reused a treatment color: %v", c)
	}
}
