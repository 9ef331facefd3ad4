// Package plot renders the count sheet figures: a log-scale line chart of the
// fecal time course and log-scale violin plots for the terminal cecal and
// ileal samples. All figures are written as PNG.
package plot

import (
	"github.com/carbocation/abxcounts"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// DefaultWidth and DefaultHeight match a 6.4 x 4.8 inch figure at 100
	// dpi.
	DefaultWidth  = 640
	DefaultHeight = 480

	// DefaultLineWidth is the stroke width of each per-mouse trace.
	DefaultLineWidth = 0.5
)

var (
	ABXColor     = drawing.ColorRed
	PlaceboColor = drawing.ColorBlue
)

// TreatmentColor returns the color used for every mark of a treatment arm.
// Unknown arms are drawn in gray.
func TreatmentColor(tr abxcounts.Treatment) drawing.Color {
	switch tr {
	case abxcounts.ABX:
		return ABXColor
	case abxcounts.Placebo:
		return PlaceboColor
	}
	return drawing.Color{R: 128, G: 128, B: 128, A: 255}
}

// Options controls figure geometry. Zero values fall back to the defaults.
type Options struct {
	Width     int
	Height    int
	LineWidth float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	return o
}
