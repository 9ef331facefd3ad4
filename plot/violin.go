package plot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/carbocation/abxcounts"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/montanaflynn/stats"
)

const (
	gutterWidth  = 70
	rightMargin  = 10
	panelTop     = 36
	panelBottom  = 24
	tickLength   = 4
	violinWidth  = 0.5 // share of the panel a full-width violin spans
	violinAlpha  = 77  // 0.3 opacity, out of 255
	extremaWidth = 0.5 // length of the min/max bars relative to the violin
)

// Violin draws the counts of one sample type as two side-by-side violins,
// ABX on the left and placebo on the right, sharing a log-scale y axis. The
// PNG is written to w. A treatment arm without rows gets an empty panel.
func Violin(w io.Writer, t *abxcounts.Table, sampleType abxcounts.SampleType, opts Options) error {
	opts = opts.withDefaults()

	panelWidth := (opts.Width - gutterWidth - rightMargin) / len(abxcounts.Treatments)
	if panelWidth < 1 || opts.Height <= panelTop+panelBottom {
		return fmt.Errorf("a %dx%d figure is too small for a violin plot", opts.Width, opts.Height)
	}

	site := t.BySampleType(sampleType)
	yr := NewLogRange(site.PositiveCounts()...)

	canvas := imaging.New(opts.Width, opts.Height, color.White)
	canvas = imaging.Paste(canvas, drawLogAxis(yr, gutterWidth, opts.Height), image.Pt(0, 0))

	for i, tr := range abxcounts.Treatments {
		title := fmt.Sprintf("%s %s (log scale)", sampleType.Title(), tr.Label())

		panel, err := drawViolinPanel(site.ByTreatment(tr).PositiveCounts(), title, TreatmentColor(tr), yr, panelWidth, opts.Height)
		if err != nil {
			return fmt.Errorf("%s %s: %w", sampleType, tr, err)
		}

		canvas = imaging.Paste(canvas, panel, image.Pt(gutterWidth+i*panelWidth, 0))
	}

	return imaging.Encode(w, canvas, imaging.PNG)
}

// panelY converts a count to a pixel row within a panel of the given height.
func panelY(yr *LogRange, value float64, height int) float64 {
	top, bottom := float64(panelTop), float64(height-panelBottom)
	return bottom - yr.Fraction(value)*(bottom-top)
}

// drawLogAxis renders the shared tick labels that sit to the left of the
// first panel.
func drawLogAxis(yr *LogRange, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	for _, tick := range DecadeTicks(yr.Min, yr.Max, DecadeFormatter) {
		dc.DrawStringAnchored(tick.Label, float64(width-tickLength-2), panelY(yr, tick.Value, height), 1, 0.35)
	}

	return dc.Image()
}

func drawViolinPanel(counts []float64, title string, fill color.Color, yr *LogRange, width, height int) (image.Image, error) {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	top, bottom := float64(panelTop), float64(height-panelBottom)
	left, right := 1.0, float64(width-1)

	// Frame, decade ticks and title.
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(left, top, right-left, bottom-top)
	dc.Stroke()
	for _, tick := range DecadeTicks(yr.Min, yr.Max, DecadeFormatter) {
		y := panelY(yr, tick.Value, height)
		dc.DrawLine(left, y, left+tickLength, y)
		dc.Stroke()
	}
	dc.DrawStringAnchored(title, float64(width)/2, top/2, 0.5, 0.5)

	center := (left + right) / 2
	halfWidth := (right - left) * violinWidth / 2

	if len(counts) == 0 {
		dc.DrawStringAnchored("no data", center, (top+bottom)/2, 0.5, 0.5)
		return dc.Image(), nil
	}

	data := stats.Float64Data(counts)
	min, err := data.Min()
	if err != nil {
		return nil, err
	}
	max, err := data.Max()
	if err != nil {
		return nil, err
	}

	r, g, b, _ := fill.RGBA()
	bodyColor := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: violinAlpha}

	kde := NewKDE(counts)
	if kde.Degenerate() {
		// Nothing to smooth: a flat bar marks the single value.
		dc.SetColor(fill)
		dc.SetLineWidth(2)
		y := panelY(yr, min, height)
		dc.DrawLine(center-halfWidth, y, center+halfWidth, y)
		dc.Stroke()
		return dc.Image(), nil
	}

	// The density is estimated on the raw counts and then drawn on the log
	// axis, like a violin on linear data viewed through a log y scale.
	xs, densities := kde.Evaluate(min, max, KDEPoints)
	peak, err := stats.Float64Data(densities).Max()
	if err != nil {
		return nil, err
	}

	dc.NewSubPath()
	for i := range xs {
		dc.LineTo(center+halfWidth*densities[i]/peak, panelY(yr, xs[i], height))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		dc.LineTo(center-halfWidth*densities[i]/peak, panelY(yr, xs[i], height))
	}
	dc.ClosePath()
	dc.SetColor(bodyColor)
	dc.FillPreserve()
	dc.SetColor(fill)
	dc.SetLineWidth(1)
	dc.Stroke()

	// Extrema: a bar at the minimum and maximum joined by a vertical line.
	barHalf := halfWidth * extremaWidth
	for _, v := range []float64{min, max} {
		y := panelY(yr, v, height)
		dc.DrawLine(center-barHalf, y, center+barHalf, y)
		dc.Stroke()
	}
	dc.DrawLine(center, panelY(yr, min, height), center, panelY(yr, max, height))
	dc.Stroke()

	return dc.Image(), nil
}
