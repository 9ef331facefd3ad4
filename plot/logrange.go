package plot

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

var (
	_ chart.Range         = (*LogRange)(nil)
	_ chart.TicksProvider = (*LogRange)(nil)
)

// LogRange is a base-10 logarithmic axis range for go-chart. Min and Max
// must be positive; values at or below zero translate to the bottom of the
// axis.
type LogRange struct {
	Min    float64
	Max    float64
	Domain int
}

// NewLogRange returns a range spanning the whole decades that contain every
// positive value in values. With no positive values it spans [1, 10].
func NewLogRange(values ...float64) *LogRange {
	lo, hi := DecadeBounds(values...)
	return &LogRange{Min: lo, Max: hi}
}

// DecadeBounds returns the powers of ten just below the smallest and just
// above the largest positive value. The two bounds always differ.
func DecadeBounds(values ...float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if math.IsInf(lo, 1) {
		return 1, 10
	}

	lo = math.Pow(10, math.Floor(math.Log10(lo)))
	hi = math.Pow(10, math.Ceil(math.Log10(hi)))
	if hi <= lo {
		hi = lo * 10
	}

	return lo, hi
}

func (r LogRange) IsDescending() bool { return false }

func (r LogRange) IsZero() bool {
	return r.Min <= 0 || r.Max <= 0
}

func (r LogRange) GetMin() float64     { return r.Min }
func (r *LogRange) SetMin(min float64) { r.Min = min }
func (r LogRange) GetMax() float64     { return r.Max }
func (r *LogRange) SetMax(max float64) { r.Max = max }

// GetDelta is the span in decades.
func (r LogRange) GetDelta() float64 {
	return math.Log10(r.Max) - math.Log10(r.Min)
}

func (r LogRange) GetDomain() int        { return r.Domain }
func (r *LogRange) SetDomain(domain int) { r.Domain = domain }

func (r LogRange) String() string {
	return fmt.Sprintf("LogRange [%g,%g] => %d", r.Min, r.Max, r.Domain)
}

// Translate maps value to a pixel offset within the domain.
func (r LogRange) Translate(value float64) int {
	if value <= 0 {
		return 0
	}

	return int(math.Round(r.Fraction(value) * float64(r.Domain)))
}

// Fraction returns where value falls between Min (0) and Max (1) on a log
// scale. Values outside the range extrapolate past 0 or 1.
func (r LogRange) Fraction(value float64) float64 {
	delta := r.GetDelta()
	if delta == 0 || value <= 0 {
		return 0
	}

	return (math.Log10(value) - math.Log10(r.Min)) / delta
}

// GetTicks places one tick on every power of ten in the range.
func (r LogRange) GetTicks(render chart.Renderer, defaults chart.Style, vf chart.ValueFormatter) []chart.Tick {
	return DecadeTicks(r.Min, r.Max, vf)
}

// DecadeTicks returns a tick for every power of ten between min and max
// inclusive.
func DecadeTicks(min, max float64, vf chart.ValueFormatter) []chart.Tick {
	if vf == nil {
		vf = DecadeFormatter
	}

	var ticks []chart.Tick
	for exp := math.Ceil(math.Log10(min) - 1e-9); exp <= math.Floor(math.Log10(max)+1e-9); exp++ {
		tickVal := math.Pow(10, exp)
		ticks = append(ticks, chart.Tick{Value: tickVal, Label: vf(tickVal)})
	}

	return ticks
}

// DecadeFormatter labels powers of ten the way matplotlib's log axes do in
// plain text, e.g. 1e+08.
func DecadeFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0e", f)
	}
	return fmt.Sprintf("%v", v)
}
