package plot

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDEPoints is the number of positions at which a violin's density is
// evaluated.
const KDEPoints = 100

// KDE is a one-dimensional Gaussian kernel density estimate.
type KDE struct {
	Samples   []float64
	Bandwidth float64
}

// NewKDE builds an estimate over samples using Scott's rule for the
// bandwidth (sample standard deviation times n^(-1/5)). The bandwidth is 0
// when there are fewer than two samples or they are all equal.
func NewKDE(samples []float64) *KDE {
	k := &KDE{Samples: samples}

	if len(samples) < 2 {
		return k
	}

	sd := stat.StdDev(samples, nil)
	if sd == 0 || math.IsNaN(sd) {
		return k
	}

	k.Bandwidth = sd * math.Pow(float64(len(samples)), -1.0/5.0)

	return k
}

// Degenerate reports whether the estimate has no spread to draw.
func (k *KDE) Degenerate() bool {
	return k.Bandwidth <= 0
}

// Density returns the estimated probability density at x.
func (k *KDE) Density(x float64) float64 {
	if k.Degenerate() {
		return 0
	}

	var sum float64
	for _, s := range k.Samples {
		sum += distuv.Normal{Mu: s, Sigma: k.Bandwidth}.Prob(x)
	}

	return sum / float64(len(k.Samples))
}

// Evaluate returns n evenly spaced positions from lo to hi together with the
// density at each.
func (k *KDE) Evaluate(lo, hi float64, n int) (xs, densities []float64) {
	if n < 2 {
		n = 2
	}

	xs = floats.Span(make([]float64, n), lo, hi)
	densities = make([]float64, n)
	for i, x := range xs {
		densities[i] = k.Density(x)
	}

	return xs, densities
}
