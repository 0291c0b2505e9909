package texture

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the intensities of a grid.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population standard deviation
}

// Analyze computes Stats over every cell of g. An empty grid yields the
// zero Stats.
func Analyze(g Grid) Stats {
	cells := make([]float64, 0, g.Width()*g.Height())
	for _, row := range g {
		cells = append(cells, row...)
	}
	if len(cells) == 0 {
		return Stats{}
	}

	mean, std := stat.PopMeanStdDev(cells, nil)
	return Stats{
		Min:    floats.Min(cells),
		Max:    floats.Max(cells),
		Mean:   mean,
		StdDev: std,
	}
}

// DominantFrequency returns the number of cycles of the strongest periodic
// component in samples, ignoring the DC term. Samples are Hann windowed
// before the FFT. Fewer than four samples return 0.
func DominantFrequency(samples []float64) int {
	if len(samples) < 4 {
		return 0
	}

	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	mean := stat.Mean(windowed, nil)
	floats.AddConst(-mean, windowed)
	window.Hann(windowed)

	fft := fourier.NewFFT(len(windowed))
	coeffs := fft.Coefficients(nil, windowed)

	best, bestMag := 0, 0.0
	for k := 1; k < len(coeffs); k++ {
		if mag := cmplx.Abs(coeffs[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	return best
}

// BandCount estimates how many bright bands cross the middle row of g.
func BandCount(g Grid) int {
	if g.Height() == 0 {
		return 0
	}
	return DominantFrequency(g[g.Height()/2])
}
