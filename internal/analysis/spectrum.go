package analysis

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/san-kum/spinners/internal/epicycle"
)

var ErrTooFewSamples = errors.New("analysis: need at least 4 samples")

// Peak is a local maximum of a magnitude spectrum.
type Peak struct {
	Bin       int
	Frequency float64 // angular, radians per unit of epicycle time
	Magnitude float64
}

// SampleTip samples the tip's x coordinate n times, dt apart in epicycle
// time. Sampling ignores the frame clock so the spacing is exact.
func SampleTip(ratio float64, n int, dt float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		_, tip := epicycle.Tip(float64(i)*dt, ratio)
		xs[i] = tip.X
	}
	return xs
}

// MagnitudeSpectrum returns the magnitude of the first half of the spectrum of
// data after a Hann window.
func MagnitudeSpectrum(data []float64) []float64 {
	windowed := make([]float64, len(data))
	copy(windowed, data)
	window.Apply(windowed, window.Hann)

	coeffs := fft.FFTReal(windowed)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Peaks returns up to k local maxima of ps, strongest first. dt is the
// sample spacing the spectrum was computed from.
func Peaks(ps []float64, dt float64, k int) []Peak {
	n := 2 * len(ps)
	var peaks []Peak
	for i := 1; i < len(ps)-1; i++ {
		if ps[i] > ps[i-1] && ps[i] >= ps[i+1] {
			peaks = append(peaks, Peak{
				Bin:       i,
				Frequency: BinFrequency(i, n, dt),
				Magnitude: ps[i],
			})
		}
	}
	sort.Slice(peaks, func(a, b int) bool { return peaks[a].Magnitude > peaks[b].Magnitude })
	if len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}

// BinFrequency converts an FFT bin of an n-sample transform to angular
// frequency.
func BinFrequency(bin, n int, dt float64) float64 {
	return 2 * math.Pi * float64(bin) / (float64(n) * dt)
}

// Ratio estimates the frequency ratio from a tip sample: of the two strongest
// peaks, the one farthest from the primary orbit's frequency of 1. Peaks
// weaker than a tenth of the strongest are leakage and ignored. The result is
// the absolute ratio, since a spectrum cannot tell the direction of rotation.
func Ratio(xs []float64, dt float64) (float64, error) {
	if len(xs) < 4 {
		return 0, ErrTooFewSamples
	}
	peaks := Peaks(MagnitudeSpectrum(xs), dt, 2)
	if len(peaks) == 0 {
		return 0, ErrTooFewSamples
	}
	best := peaks[0].Frequency
	for _, p := range peaks[1:] {
		if p.Magnitude < peaks[0].Magnitude/10 {
			continue
		}
		if math.Abs(p.Frequency-1) > math.Abs(best-1) {
			best = p.Frequency
		}
	}
	return best, nil
}
