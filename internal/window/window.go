// Package window provides window functions for FIR filter design.
package window

import (
	"math"
)

// Window coefficient constants.
const (
	// Hamming window: 0.54 - 0.46*cos(2πn/(N-1))
	hammingAlpha = 0.54
	hammingBeta  = 0.46

	// Hann window: 0.5*(1 - cos(2πn/(N-1)))
	hannAlpha = 0.5

	// Blackman window: 0.42 - 0.5*cos(2πn/(N-1)) + 0.08*cos(4πn/(N-1))
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08

	// Degenerate window length (single tap has no taper)
	singleTapValue = 1.0
)

// Func evaluates a symmetric window at tap n of a length-tap window.
// Implementations must satisfy w(n, length) == w(length-1-n, length).
type Func func(n, length int) float64

// Hamming evaluates the Hamming window at tap n.
//
// The Hamming window tapers the truncated sinc response to reduce
// spectral ringing (Gibbs phenomenon) while keeping a narrow main lobe.
// It is the default window for low-pass filter design in this library.
func Hamming(n, length int) float64 {
	if length <= 1 {
		return singleTapValue
	}
	return hammingAlpha - hammingBeta*math.Cos(2*math.Pi*float64(n)/float64(length-1))
}

// Hann evaluates the Hann (raised cosine) window at tap n.
// Compared to Hamming it reaches exactly zero at both ends, trading
// slightly higher first sidelobes for faster sidelobe rolloff.
func Hann(n, length int) float64 {
	if length <= 1 {
		return singleTapValue
	}
	return hannAlpha * (1 - math.Cos(2*math.Pi*float64(n)/float64(length-1)))
}

// Blackman evaluates the Blackman window at tap n.
// Provides stronger sidelobe attenuation than Hamming at the cost of a
// wider main lobe (slower filter transition for the same tap count).
func Blackman(n, length int) float64 {
	if length <= 1 {
		return singleTapValue
	}
	x := 2 * math.Pi * float64(n) / float64(length-1)
	return blackmanA0 - blackmanA1*math.Cos(x) + blackmanA2*math.Cos(2*x)
}

// Coefficients materializes a window function into a coefficient slice.
// A non-positive length returns an empty slice.
func Coefficients(fn Func, length int) []float64 {
	if length < 1 {
		return []float64{}
	}
	coeffs := make([]float64, length)
	for n := range coeffs {
		coeffs[n] = fn(n, length)
	}
	return coeffs
}
