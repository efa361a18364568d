// Package firdesign provides windowed-sinc FIR filter design.
package firdesign

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-signal-processor/internal/window"
)

const (
	// Filter design limits
	minFilterTaps = 1
	maxFilterTaps = 8191

	// Normalization guard: a coefficient sum this close to zero means the
	// filter has no usable DC response and cannot be normalized.
	normalizationThreshold = 1e-12
)

// Params holds parameters for low-pass filter design.
type Params struct {
	// NumTaps is the filter length (number of coefficients).
	// Odd values give a well-defined center tap and exact symmetry.
	NumTaps int

	// CutoffFreq is the cutoff as a fraction of the Nyquist frequency,
	// exclusive range (0, 1).
	CutoffFreq float64

	// Window is the taper applied to the truncated sinc response.
	// nil selects the Hamming window.
	Window window.Func
}

// Validate checks if filter design parameters are valid.
func (p *Params) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("invalid tap count: %d (must be >= %d)", p.NumTaps, minFilterTaps)
	}

	if p.NumTaps > maxFilterTaps {
		return fmt.Errorf("filter too long: %d taps (maximum %d)", p.NumTaps, maxFilterTaps)
	}

	if p.CutoffFreq <= 0 || p.CutoffFreq >= 1 {
		return fmt.Errorf("invalid cutoff frequency: %f (must be in (0, 1))", p.CutoffFreq)
	}

	return nil
}

// LowPass designs a windowed-sinc low-pass FIR filter.
//
// The method:
//  1. Sample the ideal sinc response around the center tap
//  2. Taper with the configured window to suppress Gibbs ringing
//  3. Normalize so the coefficients sum to exactly unity DC gain
//
// The center tap is taken as 2·fc (the sinc limit at zero) and is not
// windowed; for odd tap counts the window is 1 there anyway.
//
// A single tap degenerates to the identity filter {1.0}.
//
// Returns the coefficients (length = p.NumTaps) or an error if the
// parameters are invalid.
func LowPass(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	win := p.Window
	if win == nil {
		win = window.Hamming
	}

	coeffs := make([]float64, p.NumTaps)
	center := p.NumTaps / 2

	for n := range p.NumTaps {
		offset := n - center
		if offset == 0 {
			// Sinc limit at the center tap
			coeffs[n] = 2 * p.CutoffFreq
			continue
		}

		sinc := math.Sin(2*math.Pi*p.CutoffFreq*float64(offset)) / (math.Pi * float64(offset))
		coeffs[n] = sinc * win(n, p.NumTaps)
	}

	// Normalize to unity gain at DC
	sum := f64.Sum(coeffs)
	if math.Abs(sum) < normalizationThreshold {
		return nil, fmt.Errorf("degenerate filter: coefficient sum %e too close to zero to normalize", sum)
	}
	f64.Scale(coeffs, coeffs, 1/sum)

	return coeffs, nil
}

// Response holds the sampled frequency response of a FIR filter.
type Response struct {
	// Frequencies at which the response was evaluated, as fractions of
	// Nyquist (0 to 1).
	Frequencies []float64

	// Magnitude response at each frequency (linear scale).
	Magnitude []float64

	// Phase response at each frequency (radians).
	Phase []float64
}

// defaultResponsePoints is the evaluation grid size used when the caller
// passes a non-positive point count.
const defaultResponsePoints = 512

// FrequencyResponse evaluates the DTFT of a FIR filter on a uniform grid
// from DC to Nyquist.
//
// H(e^jω) = Σ h[n]·e^(-jωn), evaluated at numPoints frequencies.
func FrequencyResponse(coeffs []float64, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	resp := Response{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	for k := range numPoints {
		// Fraction of Nyquist, so ω = π·freq
		freq := float64(k) / float64(numPoints)
		resp.Frequencies[k] = freq

		omega := math.Pi * freq
		var realPart, imagPart float64
		for n, h := range coeffs {
			angle := omega * float64(n)
			realPart += h * math.Cos(angle)
			imagPart -= h * math.Sin(angle)
		}

		resp.Magnitude[k] = math.Hypot(realPart, imagPart)
		resp.Phase[k] = math.Atan2(imagPart, realPart)
	}

	return resp
}

// MagnitudeDB converts a linear magnitude to decibels, clamping near-zero
// values to avoid log(0).
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10
		dbMultiplier = 20.0
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
