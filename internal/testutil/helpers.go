// Package testutil provides reusable helpers for signal-processor tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	CoefficientTolerance = 1e-9
	SymmetryTolerance    = 1e-12
	SpectrumTolerance    = 1e-6
)

// halfDivisor is used for finding center indices in symmetric slices.
const halfDivisor = 2

// Sine synthesizes n samples of a unit-amplitude sine wave at the given
// frequency and sample rate. Used as a noise-free reference input.
func Sine(frequency, sampleRate float64, n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * frequency * float64(i) / sampleRate)
	}
	return signal
}

// Constant returns n samples all equal to value.
func Constant(value float64, n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = value
	}
	return signal
}

// AssertSymmetric verifies that a slice is index-symmetric
// (s[i] == s[n-1-i]) within tolerance.
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric: s[%d]=%f != s[%d]=%f", i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertUnityDCGain verifies that filter coefficients sum to 1 within
// tolerance (unity gain at DC).
func AssertUnityDCGain(t *testing.T, coeffs []float64, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return assert.InDelta(t, 1.0, sum, tolerance,
		"coefficient sum = %.15f, want 1.0", sum)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// PeakBin returns the index of the maximum-magnitude bin of a spectrum,
// first bin winning ties. Returns -1 for an empty spectrum.
func PeakBin(spectrum []complex128) int {
	if len(spectrum) == 0 {
		return -1
	}
	peak := 0
	peakMag := magnitude(spectrum[0])
	for i := 1; i < len(spectrum); i++ {
		if m := magnitude(spectrum[i]); m > peakMag {
			peak = i
			peakMag = m
		}
	}
	return peak
}

func magnitude(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
