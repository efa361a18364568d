package sigproc

import (
	"math"

	"github.com/tphakala/go-signal-processor/internal/transform"
)

// ComputeFFT converts a real-valued time-domain signal to its
// frequency-domain spectrum.
//
// For an input of length N the result has ⌊N/2⌋+1 complex bins of the
// unnormalized forward transform (no division by N); bin i represents
// frequency i·sampleRate/N for whatever rate the signal was sampled at.
// Only the non-redundant half spectrum is returned, per the conjugate
// symmetry of real-input transforms.
//
// An empty input returns an empty spectrum without invoking the
// transform backend.
func ComputeFFT(input []float64) []complex128 {
	return ComputeFFTWith(GonumFFT, input)
}

// ComputeFFTWith is like [ComputeFFT] using the given transform backend.
// A nil provider selects the default.
func ComputeFFTWith(provider FourierProvider, input []float64) []complex128 {
	if len(input) == 0 {
		return []complex128{}
	}
	if provider == nil {
		provider = GonumFFT
	}
	return provider.RealCoefficients(input)
}

// SpectrumBinCount returns the number of bins [ComputeFFT] produces for
// an input of n samples: ⌊n/2⌋+1, or 0 for n <= 0.
func SpectrumBinCount(n int) int {
	return transform.BinCount(n)
}

// BinFrequency returns the frequency in Hz represented by bin of a half
// spectrum with the given bin count, for a signal sampled at sampleRate.
// A spectrum of fewer than two bins carries no frequency resolution and
// maps every bin to 0.
func BinFrequency(bin, binCount int, sampleRate float64) float64 {
	totalBins := (binCount - 1) * realSpectrumDivisor
	if totalBins <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(totalBins)
}

// Magnitudes returns the magnitude sqrt(re²+im²) of every spectrum bin.
func Magnitudes(spectrum []complex128) []float64 {
	mags := make([]float64, len(spectrum))
	for i, bin := range spectrum {
		mags[i] = math.Hypot(real(bin), imag(bin))
	}
	return mags
}
