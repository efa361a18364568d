package sigproc

import (
	"math"
)

// FindPeakFrequency locates the dominant frequency in a half spectrum
// produced by [ComputeFFT].
//
// The bin with the largest magnitude sqrt(re²+im²) is mapped to Hertz as
//
//	peakBin · sampleRate / ((len(spectrum)−1)·2)
//
// recovering the original transform length from the half-spectrum bin
// count. Among equal-magnitude bins the lowest frequency wins. An empty
// or single-bin spectrum returns 0.
func FindPeakFrequency(spectrum []complex128, sampleRate float64) float64 {
	if len(spectrum) == 0 {
		return 0
	}

	peakBin := 0
	peakMag := math.Hypot(real(spectrum[0]), imag(spectrum[0]))

	for i := 1; i < len(spectrum); i++ {
		mag := math.Hypot(real(spectrum[i]), imag(spectrum[i]))
		if mag > peakMag {
			peakBin = i
			peakMag = mag
		}
	}

	return BinFrequency(peakBin, len(spectrum), sampleRate)
}
