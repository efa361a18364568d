package sigproc

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

// CalculateSNR measures the signal-to-noise ratio in decibels between a
// clean reference signal and a degraded copy of it.
//
// The noise is taken as the per-sample difference noisy[i]−signal[i]:
//
//	SNR = 10·log10(Σ signal[i]² / Σ (noisy[i]−signal[i])²)
//
// As a rough guide, above 20 dB is excellent reception quality, 10–20 dB
// good, below 10 dB poor, and negative values mean noise power exceeds
// signal power.
//
// Identical sequences have zero noise power; the result is capped at
// [MaxSNR] instead of +Inf. The sequences must have equal length.
func CalculateSNR(signal, noisy []float64) (float64, error) {
	if len(signal) != len(noisy) {
		return 0, fmt.Errorf("%w: signal length %d != noisy length %d",
			ErrInvalidArgument, len(signal), len(noisy))
	}

	signalPower := f64.DotProduct(signal, signal)

	var noisePower float64
	for i := range signal {
		d := noisy[i] - signal[i]
		noisePower += d * d
	}

	if noisePower == 0 {
		return MaxSNR, nil
	}

	return dbPowerMultiplier * math.Log10(signalPower/noisePower), nil
}
