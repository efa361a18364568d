package sigproc

import "math"

// SNR constants
const (
	// MaxSNR is the capped SNR in dB returned when the noise power is
	// exactly zero (identical signals), instead of +Inf.
	MaxSNR = 100.0

	// dbPowerMultiplier converts a power ratio to decibels: 10·log10.
	dbPowerMultiplier = 10.0
)

// Peak detection constants
const (
	// realSpectrumDivisor recovers the original transform length from a
	// half spectrum: N = (bins-1)·2 for a real-input transform.
	realSpectrumDivisor = 2
)

// Signal generation constants
const (
	twoPi = 2 * math.Pi
)
