// Package convolve applies FIR filters to signals by direct convolution.
package convolve

import (
	"github.com/tphakala/simd/f64"
)

// Boundary selects how samples past either end of the signal are read
// when the filter window overhangs the signal edges.
type Boundary int

const (
	// BoundaryZero treats out-of-range samples as zero. This attenuates
	// signal energy near both edges relative to the interior, a known
	// artifact of the policy rather than a defect.
	BoundaryZero Boundary = iota

	// BoundaryReflect mirrors the signal about its endpoints without
	// repeating the edge sample.
	BoundaryReflect

	// BoundaryHold extends the first and last samples outward.
	BoundaryHold
)

// Same convolves signal with kernel and returns an output of the same
// length as the signal.
//
// Output index n is the multiply-accumulate
//
//	out[n] = Σ kernel[j]·signal[n-center+j],  center = len(kernel)/2
//
// so a symmetric kernel introduces no delay. Out-of-range signal reads
// follow the boundary policy. An empty signal or empty kernel returns an
// empty output.
//
// Complexity is O(len(signal)·len(kernel)); the only allocation is the
// output slice. Interior samples, where the kernel window lies fully
// inside the signal, use a SIMD dot product.
func Same(signal, kernel []float64, boundary Boundary) []float64 {
	n := len(signal)
	k := len(kernel)
	out := make([]float64, n)
	if n == 0 || k == 0 {
		return out
	}

	center := k / 2

	for i := range out {
		start := i - center
		if start >= 0 && start+k <= n {
			out[i] = f64.DotProduct(kernel, signal[start:start+k])
			continue
		}

		// Edge path: window overhangs the signal
		var acc float64
		for j, c := range kernel {
			acc += c * sampleAt(signal, start+j, boundary)
		}
		out[i] = acc
	}

	return out
}

// sampleAt reads signal[idx], resolving out-of-range indices per the
// boundary policy. The signal must be non-empty.
func sampleAt(signal []float64, idx int, boundary Boundary) float64 {
	n := len(signal)
	if idx >= 0 && idx < n {
		return signal[idx]
	}

	switch boundary {
	case BoundaryReflect:
		if n == 1 {
			return signal[0]
		}
		// Fold until the index lands inside. Each fold shrinks |idx|,
		// so this terminates for any overhang length.
		for idx < 0 || idx >= n {
			if idx < 0 {
				idx = -idx
			}
			if idx >= n {
				idx = 2*(n-1) - idx
			}
		}
		return signal[idx]

	case BoundaryHold:
		if idx < 0 {
			return signal[0]
		}
		return signal[n-1]

	default: // BoundaryZero
		return 0
	}
}
