// Package transform provides real-to-complex Fourier transform backends.
//
// Every backend satisfies the same contract: for an input of N real
// samples it returns exactly ⌊N/2⌋+1 complex coefficients of the
// unnormalized forward transform (no division by N), computed in
// O(N log N) time using the conjugate symmetry of real-input transforms.
// Bin i of the result represents frequency i·sampleRate/N.
//
// Backends hold no state between calls; any plan or working buffer is
// acquired and released within a single call.
package transform

import (
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// fftHermitianDivisor maps an input length to its unique bin count:
// a real transform of size N has N/2 + 1 independent coefficients.
const fftHermitianDivisor = 2

// BinCount returns the number of spectrum bins a real transform of n
// samples produces: ⌊n/2⌋+1, or 0 for an empty input.
func BinCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n/fftHermitianDivisor + 1
}

// planMu serializes gonum FFT plan construction. Building a plan is not
// safe to run concurrently with another construction; executing a
// freshly built, unshared plan is.
var planMu sync.Mutex

// GonumFFT computes real FFTs with gonum's dsp/fourier package.
// This is the default backend.
//
// A plan is built per call and released with the call (the caller never
// observes it), so concurrent transforms never share plan scratch space.
type GonumFFT struct{}

// RealCoefficients returns the ⌊N/2⌋+1 unnormalized forward coefficients
// of seq. An empty input returns an empty spectrum without building a plan.
func (GonumFFT) RealCoefficients(seq []float64) []complex128 {
	if len(seq) == 0 {
		return []complex128{}
	}

	planMu.Lock()
	plan := fourier.NewFFT(len(seq))
	planMu.Unlock()

	return plan.Coefficients(make([]complex128, BinCount(len(seq))), seq)
}

// GoDSPFFT computes real FFTs with github.com/mjibson/go-dsp.
//
// go-dsp returns the full N-bin spectrum; this adapter keeps the
// ⌊N/2⌋+1 non-redundant bins. Its forward transform is unnormalized
// like gonum's, so no compensating scale is needed and both backends
// agree within floating-point tolerance.
type GoDSPFFT struct{}

// RealCoefficients returns the ⌊N/2⌋+1 unnormalized forward coefficients
// of seq.
func (GoDSPFFT) RealCoefficients(seq []float64) []complex128 {
	if len(seq) == 0 {
		return []complex128{}
	}

	full := fft.FFTReal(seq)
	return full[:BinCount(len(seq))]
}
