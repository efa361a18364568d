// Package sigproc provides core digital-signal-processing operations in pure Go.
//
// The library implements the signal chain used by software-defined-radio
// style applications: test-signal synthesis, windowed-sinc FIR low-pass
// filtering, real-input Fourier analysis, signal-to-noise measurement,
// and spectral peak detection.
//
// # Features
//
//   - Test signal generation: sine wave plus additive Gaussian noise
//   - FIR low-pass filtering using windowed-sinc design with unity DC gain
//   - Selectable window (Hamming default, Hann, Blackman) and boundary policy
//   - Real-to-complex FFT via gonum's dsp/fourier, with a pluggable backend
//   - SNR measurement in decibels between a reference and a degraded signal
//   - Dominant-frequency detection from a spectrum
//   - Optional SIMD acceleration via github.com/tphakala/simd
//
// # Quick Start
//
//	signal, err := sigproc.GenerateTestSignal(10.0, 1000.0, 1.0, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filtered, err := sigproc.ApplyLowPassFilter(signal, 0.1, 51)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spectrum := sigproc.ComputeFFT(filtered)
//	peak := sigproc.FindPeakFrequency(spectrum, 1000.0)
//	fmt.Printf("dominant frequency: %.1f Hz\n", peak)
//
// # Data Model
//
// Signals are plain []float64 sample sequences in time order; the sample
// rate travels alongside as a separate scalar. Spectra are []complex128
// frequency bins: for an input of length N, [ComputeFFT] returns ⌊N/2⌋+1
// bins of the unnormalized forward transform, where bin i represents
// frequency i·sampleRate/N. Every operation returns freshly allocated
// results and never mutates its inputs.
//
// # Filtering
//
// [ApplyLowPassFilter] designs a symmetric FIR filter from a cutoff
// (fraction of Nyquist, exclusive range (0, 1)) and a tap count, then
// applies it by centered convolution so the output has the same length
// as the input with no group delay. Samples past the signal edges read
// as zero, which attenuates output energy near both ends; callers that
// need different edge behavior can select a reflect or hold boundary
// through [FilterConfig] and [ApplyLowPassFilterConfig].
//
// # Thread Safety
//
// All operations are pure and stateless: concurrent calls on independent
// data need no synchronization. The Fourier backend serializes its plan
// construction internally, and [GenerateTestSignal] draws from a
// per-call entropy-seeded generator, so no calls share mutable state.
// For reproducible output, pass a seeded generator to
// [GenerateTestSignalWithRand].
package sigproc
