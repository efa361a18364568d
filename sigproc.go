package sigproc

import (
	"errors"

	"github.com/tphakala/go-signal-processor/internal/convolve"
	"github.com/tphakala/go-signal-processor/internal/transform"
	"github.com/tphakala/go-signal-processor/internal/window"
)

// Common errors returned by the library.
var (
	// ErrInvalidArgument indicates a parameter outside its valid domain,
	// such as a non-positive tap count or mismatched signal lengths.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FourierProvider computes the forward transform of a real sequence.
//
// For an input of N samples an implementation must return exactly
// ⌊N/2⌋+1 complex bins of the unnormalized forward transform
// (no division by N) in O(N log N) time. Any conforming transform
// backend can be substituted without affecting the rest of the library.
type FourierProvider interface {
	RealCoefficients(seq []float64) []complex128
}

// Fourier backends satisfying [FourierProvider].
var (
	// GonumFFT is the default backend, built on gonum.org/v1/gonum/dsp/fourier.
	GonumFFT FourierProvider = transform.GonumFFT{}

	// GoDSPFFT is an alternate backend built on github.com/mjibson/go-dsp,
	// truncated to the non-redundant half spectrum.
	GoDSPFFT FourierProvider = transform.GoDSPFFT{}
)

// WindowFunc evaluates a symmetric filter-design window at tap n of a
// length-tap window.
type WindowFunc = window.Func

// Window functions usable in [FilterConfig].
var (
	WindowHamming  WindowFunc = window.Hamming
	WindowHann     WindowFunc = window.Hann
	WindowBlackman WindowFunc = window.Blackman
)

// BoundaryPolicy selects how the convolution stage reads samples past
// the signal edges.
type BoundaryPolicy int

const (
	// BoundaryZero reads out-of-range samples as zero (default).
	// Output energy near both edges is attenuated relative to the interior.
	BoundaryZero BoundaryPolicy = iota

	// BoundaryReflect mirrors the signal about its endpoints.
	BoundaryReflect

	// BoundaryHold extends the first and last samples outward.
	BoundaryHold
)

// boundary maps the public policy to the convolution engine's.
func (b BoundaryPolicy) boundary() convolve.Boundary {
	switch b {
	case BoundaryReflect:
		return convolve.BoundaryReflect
	case BoundaryHold:
		return convolve.BoundaryHold
	default:
		return convolve.BoundaryZero
	}
}
