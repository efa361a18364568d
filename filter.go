package sigproc

import (
	"fmt"

	"github.com/tphakala/go-signal-processor/internal/convolve"
	"github.com/tphakala/go-signal-processor/internal/firdesign"
)

// FilterConfig holds low-pass filter parameters.
type FilterConfig struct {
	// CutoffFreq is the cutoff as a fraction of the Nyquist frequency,
	// exclusive range (0, 1). 0.1 keeps the lowest 10% of the spectrum.
	CutoffFreq float64

	// NumTaps is the filter length. Odd values (31, 51, 101 are typical)
	// give a well-defined center tap. More taps sharpen the cutoff at
	// higher computational cost. NumTaps of 1 is the identity filter.
	NumTaps int

	// Window tapers the truncated sinc response. nil selects Hamming.
	Window WindowFunc

	// Boundary selects edge handling in the convolution stage.
	// The zero value is BoundaryZero.
	Boundary BoundaryPolicy
}

// ApplyLowPassFilter removes frequency content above the cutoff using a
// windowed-sinc (Hamming) FIR filter.
//
// Filter coefficients are designed fresh for every call, normalized to
// unity DC gain, and applied by centered convolution, so the output has
// the same length as the input and no group delay. Samples past the
// signal edges read as zero; output energy within numTaps/2 samples of
// either edge is attenuated relative to the interior.
//
// Validation is fail-fast: numTaps must be positive and cutoffFreq must
// lie in (0, 1). An empty input returns an empty output.
func ApplyLowPassFilter(input []float64, cutoffFreq float64, numTaps int) ([]float64, error) {
	return ApplyLowPassFilterConfig(input, FilterConfig{
		CutoffFreq: cutoffFreq,
		NumTaps:    numTaps,
	})
}

// ApplyLowPassFilterConfig is like [ApplyLowPassFilter] with an explicit
// window and boundary policy.
func ApplyLowPassFilterConfig(input []float64, cfg FilterConfig) ([]float64, error) {
	coeffs, err := firdesign.LowPass(firdesign.Params{
		NumTaps:    cfg.NumTaps,
		CutoffFreq: cfg.CutoffFreq,
		Window:     cfg.Window,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return convolve.Same(input, coeffs, cfg.Boundary.boundary()), nil
}
