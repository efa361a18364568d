package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-signal-processor/internal/testutil"
)

const (
	// Test window lengths
	testLength11 = 11
	testLength21 = 21
	testLength51 = 51

	// Known endpoint values
	hammingEndpoint  = 0.08 // 0.54 - 0.46
	hannEndpoint     = 0.0
	blackmanEndpoint = 0.0 // 0.42 - 0.5 + 0.08

	windowTolerance = 1e-12
)

// namedWindows enumerates all window functions for property tests.
var namedWindows = []struct {
	name string
	fn   Func
}{
	{"hamming", Hamming},
	{"hann", Hann},
	{"blackman", Blackman},
}

// TestWindows_Symmetry verifies that every window is index-symmetric.
func TestWindows_Symmetry(t *testing.T) {
	lengths := []int{testLength11, testLength21, testLength51}

	for _, w := range namedWindows {
		for _, length := range lengths {
			coeffs := Coefficients(w.fn, length)

			assert.Len(t, coeffs, length, "%s: coefficient count", w.name)
			testutil.AssertSymmetric(t, coeffs, windowTolerance)
		}
	}
}

// TestWindows_CenterIsUnity verifies that odd-length windows peak at 1.0
// at the center tap.
func TestWindows_CenterIsUnity(t *testing.T) {
	for _, w := range namedWindows {
		t.Run(w.name, func(t *testing.T) {
			center := testLength21 / 2
			assert.InDelta(t, 1.0, w.fn(center, testLength21), windowTolerance,
				"center tap should be 1.0")
		})
	}
}

// TestWindows_Endpoints verifies the known endpoint values of each window.
func TestWindows_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		want float64
	}{
		{"hamming", Hamming, hammingEndpoint},
		{"hann", Hann, hannEndpoint},
		{"blackman", Blackman, blackmanEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(0, testLength21), windowTolerance,
				"first tap")
			assert.InDelta(t, tt.want, tt.fn(testLength21-1, testLength21), windowTolerance,
				"last tap")
		})
	}
}

// TestWindows_SingleTap verifies the degenerate single-tap window.
func TestWindows_SingleTap(t *testing.T) {
	for _, w := range namedWindows {
		t.Run(w.name, func(t *testing.T) {
			assert.Equal(t, 1.0, w.fn(0, 1), "single tap should be 1.0")
		})
	}
}

// TestCoefficients_EdgeCases tests degenerate materialization lengths.
func TestCoefficients_EdgeCases(t *testing.T) {
	assert.Empty(t, Coefficients(Hamming, 0))
	assert.Empty(t, Coefficients(Hamming, -1))
	assert.Equal(t, []float64{1.0}, Coefficients(Hamming, 1))
}
