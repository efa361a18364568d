package sigproc

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-signal-processor/internal/testutil"
)

const (
	// Standard generation parameters used across the test suite
	testFrequency  = 10.0
	testSampleRate = 1000.0
	testDuration   = 1.0
	testNoiseLevel = 0.5

	// round(testSampleRate * testDuration)
	testSignalLength = 1000

	generateTolerance = 1e-12

	// PCG seeds for reproducibility tests
	testSeed1 = 42
	testSeed2 = 1912
)

// TestGenerateTestSignal_Length verifies sample count rounding.
func TestGenerateTestSignal_Length(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		duration   float64
		wantLen    int
	}{
		{"one_second", testSampleRate, testDuration, testSignalLength},
		{"half_second", testSampleRate, 0.5, 500},
		{"rounds_up", testSampleRate, 0.0015, 2},
		{"rounds_down", testSampleRate, 0.0014, 1},
		{"zero_duration", testSampleRate, 0.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, err := GenerateTestSignal(testFrequency, tt.sampleRate, tt.duration, 0)
			require.NoError(t, err)
			assert.Len(t, signal, tt.wantLen)
		})
	}
}

// TestGenerateTestSignal_PureSine verifies that zero noise amplitude
// yields a deterministic sine wave.
func TestGenerateTestSignal_PureSine(t *testing.T) {
	signal, err := GenerateTestSignal(testFrequency, testSampleRate, testDuration, 0)
	require.NoError(t, err)

	want := testutil.Sine(testFrequency, testSampleRate, testSignalLength)
	assert.InDeltaSlice(t, want, signal, generateTolerance)

	// Deterministic: a second call is identical
	again, err := GenerateTestSignal(testFrequency, testSampleRate, testDuration, 0)
	require.NoError(t, err)
	assert.Equal(t, signal, again)
}

// TestGenerateTestSignal_NoiseStatistics verifies that the additive noise
// is roughly zero-mean with the requested spread.
func TestGenerateTestSignal_NoiseStatistics(t *testing.T) {
	signal, err := GenerateTestSignal(testFrequency, testSampleRate, testDuration, testNoiseLevel)
	require.NoError(t, err)
	require.Len(t, signal, testSignalLength)

	sine := testutil.Sine(testFrequency, testSampleRate, testSignalLength)

	var sum, sumSq float64
	for i, v := range signal {
		noise := v - sine[i]
		sum += noise
		sumSq += noise * noise
	}
	mean := sum / testSignalLength
	stddev := math.Sqrt(sumSq/testSignalLength - mean*mean)

	// Loose statistical bounds: ~4σ of the sample mean estimator
	assert.InDelta(t, 0.0, mean, 4*testNoiseLevel/math.Sqrt(testSignalLength),
		"noise mean")
	assert.InDelta(t, testNoiseLevel, stddev, 0.1, "noise standard deviation")
}

// TestGenerateTestSignalWithRand_Reproducible verifies fixed-seed output.
func TestGenerateTestSignalWithRand_Reproducible(t *testing.T) {
	rngA := rand.New(rand.NewPCG(testSeed1, testSeed2))
	rngB := rand.New(rand.NewPCG(testSeed1, testSeed2))

	signalA, err := GenerateTestSignalWithRand(rngA, testFrequency, testSampleRate, testDuration, testNoiseLevel)
	require.NoError(t, err)
	signalB, err := GenerateTestSignalWithRand(rngB, testFrequency, testSampleRate, testDuration, testNoiseLevel)
	require.NoError(t, err)

	assert.Equal(t, signalA, signalB, "same seed should reproduce the signal")
}

// TestGenerateTestSignal_Validation tests the fail-fast input policy.
func TestGenerateTestSignal_Validation(t *testing.T) {
	tests := []struct {
		name           string
		frequency      float64
		sampleRate     float64
		duration       float64
		noiseAmplitude float64
	}{
		{"zero_frequency", 0, testSampleRate, testDuration, 0},
		{"negative_frequency", -10, testSampleRate, testDuration, 0},
		{"zero_sample_rate", testFrequency, 0, testDuration, 0},
		{"negative_sample_rate", testFrequency, -1000, testDuration, 0},
		{"negative_duration", testFrequency, testSampleRate, -1, 0},
		{"negative_noise", testFrequency, testSampleRate, testDuration, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateTestSignal(tt.frequency, tt.sampleRate, tt.duration, tt.noiseAmplitude)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

// TestGenerateTestSignalWithRand_NilRNG verifies nil generator handling.
func TestGenerateTestSignalWithRand_NilRNG(t *testing.T) {
	// nil is fine when no noise is requested
	signal, err := GenerateTestSignalWithRand(nil, testFrequency, testSampleRate, testDuration, 0)
	require.NoError(t, err)
	assert.Len(t, signal, testSignalLength)

	// nil with noise is an error
	_, err = GenerateTestSignalWithRand(nil, testFrequency, testSampleRate, testDuration, testNoiseLevel)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
