package sigproc

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// GenerateTestSignal synthesizes a sine wave with additive Gaussian noise,
// simulating the reception conditions a radio front end would observe.
//
// Sample i of the result is
//
//	sin(2π·frequency·i/sampleRate) + noise[i]
//
// where noise[i] is drawn from a zero-mean normal distribution with
// standard deviation noiseAmplitude. The output has
// round(sampleRate·duration) samples. noiseAmplitude of 0 yields a pure,
// deterministic sine wave.
//
// The noise source is seeded from entropy on every call, so repeated
// calls produce statistically independent noise. Use
// [GenerateTestSignalWithRand] with a seeded generator for reproducible
// output.
//
// Validation is fail-fast: frequency and sampleRate must be positive,
// duration and noiseAmplitude non-negative.
func GenerateTestSignal(frequency, sampleRate, duration, noiseAmplitude float64) ([]float64, error) {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return GenerateTestSignalWithRand(rng, frequency, sampleRate, duration, noiseAmplitude)
}

// GenerateTestSignalWithRand is like [GenerateTestSignal] but draws noise
// from the provided generator, allowing fixed-seed reproducible signals.
// rng may be nil only when noiseAmplitude is 0.
func GenerateTestSignalWithRand(rng *rand.Rand, frequency, sampleRate, duration, noiseAmplitude float64) ([]float64, error) {
	if frequency <= 0 {
		return nil, fmt.Errorf("%w: frequency %f Hz (must be positive)", ErrInvalidArgument, frequency)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %f Hz (must be positive)", ErrInvalidArgument, sampleRate)
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration %f s (must be non-negative)", ErrInvalidArgument, duration)
	}
	if noiseAmplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude %f (must be non-negative)", ErrInvalidArgument, noiseAmplitude)
	}
	if noiseAmplitude > 0 && rng == nil {
		return nil, fmt.Errorf("%w: nil random generator with non-zero noise amplitude", ErrInvalidArgument)
	}

	numSamples := int(math.Round(sampleRate * duration))
	signal := make([]float64, numSamples)

	omega := twoPi * frequency / sampleRate
	for i := range signal {
		sample := math.Sin(omega * float64(i))
		if noiseAmplitude > 0 {
			sample += rng.NormFloat64() * noiseAmplitude
		}
		signal[i] = sample
	}

	return signal, nil
}
