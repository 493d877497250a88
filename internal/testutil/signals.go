package testutil

import (
	"github.com/cwbudde/algo-vocoder/dsp/signal"
)

// DeterministicSine returns length samples of amplitude·sin(2π·freq·n/fs).
// It returns nil for a non-positive length or sample rate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out, err := signal.NewGenerator(sampleRate).Sine(freqHz, amplitude, length)
	if err != nil {
		return nil
	}

	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude]
// drawn from a fixed seed. It returns nil for a non-positive length.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out, err := signal.NewGenerator(1, signal.WithSeed(seed)).WhiteNoise(amplitude, length)
	if err != nil {
		return nil
	}

	return out
}

// ToneBurst returns a sine gated on between start and stop (sample
// indices) and silent elsewhere.
func ToneBurst(freqHz, sampleRate, amplitude float64, length, start, stop int) []float64 {
	out := DeterministicSine(freqHz, sampleRate, amplitude, length)

	for i := range out {
		if i < start || i >= stop {
			out[i] = 0
		}
	}

	return out
}
