package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates test signals and noise carriers at a fixed sample rate.
// Noise is reproducible when a seed is set; otherwise every call draws a
// fresh seed.
type Generator struct {
	sampleRate float64
	seed       int64
	seeded     bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets a deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// NewGenerator creates a generator for the given sample rate.
func NewGenerator(sampleRate float64, opts ...Option) *Generator {
	g := &Generator{sampleRate: sampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

func (g *Generator) rng() *rand.Rand {
	seed := g.seed
	if !g.seeded {
		seed = rand.Int63()
	}

	return rand.New(rand.NewSource(seed))
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.sampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates uniform white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := g.rng()

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// GaussianNoise generates white Gaussian noise with standard deviation
// sigma. A zero-length request returns an empty slice.
func (g *Generator) GaussianNoise(sigma float64, samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("noise samples must be >= 0: %d", samples)
	}

	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("noise sigma must be finite and >= 0: %f", sigma)
	}

	out := make([]float64, samples)
	rng := g.rng()

	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}

	return out, nil
}

// Silence returns samples zeros.
func (g *Generator) Silence(samples int) []float64 {
	return make([]float64, max(samples, 0))
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
