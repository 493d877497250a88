package vocoder

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/filter/bank"
)

// EnvelopeMethod selects how per-band amplitude envelopes are extracted.
type EnvelopeMethod int

const (
	// EnvelopeRectified full-wave rectifies the band signal before lowpass
	// smoothing.
	EnvelopeRectified EnvelopeMethod = iota

	// EnvelopeHilbert takes the analytic-signal magnitude before lowpass
	// smoothing.
	EnvelopeHilbert
)

// Normalization selects output level matching.
type Normalization int

const (
	// NormalizeNone leaves the summed output as is.
	NormalizeNone Normalization = iota

	// NormalizeRMS scales the output to the RMS level of the input.
	NormalizeRMS

	// NormalizePeak scales the output to the peak level of the input.
	NormalizePeak
)

const (
	// DefaultEnvelopeCutoff is the envelope smoothing cutoff in Hz.
	DefaultEnvelopeCutoff = 30.0

	// DefaultEnvelopeOrder is the Butterworth order of the envelope lowpass.
	DefaultEnvelopeOrder = 2

	maxEnvelopeOrder = 16
)

type config struct {
	seed      int64
	seeded    bool
	order     int
	cutoff    float64
	envOrder  int
	envelope  EnvelopeMethod
	normalize Normalization
	parallel  bool
}

func defaultConfig() config {
	return config{
		order:     bank.DefaultOrder,
		cutoff:    DefaultEnvelopeCutoff,
		envOrder:  DefaultEnvelopeOrder,
		envelope:  EnvelopeRectified,
		normalize: NormalizeNone,
	}
}

// Option configures a Vocode call.
type Option func(*config) error

// WithSeed makes the noise carrier deterministic.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		cfg.seeded = true

		return nil
	}
}

// WithOrder sets the Butterworth prototype order of the analysis bandpass
// filters. Defaults to 8.
func WithOrder(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("%w: filter order must be >= 1: %d", ErrInvalidOption, n)
		}

		cfg.order = n

		return nil
	}
}

// WithEnvelopeCutoff sets the envelope smoothing cutoff in Hz. Each band
// uses the lower of this value and half its lower edge.
func WithEnvelopeCutoff(hz float64) Option {
	return func(cfg *config) error {
		if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("%w: envelope cutoff must be > 0: %g", ErrInvalidOption, hz)
		}

		cfg.cutoff = hz

		return nil
	}
}

// WithEnvelopeOrder sets the Butterworth order of the envelope lowpass.
func WithEnvelopeOrder(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxEnvelopeOrder {
			return fmt.Errorf("%w: envelope order must be in [1, %d]: %d",
				ErrInvalidOption, maxEnvelopeOrder, n)
		}

		cfg.envOrder = n

		return nil
	}
}

// WithEnvelope selects the envelope extraction method.
func WithEnvelope(method EnvelopeMethod) Option {
	return func(cfg *config) error {
		if method != EnvelopeRectified && method != EnvelopeHilbert {
			return fmt.Errorf("%w: envelope method: %d", ErrInvalidOption, method)
		}

		cfg.envelope = method

		return nil
	}
}

// WithNormalize selects output level matching. Off by default.
func WithNormalize(mode Normalization) Option {
	return func(cfg *config) error {
		if mode < NormalizeNone || mode > NormalizePeak {
			return fmt.Errorf("%w: normalization mode: %d", ErrInvalidOption, mode)
		}

		cfg.normalize = mode

		return nil
	}
}

// WithParallel processes bands concurrently. Output is identical to the
// sequential path.
func WithParallel(enabled bool) Option {
	return func(cfg *config) error {
		cfg.parallel = enabled
		return nil
	}
}
