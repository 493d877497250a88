package vocoder

import (
	"fmt"
	"math"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-vocoder/dsp/filter/bank"
	"github.com/cwbudde/algo-vocoder/dsp/signal"
)

// Vocode re-synthesizes x as amplitude-modulated noise in the given bands.
//
// Every band of x is reduced to its amplitude envelope, which modulates the
// same band of one shared white Gaussian noise carrier; the bands are summed.
// The result has the same length as x. Silence yields silence.
//
// Bands must be non-empty, well formed and entirely below sampleRate/2;
// otherwise Vocode fails with bank.ErrInvalidBands. Invalid options fail
// with ErrInvalidOption.
func Vocode(x []float64, bands []bank.Band, sampleRate float64, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	fb, err := bank.New(bands, sampleRate, bank.WithOrder(cfg.order))
	if err != nil {
		return nil, err
	}

	var genOpts []signal.Option
	if cfg.seeded {
		genOpts = append(genOpts, signal.WithSeed(cfg.seed))
	}

	gen := signal.NewGenerator(sampleRate, genOpts...)

	if len(x) == 0 {
		return gen.Silence(0), nil
	}

	carrier, err := gen.GaussianNoise(1, len(x))
	if err != nil {
		return nil, fmt.Errorf("vocoder: carrier: %w", err)
	}

	contrib := make([][]float64, fb.NumBands())
	errs := make([]error, fb.NumBands())

	if cfg.parallel {
		var wg sync.WaitGroup

		for i := range contrib {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()

				contrib[i], errs[i] = vocodeBand(fb, i, x, carrier, &cfg)
			}(i)
		}

		wg.Wait()
	} else {
		for i := range contrib {
			contrib[i], errs[i] = vocodeBand(fb, i, x, carrier, &cfg)
		}
	}

	out := gen.Silence(len(x))

	for i, c := range contrib {
		if errs[i] != nil {
			return nil, errs[i]
		}

		floats.Add(out, c)
	}

	return matchLevel(out, x, cfg.normalize)
}

// vocodeBand returns the modulated carrier for band i.
func vocodeBand(fb *bank.Bank, i int, x, carrier []float64, cfg *config) ([]float64, error) {
	band := fb.Band(i)

	analysis := fb.FilterBand(i, x)
	noise := fb.FilterBand(i, carrier)

	cutoff := min(cfg.cutoff, band.Low/2)

	var (
		env []float64
		err error
	)

	switch cfg.envelope {
	case EnvelopeHilbert:
		var mag []float64

		mag, err = HilbertEnvelope(analysis)
		if err != nil {
			return nil, err
		}

		env, err = smooth(mag, fb.SampleRate(), cutoff, cfg.envOrder)
	default:
		env, err = AmplitudeEnvelope(analysis, fb.SampleRate(), cutoff, cfg.envOrder)
	}

	if err != nil {
		return nil, fmt.Errorf("vocoder: band %d envelope: %w", i, err)
	}

	out := make([]float64, len(x))
	vecmath.MulBlock(out, env, noise)

	return out, nil
}

// matchLevel rescales out to the level of ref. All-zero output is returned
// unchanged.
func matchLevel(out, ref []float64, mode Normalization) ([]float64, error) {
	switch mode {
	case NormalizeRMS:
		got := floats.Norm(out, 2)
		if got == 0 || math.IsNaN(got) || math.IsInf(got, 0) {
			return out, nil
		}

		floats.Scale(floats.Norm(ref, 2)/got, out)

		return out, nil
	case NormalizePeak:
		scaled, err := signal.Normalize(out, floats.Norm(ref, math.Inf(1)))
		if err != nil {
			return nil, fmt.Errorf("vocoder: normalize: %w", err)
		}

		return scaled, nil
	default:
		return out, nil
	}
}
