package bank

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
	"github.com/cwbudde/algo-vocoder/dsp/filter/design/pass"
)

// DefaultOrder is the Butterworth prototype order of each bandpass. Every
// band is realized as DefaultOrder biquad sections.
const DefaultOrder = 8

// Bank is a set of Butterworth bandpass filters, one per band.
type Bank struct {
	bands      []Band
	sections   [][]biquad.Coefficients
	sampleRate float64
	order      int
}

type bankConfig struct {
	order int
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithOrder sets the Butterworth prototype order per band. Non-positive
// values are ignored; defaults to 8.
func WithOrder(n int) Option {
	return func(cfg *bankConfig) {
		if n > 0 {
			cfg.order = n
		}
	}
}

// New designs one bandpass filter per band at sampleRate.
//
// It fails with ErrInvalidBands if bands is empty, if any band has a
// non-finite or non-positive edge or Low >= High, or if any High reaches
// sampleRate/2.
func New(bands []Band, sampleRate float64, opts ...Option) (*Bank, error) {
	if err := ValidateBands(bands, sampleRate); err != nil {
		return nil, err
	}

	cfg := bankConfig{order: DefaultOrder}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	b := &Bank{
		bands:      append([]Band(nil), bands...),
		sections:   make([][]biquad.Coefficients, len(bands)),
		sampleRate: sampleRate,
		order:      cfg.order,
	}

	for i, band := range bands {
		coeffs := pass.ButterworthBP(band.Low, band.High, cfg.order, sampleRate)
		if coeffs == nil {
			return nil, fmt.Errorf("%w: band %d [%g, %g] Hz cannot be realized at %g Hz",
				ErrInvalidBands, i, band.Low, band.High, sampleRate)
		}

		b.sections[i] = coeffs
	}

	return b, nil
}

// ValidateBands checks a band list against sampleRate without designing
// any filters.
func ValidateBands(bands []Band, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %g", ErrInvalidBands, sampleRate)
	}

	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidBands)
	}

	nyquist := sampleRate / 2

	for i, band := range bands {
		if math.IsNaN(band.Low) || math.IsNaN(band.High) || math.IsInf(band.Low, 0) || math.IsInf(band.High, 0) {
			return fmt.Errorf("%w: band %d has non-finite edges", ErrInvalidBands, i)
		}

		if band.Low <= 0 || band.High <= band.Low {
			return fmt.Errorf("%w: band %d [%g, %g] Hz is malformed", ErrInvalidBands, i, band.Low, band.High)
		}

		if band.High >= nyquist {
			return fmt.Errorf("%w: band %d upper edge %g Hz >= nyquist %g Hz",
				ErrInvalidBands, i, band.High, nyquist)
		}
	}

	return nil
}

// Bands returns a copy of the bands in construction order.
func (b *Bank) Bands() []Band { return append([]Band(nil), b.bands...) }

// Band returns band i.
func (b *Bank) Band(i int) Band { return b.bands[i] }

// NumBands returns the number of bands.
func (b *Bank) NumBands() int { return len(b.bands) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Order returns the Butterworth prototype order per band.
func (b *Bank) Order() int { return b.order }

// Coefficients returns a copy of the biquad sections of band i.
func (b *Bank) Coefficients(i int) []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), b.sections[i]...)
}

// MagnitudeDB returns the single-pass magnitude response of band i at freqHz.
// FilterBand and Apply filter twice, doubling the attenuation in dB.
func (b *Bank) MagnitudeDB(i int, freqHz float64) float64 {
	return biquad.NewChain(b.sections[i]).MagnitudeDB(freqHz, b.sampleRate)
}

// FilterBand returns x filtered through band i with zero phase.
// x is not modified.
func (b *Bank) FilterBand(i int, x []float64) []float64 {
	return biquad.FiltFilt(b.sections[i], x)
}

// Apply filters x through every band and returns result[band][sample].
func (b *Bank) Apply(x []float64) [][]float64 {
	result := make([][]float64, len(b.bands))
	for i := range b.bands {
		result[i] = b.FilterBand(i, x)
	}

	return result
}
