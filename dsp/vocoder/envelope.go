package vocoder

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
	"github.com/cwbudde/algo-vocoder/dsp/filter/design/pass"
)

// AmplitudeEnvelope returns the slow amplitude envelope of x: the full-wave
// rectified signal smoothed by a zero-phase Butterworth lowpass of the given
// order at cutoff Hz.
func AmplitudeEnvelope(x []float64, sampleRate, cutoff float64, order int) ([]float64, error) {
	rect := make([]float64, len(x))
	for i, v := range x {
		rect[i] = math.Abs(v)
	}

	return smooth(rect, sampleRate, cutoff, order)
}

// HilbertEnvelope returns the magnitude of the analytic signal of x.
// The transform runs at the next power of two with zero padding.
func HilbertEnvelope(x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}

	size := nextPowerOf2(max(n, 2))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("vocoder: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, size)
	for i, v := range x {
		buf[i] = complex(v, 0)
	}

	bins := make([]complex128, size)
	if err := plan.Forward(bins, buf); err != nil {
		return nil, fmt.Errorf("vocoder: forward FFT failed: %w", err)
	}

	// Keep DC and Nyquist, double positive bins, drop negative bins.
	half := size / 2
	for k := 1; k < half; k++ {
		bins[k] *= 2
	}

	for k := half + 1; k < size; k++ {
		bins[k] = 0
	}

	if err := plan.Inverse(buf, bins); err != nil {
		return nil, fmt.Errorf("vocoder: inverse FFT failed: %w", err)
	}

	re := make([]float64, n)
	im := make([]float64, n)

	for i := range n {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

func smooth(x []float64, sampleRate, cutoff float64, order int) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: envelope order must be >= 1: %d", ErrInvalidOption, order)
	}

	coeffs := pass.ButterworthLP(cutoff, order, sampleRate)
	if coeffs == nil {
		return nil, fmt.Errorf("%w: envelope cutoff %g Hz invalid at %g Hz",
			ErrInvalidOption, cutoff, sampleRate)
	}

	return biquad.FiltFilt(coeffs, x), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
