package testutil

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// BandEnergy returns the spectral energy of x between low (inclusive) and
// high (exclusive) Hz, counting positive-frequency bins of a zero-padded
// power-of-two FFT.
func BandEnergy(x []float64, sampleRate, low, high float64) (float64, error) {
	if len(x) == 0 {
		return 0, nil
	}

	size := 2
	for size < len(x) {
		size <<= 1
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("testutil: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, size)
	if err := plan.Forward(bins, in); err != nil {
		return 0, fmt.Errorf("testutil: forward FFT failed: %w", err)
	}

	binHz := sampleRate / float64(size)

	var energy float64

	for k := 0; k <= size/2; k++ {
		f := float64(k) * binHz
		if f < low || f >= high {
			continue
		}

		re, im := real(bins[k]), imag(bins[k])
		energy += re*re + im*im
	}

	return energy, nil
}

// EnergyShare returns each band's fraction of the total energy across
// the contiguous edges, where band i spans [edges[i], edges[i+1]).
func EnergyShare(x []float64, sampleRate float64, edges []float64) ([]float64, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("testutil: need at least two edges, got %d", len(edges))
	}

	shares := make([]float64, len(edges)-1)

	var total float64

	for i := range shares {
		e, err := BandEnergy(x, sampleRate, edges[i], edges[i+1])
		if err != nil {
			return nil, err
		}

		shares[i] = e
		total += e
	}

	if total == 0 {
		return shares, nil
	}

	for i := range shares {
		shares[i] /= total
	}

	return shares, nil
}
