package bank

import (
	"fmt"
	"math"
)

// Default bounds for the two band layouts.
const (
	DefaultThirdOctaveLow  = 100.0
	DefaultThirdOctaveHigh = 5000.0

	DefaultShannonChannels = 24
	DefaultShannonLow      = 70.0
	DefaultShannonHigh     = 5000.0
)

// sixthOctave is 2^(1/6); a band reaching one sixth of an octave to each
// side of its center is one third of an octave wide.
var sixthOctave = math.Pow(2, 1.0/6)

// octaveEps absorbs rounding in log2(high/low) for exact octave ratios.
const octaveEps = 1e-9

// Band is one passband of a filter bank.
type Band struct {
	Low  float64 // lower -3 dB frequency in Hz
	High float64 // upper -3 dB frequency in Hz
}

// Center returns the geometric center frequency sqrt(Low*High) in Hz.
func (b Band) Center() float64 {
	return math.Sqrt(b.Low * b.High)
}

// Width returns the bandwidth High-Low in Hz.
func (b Band) Width() float64 {
	return b.High - b.Low
}

// Octaves returns the bandwidth in octaves, log2(High/Low).
func (b Band) Octaves() float64 {
	return math.Log2(b.High / b.Low)
}

// Contains reports whether freq lies within [Low, High].
func (b Band) Contains(freq float64) bool {
	return freq >= b.Low && freq <= b.High
}

// ThirdOctaveBounds returns the 1/3-octave band centered on center.
func ThirdOctaveBounds(center float64) Band {
	return Band{Low: center / sixthOctave, High: center * sixthOctave}
}

// OctaveSpacedFrequencies returns low, 2*low, 4*low, ... up to the largest
// octave multiple of low not above high. It returns nil for an invalid range.
func OctaveSpacedFrequencies(low, high float64) []float64 {
	if checkRange(low, high) != nil {
		return nil
	}

	n := int(math.Floor(math.Log2(high/low) + octaveEps))

	centers := make([]float64, n+1)
	for k := range centers {
		centers[k] = math.Ldexp(low, k)
	}

	return centers
}

// ThirdOctaveBands returns 1/3-octave bands on octave-spaced centers starting
// at low and not exceeding high, in ascending order. When high/low < 2 a
// single band centered on low is returned.
//
// The result is not checked against a sample rate; the top band's upper edge
// is high·2^(1/6) at most.
func ThirdOctaveBands(low, high float64) ([]Band, error) {
	if err := checkRange(low, high); err != nil {
		return nil, err
	}

	centers := OctaveSpacedFrequencies(low, high)

	bands := make([]Band, len(centers))
	for i, fc := range centers {
		bands[i] = ThirdOctaveBounds(fc)
	}

	return bands, nil
}

// DefaultThirdOctaveBands returns ThirdOctaveBands(100, 5000).
func DefaultThirdOctaveBands() []Band {
	bands, _ := ThirdOctaveBands(DefaultThirdOctaveLow, DefaultThirdOctaveHigh)
	return bands
}

// ShannonBands splits [low, high] into nc contiguous bands with edges equally
// spaced in log frequency. The first band starts exactly at low and the last
// ends exactly at high; neighbouring bands share their edge value.
//
// high must stay below sampleRate/2.
func ShannonBands(nc int, low, high, sampleRate float64) ([]Band, error) {
	if nc < 1 {
		return nil, fmt.Errorf("%w: channel count must be >= 1: %d", ErrInvalidRange, nc)
	}

	if err := checkRange(low, high); err != nil {
		return nil, err
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %g", ErrInvalidRange, sampleRate)
	}

	if nyquist := sampleRate / 2; high >= nyquist {
		return nil, fmt.Errorf("%w: high %g Hz >= %g Hz (sample rate %g Hz)",
			ErrNyquistViolation, high, nyquist, sampleRate)
	}

	ratio := high / low

	edges := make([]float64, nc+1)
	for i := range edges {
		edges[i] = low * math.Pow(ratio, float64(i)/float64(nc))
	}

	edges[0], edges[nc] = low, high

	bands := make([]Band, nc)
	for i := range bands {
		bands[i] = Band{Low: edges[i], High: edges[i+1]}
	}

	return bands, nil
}

// DefaultShannonBands returns ShannonBands(24, 70, 5000, sampleRate).
func DefaultShannonBands(sampleRate float64) ([]Band, error) {
	return ShannonBands(DefaultShannonChannels, DefaultShannonLow, DefaultShannonHigh, sampleRate)
}

func checkRange(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return fmt.Errorf("%w: bounds must be finite: low=%g high=%g", ErrInvalidRange, low, high)
	}

	if low <= 0 {
		return fmt.Errorf("%w: low must be > 0: %g", ErrInvalidRange, low)
	}

	if high <= low {
		return fmt.Errorf("%w: high %g must exceed low %g", ErrInvalidRange, high, low)
	}

	return nil
}
