package biquad

import "math"

// Chain is an ordered cascade of biquad sections processed in series.
// Butterworth lowpass and bandpass designs of order > 2 are realized as a
// Chain, each section feeding the next.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// SetState loads one delay-line state per section.
// The slice length must match the number of sections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

// SteadyState returns the per-section states the cascade settles into for a
// unit step at its input. Each section sees the step scaled by the DC gain
// of every section before it.
func (c *Chain) SteadyState() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	scale := 1.0

	for i := range c.sections {
		zi := SteadyState(c.sections[i].Coefficients)
		states[i] = [2]float64{zi[0] * scale, zi[1] * scale}

		g := c.sections[i].DCGain()
		if math.IsInf(g, 0) || math.IsNaN(g) {
			g = 0
		}

		scale *= g
	}

	return states
}
