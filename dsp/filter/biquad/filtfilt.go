package biquad

// PadLength returns the number of samples FiltFilt mirrors onto each end of
// the signal for a cascade of the given sections: three times the filter
// order plus one, less the trailing zero coefficients of first-order
// sections.
func PadLength(coeffs []Coefficients) int {
	zb, za := 0, 0
	for _, c := range coeffs {
		if c.B2 == 0 {
			zb++
		}

		if c.A2 == 0 {
			za++
		}
	}

	return 3 * (2*len(coeffs) + 1 - min(zb, za))
}

// FiltFilt applies the cascade forward and then backward over x and returns
// the zero-phase result in a new slice of len(x). The squared magnitude
// response of the cascade is applied.
//
// Edge transients are reduced by odd-extending x by PadLength samples on each
// side (fewer when x is shorter) and by starting each pass from the steady
// state scaled to the first sample seen by that pass.
func FiltFilt(coeffs []Coefficients, x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	if len(coeffs) == 0 {
		copy(out, x)
		return out
	}

	pad := min(PadLength(coeffs), n-1)
	ext := oddExtend(x, pad)

	chain := NewChain(coeffs)
	zi := chain.SteadyState()

	runFrom(chain, zi, ext)
	reverse(ext)
	runFrom(chain, zi, ext)
	reverse(ext)

	copy(out, ext[pad:pad+n])

	return out
}

// runFrom loads zi scaled by buf[0] into chain and filters buf in-place.
func runFrom(chain *Chain, zi [][2]float64, buf []float64) {
	x0 := buf[0]
	states := make([][2]float64, len(zi))

	for i, s := range zi {
		states[i] = [2]float64{s[0] * x0, s[1] * x0}
	}

	chain.SetState(states)
	chain.ProcessBlock(buf)
}

// oddExtend returns x with pad samples point-reflected about each endpoint.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)

	first, last := x[0], x[n-1]
	for i := range pad {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}

	copy(ext[pad:], x)

	return ext
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
