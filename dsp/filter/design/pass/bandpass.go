package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
)

// imagTol separates complex-conjugate digital poles from real ones.
const imagTol = 1e-12

// ButterworthBP designs a Butterworth bandpass cascade with -3 dB edges at
// low and high (Hz).
//
// order is the order of the lowpass prototype. The bandpass has 2*order
// poles and is returned as order biquad sections, each with zeros at DC and
// Nyquist and normalized to unit gain at the band center
// fs/π·atan(sqrt(tan(π·low/fs)·tan(π·high/fs))).
//
// The design runs the analog prototype through the lowpass-to-bandpass
// transform at prewarped edges, then maps the poles with the bilinear
// transform, so the edges land exactly at low and high. It returns nil when
// a section would not be stable in double precision.
func ButterworthBP(low, high float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !(low < high) {
		return nil
	}

	kl, ok := bilinearK(low, sampleRate)
	if !ok {
		return nil
	}

	kh, ok := bilinearK(high, sampleRate)
	if !ok {
		return nil
	}

	// Analog edges for the bilinear map s = 2(z-1)/(z+1).
	wl, wh := 2*kl, 2*kh
	bw := wh - wl
	w0sq := wl * wh

	poles := make([]complex128, 0, 2*order)

	for k := range order {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		pb := cmplx.Rect(1, theta) * complex(bw/2, 0)
		d := cmplx.Sqrt(pb*pb - complex(w0sq, 0))

		for _, s := range [2]complex128{pb + d, pb - d} {
			poles = append(poles, (2+s)/(2-s))
		}
	}

	sections := make([]biquad.Coefficients, 0, order)
	reals := make([]float64, 0, 2)

	for _, z := range poles {
		switch {
		case imag(z) > imagTol:
			sections = append(sections, biquad.Coefficients{
				B0: 1, B2: -1,
				A1: -2 * real(z),
				A2: real(z)*real(z) + imag(z)*imag(z),
			})
		case imag(z) < -imagTol:
			// conjugate of a pole already taken
		default:
			reals = append(reals, real(z))
		}
	}

	if len(reals)%2 != 0 {
		return nil
	}

	sort.Float64s(reals)

	for i := 0; i < len(reals); i += 2 {
		r1, r2 := reals[i], reals[i+1]
		sections = append(sections, biquad.Coefficients{
			B0: 1, B2: -1,
			A1: -(r1 + r2),
			A2: r1 * r2,
		})
	}

	if len(sections) != order {
		return nil
	}

	for i := range sections {
		if !sections[i].Stable() {
			return nil
		}
	}

	// Least resonant section first.
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].A2 < sections[j].A2
	})

	center := BandpassCenter(low, high, sampleRate)
	for i := range sections {
		g := 1 / math.Sqrt(sections[i].MagnitudeSquared(center, sampleRate))
		sections[i].B0 *= g
		sections[i].B2 *= g
	}

	return sections
}

// BandpassCenter returns the digital frequency (Hz) at which a bilinear
// Butterworth bandpass with edges low and high has unit gain. It is the
// geometric mean of the edges in the prewarped domain. Returns 0 for
// invalid parameters.
func BandpassCenter(low, high, sampleRate float64) float64 {
	kl, okl := bilinearK(low, sampleRate)
	kh, okh := bilinearK(high, sampleRate)

	if !okl || !okh {
		return 0
	}

	return sampleRate / math.Pi * math.Atan(math.Sqrt(kl*kh))
}
