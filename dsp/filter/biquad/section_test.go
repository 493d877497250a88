package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// smoothing is a lowpass-like section with real poles at 0.2 (double).
func smoothing() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.4, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}

	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}

	if s.d0 != 0 || s.d1 != 0 {
		t.Fatalf("initial state not zero: %v %v", s.d0, s.d1)
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced with B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04 and an impulse.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("n=%d: got %.10f, want %.10f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesProcessSample(t *testing.T) {
	input := []float64{1, -0.5, 0.25, 0.8, 0, 0, -1, 0.3, 0.7}

	ref := NewSection(smoothing())
	want := make([]float64, len(input))

	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	s := NewSection(smoothing())
	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: block=%v sample=%v", i, buf[i], want[i])
		}
	}

	if s.d0 != ref.d0 || s.d1 != ref.d1 {
		t.Fatalf("state mismatch: block=[%v %v] sample=[%v %v]", s.d0, s.d1, ref.d0, ref.d1)
	}
}

func TestSection_SetState(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	saved := [2]float64{s.d0, s.d1}
	next := s.ProcessSample(0.25)

	s.SetState(saved)

	if got := s.ProcessSample(0.25); !almostEqual(got, next, eps) {
		t.Fatalf("after SetState: got %v, want %v", got, next)
	}

	s.SetState([2]float64{})

	if got := s.ProcessSample(0); got != 0 {
		t.Fatalf("after clearing state: got %v, want 0", got)
	}
}

func TestDCGain(t *testing.T) {
	c := smoothing()
	// (0.25+0.5+0.25) / (1-0.4+0.04)
	want := 1 / 0.64
	if got := c.DCGain(); !almostEqual(got, want, eps) {
		t.Fatalf("DCGain = %v, want %v", got, want)
	}
}

func TestSteadyState_NoStepTransient(t *testing.T) {
	c := smoothing()
	s := NewSection(c)
	s.SetState(SteadyState(c))

	want := c.DCGain()
	for i := range 32 {
		if y := s.ProcessSample(1); !almostEqual(y, want, 1e-12) {
			t.Fatalf("n=%d: got %v, want steady %v", i, y, want)
		}
	}
}

func TestSteadyState_PoleAtDC(t *testing.T) {
	c := Coefficients{B0: 1, A1: -2, A2: 1}
	if zi := SteadyState(c); zi != [2]float64{} {
		t.Fatalf("SteadyState with DC pole = %v, want zero", zi)
	}
}

func TestStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"double real pole at 0.2", smoothing(), true},
		{"resonator r=0.99", Coefficients{B0: 1, A1: -2 * 0.99 * math.Cos(0.3), A2: 0.99 * 0.99}, true},
		{"pole outside", Coefficients{B0: 1, A1: -2.5, A2: 1.2}, false},
		{"pole on circle", Coefficients{B0: 1, A1: 0, A2: 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Stable(); got != tc.want {
				t.Fatalf("Stable() = %v, want %v", got, tc.want)
			}
		})
	}
}
