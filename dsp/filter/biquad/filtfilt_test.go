package biquad

import (
	"math"
	"testing"
)

// lowpass2 is an RBJ 2nd-order Butterworth lowpass at 1 kHz / 48 kHz.
func lowpass2() Coefficients {
	w0 := 2 * math.Pi * 1000 / 48000
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / math.Sqrt2
	a0 := 1 + alpha

	return Coefficients{
		B0: (1 - cw) / 2 / a0,
		B1: (1 - cw) / a0,
		B2: (1 - cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

func TestPadLength(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []Coefficients
		want   int
	}{
		{"one biquad", []Coefficients{lowpass2()}, 9},
		{"four biquads", make([]Coefficients, 4), 3 * (9 - 4)},
		{"biquad plus first order", []Coefficients{lowpass2(), {B0: 0.5, B1: 0.5, A1: -0.1}}, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PadLength(tc.coeffs); got != tc.want {
				t.Fatalf("PadLength = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFiltFilt_LengthAndEmpty(t *testing.T) {
	coeffs := []Coefficients{lowpass2()}

	for _, n := range []int{0, 1, 2, 5, 9, 10, 100} {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(i%3) - 1
		}

		if got := FiltFilt(coeffs, x); len(got) != n {
			t.Fatalf("n=%d: len=%d", n, len(got))
		}
	}

	if got := FiltFilt(coeffs, nil); got == nil || len(got) != 0 {
		t.Fatalf("FiltFilt(nil) = %v, want empty non-nil", got)
	}
}

func TestFiltFilt_DoesNotMutateInput(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1, 0, -1, -2}
	orig := append([]float64(nil), x...)

	FiltFilt([]Coefficients{lowpass2()}, x)

	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input mutated at %d: %v -> %v", i, orig[i], x[i])
		}
	}
}

func TestFiltFilt_ConstantPassesUnchanged(t *testing.T) {
	// Steady-state initial conditions mean a DC input sees no transient.
	x := make([]float64, 200)
	for i := range x {
		x[i] = 0.75
	}

	y := FiltFilt([]Coefficients{lowpass2(), lowpass2()}, x)
	for i, v := range y {
		if math.Abs(v-0.75) > 1e-9 {
			t.Fatalf("index %d: got %v, want 0.75", i, v)
		}
	}
}

func TestFiltFilt_ZeroPhase(t *testing.T) {
	// A 100 Hz sine is deep in the passband of the 1 kHz lowpass. A causal
	// pass would delay it; the forward-backward pass must not.
	sr := 48000.0
	n := 4800

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 100 * float64(i) / sr)
	}

	y := FiltFilt([]Coefficients{lowpass2()}, x)

	for i := n / 4; i < 3*n/4; i++ {
		if math.Abs(y[i]-x[i]) > 1e-3 {
			t.Fatalf("index %d: y=%v x=%v", i, y[i], x[i])
		}
	}
}

func TestFiltFilt_SquaredMagnitude(t *testing.T) {
	// At the cutoff a single pass gives -3 dB, forward-backward gives -6 dB.
	sr := 48000.0
	n := 48000

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / sr)
	}

	y := FiltFilt([]Coefficients{lowpass2()}, x)

	var px, py float64
	for i := n / 4; i < 3*n/4; i++ {
		px += x[i] * x[i]
		py += y[i] * y[i]
	}

	gainDB := 10 * math.Log10(py/px)
	if math.Abs(gainDB+6.02) > 0.2 {
		t.Fatalf("gain at cutoff = %.2f dB, want ~-6.02 dB", gainDB)
	}
}

func TestFiltFilt_ReferenceOutput(t *testing.T) {
	// butter(2, 100, fs=1000) as second-order sections.
	coeffs := []Coefficients{{
		B0: 0.0674552738890719,
		B1: 0.1349105477781438,
		B2: 0.0674552738890719,
		A1: -1.142980502539901,
		A2: 0.4128015980961886,
	}}

	x := []float64{1, 3, -2, 5, 0, 4, 2, -1, 3, 6, 2, 0}

	// sosfiltfilt output with the default pad of 9 samples.
	want := []float64{
		0.99990740364125,
		1.23282519305564,
		1.49341859168774,
		1.76848348846131,
		2.01163208251563,
		2.18705395643233,
		2.30695054427384,
		2.39952104504884,
		2.38612542982755,
		2.03882467482387,
		1.20125313514758,
		0.00695452805487659,
	}

	if got := PadLength(coeffs); got != 9 {
		t.Fatalf("PadLength = %d, want 9", got)
	}

	got := FiltFilt(coeffs, x)
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("index %d: got %.15g, want %.15g", i, got[i], want[i])
		}
	}
}

func TestSteadyState_MatchesLinearSolve(t *testing.T) {
	c := Coefficients{
		B0: 0.0674552738890719,
		B1: 0.1349105477781438,
		B2: 0.0674552738890719,
		A1: -1.142980502539901,
		A2: 0.4128015980961886,
	}

	zi := SteadyState(c)
	if !almostEqual(zi[0], 0.9325447261109278, 1e-12) || !almostEqual(zi[1], -0.34534632420711653, 1e-12) {
		t.Fatalf("SteadyState = %v", zi)
	}
}

func TestFiltFilt_NoSections(t *testing.T) {
	x := []float64{1, -2, 3}

	y := FiltFilt(nil, x)
	for i := range x {
		if y[i] != x[i] {
			t.Fatalf("index %d: got %v, want %v", i, y[i], x[i])
		}
	}
}
