package bank

import "errors"

var (
	// ErrInvalidRange reports bad frequency bounds or channel count passed to
	// a band designer.
	ErrInvalidRange = errors.New("bank: invalid frequency range")

	// ErrNyquistViolation reports a requested upper bound at or above half the
	// sample rate.
	ErrNyquistViolation = errors.New("bank: frequency at or above nyquist")

	// ErrInvalidBands reports an empty, malformed or out-of-range band list.
	ErrInvalidBands = errors.New("bank: invalid band list")
)
