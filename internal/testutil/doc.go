// Package testutil holds shared helpers for the vocoder test suites:
// tolerance assertions, deterministic test signals and FFT band energy.
package testutil
