// Package signal generates the deterministic test tones and the white noise
// carriers used by the vocoder.
package signal
