// Package vocoder re-synthesizes a waveform as a sum of amplitude-modulated,
// band-limited noise carriers.
//
// The input is split by a bank of Butterworth bandpass filters. In every band
// the slow amplitude envelope of the input modulates the same band of a
// shared white Gaussian noise carrier, and the modulated bands are summed.
// The result keeps the temporal envelope cues of speech while discarding
// fine structure, the classic simulation of cochlear-implant hearing.
//
// All filtering is zero-phase (forward-backward), so envelopes stay aligned
// with the input.
package vocoder
