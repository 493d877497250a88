// Package pass designs Butterworth lowpass, highpass and bandpass filters as
// cascades of biquad sections.
//
// All designers take frequencies in Hz and return coefficients consumable by
// dsp/filter/biquad. Invalid parameters (non-positive order, a cutoff at or
// above Nyquist, inverted band edges) yield nil.
package pass
