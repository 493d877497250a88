// Package biquad provides the second-order IIR runtime used by the vocoder's
// filter banks.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for higher-order Butterworth designs. [FiltFilt] runs a cascade
// forward and backward over a finite signal for a zero-phase response.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
