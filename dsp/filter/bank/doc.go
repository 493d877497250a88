// Package bank designs the band layouts used by the noise vocoder and builds
// Butterworth bandpass filter banks from them.
//
// Two layouts are provided:
//
//   - [ThirdOctaveBands] places 1/3-octave-wide bands on centers spaced one
//     octave apart, starting at the lower bound:
//
//     f_c = low * 2^k,  k = 0..floor(log2(high/low))
//     f_lo = f_c * 2^(-1/6),  f_hi = f_c * 2^(1/6)
//
//   - [ShannonBands] splits [low, high] into nc contiguous channels with
//     edges equally spaced on the log-frequency axis:
//
//     edge_i = low * (high/low)^(i/nc),  i = 0..nc
//
// [New] turns any band list into a [Bank] of Butterworth bandpass filters.
// A Bank stores coefficients only; [Bank.Apply] and [Bank.FilterBand] run a
// fresh zero-phase (forward-backward) pass per call, so one Bank can serve
// concurrent callers.
//
// Basic usage:
//
//	bands, err := bank.ShannonBands(8, 70, 5000, 16000)
//	if err != nil {
//	    return err
//	}
//	b, err := bank.New(bands, 16000)
//	if err != nil {
//	    return err
//	}
//	perBand := b.Apply(samples) // perBand[band][sample]
package bank
