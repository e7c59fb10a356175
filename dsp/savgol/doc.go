// Package savgol provides Savitzky-Golay smoothing filters.
//
// A Savitzky-Golay filter fits a low-order polynomial to a sliding window
// of samples by linear least squares and replaces each sample with the
// polynomial value at the window center. Unlike a moving average it
// preserves the height and width of narrow peaks, which makes it the
// standard smoother for voltammograms and other spectroscopy-style data.
//
// For interior samples the least-squares fit reduces to a fixed
// convolution kernel that is designed once per (window, order) pair.
// The first and last half-window samples are handled by fitting a
// polynomial to the first and last full window and evaluating it at the
// edge positions, so the output always has the same length as the input.
//
// # Usage
//
//	f, _ := savgol.New(21, 2)
//	smoothed, err := f.Smooth(current)
//
// Or as a one-shot call:
//
//	smoothed, err := savgol.Smooth(current, 21, 2)
package savgol
