package savgol

import (
	"errors"

	"github.com/voltlab/algo-volt/internal/lsq"
)

// Errors returned by filter design and smoothing.
var (
	ErrEvenWindow    = errors.New("savgol: window length must be odd and positive")
	ErrOrderTooHigh  = errors.New("savgol: polynomial order must be less than window length")
	ErrInputTooShort = errors.New("savgol: input shorter than window length")
)

// Filter holds precomputed smoothing coefficients for a fixed window
// length and polynomial order.
type Filter struct {
	window int
	order  int
	coeffs []float64
}

// New designs a Savitzky-Golay smoothing filter. The window length must be
// odd and positive, and the polynomial order must be less than the window
// length.
func New(window, order int) (*Filter, error) {
	if window < 1 || window%2 == 0 {
		return nil, ErrEvenWindow
	}

	if order < 0 || order >= window {
		return nil, ErrOrderTooHigh
	}

	coeffs, err := designCoefficients(window, order)
	if err != nil {
		return nil, err
	}

	return &Filter{
		window: window,
		order:  order,
		coeffs: coeffs,
	}, nil
}

// designCoefficients computes the central convolution kernel.
//
// With sample positions x_i = i - window/2 and the Vandermonde matrix
// A[i][j] = x_i^j, the fitted value at the window center is
//
//	y^(0) = e0^T (A^T A)^-1 A^T y = (A g)^T y,  g = (A^T A)^-1 e0
//
// so the kernel is h[i] = sum_j g[j] * x_i^j.
func designCoefficients(window, order int) ([]float64, error) {
	m := order + 1
	half := window / 2

	// Power sums S_k = sum_i x_i^k for k = 0..2*order.
	sums := make([]float64, 2*m-1)
	for i := range window {
		x := float64(i - half)
		p := 1.0

		for k := range sums {
			sums[k] += p
			p *= x
		}
	}

	mat := make([][]float64, m)
	for j := range mat {
		mat[j] = make([]float64, m)
		for k := range m {
			mat[j][k] = sums[j+k]
		}
	}

	rhs := make([]float64, m)
	rhs[0] = 1

	g, err := lsq.Solve(mat, rhs)
	if err != nil {
		return nil, err
	}

	coeffs := make([]float64, window)
	for i := range coeffs {
		coeffs[i] = lsq.PolyVal(g, float64(i-half))
	}

	return coeffs, nil
}

// Window returns the filter window length.
func (f *Filter) Window() int {
	return f.window
}

// Order returns the polynomial order.
func (f *Filter) Order() int {
	return f.order
}

// Coefficients returns a copy of the central convolution kernel.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)

	return c
}

// Smooth returns a smoothed copy of src. The input is never modified.
// The output has the same length as the input: interior samples are
// smoothed by convolution with the designed kernel, and the first and
// last half-window samples by evaluating a least-squares polynomial
// fitted to the first and last full window.
func (f *Filter) Smooth(src []float64) ([]float64, error) {
	n := len(src)
	if n < f.window {
		return nil, ErrInputTooShort
	}

	half := f.window / 2
	out := make([]float64, n)

	for i := half; i < n-half; i++ {
		var acc float64
		for k, c := range f.coeffs {
			acc += c * src[i-half+k]
		}

		out[i] = acc
	}

	if half == 0 {
		return out, nil
	}

	xs := make([]float64, f.window)
	for i := range xs {
		xs[i] = float64(i)
	}

	left, err := lsq.PolyFit(xs, src[:f.window], f.order)
	if err != nil {
		return nil, err
	}

	for i := range half {
		out[i] = lsq.PolyVal(left, float64(i))
	}

	right, err := lsq.PolyFit(xs, src[n-f.window:], f.order)
	if err != nil {
		return nil, err
	}

	for i := range half {
		pos := n - half + i
		out[pos] = lsq.PolyVal(right, float64(pos-(n-f.window)))
	}

	return out, nil
}

// Smooth is a one-shot helper that designs a filter and smooths src with it.
func Smooth(src []float64, window, order int) ([]float64, error) {
	f, err := New(window, order)
	if err != nil {
		return nil, err
	}

	return f.Smooth(src)
}
