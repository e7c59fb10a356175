// Package lsq provides small dense least-squares helpers shared by the
// filter design code.
package lsq

import (
	"errors"
	"math"
)

// Errors returned by least-squares routines.
var (
	ErrSingular       = errors.New("lsq: singular system")
	ErrBadDegree      = errors.New("lsq: polynomial degree must be >= 0")
	ErrTooFewPoints   = errors.New("lsq: need at least degree+1 points")
	ErrLengthMismatch = errors.New("lsq: x and y must have equal length")
)

// Solve solves the n x n linear system a*x = b using Gaussian elimination
// with partial pivoting. Both a and b are modified in place; the returned
// slice aliases b.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, ErrSingular
	}

	for col := range n {
		// Pivot: largest absolute value in the remaining column.
		pivot := col
		best := math.Abs(a[col][col])

		for row := col + 1; row < n; row++ {
			if v := math.Abs(a[row][col]); v > best {
				best = v
				pivot = row
			}
		}

		if best == 0 {
			return nil, ErrSingular
		}

		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}

		inv := 1 / a[col][col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] * inv
			if factor == 0 {
				continue
			}

			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}

			b[row] -= factor * b[col]
		}
	}

	// Back substitution.
	for col := n - 1; col >= 0; col-- {
		sum := b[col]
		for k := col + 1; k < n; k++ {
			sum -= a[col][k] * b[k]
		}

		b[col] = sum / a[col][col]
	}

	return b, nil
}

// PolyFit fits a polynomial of the given degree to the points (x[i], y[i])
// in the least-squares sense by solving the Vandermonde normal equations.
// Coefficients are returned in ascending power order.
func PolyFit(x, y []float64, degree int) ([]float64, error) {
	if degree < 0 {
		return nil, ErrBadDegree
	}

	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	if len(x) < degree+1 {
		return nil, ErrTooFewPoints
	}

	m := degree + 1

	// Power sums S_k = sum x^k for k = 0..2*degree.
	sums := make([]float64, 2*m-1)
	for _, xi := range x {
		p := 1.0
		for k := range sums {
			sums[k] += p
			p *= xi
		}
	}

	// Normal matrix M[j][k] = S_{j+k}, right-hand side r[j] = sum y*x^j.
	mat := make([][]float64, m)
	for j := range mat {
		mat[j] = make([]float64, m)
		for k := range m {
			mat[j][k] = sums[j+k]
		}
	}

	rhs := make([]float64, m)
	for i, yi := range y {
		p := 1.0
		for j := range rhs {
			rhs[j] += yi * p
			p *= x[i]
		}
	}

	return Solve(mat, rhs)
}

// PolyVal evaluates a polynomial with ascending-order coefficients at x
// using Horner's scheme.
func PolyVal(coeffs []float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}

	return y
}
