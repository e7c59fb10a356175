package lsq

import (
	"errors"
	"math"
	"testing"
)

func TestSolve(t *testing.T) {
	a := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	b := []float64{8, -11, -3}

	x, err := Solve(a, b)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{2, 3, -1}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Errorf("x[%d] = %g, want %g", i, x[i], want[i])
		}
	}
}

func TestSolveSingular(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 4},
	}
	b := []float64{1, 2}

	if _, err := Solve(a, b); !errors.Is(err, ErrSingular) {
		t.Errorf("Solve() error = %v, want %v", err, ErrSingular)
	}
}

func TestPolyFitExactQuadratic(t *testing.T) {
	// y = 3 - 2x + 0.5x^2 sampled at 7 points must be recovered exactly.
	coeffs := []float64{3, -2, 0.5}

	x := make([]float64, 7)
	y := make([]float64, 7)

	for i := range x {
		x[i] = float64(i)
		y[i] = PolyVal(coeffs, x[i])
	}

	got, err := PolyFit(x, y, 2)
	if err != nil {
		t.Fatal(err)
	}

	for i := range coeffs {
		if math.Abs(got[i]-coeffs[i]) > 1e-9 {
			t.Errorf("coeff[%d] = %g, want %g", i, got[i], coeffs[i])
		}
	}
}

func TestPolyFitValidation(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		degree  int
		wantErr error
	}{
		{"negative degree", []float64{0, 1}, []float64{0, 1}, -1, ErrBadDegree},
		{"length mismatch", []float64{0, 1}, []float64{0}, 1, ErrLengthMismatch},
		{"too few points", []float64{0, 1}, []float64{0, 1}, 2, ErrTooFewPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PolyFit(tt.x, tt.y, tt.degree); !errors.Is(err, tt.wantErr) {
				t.Errorf("PolyFit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolyVal(t *testing.T) {
	// 1 + 2x + 3x^2 at x = 2 is 17.
	if got := PolyVal([]float64{1, 2, 3}, 2); got != 17 {
		t.Errorf("PolyVal = %g, want 17", got)
	}

	if got := PolyVal(nil, 5); got != 0 {
		t.Errorf("PolyVal(nil) = %g, want 0", got)
	}
}
