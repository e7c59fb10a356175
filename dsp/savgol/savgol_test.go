package savgol

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		order   int
		wantErr error
	}{
		{"valid", 21, 2, nil},
		{"even window", 20, 2, ErrEvenWindow},
		{"zero window", 0, 0, ErrEvenWindow},
		{"negative window", -5, 2, ErrEvenWindow},
		{"order equals window", 5, 5, ErrOrderTooHigh},
		{"order above window", 5, 7, ErrOrderTooHigh},
		{"negative order", 5, -1, ErrOrderTooHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.window, tt.order)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New(%d, %d) error = %v, want %v", tt.window, tt.order, err, tt.wantErr)
			}
		})
	}
}

func TestKnownKernel(t *testing.T) {
	// Classic quadratic kernel for a 5-point window: (-3, 12, 17, 12, -3)/35.
	f, err := New(5, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{-3.0 / 35, 12.0 / 35, 17.0 / 35, 12.0 / 35, -3.0 / 35}

	got := f.Coefficients()
	if len(got) != len(want) {
		t.Fatalf("kernel length = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("coeff[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestKernelSymmetricAndNormalized(t *testing.T) {
	f, err := New(21, 2)
	if err != nil {
		t.Fatal(err)
	}

	coeffs := f.Coefficients()

	var sum float64
	for i, c := range coeffs {
		sum += c

		mirror := coeffs[len(coeffs)-1-i]
		if math.Abs(c-mirror) > 1e-12 {
			t.Errorf("coeff[%d] = %g not symmetric with %g", i, c, mirror)
		}
	}

	// A smoothing kernel must preserve constants.
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("kernel sum = %g, want 1", sum)
	}
}

func TestSmoothReproducesQuadratic(t *testing.T) {
	// An order-2 fit reproduces any quadratic exactly, edges included.
	f, err := New(21, 2)
	if err != nil {
		t.Fatal(err)
	}

	src := make([]float64, 60)
	for i := range src {
		x := float64(i)
		src[i] = 2 - 0.3*x + 0.01*x*x
	}

	out, err := f.Smooth(src)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(src) {
		t.Fatalf("output length = %d, want %d", len(out), len(src))
	}

	for i := range src {
		if math.Abs(out[i]-src[i]) > 1e-8 {
			t.Errorf("out[%d] = %g, want %g", i, out[i], src[i])
		}
	}
}

func TestSmoothReducesNoise(t *testing.T) {
	// Slow sinusoid plus deterministic uniform noise: the smoothing error
	// against the clean signal must have less energy than the raw noise.
	const n = 200

	rng := rand.New(rand.NewSource(1))

	clean := make([]float64, n)
	noisy := make([]float64, n)

	var noiseEnergy float64

	for i := range clean {
		clean[i] = math.Sin(2 * math.Pi * float64(i) / n)
		noise := (rng.Float64()*2 - 1) * 0.1
		noisy[i] = clean[i] + noise
		noiseEnergy += noise * noise
	}

	out, err := Smooth(noisy, 21, 2)
	if err != nil {
		t.Fatal(err)
	}

	var residualEnergy float64
	for i := range out {
		d := out[i] - clean[i]
		residualEnergy += d * d
	}

	if math.IsNaN(residualEnergy) || math.IsInf(residualEnergy, 0) {
		t.Fatalf("residual energy = %g, not finite", residualEnergy)
	}

	if residualEnergy >= noiseEnergy {
		t.Errorf("residual energy = %g, want < noise energy %g", residualEnergy, noiseEnergy)
	}
}

func TestSmoothShortInput(t *testing.T) {
	src := make([]float64, 20)

	_, err := Smooth(src, 21, 2)
	if !errors.Is(err, ErrInputTooShort) {
		t.Errorf("Smooth() error = %v, want %v", err, ErrInputTooShort)
	}
}

func TestSmoothExactWindowLength(t *testing.T) {
	src := make([]float64, 21)
	for i := range src {
		src[i] = float64(i)
	}

	out, err := Smooth(src, 21, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(src) {
		t.Errorf("output length = %d, want %d", len(out), len(src))
	}

	// A line is a degenerate quadratic and must be reproduced.
	for i := range src {
		if math.Abs(out[i]-src[i]) > 1e-8 {
			t.Errorf("out[%d] = %g, want %g", i, out[i], src[i])
		}
	}
}

func TestSmoothDoesNotMutateInput(t *testing.T) {
	src := make([]float64, 30)
	for i := range src {
		src[i] = math.Sin(float64(i))
	}

	orig := make([]float64, len(src))
	copy(orig, src)

	if _, err := Smooth(src, 21, 2); err != nil {
		t.Fatal(err)
	}

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}
