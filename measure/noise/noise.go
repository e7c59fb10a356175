// Package noise estimates measurement noise in a voltammetric current
// trace from its smoothing residual.
//
// The trace is smoothed with the same Savitzky-Golay filter the LSV
// processor uses; the residual (raw minus smoothed) is taken as the noise
// estimate. Analyze reports the signal and residual RMS, the resulting
// signal-to-noise ratio, and where the residual energy concentrates in
// the spectrum, which helps distinguish broadband noise from mains pickup
// or stirring artifacts.
package noise

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/voltlab/algo-volt/dsp/savgol"
)

const (
	defaultWindow = 21
	defaultOrder  = 2
)

// Config holds noise analysis parameters. Zero values select the defaults.
type Config struct {
	Window  int // smoothing window length (odd), default 21
	Order   int // smoothing polynomial order, default 2
	FFTSize int // residual spectrum size, default next power of two >= input length
}

// Metrics holds noise analysis results.
//
//nolint:revive
type Metrics struct {
	SignalRMS    float64
	ResidualRMS  float64
	SNR_dB       float64 // 20*log10(SignalRMS/ResidualRMS); +Inf for a clean trace
	DominantBin  int     // residual spectrum bin with the most energy (DC excluded)
	DominantFrac float64 // that bin's share of the residual spectral energy, 0..1
}

// Analyze estimates the noise metrics of a current trace. The input must
// be at least one smoothing window long; it is never modified.
func Analyze(current []float64, cfg Config) (Metrics, error) {
	cfg = normalizeConfig(cfg, len(current))

	smoothed, err := savgol.Smooth(current, cfg.Window, cfg.Order)
	if err != nil {
		return Metrics{}, fmt.Errorf("noise: smoothing: %w", err)
	}

	residual := make([]float64, len(current))

	vecmath.ScaleBlock(residual, smoothed, -1)
	vecmath.AddBlockInPlace(residual, current)

	m := Metrics{
		SignalRMS:   rms(current),
		ResidualRMS: rms(residual),
	}

	switch {
	case m.ResidualRMS == 0:
		m.SNR_dB = math.Inf(1)
	case m.SignalRMS == 0:
		m.SNR_dB = math.Inf(-1)
	default:
		m.SNR_dB = 20 * math.Log10(m.SignalRMS/m.ResidualRMS)
	}

	bin, frac, err := dominantBin(residual, cfg.FFTSize)
	if err != nil {
		return Metrics{}, err
	}

	m.DominantBin = bin
	m.DominantFrac = frac

	return m, nil
}

// dominantBin locates the non-DC residual spectrum bin with the most
// energy and its share of the total residual spectral energy up to Nyquist.
func dominantBin(residual []float64, fftSize int) (int, float64, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, 0, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range residual {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return 0, 0, fmt.Errorf("noise: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := range binCount {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	var (
		total   float64
		bestBin int
		bestVal float64
	)

	for i := 1; i < binCount; i++ {
		total += power[i]

		if power[i] > bestVal {
			bestVal = power[i]
			bestBin = i
		}
	}

	if total == 0 {
		return 0, 0, nil
	}

	return bestBin, bestVal / total, nil
}

func normalizeConfig(cfg Config, inputLen int) Config {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}

	if cfg.Order <= 0 {
		cfg.Order = defaultOrder
	}

	if cfg.FFTSize <= 0 {
		cfg.FFTSize = nextPowerOf2(inputLen)
	}

	return cfg
}

func rms(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
