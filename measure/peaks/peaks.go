// Package peaks locates stripping peaks in processed voltammograms.
//
// A stripping peak marks the re-oxidation of a deposited analyte; its
// potential identifies the metal and its height tracks concentration.
// Find reports every local maximum that clears the configured height and
// prominence thresholds.
package peaks

import "errors"

// ErrLengthMismatch is returned when the potential and current sequences
// differ in length.
var ErrLengthMismatch = errors.New("peaks: potential and current must have equal length")

// Peak describes a local maximum in a processed voltammogram.
type Peak struct {
	Index      int     // sample index in the input
	Potential  float64 // potential at the peak in V
	Current    float64 // peak current
	Prominence float64 // height above the higher of the two flanking bases
}

// Config controls peak acceptance. Zero values disable the corresponding
// threshold.
type Config struct {
	MinHeight     float64 // minimum absolute peak current
	MinProminence float64 // minimum prominence
}

// Find locates local maxima in the current sequence and returns those that
// pass the configured thresholds, in index order. The first and last
// samples are never peaks. Inputs shorter than three samples yield no
// peaks.
func Find(potential, current []float64, cfg Config) ([]Peak, error) {
	if len(potential) != len(current) {
		return nil, ErrLengthMismatch
	}

	var found []Peak

	for i := 1; i < len(current)-1; i++ {
		if !(current[i-1] < current[i] && current[i] > current[i+1]) {
			continue
		}

		if cfg.MinHeight > 0 && current[i] < cfg.MinHeight {
			continue
		}

		prom := prominence(current, i)
		if cfg.MinProminence > 0 && prom < cfg.MinProminence {
			continue
		}

		found = append(found, Peak{
			Index:      i,
			Potential:  potential[i],
			Current:    current[i],
			Prominence: prom,
		})
	}

	return found, nil
}

// prominence measures how far the peak rises above its surroundings: on
// each side, descend until a sample higher than the peak (or the signal
// boundary) and take the minimum seen; the prominence is the peak height
// above the higher of the two side minima.
func prominence(current []float64, peak int) float64 {
	height := current[peak]

	leftBase := height
	for j := peak - 1; j >= 0 && current[j] <= height; j-- {
		if current[j] < leftBase {
			leftBase = current[j]
		}
	}

	rightBase := height
	for j := peak + 1; j < len(current) && current[j] <= height; j++ {
		if current[j] < rightBase {
			rightBase = current[j]
		}
	}

	base := leftBase
	if rightBase > base {
		base = rightBase
	}

	return height - base
}
