package voltammetry

import (
	"fmt"

	"github.com/voltlab/algo-volt/dsp/pulse"
	"github.com/voltlab/algo-volt/dsp/savgol"
)

// LSV smoothing uses a fixed 21-sample quadratic Savitzky-Golay window.
// Sweeps shorter than the window cannot be fitted and are rejected.
const (
	SmoothingWindow = 21
	SmoothingOrder  = 2
)

// Apply routes a sweep to the processor for the selected technique and
// returns the processed current sequence. The routing is exhaustive: a
// technique outside the supported set fails with [ErrUnknownTechnique],
// and params built for a different technique fail with [ErrParamsMismatch].
// A nil params is treated as the zero parameters of the technique.
//
// The output is freshly allocated; the inputs are never retained or
// modified.
func Apply(potential, current []float64, technique Technique, params Params) ([]float64, error) {
	s := Sweep{Potential: potential, Current: current}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if params != nil && params.Technique() != technique {
		return nil, fmt.Errorf("%w: got %s parameters for %s", ErrParamsMismatch, params.Technique(), technique)
	}

	switch technique {
	case LSV:
		p, _ := params.(LSVParams)
		return ProcessLSV(potential, current, p)
	case DPV:
		p, _ := params.(DPVParams)
		return ProcessDPV(potential, current, p)
	case SWV:
		p, _ := params.(SWVParams)
		return ProcessSWV(potential, current, p)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTechnique, technique)
	}
}

// ProcessLSV smooths a linear sweep current trace with a Savitzky-Golay
// filter (window [SmoothingWindow], order [SmoothingOrder]). The output has
// the same length as the input. Sweeps shorter than the smoothing window
// fail with [savgol.ErrInputTooShort].
func ProcessLSV(potential, current []float64, params LSVParams) ([]float64, error) {
	s := Sweep{Potential: potential, Current: current}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out, err := savgol.Smooth(current, SmoothingWindow, SmoothingOrder)
	if err != nil {
		return nil, fmt.Errorf("voltammetry: lsv smoothing: %w", err)
	}

	return out, nil
}

// ProcessDPV extracts the differential pulse signal: the current stream is
// deinterleaved into forward (even-indexed) and backward (odd-indexed)
// pulse samples and their element-wise difference is returned. The output
// has length len(current)/2; a trailing unpaired sample is dropped and
// sweeps shorter than one pair yield an empty result.
func ProcessDPV(potential, current []float64, params DPVParams) ([]float64, error) {
	s := Sweep{Potential: potential, Current: current}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return pulse.Net(current), nil
}

// ProcessSWV extracts the square wave net current. The square wave
// technique samples forward and backward pulses exactly like DPV, so the
// processing is the same deinterleave-and-difference with the same length
// and edge-case behavior.
func ProcessSWV(potential, current []float64, params SWVParams) ([]float64, error) {
	s := Sweep{Potential: potential, Current: current}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return pulse.Net(current), nil
}
