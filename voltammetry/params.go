package voltammetry

import (
	"math"
	"strconv"
)

// Parameter names used in a ParameterSet.
const (
	ParamScanRate            = "scan_rate"
	ParamAmplitude           = "amplitude"
	ParamStepPotential       = "step_potential"
	ParamFrequency           = "frequency"
	ParamDepositionPotential = "deposition_potential"
	ParamDepositionTime      = "deposition_time"
)

// Params is the acquisition parameter bundle for one technique. It is
// implemented by the per-technique value structs [LSVParams], [DPVParams]
// and [SWVParams].
type Params interface {
	// Technique reports which technique the parameters belong to.
	Technique() Technique

	// ParameterSet renders the parameters as a name-to-value mapping
	// for display. The returned map is freshly allocated.
	ParameterSet() ParameterSet
}

// LSVParams holds linear sweep voltammetry parameters.
type LSVParams struct {
	// ScanRate is the potential ramp rate in V/s. It is recorded for
	// future baseline-correction logic and does not affect smoothing.
	ScanRate float64
}

// Technique implements [Params].
func (LSVParams) Technique() Technique { return LSV }

// ParameterSet implements [Params].
func (p LSVParams) ParameterSet() ParameterSet {
	return ParameterSet{ParamScanRate: p.ScanRate}
}

// DPVParams holds differential pulse voltammetry parameters.
//
// Amplitude and StepPotential describe the acquisition waveform; the
// differencing itself works directly on the alternating sample stream, so
// both are descriptive metadata until amplitude-normalized differencing
// lands.
type DPVParams struct {
	Amplitude     float64 // pulse amplitude in V
	StepPotential float64 // staircase step in V
}

// Technique implements [Params].
func (DPVParams) Technique() Technique { return DPV }

// ParameterSet implements [Params].
func (p DPVParams) ParameterSet() ParameterSet {
	return ParameterSet{
		ParamAmplitude:     p.Amplitude,
		ParamStepPotential: p.StepPotential,
	}
}

// SWVParams holds square wave voltammetry parameters.
//
// Frequency and Amplitude describe the acquisition waveform and are
// descriptive metadata for processing purposes, like the DPV parameters.
type SWVParams struct {
	Frequency float64 // square wave frequency in Hz
	Amplitude float64 // square wave amplitude in V
}

// Technique implements [Params].
func (SWVParams) Technique() Technique { return SWV }

// ParameterSet implements [Params].
func (p SWVParams) ParameterSet() ParameterSet {
	return ParameterSet{
		ParamFrequency: p.Frequency,
		ParamAmplitude: p.Amplitude,
	}
}

// ParameterSet maps parameter names to numeric values for display.
type ParameterSet map[string]float64

// FormatValue renders a parameter value for display: integer-valued
// parameters (such as deposition_time) print without a decimal point,
// everything else with three decimal places.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'f', 3, 64)
}
