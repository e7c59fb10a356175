package voltammetry

// Defaults is the recommended acquisition parameter table: one parameter
// set per technique plus technique-independent deposition settings. The
// stock table comes from [StandardDefaults]; callers may substitute their
// own.
type Defaults struct {
	LSV LSVParams
	DPV DPVParams
	SWV SWVParams

	DepositionPotential float64 // preconcentration potential in V
	DepositionTime      float64 // preconcentration time in s
}

// StandardDefaults returns the stock acquisition parameter table.
func StandardDefaults() Defaults {
	return Defaults{
		LSV: LSVParams{ScanRate: 0.05},
		DPV: DPVParams{Amplitude: 0.025, StepPotential: 0.004},
		SWV: SWVParams{Frequency: 25, Amplitude: 0.025},

		DepositionPotential: -1.2,
		DepositionTime:      120,
	}
}

// Params returns the default parameters for a technique.
func (d Defaults) Params(technique Technique) (Params, error) {
	switch technique {
	case LSV:
		return d.LSV, nil
	case DPV:
		return d.DPV, nil
	case SWV:
		return d.SWV, nil
	default:
		return nil, ErrUnknownTechnique
	}
}

// Optimize recommends acquisition parameters for measuring a metal with
// the given technique on the supplied dataset. It runs the technique's
// processor over the full sweep with the default parameters as a trial
// pass: the processed signal is discarded, but a failure there means the
// technique cannot process this dataset and is returned unchanged.
//
// The metal is accepted for future per-analyte tuning and currently does
// not influence the result; the recommendation is the per-technique
// defaults merged with the deposition settings.
func (d Defaults) Optimize(sweep Sweep, metal Metal, technique Technique) (ParameterSet, error) {
	params, err := d.Params(technique)
	if err != nil {
		return nil, err
	}

	if _, err := Apply(sweep.Potential, sweep.Current, technique, params); err != nil {
		return nil, err
	}

	set := params.ParameterSet()
	set[ParamDepositionPotential] = d.DepositionPotential
	set[ParamDepositionTime] = d.DepositionTime

	return set, nil
}

// Optimize recommends acquisition parameters using [StandardDefaults].
func Optimize(sweep Sweep, metal Metal, technique Technique) (ParameterSet, error) {
	return StandardDefaults().Optimize(sweep, metal, technique)
}
