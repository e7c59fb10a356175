package voltammetry

import "errors"

// Errors returned by sweep validation and dispatch.
var (
	ErrEmptySweep       = errors.New("voltammetry: sweep must contain at least one sample")
	ErrLengthMismatch   = errors.New("voltammetry: potential and current must have equal length")
	ErrUnknownTechnique = errors.New("voltammetry: unknown technique")
	ErrUnknownMetal     = errors.New("voltammetry: unknown metal")
	ErrParamsMismatch   = errors.New("voltammetry: parameters do not match the selected technique")
)

// Sweep is a recorded voltammetric trace: potential and current samples in
// acquisition order. The two slices must have equal, non-zero length.
type Sweep struct {
	Potential []float64 // electrode potential in V
	Current   []float64 // cell current in uA
}

// Validate checks the sweep invariants.
func (s Sweep) Validate() error {
	if len(s.Potential) != len(s.Current) {
		return ErrLengthMismatch
	}

	if len(s.Current) == 0 {
		return ErrEmptySweep
	}

	return nil
}

// Len returns the number of samples in the sweep.
func (s Sweep) Len() int {
	return len(s.Current)
}
