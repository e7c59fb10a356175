// Package pulse provides alternating-sample primitives for pulsed
// electrochemical techniques.
//
// Differential pulse and square wave voltammetry sample the cell current
// twice per potential step: once just before the pulse (forward) and once
// at the end of the pulse (backward). The acquired stream therefore
// interleaves forward samples at even indices with backward samples at odd
// indices, and the analyte signal is the element-wise forward minus
// backward difference.
package pulse

import (
	"github.com/cwbudde/algo-vecmath"
)

// Deinterleave splits an alternating sample stream into its even-indexed
// (forward) and odd-indexed (backward) subsequences, truncated to complete
// pairs. A trailing unpaired sample is dropped; inputs shorter than two
// samples yield empty subsequences. The input is never modified.
func Deinterleave(samples []float64) (forward, backward []float64) {
	pairs := len(samples) / 2

	forward = make([]float64, pairs)
	backward = make([]float64, pairs)

	for i := range pairs {
		forward[i] = samples[2*i]
		backward[i] = samples[2*i+1]
	}

	return forward, backward
}

// Net returns the element-wise forward minus backward difference of an
// alternating sample stream. The output length is len(samples)/2.
func Net(samples []float64) []float64 {
	forward, backward := Deinterleave(samples)

	out := make([]float64, len(forward))
	if len(out) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, backward, -1)
	vecmath.AddBlockInPlace(out, forward)

	return out
}
