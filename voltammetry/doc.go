// Package voltammetry processes stripping-voltammetry sweeps.
//
// A [Sweep] is a recorded potential/current trace. [Apply] routes it to
// the processor for the selected [Technique]:
//
//   - LSV (linear sweep): Savitzky-Golay smoothing of the current trace
//   - DPV (differential pulse): forward minus backward pulse current
//   - SWV (square wave): forward minus backward pulse current
//
// [Optimize] recommends acquisition parameters for a technique and runs a
// trial pass over the dataset to confirm the technique can process it.
//
// # Usage
//
//	sweep := voltammetry.Sweep{Potential: potential, Current: current}
//	net, err := voltammetry.Apply(sweep.Potential, sweep.Current,
//		voltammetry.SWV, voltammetry.SWVParams{Frequency: 25, Amplitude: 0.025})
//
//	params, err := voltammetry.Optimize(sweep, voltammetry.Lead, voltammetry.SWV)
package voltammetry
