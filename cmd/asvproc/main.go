// Command asvproc processes a stripping-voltammetry sweep from a CSV file.
//
// Usage:
//
//	asvproc -technique swv [flags] [file.csv]
//
// The input must have 'Potential' and 'Current' columns. Without a file
// argument, data is read from stdin.
//
// Examples:
//
//	asvproc -technique lsv sweep.csv
//	asvproc -technique dpv -metal Pb -peaks sweep.csv
//	asvproc -technique swv -frequency 50 -noise < sweep.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/voltlab/algo-volt/internal/tabular"
	"github.com/voltlab/algo-volt/measure/noise"
	"github.com/voltlab/algo-volt/measure/peaks"
	"github.com/voltlab/algo-volt/voltammetry"
)

func main() {
	techniqueFlag := flag.String("technique", "", "measurement technique: lsv, dpv or swv (required)")
	metalFlag := flag.String("metal", "", "analyte metal label: Pb, Cd, Cu, Hg or Zn")

	scanRate := flag.Float64("scan-rate", 0.05, "LSV scan rate in V/s")
	amplitude := flag.Float64("amplitude", 0.025, "DPV/SWV pulse amplitude in V")
	stepPotential := flag.Float64("step-potential", 0.004, "DPV step potential in V")
	frequency := flag.Float64("frequency", 25, "SWV frequency in Hz")

	optimize := flag.Bool("optimize", true, "print recommended acquisition parameters")
	showPeaks := flag.Bool("peaks", false, "print detected stripping peaks")
	minProminence := flag.Float64("min-prominence", 0, "minimum peak prominence for -peaks")
	showNoise := flag.Bool("noise", false, "print noise diagnostics for the raw trace")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: asvproc -technique <lsv|dpv|swv> [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Processes a stripping-voltammetry sweep from a CSV file\n")
		fmt.Fprintf(os.Stderr, "with 'Potential' and 'Current' columns.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	technique, err := voltammetry.ParseTechnique(*techniqueFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	var metal voltammetry.Metal
	if *metalFlag != "" {
		metal, err = voltammetry.ParseMetal(*metalFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	sweep, err := loadSweep(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	params := buildParams(technique, *scanRate, *amplitude, *stepPotential, *frequency)

	processed, err := voltammetry.Apply(sweep.Potential, sweep.Current, technique, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printHeader(technique, metal, sweep.Len(), len(processed))
	printProcessed(sweep, processed)

	if *optimize {
		optimal, err := voltammetry.Optimize(sweep, metal, technique)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		printParameterSet(optimal)
	}

	if *showPeaks {
		if err := printPeaks(sweep, processed, *minProminence); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *showNoise {
		if err := printNoise(sweep.Current); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadSweep(path string) (voltammetry.Sweep, error) {
	var r io.Reader = os.Stdin

	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return voltammetry.Sweep{}, err
		}
		defer f.Close()

		r = f
	}

	return tabular.ReadSweep(r)
}

func buildParams(technique voltammetry.Technique, scanRate, amplitude, stepPotential, frequency float64) voltammetry.Params {
	switch technique {
	case voltammetry.LSV:
		return voltammetry.LSVParams{ScanRate: scanRate}
	case voltammetry.DPV:
		return voltammetry.DPVParams{Amplitude: amplitude, StepPotential: stepPotential}
	case voltammetry.SWV:
		return voltammetry.SWVParams{Frequency: frequency, Amplitude: amplitude}
	default:
		return nil
	}
}

func printHeader(technique voltammetry.Technique, metal voltammetry.Metal, raw, processed int) {
	label := technique.String()
	if metal != "" {
		label = fmt.Sprintf("%s %s", metal, label)
	}

	fmt.Printf("%s voltammogram: %d samples, %d processed\n\n", label, raw, processed)
}

func printProcessed(sweep voltammetry.Sweep, processed []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Potential [V]\tCurrent [uA]\tProcessed [uA]\n")
	fmt.Fprintf(tw, "-------------\t------------\t--------------\n")

	for i := range processed {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\n", sweep.Potential[i], sweep.Current[i], processed[i])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	fmt.Println()
}

func printParameterSet(params voltammetry.ParameterSet) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	fmt.Println("Optimal parameters:")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", displayName(name), voltammetry.FormatValue(params[name]))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	fmt.Println()
}

func printPeaks(sweep voltammetry.Sweep, processed []float64, minProminence float64) error {
	found, err := peaks.Find(sweep.Potential[:len(processed)], processed, peaks.Config{
		MinProminence: minProminence,
	})
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Println("No peaks found.")
		fmt.Println()

		return nil
	}

	fmt.Println("Peaks:")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Potential [V]\tCurrent [uA]\tProminence\n")

	for _, p := range found {
		fmt.Fprintf(tw, "  %.4f\t%.4f\t%.4f\n", p.Potential, p.Current, p.Prominence)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()

	return nil
}

func printNoise(current []float64) error {
	m, err := noise.Analyze(current, noise.Config{})
	if err != nil {
		return err
	}

	fmt.Println("Noise diagnostics:")
	fmt.Printf("  Signal RMS:    %.4f\n", m.SignalRMS)
	fmt.Printf("  Residual RMS:  %.4f\n", m.ResidualRMS)
	fmt.Printf("  SNR:           %.1f dB\n", m.SNR_dB)
	fmt.Printf("  Dominant bin:  %d (%.0f%% of residual energy)\n", m.DominantBin, m.DominantFrac*100)
	fmt.Println()

	return nil
}

// displayName renders a parameter key for humans: deposition_potential
// becomes "Deposition Potential".
func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}

		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
