package voltammetry_test

import (
	"fmt"
	"sort"

	"github.com/voltlab/algo-volt/voltammetry"
)

func ExampleApply() {
	potential := []float64{0, 1, 2, 3}
	current := []float64{10, 2, 8, 4}

	net, err := voltammetry.Apply(potential, current, voltammetry.SWV,
		voltammetry.SWVParams{Frequency: 25, Amplitude: 0.025})
	if err != nil {
		panic(err)
	}

	fmt.Println(net)
	// Output:
	// [8 4]
}

func ExampleOptimize() {
	sweep := voltammetry.Sweep{
		Potential: []float64{0, 1, 2, 3},
		Current:   []float64{10, 2, 8, 4},
	}

	params, err := voltammetry.Optimize(sweep, voltammetry.Lead, voltammetry.DPV)
	if err != nil {
		panic(err)
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s: %s\n", name, voltammetry.FormatValue(params[name]))
	}
	// Output:
	// amplitude: 0.025
	// deposition_potential: -1.200
	// deposition_time: 120
	// step_potential: 0.004
}
