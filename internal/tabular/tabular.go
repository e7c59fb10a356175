// Package tabular reads two-column potential/current measurement tables.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/voltlab/algo-volt/voltammetry"
)

// ErrMissingColumns is returned when the input header lacks a required
// column.
var ErrMissingColumns = errors.New("tabular: input must have 'Potential' and 'Current' columns")

// Required column names.
const (
	potentialColumn = "Potential"
	currentColumn   = "Current"
)

// ReadSweep parses a CSV table into a sweep. The header row must contain
// the columns "Potential" and "Current"; additional columns are ignored
// and row order is preserved as acquisition order.
func ReadSweep(r io.Reader) (voltammetry.Sweep, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return voltammetry.Sweep{}, ErrMissingColumns
	}

	if err != nil {
		return voltammetry.Sweep{}, fmt.Errorf("tabular: reading header: %w", err)
	}

	potentialIdx, currentIdx := -1, -1

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case potentialColumn:
			potentialIdx = i
		case currentColumn:
			currentIdx = i
		}
	}

	if potentialIdx < 0 || currentIdx < 0 {
		return voltammetry.Sweep{}, ErrMissingColumns
	}

	var sweep voltammetry.Sweep

	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return voltammetry.Sweep{}, fmt.Errorf("tabular: row %d: %w", row, err)
		}

		p, err := strconv.ParseFloat(strings.TrimSpace(record[potentialIdx]), 64)
		if err != nil {
			return voltammetry.Sweep{}, fmt.Errorf("tabular: row %d: bad potential: %w", row, err)
		}

		c, err := strconv.ParseFloat(strings.TrimSpace(record[currentIdx]), 64)
		if err != nil {
			return voltammetry.Sweep{}, fmt.Errorf("tabular: row %d: bad current: %w", row, err)
		}

		sweep.Potential = append(sweep.Potential, p)
		sweep.Current = append(sweep.Current, c)
	}

	return sweep, nil
}
