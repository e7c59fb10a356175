package voltammetry

import (
	"fmt"
	"strings"
)

// Technique identifies a stripping-voltammetry measurement technique.
type Technique int

// Supported techniques.
const (
	LSV Technique = iota // linear sweep voltammetry
	DPV                  // differential pulse voltammetry
	SWV                  // square wave voltammetry
)

// String returns the conventional abbreviation for the technique.
func (t Technique) String() string {
	switch t {
	case LSV:
		return "LSV"
	case DPV:
		return "DPV"
	case SWV:
		return "SWV"
	default:
		return fmt.Sprintf("Technique(%d)", int(t))
	}
}

// ParseTechnique resolves a technique abbreviation, case-insensitively.
func ParseTechnique(s string) (Technique, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LSV":
		return LSV, nil
	case "DPV":
		return DPV, nil
	case "SWV":
		return SWV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTechnique, s)
	}
}

// Metal identifies an analyte metal by its element symbol.
type Metal string

// Metals commonly determined by anodic stripping voltammetry.
const (
	Lead    Metal = "Pb"
	Cadmium Metal = "Cd"
	Copper  Metal = "Cu"
	Mercury Metal = "Hg"
	Zinc    Metal = "Zn"
)

// Metals returns the supported analyte metals.
func Metals() []Metal {
	return []Metal{Lead, Cadmium, Copper, Mercury, Zinc}
}

// ParseMetal resolves an element symbol, case-insensitively.
func ParseMetal(s string) (Metal, error) {
	for _, m := range Metals() {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMetal, s)
}
