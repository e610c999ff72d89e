// Package impact projects an individual carbon footprint onto global scale.
package impact

import "errors"

// Reference figures used by the projection.
const (
	// WorldPopulation is the projection population.
	WorldPopulation = 8_000_000_000
	// CurrentGlobalEmissions is today's global emissions in tons CO2/year.
	CurrentGlobalEmissions = 36_700_000_000
	// EarthCapacity is the sustainable emissions ceiling in tons CO2/year.
	EarthCapacity = 11_000_000_000
	// AverageFootprint is the global per-person average in tons CO2/year.
	AverageFootprint = 4.6
)

// ErrInvalidFootprint indicates a non-positive footprint input.
var ErrInvalidFootprint = errors.New("footprint must be greater than zero")

// Report describes the world if everyone lived at the given footprint.
type Report struct {
	Footprint         float64 `json:"footprint"`           // Input, tons CO2/year per person.
	GlobalEmissions   float64 `json:"global_emissions"`    // Projected total tons CO2/year.
	EmissionChangePct float64 `json:"emission_change_pct"` // Change vs current emissions, percent.
	EarthsNeeded      float64 `json:"earths_needed"`       // Planets needed to absorb the projection.
	VsAverage         float64 `json:"vs_average"`          // Footprint minus the global average.
}

// Project computes the global impact report for one person's footprint.
func Project(footprint float64) (Report, error) {
	if footprint <= 0 {
		return Report{}, ErrInvalidFootprint
	}
	global := footprint * WorldPopulation
	return Report{
		Footprint:         footprint,
		GlobalEmissions:   global,
		EmissionChangePct: (global - CurrentGlobalEmissions) / CurrentGlobalEmissions * 100,
		EarthsNeeded:      global / EarthCapacity,
		VsAverage:         footprint - AverageFootprint,
	}, nil
}

// Sustainable reports whether the projection fits within Earth's capacity.
func (r Report) Sustainable() bool {
	return r.EarthsNeeded <= 1
}
