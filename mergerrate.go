package gravwave

import (
	"fmt"
	"math"
)

// L10ErgPerSec is the luminosity normalization used throughout the package:
// L_10 = 10^10 × 2.16e33 erg/s. Input luminosities are expressed in this unit.
const L10ErgPerSec = 1e10 * 2.16e33

// Population identifies a compact-binary population.
type Population string

const (
	PopNSNS Population = "NS-NS" // neutron star - neutron star
	PopNSBH Population = "NS-BH" // neutron star - black hole
	PopBHBH Population = "BH-BH" // black hole - black hole
)

// Optimism selects among published rate estimates reflecting different
// astrophysical assumptions. OptimismMax is valid only for PopNSNS.
type Optimism string

const (
	OptimismLow       Optimism = "low"
	OptimismRealistic Optimism = "realistic"
	OptimismHigh      Optimism = "high"
	OptimismMax       Optimism = "max"
)

// Rate is a merger rate in events per year (dimension: inverse time).
type Rate float64

// Expected returns the expected number of merger events over a span of years.
func (r Rate) Expected(years float64) float64 {
	return float64(r) * years
}

// String formats the rate with its unit.
func (r Rate) String() string {
	return fmt.Sprintf("%g yr^-1", float64(r))
}

// Table ordinals. The coefficient tables are fixed-size arrays indexed by
// these; an enum value outside its closed set has no ordinal.
const (
	numPopulations = 3
	numOptimisms   = 4
)

func (p Population) index() (int, bool) {
	switch p {
	case PopNSNS:
		return 0, true
	case PopNSBH:
		return 1, true
	case PopBHBH:
		return 2, true
	}
	return -1, false
}

func (o Optimism) index() (int, bool) {
	switch o {
	case OptimismLow:
		return 0, true
	case OptimismRealistic:
		return 1, true
	case OptimismHigh:
		return 2, true
	case OptimismMax:
		return 3, true
	}
	return -1, false
}

// InvalidSelectorError reports a (population, optimism) pair with no entry
// in a model's coefficient table. It is the package's only error kind.
type InvalidSelectorError struct {
	Model      string
	Population Population
	Optimism   Optimism
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf(
		"gravwave: no %q coefficient for (population=%q, optimism=%q)\n"+
			"  valid populations: %q, %q, %q\n"+
			"  valid optimism levels: %q, %q, %q (%q for NS-NS only)",
		e.Model, e.Population, e.Optimism,
		PopNSNS, PopNSBH, PopBHBH,
		OptimismLow, OptimismRealistic, OptimismHigh, OptimismMax,
	)
}

// abadieTableIII holds the Abadie et al. (2010) Table III coefficients,
// events per year per unit L_10, indexed [population][optimism].
// NaN marks combinations that do not exist: only NS-NS has a "max" column.
var abadieTableIII = RateModel{
	name: "Abadie et al. 2010, Table III",
	coeff: [numPopulations][numOptimisms]float64{
		{0.6, 60, 600, 2000},         // NS-NS
		{0.03, 2, 60, math.NaN()},    // NS-BH
		{0.006, 0.2, 20, math.NaN()}, // BH-BH
	},
}

// AbadieTableIII returns the built-in model of Abadie et al. (2010),
// Table III. The model is immutable and shared process-wide.
func AbadieTableIII() *RateModel {
	return &abadieTableIII
}

// AbadieTableIIIRates computes compact-binary merger rates as a linear
// function of L_10 blue-light luminosity, per Abadie et al. (2010) Table III.
//
// luminosity is a catalog of per-galaxy blue-light luminosities in L_10
// units (L_10 = 10^10 × 2.16e33 erg/s). No range check is applied to the
// values. The result has one Rate per input galaxy, in input order, in
// units of year^-1.
//
// Returns *InvalidSelectorError when (population, optimism) is not a key of
// the table, e.g. OptimismMax with any population other than PopNSNS.
func AbadieTableIIIRates(luminosity []float64, population Population, optimism Optimism) ([]Rate, error) {
	return abadieTableIII.Rates(luminosity, population, optimism)
}

// AbadieTableIIICoefficient returns the Table III coefficient for one
// (population, optimism) pair, in events per year per unit L_10.
func AbadieTableIIICoefficient(population Population, optimism Optimism) (Rate, error) {
	return abadieTableIII.Coefficient(population, optimism)
}
