package gravwave

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// RateModel is a named table of merger-rate coefficients, events per year
// per unit L_10, keyed by the closed (Population, Optimism) selector sets.
// A model is immutable after construction and safe for concurrent use.
type RateModel struct {
	name string

	// coeff[population][optimism]; NaN marks pairs the model does not define.
	coeff [numPopulations][numOptimisms]float64
}

// Name returns the model's name, e.g. "Abadie et al. 2010, Table III".
func (m *RateModel) Name() string {
	return m.name
}

// Coefficient returns the model's rate coefficient for one selector pair.
// Returns *InvalidSelectorError when the pair has no entry.
func (m *RateModel) Coefficient(population Population, optimism Optimism) (Rate, error) {
	pi, ok := population.index()
	if !ok {
		return 0, &InvalidSelectorError{Model: m.name, Population: population, Optimism: optimism}
	}
	oi, ok := optimism.index()
	if !ok {
		return 0, &InvalidSelectorError{Model: m.name, Population: population, Optimism: optimism}
	}

	c := m.coeff[pi][oi]
	if math.IsNaN(c) {
		return 0, &InvalidSelectorError{Model: m.name, Population: population, Optimism: optimism}
	}

	return Rate(c), nil
}

// Rates multiplies every luminosity (L_10 units) by the coefficient for
// (population, optimism). The result preserves the input's length and
// ordering; a zero-length input yields a zero-length result.
func (m *RateModel) Rates(luminosity []float64, population Population, optimism Optimism) ([]Rate, error) {
	c, err := m.Coefficient(population, optimism)
	if err != nil {
		return nil, err
	}

	rates := make([]Rate, len(luminosity))
	for i, l := range luminosity {
		rates[i] = c * Rate(l)
	}

	return rates, nil
}

// modelYAML is the wire form of a custom rate model.
//
// Example:
//
//	name: my-survey-2024
//	rates:
//	  NS-NS: {low: 0.5, realistic: 40, high: 500, max: 1800}
//	  NS-BH: {low: 0.02, realistic: 1.5, high: 45}
//	  BH-BH: {low: 0.004, realistic: 0.15, high: 15}
type modelYAML struct {
	Name  string                         `yaml:"name"`
	Rates map[string]map[string]*float64 `yaml:"rates"`
}

// ParseModelYAML builds a RateModel from YAML bytes.
//
// Every population must supply the low, realistic and high levels; "max" is
// optional and permitted only for NS-NS, mirroring the asymmetry of the
// built-in table. Unknown population or optimism keys are rejected.
func ParseModelYAML(raw []byte) (*RateModel, error) {
	var doc modelYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("gravwave: parse rate model: %w", err)
	}

	if doc.Name == "" {
		return nil, fmt.Errorf("gravwave: rate model missing name")
	}
	if len(doc.Rates) == 0 {
		return nil, fmt.Errorf("gravwave: rate model %q has no rates", doc.Name)
	}

	m := &RateModel{name: doc.Name}
	for pi := range m.coeff {
		for oi := range m.coeff[pi] {
			m.coeff[pi][oi] = math.NaN()
		}
	}

	seen := make(map[Population]bool, numPopulations)

	for popKey, levels := range doc.Rates {
		pop := Population(popKey)
		pi, ok := pop.index()
		if !ok {
			return nil, fmt.Errorf("gravwave: rate model %q: unknown population %q (want %q, %q or %q)",
				doc.Name, popKey, PopNSNS, PopNSBH, PopBHBH)
		}
		seen[pop] = true

		for optKey, value := range levels {
			opt := Optimism(optKey)
			oi, ok := opt.index()
			if !ok {
				return nil, fmt.Errorf("gravwave: rate model %q: unknown optimism %q for %q (want %q, %q, %q or %q)",
					doc.Name, optKey, popKey, OptimismLow, OptimismRealistic, OptimismHigh, OptimismMax)
			}
			if opt == OptimismMax && pop != PopNSNS {
				return nil, fmt.Errorf("gravwave: rate model %q: %q is only valid for %q, got it for %q",
					doc.Name, OptimismMax, PopNSNS, popKey)
			}
			if value == nil {
				return nil, fmt.Errorf("gravwave: rate model %q: missing value for (%q, %q)",
					doc.Name, popKey, optKey)
			}

			m.coeff[pi][oi] = *value
		}

		// low/realistic/high are mandatory for every population
		for _, required := range []Optimism{OptimismLow, OptimismRealistic, OptimismHigh} {
			oi, _ := required.index()
			if math.IsNaN(m.coeff[pi][oi]) {
				return nil, fmt.Errorf("gravwave: rate model %q: population %q missing %q level",
					doc.Name, popKey, required)
			}
		}
	}

	for _, pop := range []Population{PopNSNS, PopNSBH, PopBHBH} {
		if !seen[pop] {
			return nil, fmt.Errorf("gravwave: rate model %q: missing population %q", doc.Name, pop)
		}
	}

	return m, nil
}
