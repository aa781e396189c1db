package gravwave

import (
	"errors"
	"math"
	"testing"
)

// Relative tolerance for floating-point rate comparisons in assertions.
// Rates are a single multiply, so anything beyond a few ulps is a real bug.
const rateTolerance = 1e-12

// AssertElementwiseRates verifies the element-wise contract for one selector
// pair: output length equals input length, ordering is preserved, and every
// rate equals coefficient × luminosity.
func AssertElementwiseRates(t *testing.T, m *RateModel, population Population, optimism Optimism, luminosity []float64) {
	t.Helper()

	c, err := m.Coefficient(population, optimism)
	if err != nil {
		t.Fatalf("Coefficient lookup failed for (%s, %s): %v", population, optimism, err)
	}

	rates, err := m.Rates(luminosity, population, optimism)
	if err != nil {
		t.Fatalf("Rates failed for (%s, %s): %v", population, optimism, err)
	}

	if len(rates) != len(luminosity) {
		t.Fatalf("Cardinality broken: %d rates for %d luminosities", len(rates), len(luminosity))
	}

	for i, l := range luminosity {
		want := float64(c) * l
		if !approxEqual(float64(rates[i]), want) {
			t.Errorf("Element %d: rate=%v, want %v (coefficient %v × luminosity %v)",
				i, float64(rates[i]), want, float64(c), l)
		}
	}

	t.Logf("✓ Element-wise rates: %d galaxies, (%s, %s), coefficient %v/yr per L_10",
		len(luminosity), population, optimism, float64(c))
}

// AssertRateLinearity verifies the scaling property: rates(k·L) == k·rates(L).
// This follows from linearity of the model and must hold for every valid
// selector pair and every k.
func AssertRateLinearity(t *testing.T, m *RateModel, population Population, optimism Optimism, luminosity []float64, k float64) {
	t.Helper()

	scaled := make([]float64, len(luminosity))
	for i, l := range luminosity {
		scaled[i] = k * l
	}

	base, err := m.Rates(luminosity, population, optimism)
	if err != nil {
		t.Fatalf("Rates failed for (%s, %s): %v", population, optimism, err)
	}

	scaledRates, err := m.Rates(scaled, population, optimism)
	if err != nil {
		t.Fatalf("Rates failed for scaled input, (%s, %s): %v", population, optimism, err)
	}

	for i := range base {
		want := k * float64(base[i])
		if !approxEqual(float64(scaledRates[i]), want) {
			t.Errorf("Linearity broken at element %d: rates(%v·L)[%d]=%v, %v·rates(L)[%d]=%v",
				i, k, i, float64(scaledRates[i]), k, i, want)
		}
	}

	t.Logf("✓ Linearity: rates(%v·L) == %v·rates(L) for (%s, %s), %d galaxies",
		k, k, population, optimism, len(luminosity))
}

// AssertSelectorRejected verifies an invalid (population, optimism) pair is
// rejected with *InvalidSelectorError and produces no rates.
func AssertSelectorRejected(t *testing.T, m *RateModel, population Population, optimism Optimism) {
	t.Helper()

	rates, err := m.Rates([]float64{1.0}, population, optimism)
	if err == nil {
		t.Fatalf("Selector (%s, %s) accepted (%d rates), want *InvalidSelectorError",
			population, optimism, len(rates))
	}

	var selErr *InvalidSelectorError
	if !errors.As(err, &selErr) {
		t.Fatalf("Selector (%s, %s) rejected with wrong error type: %v", population, optimism, err)
	}

	if selErr.Population != population || selErr.Optimism != optimism {
		t.Errorf("Error carries wrong selectors: (%s, %s), want (%s, %s)",
			selErr.Population, selErr.Optimism, population, optimism)
	}

	t.Logf("✓ Rejected: (%s, %s) has no entry in %q", population, optimism, m.Name())
}

// approxEqual compares with relative tolerance (absolute near zero).
func approxEqual(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) <= rateTolerance
	}
	return math.Abs(got-want) <= rateTolerance*math.Abs(want)
}
