// Package gravwave provides compact-binary merger rates for individual galaxies.
//
// # Overview
//
// gravwave turns galaxy blue-light luminosities into expected compact-binary
// merger rates using published empirical coefficients. The core model is
// Abadie et al. (2010), Table III: merger rate as a linear function of L_10
// blue-light luminosity, where L_10 = 10^10 × 2.16e33 erg/s.
//
// # Quick Start
//
// Compute rates for a luminosity catalog:
//
//	luminosities := []float64{0.4, 1.2, 8.5} // L_10 units
//
//	rates, err := gravwave.AbadieTableIIIRates(luminosities, gravwave.PopNSNS, gravwave.OptimismLow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, r := range rates {
//	    fmt.Printf("galaxy %d: %.4f mergers/year\n", i, float64(r))
//	}
//
// Each output element is coefficient × luminosity, in units of year^-1, in
// the same order as the input.
//
// # The Coefficient Table
//
// Rates per year per unit L_10, by population and optimism level:
//
//	population   low     realistic   high   max
//	NS-NS        0.6     60          600    2000
//	NS-BH        0.03    2           60     —
//	BH-BH        0.006   0.2         20     —
//
// "max" exists only for the NS-NS population. Any (population, optimism)
// pair outside this table is rejected with *InvalidSelectorError; that is
// the only failure mode in the package.
//
// # Rate Models
//
// AbadieTableIII() returns the built-in model. Alternative published tables
// can be supplied as YAML:
//
//	model, err := gravwave.ParseModelYAML(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rates, err := model.Rates(luminosities, gravwave.PopBHBH, gravwave.OptimismHigh)
//
// Custom models keep the same closed selector sets, including the NS-NS-only
// "max" column.
//
// # Catalog Statistics
//
// SummarizeRates condenses a per-galaxy rate catalog into totals and
// percentiles:
//
//	stats := gravwave.SummarizeRates(rates)
//	fmt.Printf("total: %.2f/yr, expected over 5 yr: %.1f\n",
//	    float64(stats.Total), stats.ExpectedEvents(5))
//
// The dominance ratio (P99/P50) shows how top-heavy the catalog is: a few
// giant ellipticals can carry most of the expected events.
//
// # Testing
//
// Assertion helpers validate the model contract in your own tests:
//
//	func TestMyCatalog(t *testing.T) {
//	    m := gravwave.AbadieTableIII()
//
//	    // Element-wise correspondence and ordering
//	    gravwave.AssertElementwiseRates(t, m, gravwave.PopNSNS, gravwave.OptimismLow, lums)
//
//	    // Linearity: rates(k·L) == k·rates(L)
//	    gravwave.AssertRateLinearity(t, m, gravwave.PopNSNS, gravwave.OptimismLow, lums, 3.0)
//	}
//
// # References
//
//   - Abadie et al. 2010, Classical and Quantum Gravity,
//     Volume 27, Issue 17, article id. 173001
package gravwave
