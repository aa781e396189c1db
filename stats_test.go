package gravwave

import (
	"testing"
)

// TestSummarizeRates_SmallCatalog checks totals and percentiles on a catalog
// small enough to verify by hand.
func TestSummarizeRates_SmallCatalog(t *testing.T) {
	rates := []Rate{0.3, 0.1, 0.6, 0.2, 0.8}

	stats := SummarizeRates(rates)

	if stats.Galaxies != 5 {
		t.Errorf("Galaxies = %d, want 5", stats.Galaxies)
	}
	if !approxEqual(float64(stats.Total), 2.0) {
		t.Errorf("Total = %v, want 2.0 /yr", float64(stats.Total))
	}
	if !approxEqual(float64(stats.Mean), 0.4) {
		t.Errorf("Mean = %v, want 0.4 /yr", float64(stats.Mean))
	}
	if float64(stats.P50) != 0.3 {
		t.Errorf("P50 = %v, want 0.3 /yr", float64(stats.P50))
	}

	t.Logf("✓ Catalog of %d: total=%v, mean=%v, median=%v",
		stats.Galaxies, stats.Total, stats.Mean, stats.P50)
}

// TestSummarizeRates_Empty verifies a zero-length catalog yields zero stats.
func TestSummarizeRates_Empty(t *testing.T) {
	stats := SummarizeRates(nil)

	if stats.Galaxies != 0 || stats.Total != 0 || stats.Mean != 0 {
		t.Errorf("Empty catalog produced non-zero stats: %+v", stats)
	}
	if stats.ExpectedEvents(100) != 0 {
		t.Errorf("ExpectedEvents(100) = %v, want 0", stats.ExpectedEvents(100))
	}

	t.Log("✓ Empty catalog summarizes to zero")
}

// TestSummarizeRates_InputUntouched verifies summarizing does not reorder
// the caller's catalog.
func TestSummarizeRates_InputUntouched(t *testing.T) {
	rates := []Rate{0.9, 0.1, 0.5}
	SummarizeRates(rates)

	want := []Rate{0.9, 0.1, 0.5}
	for i := range want {
		if rates[i] != want[i] {
			t.Fatalf("Input reordered at %d: %v, want %v", i, rates, want)
		}
	}

	t.Log("✓ Input catalog order preserved")
}

// TestSummarizeRates_Dominance verifies a top-heavy catalog is flagged by
// the dominance ratio while a uniform one is not.
func TestSummarizeRates_Dominance(t *testing.T) {
	uniform := make([]Rate, 100)
	for i := range uniform {
		uniform[i] = 0.5
	}

	topHeavy := make([]Rate, 100)
	for i := range topHeavy {
		topHeavy[i] = 0.01
	}
	for i := 0; i < 5; i++ {
		topHeavy[i] = 10.0 // a handful of giant ellipticals
	}

	u := SummarizeRates(uniform)
	h := SummarizeRates(topHeavy)

	if u.DominanceRatio != 1.0 {
		t.Errorf("Uniform catalog dominance = %v, want 1.0", u.DominanceRatio)
	}
	if h.DominanceRatio <= 1.0 {
		t.Errorf("Top-heavy catalog dominance = %v, want > 1.0", h.DominanceRatio)
	}
	if float64(h.Total) <= float64(u.Total) {
		t.Errorf("Top-heavy total %v should exceed uniform total %v", h.Total, u.Total)
	}

	t.Logf("✓ Dominance: uniform=%.2f, top-heavy=%.2f (P99/P50)",
		u.DominanceRatio, h.DominanceRatio)
}

// TestCatalogStats_ExpectedEvents ties rates to observation spans via the
// built-in model.
func TestCatalogStats_ExpectedEvents(t *testing.T) {
	// Three galaxies at NS-NS realistic: 60 /yr per L_10
	rates, err := AbadieTableIIIRates([]float64{0.01, 0.02, 0.03}, PopNSNS, OptimismRealistic)
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}

	stats := SummarizeRates(rates)

	// Total = 60 × 0.06 = 3.6 /yr; over 5 years that is 18 expected events.
	if !approxEqual(float64(stats.Total), 3.6) {
		t.Errorf("Total = %v, want 3.6 /yr", float64(stats.Total))
	}
	if !approxEqual(stats.ExpectedEvents(5), 18.0) {
		t.Errorf("ExpectedEvents(5) = %v, want 18", stats.ExpectedEvents(5))
	}

	t.Logf("✓ %d galaxies: %v total, %.0f events expected over 5 years",
		stats.Galaxies, stats.Total, stats.ExpectedEvents(5))
}
