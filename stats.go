package gravwave

import "sort"

// CatalogStats summarizes a per-galaxy merger-rate catalog.
//
// Merger-rate catalogs are heavily top-heavy: blue-light luminosity spans
// several orders of magnitude, so a handful of giant galaxies can carry most
// of the expected events. DominanceRatio (P99/P50) quantifies this — when it
// is large, Total is driven by the tail and Mean is not representative of a
// typical galaxy.
type CatalogStats struct {
	Galaxies int  // Number of galaxies in the catalog
	Total    Rate // Summed catalog rate, year^-1
	Mean     Rate // Average per-galaxy rate
	P50      Rate // Median per-galaxy rate
	P90      Rate // 90th percentile
	P99      Rate // 99th percentile

	// P99 / P50; 1.0 for uniform catalogs, large when a few galaxies dominate.
	DominanceRatio float64
}

// ExpectedEvents returns the expected number of merger events from the whole
// catalog over a span of years.
func (s CatalogStats) ExpectedEvents(years float64) float64 {
	return s.Total.Expected(years)
}

// SummarizeRates computes catalog statistics over per-galaxy rates, as
// produced by RateModel.Rates. A zero-length catalog yields zero statistics.
func SummarizeRates(rates []Rate) CatalogStats {
	stats := CatalogStats{Galaxies: len(rates)}
	if len(rates) == 0 {
		return stats
	}

	sorted := make([]Rate, len(rates))
	copy(sorted, rates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var sum Rate
	for _, r := range sorted {
		sum += r
	}

	stats.Total = sum
	stats.Mean = sum / Rate(len(sorted))
	stats.P50 = percentile(sorted, 0.50)
	stats.P90 = percentile(sorted, 0.90)
	stats.P99 = percentile(sorted, 0.99)

	if stats.P50 != 0 {
		stats.DominanceRatio = float64(stats.P99) / float64(stats.P50)
	}

	return stats
}

// percentile returns the p-th percentile (0 < p < 1) of an ascending slice.
func percentile(sorted []Rate, p float64) Rate {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)-1) * p)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
