// Package report aggregates the analysis results (length statistics, strength
// breakdown, dictionary hits, classification attribution) and renders them as
// a results file, terminal summary and charts.
package report

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MinRecommendedLength is the minimum credential length counted as acceptable
// in the length statistics (NIST SP 800-63B minimum).
const MinRecommendedLength = 8

// LengthStats summarizes the credential length distribution.
type LengthStats struct {
	Total      int
	Mean       float64
	Median     float64
	Mode       int
	ModeCount  int
	StdDev     float64
	Q1         float64
	Q3         float64
	IQR        float64
	LowerBound float64 // max(0, Q1 - 1.5*IQR)
	UpperBound float64 // Q3 + 1.5*IQR
	Outliers   int     // Lengths outside [LowerBound, UpperBound]
	AtLeastMin int     // Lengths >= MinRecommendedLength
}

// ComputeLengthStats computes the length distribution statistics for a
// credential corpus.
func ComputeLengthStats(lengths []int) LengthStats {
	stats := LengthStats{Total: len(lengths)}
	if len(lengths) == 0 {
		return stats
	}

	values := make([]float64, len(lengths))
	counts := make(map[int]int)
	for i, l := range lengths {
		values[i] = float64(l)
		counts[l]++
		if l >= MinRecommendedLength {
			stats.AtLeastMin++
		}
	}
	sort.Float64s(values)

	stats.Mean = stat.Mean(values, nil)
	stats.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
	if len(values) > 1 {
		stats.StdDev = stat.StdDev(values, nil)
	}

	stats.Q1 = stat.Quantile(0.25, stat.Empirical, values, nil)
	stats.Q3 = stat.Quantile(0.75, stat.Empirical, values, nil)
	stats.IQR = stats.Q3 - stats.Q1
	stats.LowerBound = math.Max(0, stats.Q1-1.5*stats.IQR)
	stats.UpperBound = stats.Q3 + 1.5*stats.IQR

	for _, v := range values {
		if v < stats.LowerBound || v > stats.UpperBound {
			stats.Outliers++
		}
	}

	// Mode: smallest length wins a tie so the result is deterministic.
	for length, count := range counts {
		if count > stats.ModeCount || (count == stats.ModeCount && length < stats.Mode) {
			stats.Mode = length
			stats.ModeCount = count
		}
	}

	return stats
}
