// Package stats summarizes benchmark timing samples. Standard deviation is
// the population form (÷n, not ÷(n−1)).
package stats

import (
	"math"
	"slices"
	"time"
)

// Well-known percentile thresholds.
const (
	PercentileMedian = 0.5
	PercentileP95    = 0.95
)

// Summary is the digest of one timing series.
type Summary struct {
	Samples int
	Mean    time.Duration
	StdDev  time.Duration
	Median  time.Duration
	P95     time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Summarize computes the digest of the given samples.
// Returns the zero Summary for an empty slice.
func Summarize(samples []time.Duration) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	values := make([]float64, len(samples))
	for i, d := range samples {
		values[i] = float64(d)
	}

	mean, stddev := meanStdDev(values)

	return Summary{
		Samples: len(samples),
		Mean:    time.Duration(mean),
		StdDev:  time.Duration(stddev),
		Median:  time.Duration(Percentile(values, PercentileMedian)),
		P95:     time.Duration(Percentile(values, PercentileP95)),
		Min:     slices.Min(samples),
		Max:     slices.Max(samples),
	}
}

// meanStdDev returns the arithmetic mean and population standard deviation.
func meanStdDev(values []float64) (mean, stddev float64) {
	count := len(values)
	if count == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	mean = sum / float64(count)

	var sumSq float64

	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(count))
}

// Percentile returns the p-th percentile of values using linear interpolation.
// p must be in [0, 1]. The input slice is not modified (a copy is sorted
// internally). Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	count := len(values)
	if count == 0 {
		return 0
	}

	sorted := make([]float64, count)
	copy(sorted, values)
	slices.Sort(sorted)

	idx := p * float64(count-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))

	if lower == upper || upper >= count {
		return sorted[lower]
	}

	frac := idx - float64(lower)

	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
