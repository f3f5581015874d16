package score

import (
	"math"
	"sort"
)

// Round2 rounds to 2 decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundCents rounds a fractional cent amount to whole cents, half away from
// zero. Every multiply/divide on money goes through this so derived totals
// stay exact multiples of their annual figures.
func RoundCents(v float64) int64 {
	return int64(math.Round(v))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MedianCents returns the median of the values in cents. For an even count
// the two middle values are averaged and rounded half away from zero.
func MedianCents(values []int64) int64 {
	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return RoundCents(float64(sorted[n/2-1]+sorted[n/2]) / 2)
}

func Mean(values []int64) float64 {
	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// A single value has no dispersion, so it returns 0 for n < 2.
func SampleStdDev(values []int64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := float64(v) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// PercentileRank returns the fraction of values at or below the subject,
// expressed as 0-100.
func PercentileRank(subject int64, values []int64) float64 {
	atOrBelow := 0
	for _, v := range values {
		if v <= subject {
			atOrBelow++
		}
	}
	return Round2(float64(atOrBelow) / float64(len(values)) * 100)
}

// CoefficientOfDispersion is the average absolute deviation from the median,
// as a percentage of the median. Used by county-wide equity reports; it does
// not feed the per-property fairness bands.
func CoefficientOfDispersion(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}

	median := MedianCents(values)
	if median == 0 {
		return 0
	}

	var sumAbs float64
	for _, v := range values {
		sumAbs += math.Abs(float64(v - median))
	}
	return Round2(sumAbs / float64(len(values)) / float64(median) * 100)
}
